package tifftools

import (
	"encoding/binary"
	"testing"
)

func TestWriteThenReadRoundTrip(t *testing.T) {
	ifd := NewIFD(binary.LittleEndian, false)
	ifd.Put(Field{Tag: Tag(256), Type: TypeShort, Count: 1, Data: []byte{0x80, 0x02}}) // 640
	desc := Field{Tag: Tag(0x10E), Type: TypeASCII}
	desc.PutASCII("a round-trip test")
	ifd.Put(desc)

	info := &Info{Order: binary.LittleEndian, IFDs: []*IFD{ifd}}
	buf, err := Write(info, WriteOptions{})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, rerr := Read(buf)
	if rerr != nil {
		t.Fatalf("Read: %v", rerr)
	}
	if len(got.IFDs) != 1 {
		t.Fatalf("expected 1 IFD, got %d", len(got.IFDs))
	}
	width := got.IFDs[0].Find(Tag(256))
	if width == nil || width.Short(0, binary.LittleEndian) != 640 {
		t.Errorf("ImageWidth round-trip failed: %+v", width)
	}
	description := got.IFDs[0].Find(Tag(0x10E))
	if description == nil || description.ASCII() != "a round-trip test" {
		t.Errorf("ImageDescription round-trip failed: %+v", description)
	}
}

func TestWriteRoundTripsSubIFDs(t *testing.T) {
	child := NewIFD(binary.LittleEndian, false)
	child.Put(Field{Tag: Tag(0x100), Type: TypeLong, Count: 1, Data: []byte{1, 0, 0, 0}})

	parent := NewIFD(binary.LittleEndian, false)
	parent.Put(Field{Tag: Tag(0x14A), Type: TypeIFD, Count: 1, Children: []*IFD{child}})

	info := &Info{Order: binary.LittleEndian, IFDs: []*IFD{parent}}
	buf, err := Write(info, WriteOptions{})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, rerr := Read(buf)
	if rerr != nil {
		t.Fatalf("Read: %v", rerr)
	}
	sub := got.IFDs[0].Find(Tag(0x14A))
	if sub == nil || !sub.IsIFDBearing() || len(sub.Children) != 1 {
		t.Fatalf("SubIFDs did not round-trip: %+v", sub)
	}
	if got := sub.Children[0].Find(Tag(0x100)); got == nil || got.Long(0, binary.LittleEndian) != 1 {
		t.Errorf("nested ImageWidth round-trip failed: %+v", got)
	}
}

func TestWriteRoundTripsTwoChildSubIFDsFromBigTIFFFlaggedIFDs(t *testing.T) {
	childA := NewIFD(binary.LittleEndian, true)
	childA.Put(Field{Tag: Tag(0x100), Type: TypeLong, Count: 1, Data: []byte{1, 0, 0, 0}})
	childB := NewIFD(binary.LittleEndian, true)
	childB.Put(Field{Tag: Tag(0x100), Type: TypeLong, Count: 1, Data: []byte{2, 0, 0, 0}})

	parent := NewIFD(binary.LittleEndian, true)
	parent.Put(Field{Tag: Tag(0x14A), Type: TypeIFD, Count: 2, Children: []*IFD{childA, childB}})

	info := &Info{Order: binary.LittleEndian, IFDs: []*IFD{parent}}
	buf, err := Write(info, WriteOptions{})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, rerr := Read(buf)
	if rerr != nil {
		t.Fatalf("Read: %v", rerr)
	}
	sub := got.IFDs[0].Find(Tag(0x14A))
	if sub == nil || !sub.IsIFDBearing() || len(sub.Children) != 2 {
		t.Fatalf("two-child SubIFDs did not round-trip: %+v", sub)
	}
	if got := sub.Children[0].Find(Tag(0x100)); got == nil || got.Long(0, binary.LittleEndian) != 1 {
		t.Errorf("first child's nested field round-trip failed: %+v", got)
	}
	if got := sub.Children[1].Find(Tag(0x100)); got == nil || got.Long(0, binary.LittleEndian) != 2 {
		t.Errorf("second child's nested field round-trip failed: %+v", got)
	}
}

func TestWriteForcesBigTIFFForLong8Field(t *testing.T) {
	ifd := NewIFD(binary.LittleEndian, true)
	f := Field{Tag: Tag(0x100), Type: TypeLong8, Count: 1}
	f.Data = make([]byte, 8)
	f.PutLong8(0, 1<<40, binary.LittleEndian)
	ifd.Put(f)
	info := &Info{Order: binary.LittleEndian, IFDs: []*IFD{ifd}}

	_, err := Write(info, WriteOptions{ForceClassic: true})
	if err == nil {
		t.Fatal("expected a BigTiffRequired error when classic is forced")
	}
	if err.Kind != KindBigTiffRequired {
		t.Errorf("Kind = %v, want KindBigTiffRequired", err.Kind)
	}

	buf, err2 := Write(info, WriteOptions{})
	if err2 != nil {
		t.Fatalf("Write: %v", err2)
	}
	got, rerr := Read(buf)
	if rerr != nil {
		t.Fatalf("Read: %v", rerr)
	}
	if !got.BigTIFF {
		t.Error("expected output to be BigTIFF")
	}
}

func TestWriteIFDsFirstProducesSameContent(t *testing.T) {
	ifd0 := NewIFD(binary.LittleEndian, false)
	ifd0.Put(Field{Tag: Tag(256), Type: TypeShort, Count: 1, Data: []byte{1, 0}})
	ifd1 := NewIFD(binary.LittleEndian, false)
	ifd1.Put(Field{Tag: Tag(256), Type: TypeShort, Count: 1, Data: []byte{2, 0}})
	info := &Info{Order: binary.LittleEndian, IFDs: []*IFD{ifd0, ifd1}}

	depthFirst, err := Write(info, WriteOptions{})
	if err != nil {
		t.Fatalf("Write depth-first: %v", err)
	}
	ifdsFirst, err := Write(info, WriteOptions{IFDsFirst: true})
	if err != nil {
		t.Fatalf("Write IFDs-first: %v", err)
	}
	if len(depthFirst) != len(ifdsFirst) {
		t.Fatalf("layouts differ in total size: %d vs %d", len(depthFirst), len(ifdsFirst))
	}

	got, rerr := Read(ifdsFirst)
	if rerr != nil {
		t.Fatalf("Read IFDs-first output: %v", rerr)
	}
	if len(got.IFDs) != 2 {
		t.Fatalf("expected 2 IFDs, got %d", len(got.IFDs))
	}
	if got.IFDs[0].Find(Tag(256)).Short(0, binary.LittleEndian) != 1 ||
		got.IFDs[1].Find(Tag(256)).Short(0, binary.LittleEndian) != 2 {
		t.Error("IFD chain order or contents corrupted by IFDsFirst layout")
	}
}
