package tifftools

import (
	"encoding/binary"
	"testing"
)

func TestDecideBigTIFFTriggeredByEntryCountOverflow(t *testing.T) {
	ifd := NewIFD(binary.LittleEndian, false)
	for i := 0; i < classicEntryLimit+1; i++ {
		ifd.Put(Field{Tag: Tag(i + 1), Type: TypeByte, Count: 1, Data: []byte{0}})
	}
	info := &Info{Order: binary.LittleEndian, IFDs: []*IFD{ifd}}

	big, err := decideBigTIFF(info, false)
	if err != nil {
		t.Fatalf("decideBigTIFF: %v", err)
	}
	if !big {
		t.Error("expected BigTIFF to be required once entry count exceeds the classic limit")
	}
}

func TestDecideBigTIFFForceClassicFailsOnEntryOverflow(t *testing.T) {
	ifd := NewIFD(binary.LittleEndian, false)
	for i := 0; i < classicEntryLimit+1; i++ {
		ifd.Put(Field{Tag: Tag(i + 1), Type: TypeByte, Count: 1, Data: []byte{0}})
	}
	info := &Info{Order: binary.LittleEndian, IFDs: []*IFD{ifd}}

	_, err := decideBigTIFF(info, true)
	if err == nil || err.Kind != KindBigTiffRequired {
		t.Fatalf("expected KindBigTiffRequired, got %v", err)
	}
}

func TestDecideBigTIFFClassicFitsByDefault(t *testing.T) {
	ifd := NewIFD(binary.LittleEndian, false)
	ifd.Put(Field{Tag: Tag(256), Type: TypeShort, Count: 1, Data: []byte{1, 0}})
	info := &Info{Order: binary.LittleEndian, IFDs: []*IFD{ifd}}

	big, err := decideBigTIFF(info, false)
	if err != nil {
		t.Fatalf("decideBigTIFF: %v", err)
	}
	if big {
		t.Error("a small classic-friendly model shouldn't be upgraded to BigTIFF")
	}
}

func TestBigTIFFRoundTripPreservesNestedSubIFD(t *testing.T) {
	child := NewIFD(binary.BigEndian, true)
	child.Put(Field{Tag: Tag(256), Type: TypeLong8, Count: 1, Data: make([]byte, 8)})
	child.Find(Tag(256)).PutLong8(0, 1<<40, binary.BigEndian)

	parent := NewIFD(binary.BigEndian, true)
	parent.Put(Field{Tag: Tag(0x14A), Type: TypeIFD8, Count: 1, Children: []*IFD{child}})

	info := &Info{Order: binary.BigEndian, IFDs: []*IFD{parent}}
	buf, err := Write(info, WriteOptions{})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, rerr := Read(buf)
	if rerr != nil {
		t.Fatalf("Read: %v", rerr)
	}
	if !got.BigTIFF {
		t.Fatal("expected BigTIFF output")
	}
	sub := got.IFDs[0].Find(Tag(0x14A))
	if sub == nil || len(sub.Children) != 1 {
		t.Fatalf("SubIFDs did not round-trip: %+v", sub)
	}
	if v := sub.Children[0].Find(Tag(256)).Long8(0, binary.BigEndian); v != 1<<40 {
		t.Errorf("nested LONG8 field = %d, want %d", v, uint64(1)<<40)
	}
}
