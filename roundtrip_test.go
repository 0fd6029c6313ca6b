package tifftools

import (
	"encoding/binary"
	"testing"
)

// roundtripCase builds one field, writes+reads it back, and checks
// the decoded value matches what went in, across byte orders and with
// the IFD flagged classic or BigTIFF. Write picks the output layout
// itself, so only the LONG8 case is written as BigTIFF.
type roundtripCase struct {
	name  string
	typ   Type
	build func(f *Field, order binary.ByteOrder)
	check func(t *testing.T, f *Field, order binary.ByteOrder)
}

var roundtripCases = []roundtripCase{
	{
		name: "short",
		typ:  TypeShort,
		build: func(f *Field, order binary.ByteOrder) {
			f.Data = make([]byte, 2)
			f.PutShort(0, 0xBEEF&0x7FFF, order)
		},
		check: func(t *testing.T, f *Field, order binary.ByteOrder) {
			if got := f.Short(0, order); got != 0xBEEF&0x7FFF {
				t.Errorf("Short = %#x", got)
			}
		},
	},
	{
		name: "slong",
		typ:  TypeSLong,
		build: func(f *Field, order binary.ByteOrder) {
			f.Data = make([]byte, 4)
			f.PutSLong(0, -12345, order)
		},
		check: func(t *testing.T, f *Field, order binary.ByteOrder) {
			if got := f.SLong(0, order); got != -12345 {
				t.Errorf("SLong = %d", got)
			}
		},
	},
	{
		name: "rational",
		typ:  TypeRational,
		build: func(f *Field, order binary.ByteOrder) {
			f.Data = make([]byte, 8)
			f.PutRational(0, 300, 7, order)
		},
		check: func(t *testing.T, f *Field, order binary.ByteOrder) {
			n, d := f.Rational(0, order)
			if n != 300 || d != 7 {
				t.Errorf("Rational = %d/%d", n, d)
			}
		},
	},
	{
		name: "double",
		typ:  TypeDouble,
		build: func(f *Field, order binary.ByteOrder) {
			f.Data = make([]byte, 8)
			f.PutDouble(0, 3.14159265, order)
		},
		check: func(t *testing.T, f *Field, order binary.ByteOrder) {
			if got := f.Double(0, order); got != 3.14159265 {
				t.Errorf("Double = %v", got)
			}
		},
	},
	{
		name: "long8",
		typ:  TypeLong8,
		build: func(f *Field, order binary.ByteOrder) {
			f.Data = make([]byte, 8)
			f.PutLong8(0, 1<<48, order)
		},
		check: func(t *testing.T, f *Field, order binary.ByteOrder) {
			if got := f.Long8(0, order); got != 1<<48 {
				t.Errorf("Long8 = %d", got)
			}
		},
	},
}

func TestRoundTripAcrossTypesOrdersAndBigTIFF(t *testing.T) {
	orders := []binary.ByteOrder{binary.LittleEndian, binary.BigEndian}
	for _, tc := range roundtripCases {
		for _, order := range orders {
			for _, bigTIFF := range []bool{false, true} {
				t.Run(tc.name, func(t *testing.T) {
					ifd := NewIFD(order, bigTIFF)
					f := Field{Tag: Tag(0x9000), Type: tc.typ, Count: 1}
					tc.build(&f, order)
					ifd.Put(f)

					info := &Info{Order: order, IFDs: []*IFD{ifd}}
					buf, err := Write(info, WriteOptions{})
					if err != nil {
						t.Fatalf("Write (order=%v bigTIFF=%v): %v", order, bigTIFF, err)
					}
					got, rerr := Read(buf)
					if rerr != nil {
						t.Fatalf("Read (order=%v bigTIFF=%v): %v", order, bigTIFF, rerr)
					}
					outField := got.IFDs[0].Find(Tag(0x9000))
					if outField == nil {
						t.Fatal("field missing after round-trip")
					}
					tc.check(t, outField, order)
				})
			}
		}
	}
}

func TestRoundTripPreservesASCIIAndUndefinedBytes(t *testing.T) {
	for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
		ifd := NewIFD(order, false)
		ascii := Field{Tag: Tag(0x10E), Type: TypeASCII}
		ascii.PutASCII("a description with spaces")
		ifd.Put(ascii)

		undefined := Field{Tag: Tag(0x9001), Type: TypeUndefined, Count: 4, Data: []byte{0xDE, 0xAD, 0xBE, 0xEF}}
		ifd.Put(undefined)

		info := &Info{Order: order, IFDs: []*IFD{ifd}}
		buf, err := Write(info, WriteOptions{})
		if err != nil {
			t.Fatalf("Write: %v", err)
		}
		got, rerr := Read(buf)
		if rerr != nil {
			t.Fatalf("Read: %v", rerr)
		}
		if s := got.IFDs[0].Find(Tag(0x10E)).ASCII(); s != "a description with spaces" {
			t.Errorf("ASCII = %q", s)
		}
		raw := got.IFDs[0].Find(Tag(0x9001)).Data
		if len(raw) != 4 || raw[0] != 0xDE || raw[3] != 0xEF {
			t.Errorf("Undefined bytes = %v", raw)
		}
	}
}

func TestRoundTripPreservesImageBlockSegments(t *testing.T) {
	ifd := NewIFD(binary.LittleEndian, false)
	offsets := Field{Tag: Tag(0x111), Type: TypeLong, Count: 2, Data: make([]byte, 8)}
	counts := Field{Tag: Tag(0x117), Type: TypeLong, Count: 2, Data: make([]byte, 8)}
	counts.PutLong(0, 3, binary.LittleEndian)
	counts.PutLong(1, 4, binary.LittleEndian)
	ifd.Put(offsets)
	ifd.Put(counts)
	ifd.ImageBlocks = []ImageBlock{{
		OffsetTag:    Tag(0x111),
		ByteCountTag: Tag(0x117),
		Segments:     [][]byte{{1, 2, 3}, {4, 5, 6, 7}},
	}}

	info := &Info{Order: binary.LittleEndian, IFDs: []*IFD{ifd}}
	buf, err := Write(info, WriteOptions{})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, rerr := Read(buf)
	if rerr != nil {
		t.Fatalf("Read: %v", rerr)
	}
	block := got.IFDs[0].FindImageBlock(Tag(0x111))
	if block == nil || len(block.Segments) != 2 {
		t.Fatalf("ImageBlock missing or wrong shape: %+v", block)
	}
	if string(block.Segments[0]) != "\x01\x02\x03" || string(block.Segments[1]) != "\x04\x05\x06\x07" {
		t.Errorf("segments = %v", block.Segments)
	}
}
