package tifftools

import (
	"encoding/binary"
	"sort"
)

// IFD is one Image File Directory: an ordered set of fields (kept
// sorted by ascending tag, as TIFF requires), the byte order and
// BigTIFF-ness it was read with (or will be written with), and,
// informationally, the file offset it was read from.
type IFD struct {
	Order   binary.ByteOrder
	BigTIFF bool

	Fields []Field

	// ImageBlocks holds the materialized pixel/tile/strip data this
	// IFD's offset/bytecount field pairs refer to (reader.go). The
	// writer relocates these verbatim and rewrites the corresponding
	// offset field's values; it never reinterprets the bytes.
	ImageBlocks []ImageBlock

	// SourceOffset is where this IFD was read from. It is purely
	// informational: the writer recomputes every offset from
	// scratch and never trusts a stale SourceOffset.
	SourceOffset uint64
	HasSource    bool
}

// FindImageBlock returns the ImageBlock for the given offset tag, or
// nil.
func (ifd *IFD) FindImageBlock(offsetTag Tag) *ImageBlock {
	for i := range ifd.ImageBlocks {
		if ifd.ImageBlocks[i].OffsetTag == offsetTag {
			return &ifd.ImageBlocks[i]
		}
	}
	return nil
}

// NewIFD creates an empty IFD for the given byte order.
func NewIFD(order binary.ByteOrder, bigTIFF bool) *IFD {
	return &IFD{Order: order, BigTIFF: bigTIFF}
}

// Find returns the field with the given tag, or nil.
func (ifd *IFD) Find(tag Tag) *Field {
	for i := range ifd.Fields {
		if ifd.Fields[i].Tag == tag {
			return &ifd.Fields[i]
		}
	}
	return nil
}

// FindAll returns pointers to every field whose tag is in tags, in
// IFD order (not the order of tags).
func (ifd *IFD) FindAll(tags ...Tag) []*Field {
	found := make([]*Field, 0, len(tags))
	for i := range ifd.Fields {
		for _, tag := range tags {
			if ifd.Fields[i].Tag == tag {
				found = append(found, &ifd.Fields[i])
				break
			}
		}
	}
	return found
}

// Put inserts or replaces a field, keeping Fields sorted by tag.
func (ifd *IFD) Put(field Field) {
	for i := range ifd.Fields {
		if ifd.Fields[i].Tag == field.Tag {
			ifd.Fields[i] = field
			return
		}
	}
	ifd.Fields = append(ifd.Fields, field)
	sort.Slice(ifd.Fields, func(i, j int) bool { return ifd.Fields[i].Tag < ifd.Fields[j].Tag })
}

// Delete removes a field by tag. It's a no-op if the tag isn't
// present.
func (ifd *IFD) Delete(tag Tag) {
	for i := range ifd.Fields {
		if ifd.Fields[i].Tag == tag {
			ifd.Fields = append(ifd.Fields[:i], ifd.Fields[i+1:]...)
			return
		}
	}
}

// EntrySize is the on-disk size of one directory entry: classic is
// tag(2)+type(2)+count(4)+value(4); BigTIFF is tag(2)+type(2)+
// count(8)+value(8).
func (ifd *IFD) EntrySize() uint64 {
	if ifd.BigTIFF {
		return 20
	}
	return 12
}

// offsetFieldSize is the width of the inline value-or-offset slot.
func (ifd *IFD) offsetFieldSize() uint64 {
	if ifd.BigTIFF {
		return 8
	}
	return 4
}

// DirectorySize is the serialized size of just the directory block:
// entry count, the entries, and the next-IFD pointer. It does not
// include out-of-line payloads.
func (ifd *IFD) DirectorySize() uint64 {
	var countWidth, nextWidth uint64 = 2, 4
	if ifd.BigTIFF {
		countWidth, nextWidth = 8, 8
	}
	return countWidth + uint64(len(ifd.Fields))*ifd.EntrySize() + nextWidth
}

// Info is the root of a decoded TIFF file: its endianness, whether
// it's BigTIFF, the version word, the header's offset size, and the
// ordered list of top-level IFDs (the on-disk chain of "next IFD"
// pointers is flattened into this slice so that command
// operations can splice it freely; Next-IFD linkage is reconstructed
// by the writer from slice order).
type Info struct {
	Order      binary.ByteOrder
	BigTIFF    bool
	Version    uint16
	OffsetSize uint8

	IFDs []*IFD

	// Warnings accumulates non-fatal Warning conditions observed
	// while reading; see errors.go.
	Warnings []Warning
}

// TopLevelFields is a convenience accessor for the Nth top-level
// IFD's fields, or nil if n is out of range.
func (info *Info) TopLevelFields(n int) []Field {
	if n < 0 || n >= len(info.IFDs) {
		return nil
	}
	return info.IFDs[n].Fields
}

// Warning is a non-fatal condition recorded during a read or write:
// an unknown tag with an unknown datatype (dropped), an ASCII field
// with invalid UTF-8 (kept as bytes), or an applied NDPI offset
// fixup. Unrecognized GeoKeys are not recorded as warnings.
type Warning struct {
	IFDIndex int
	Tag      Tag
	Message  string
}

func (w Warning) String() string {
	return w.Message
}

func (info *Info) warn(ifdIndex int, tag Tag, message string) {
	info.Warnings = append(info.Warnings, Warning{IFDIndex: ifdIndex, Tag: tag, Message: message})
}
