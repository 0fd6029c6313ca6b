package tifftools

import (
	"encoding/binary"
	"os"

	"github.com/DigitalSlideArchive/tifftools/tagset"
)

// MaxIFDDepth bounds SubIFD nesting. It's enforced on both read and
// write so a crafted file can't exhaust the stack and a program-built
// model can't either.
const MaxIFDDepth = 16

// StandardImageDataSpecs pairs the offset/bytecount tags this package
// understands by default, keyed by tagset.TagID so the registry stays
// the single source of truth. The obsolete single-blob
// JPEGQTables/JPEGDCTables/JPEGACTables tags aren't carried: they have
// no bytecount tag at all (sizes come from the tables' own structure),
// which doesn't fit the general offset/bytecount pairing below.
var StandardImageDataSpecs = []ImageDataSpec{
	{OffsetTag: Tag(tagset.StripOffsets), ByteCountTag: Tag(tagset.StripByteCounts)},
	{OffsetTag: Tag(tagset.TileOffsets), ByteCountTag: Tag(tagset.TileByteCounts)},
	{OffsetTag: Tag(tagset.FreeOffsets), ByteCountTag: Tag(tagset.FreeByteCounts)},
	{OffsetTag: Tag(tagset.JPEGInterchangeFormat), ByteCountTag: Tag(tagset.JPEGInterchangeFormatLength)},
}

// ImageDataSpec names one offset/bytecount tag pair.
type ImageDataSpec struct {
	OffsetTag    Tag
	ByteCountTag Tag
}

// ImageBlock holds the materialized image-data segments for one
// offset/bytecount pair within an IFD: Segments[i] is the raw byte
// range the ith offset/bytecount entry refers to.
type ImageBlock struct {
	OffsetTag    Tag
	ByteCountTag Tag
	Segments     [][]byte
}

// ReadFile reads and parses the TIFF or BigTIFF file at path.
func ReadFile(path string) (*Info, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, wrapErr(KindIO, err)
	}
	return Read(buf)
}

// Read parses a complete in-memory TIFF or BigTIFF file into an Info
// tree, walking the top-level IFD chain and every SubIFD/ExifIFD/
// GPSIFD/InteropIFD it finds, and materializing every field's payload
// (inline or out-of-line) plus any image data it references.
//
// Unknown tags are never an error. An unknown datatype on a *known*
// tag is a FormatError (the registry's default type says the writer
// would need to understand the shape to round-trip it safely); an
// unknown datatype on an *unknown* tag is recorded as a Warning and
// the field is dropped.
func Read(buf []byte) (*Info, error) {
	h, err := readHeader(buf)
	if err != nil {
		return nil, err
	}
	info := &Info{Order: h.Order, BigTIFF: h.BigTIFF, Version: h.Version, OffsetSize: h.OffsetSize}
	r := &reader{buf: buf, order: h.Order, bigTIFF: h.BigTIFF, visited: map[uint64]bool{}, info: info}

	pos := h.FirstIFD
	for pos != 0 {
		if r.visited[pos] {
			return nil, newErr(KindFormat, msgCircularReference)
		}
		r.visited[pos] = true
		ifd, next, rerr := r.readIFD(pos, tagset.Global().Set("TIFF"), 0)
		if rerr != nil {
			return nil, rerr
		}
		info.IFDs = append(info.IFDs, ifd)
		pos = next
	}
	return info, nil
}

type reader struct {
	buf     []byte
	order   binary.ByteOrder
	bigTIFF bool
	visited map[uint64]bool
	info    *Info
}

// entrySize/offsetWidth mirror IFD.EntrySize/offsetFieldSize but are
// computed directly from the reader's bigTIFF flag before an *IFD
// exists yet.
func (r *reader) entrySize() uint64 {
	if r.bigTIFF {
		return 20
	}
	return 12
}

func (r *reader) offsetWidth() uint64 {
	if r.bigTIFF {
		return 8
	}
	return 4
}

// readIFD parses one directory at pos (entry count, each entry, the
// next-IFD pointer) and resolves any nested IFDs it contains. next is
// 0 if there is no successor.
func (r *reader) readIFD(pos uint64, space *tagset.Set, depth int) (ifd *IFD, next uint64, err *Error) {
	if depth > MaxIFDDepth {
		return nil, 0, newErr(KindFormat, msgMaxDepthExceeded)
	}
	bufLen := uint64(len(r.buf))
	start := pos
	if pos+2 > bufLen {
		return nil, 0, errf(KindFormat, "%s: IFD at %d", msgInvalidOffset, pos)
	}
	var count uint64
	if r.bigTIFF {
		if pos+8 > bufLen {
			return nil, 0, errf(KindFormat, "%s: IFD at %d", msgTruncatedFile, pos)
		}
		count = r.order.Uint64(r.buf[pos:])
		pos += 8
	} else {
		count = uint64(r.order.Uint16(r.buf[pos:]))
		pos += 2
	}

	ifd = &IFD{Order: r.order, BigTIFF: r.bigTIFF, SourceOffset: start, HasSource: true}
	entrySize := r.entrySize()
	if pos+count*entrySize+r.offsetWidth() > bufLen {
		return nil, 0, errf(KindFormat, "%s: IFD at %d with %d entries", msgTruncatedFile, pos, count)
	}

	ifd.Fields = make([]Field, 0, count)
	type pendingIFDField struct {
		idx      int
		tag      Tag
		typ      Type
		elemSize uint64
		offsets  []uint64
	}
	var pending []pendingIFDField

	for i := uint64(0); i < count; i++ {
		entryPos := pos + i*entrySize
		tag := Tag(r.order.Uint16(r.buf[entryPos:]))
		typ := Type(r.order.Uint16(r.buf[entryPos+2:]))
		var elemCount uint64
		var valuePos uint64
		if r.bigTIFF {
			elemCount = r.order.Uint64(r.buf[entryPos+4:])
			valuePos = entryPos + 12
		} else {
			elemCount = uint64(r.order.Uint32(r.buf[entryPos+4:]))
			valuePos = entryPos + 8
		}

		if !typ.Known() {
			desc, known := tagset.Global().LookupID(space, tagset.TagID(tag))
			_ = desc
			if known {
				return nil, 0, errf(KindFormat, "%s: tag %s has type code %d", msgUnknownDatatype, tag, typ)
			}
			r.info.warn(len(r.info.IFDs), tag, "dropped tag "+tag.String()+": unknown datatype "+Type(typ).Name())
			logger.Warnw("dropping unknown tag with unknown datatype", "tag", tag, "type", uint16(typ))
			continue
		}

		size := typ.Size() * elemCount
		dataPos := valuePos
		if size > r.offsetWidth() {
			if r.bigTIFF {
				dataPos = r.order.Uint64(r.buf[valuePos:])
			} else {
				dataPos = uint64(r.order.Uint32(r.buf[valuePos:]))
			}
			if dataPos+size > bufLen || dataPos+size < dataPos {
				return nil, 0, errf(KindFormat, "%s: tag %s payload at %d", msgInvalidOffset, tag, dataPos)
			}
		}

		isIFD := typ == TypeIFD || typ == TypeIFD8
		if !isIFD {
			if desc, ok := tagset.Global().LookupID(space, tagset.TagID(tag)); ok {
				isIFD = desc.IsIFD
			}
		}

		field := Field{Tag: tag, Type: typ, Count: elemCount}
		if isIFD {
			offsets := make([]uint64, elemCount)
			for j := uint64(0); j < elemCount; j++ {
				if typ == TypeIFD8 {
					offsets[j] = r.order.Uint64(r.buf[dataPos+j*8:])
				} else {
					offsets[j] = uint64(r.order.Uint32(r.buf[dataPos+j*4:]))
				}
			}
			ifd.Fields = append(ifd.Fields, field)
			pending = append(pending, pendingIFDField{idx: len(ifd.Fields) - 1, tag: tag, typ: typ, offsets: offsets})
		} else {
			field.Data = append([]byte(nil), r.buf[dataPos:dataPos+size]...)
			if typ.IsASCII() && !validUTF8ish(field.Data) {
				r.info.warn(len(r.info.IFDs), tag, "tag "+tag.String()+": ASCII field is not valid UTF-8, kept as raw bytes")
			}
			ifd.Fields = append(ifd.Fields, field)
		}
	}

	for _, p := range pending {
		childSpace := tagset.Global().ChildSet(space, tagset.TagID(p.tag))
		children := make([]*IFD, len(p.offsets))
		for j, off := range p.offsets {
			if r.visited[off] {
				return nil, 0, newErr(KindFormat, msgCircularReference)
			}
			r.visited[off] = true
			child, _, cerr := r.readIFD(off, childSpace, depth+1)
			if cerr != nil {
				return nil, 0, cerr
			}
			children[j] = child
		}
		ifd.Fields[p.idx].Children = children
	}

	if err := r.readImageData(ifd); err != nil {
		return nil, 0, err
	}

	nextPos := pos + count*entrySize
	if r.bigTIFF {
		next = r.order.Uint64(r.buf[nextPos:])
	} else {
		next = uint64(r.order.Uint32(r.buf[nextPos:]))
	}
	return ifd, next, nil
}

// readImageData materializes every StandardImageDataSpecs pair found
// in ifd into ImageBlocks, applying the NDPI 32-bit overflow fixup
// (ndpi.go) to classic-header strip/tile offsets first when it
// detects the file matches the documented heuristic.
func (r *reader) readImageData(ifd *IFD) *Error {
	bufLen := uint64(len(r.buf))
	for _, spec := range StandardImageDataSpecs {
		offsetField := ifd.Find(spec.OffsetTag)
		if offsetField == nil || offsetField.IsIFDBearing() {
			continue
		}
		byteCountField := ifd.Find(spec.ByteCountTag)
		if byteCountField == nil {
			continue
		}
		if offsetField.Count != byteCountField.Count {
			return errf(KindFormat, "%s: %s has %d entries, %s has %d", msgBytecountMismatch,
				spec.OffsetTag, offsetField.Count, spec.ByteCountTag, byteCountField.Count)
		}
		offsets := make([]uint64, offsetField.Count)
		for i := uint64(0); i < offsetField.Count; i++ {
			offsets[i] = offsetField.AnyUnsigned(i, r.order)
		}
		isStripOrTile := spec.OffsetTag == Tag(tagset.StripOffsets) || spec.OffsetTag == Tag(tagset.TileOffsets)
		if !r.bigTIFF && isStripOrTile && needsNDPIFixup(bufLen, offsets) {
			offsets = fixNDPIOffsets(offsets)
			logger.Warnw("applied NDPI 32-bit offset overflow fixup", "tag", spec.OffsetTag, "count", len(offsets))
			r.info.warn(len(r.info.IFDs), spec.OffsetTag, "applied NDPI offset overflow fixup")
		}
		block := ImageBlock{OffsetTag: spec.OffsetTag, ByteCountTag: spec.ByteCountTag, Segments: make([][]byte, offsetField.Count)}
		for i := uint64(0); i < offsetField.Count; i++ {
			length := byteCountField.AnyUnsigned(i, r.order)
			off := offsets[i]
			if length == 0 {
				block.Segments[i] = []byte{}
				continue
			}
			if off+length > bufLen || off+length < off {
				return errf(KindFormat, "%s: image data for %s at %d length %d", msgInvalidOffset, spec.OffsetTag, off, length)
			}
			block.Segments[i] = append([]byte(nil), r.buf[off:off+length]...)
		}
		ifd.ImageBlocks = append(ifd.ImageBlocks, block)
	}
	return nil
}

// validUTF8ish is a cheap, dependency-free UTF-8 sanity check used
// only to decide whether to record a Warning; it never changes the
// field's raw Data bytes.
func validUTF8ish(b []byte) bool {
	for i := 0; i < len(b); i++ {
		c := b[i]
		if c < 0x80 {
			continue
		}
		n := 0
		switch {
		case c&0xE0 == 0xC0:
			n = 1
		case c&0xF0 == 0xE0:
			n = 2
		case c&0xF8 == 0xF0:
			n = 3
		default:
			return false
		}
		if i+n >= len(b) {
			return false
		}
		for j := 1; j <= n; j++ {
			if b[i+j]&0xC0 != 0x80 {
				return false
			}
		}
		i += n
	}
	return true
}
