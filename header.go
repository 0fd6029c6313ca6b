package tifftools

import "encoding/binary"

// HeaderSizeClassic is the size of a classic TIFF header: byte order
// (2), magic (2), first-IFD offset (4).
const HeaderSizeClassic = 8

// HeaderSizeBigTIFF is the size of a BigTIFF header: byte order (2),
// magic (2), offset size (2), reserved (2), first-IFD offset (8).
const HeaderSizeBigTIFF = 16

const (
	versionClassic = 42
	versionBigTIFF = 43
)

// header is the parsed form of a TIFF file header.
type header struct {
	Order      binary.ByteOrder
	BigTIFF    bool
	Version    uint16
	OffsetSize uint8
	FirstIFD   uint64
}

// readHeader parses a TIFF or BigTIFF header from the start of buf.
func readHeader(buf []byte) (header, *Error) {
	var h header
	if len(buf) < HeaderSizeClassic {
		return h, newErr(KindFormat, msgTruncatedFile)
	}
	switch {
	case buf[0] == 'I' && buf[1] == 'I':
		h.Order = binary.LittleEndian
	case buf[0] == 'M' && buf[1] == 'M':
		h.Order = binary.BigEndian
	default:
		return h, newErr(KindFormat, msgBadHeaderMagic)
	}
	h.Version = h.Order.Uint16(buf[2:])
	switch h.Version {
	case versionClassic:
		h.BigTIFF = false
		h.OffsetSize = 4
		h.FirstIFD = uint64(h.Order.Uint32(buf[4:]))
	case versionBigTIFF:
		if len(buf) < HeaderSizeBigTIFF {
			return h, newErr(KindFormat, msgTruncatedFile)
		}
		offsetSize := h.Order.Uint16(buf[4:])
		if offsetSize != 8 {
			return h, errf(KindFormat, "%s: BigTIFF offset size must be 8, got %d", msgUnknownVersion, offsetSize)
		}
		h.BigTIFF = true
		h.OffsetSize = 8
		h.FirstIFD = h.Order.Uint64(buf[8:])
	default:
		return h, errf(KindFormat, "%s: %d", msgUnknownVersion, h.Version)
	}
	return h, nil
}

// writeHeader serializes a header at the start of buf, which must be
// at least HeaderSizeClassic/HeaderSizeBigTIFF bytes.
func writeHeader(buf []byte, order binary.ByteOrder, bigTIFF bool, firstIFD uint64) {
	if order == binary.LittleEndian {
		buf[0], buf[1] = 'I', 'I'
	} else {
		buf[0], buf[1] = 'M', 'M'
	}
	if !bigTIFF {
		order.PutUint16(buf[2:], versionClassic)
		order.PutUint32(buf[4:], uint32(firstIFD))
		return
	}
	order.PutUint16(buf[2:], versionBigTIFF)
	order.PutUint16(buf[4:], 8)
	order.PutUint16(buf[6:], 0)
	order.PutUint64(buf[8:], firstIFD)
}

// Align rounds pos up to the next 2-byte (word) boundary, required
// for every out-of-line region.
func Align(pos uint64) uint64 {
	if pos%2 != 0 {
		return pos + 1
	}
	return pos
}
