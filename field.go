package tifftools

import (
	"encoding/binary"
	"math"
)

// Field is one IFD entry: a tag, its datatype, an element count, and
// its value. The value is either Data (raw payload bytes, canonical
// for every non-nested-IFD tag) or Children (a list of sub-IFDs, for
// tags whose datatype is IFD/IFD8 or that the tagset registry marks as
// IFD-bearing, e.g. SubIFDs/ExifIFD/GPSIFD).
//
// Data is always the byte-exact payload the field would serialize to;
// derived interpretations (decoded strings, enum names, parsed
// rationals) are computed on demand from Data and never fed back into
// it, so an unknown tag round-trips without the package having to
// understand its contents.
type Field struct {
	Tag      Tag
	Type     Type
	Count    uint64
	Data     []byte
	Children []*IFD
}

// Size returns the field's payload size in bytes (Count * element
// size). For an IFD-bearing field this is the size of its array of
// child-IFD offsets, not of the children themselves.
func (f *Field) Size() uint64 {
	return f.Type.Size() * f.Count
}

// IsIFDBearing reports whether the field carries child IFDs rather
// than a raw payload.
func (f *Field) IsIFDBearing() bool {
	return f.Children != nil
}

// Byte returns the ith BYTE element.
func (f *Field) Byte(i uint64) uint8 { return f.Data[i] }

// PutByte sets the ith BYTE element.
func (f *Field) PutByte(i uint64, val uint8) { f.Data[i] = val }

// Short returns the ith SHORT element.
func (f *Field) Short(i uint64, order binary.ByteOrder) uint16 {
	return order.Uint16(f.Data[i*2:])
}

// PutShort sets the ith SHORT element.
func (f *Field) PutShort(i uint64, val uint16, order binary.ByteOrder) {
	order.PutUint16(f.Data[i*2:], val)
}

// Long returns the ith LONG element.
func (f *Field) Long(i uint64, order binary.ByteOrder) uint32 {
	return order.Uint32(f.Data[i*4:])
}

// PutLong sets the ith LONG element.
func (f *Field) PutLong(i uint64, val uint32, order binary.ByteOrder) {
	order.PutUint32(f.Data[i*4:], val)
}

// Long8 returns the ith LONG8/IFD8 element (BigTIFF only).
func (f *Field) Long8(i uint64, order binary.ByteOrder) uint64 {
	return order.Uint64(f.Data[i*8:])
}

// PutLong8 sets the ith LONG8/IFD8 element.
func (f *Field) PutLong8(i uint64, val uint64, order binary.ByteOrder) {
	order.PutUint64(f.Data[i*8:], val)
}

// SByte returns the ith SBYTE element.
func (f *Field) SByte(i uint64) int8 { return int8(f.Data[i]) }

// PutSByte sets the ith SBYTE element.
func (f *Field) PutSByte(i uint64, val int8) { f.Data[i] = uint8(val) }

// SShort returns the ith SSHORT element.
func (f *Field) SShort(i uint64, order binary.ByteOrder) int16 {
	return int16(order.Uint16(f.Data[i*2:]))
}

// PutSShort sets the ith SSHORT element.
func (f *Field) PutSShort(i uint64, val int16, order binary.ByteOrder) {
	order.PutUint16(f.Data[i*2:], uint16(val))
}

// SLong returns the ith SLONG element.
func (f *Field) SLong(i uint64, order binary.ByteOrder) int32 {
	return int32(order.Uint32(f.Data[i*4:]))
}

// PutSLong sets the ith SLONG element.
func (f *Field) PutSLong(i uint64, val int32, order binary.ByteOrder) {
	order.PutUint32(f.Data[i*4:], uint32(val))
}

// SLong8 returns the ith SLONG8 element (BigTIFF only).
func (f *Field) SLong8(i uint64, order binary.ByteOrder) int64 {
	return int64(order.Uint64(f.Data[i*8:]))
}

// PutSLong8 sets the ith SLONG8 element.
func (f *Field) PutSLong8(i uint64, val int64, order binary.ByteOrder) {
	order.PutUint64(f.Data[i*8:], uint64(val))
}

// AnyInteger returns the ith element of any integral-typed field,
// widened to int64. It panics if the field's type isn't integral.
func (f *Field) AnyInteger(i uint64, order binary.ByteOrder) int64 {
	switch f.Type {
	case TypeByte:
		return int64(f.Byte(i))
	case TypeShort:
		return int64(f.Short(i, order))
	case TypeLong, TypeIFD:
		return int64(f.Long(i, order))
	case TypeLong8, TypeIFD8:
		return int64(f.Long8(i, order))
	case TypeSByte:
		return int64(f.SByte(i))
	case TypeSShort:
		return int64(f.SShort(i, order))
	case TypeSLong:
		return int64(f.SLong(i, order))
	case TypeSLong8:
		return f.SLong8(i, order)
	}
	panic("tifftools: AnyInteger called on non-integral field")
}

// AnyUnsigned is like AnyInteger but widened to uint64; it's the
// right accessor for offset/bytecount fields, which are never
// negative.
func (f *Field) AnyUnsigned(i uint64, order binary.ByteOrder) uint64 {
	switch f.Type {
	case TypeByte:
		return uint64(f.Byte(i))
	case TypeShort:
		return uint64(f.Short(i, order))
	case TypeLong, TypeIFD:
		return uint64(f.Long(i, order))
	case TypeLong8, TypeIFD8:
		return f.Long8(i, order)
	}
	panic("tifftools: AnyUnsigned called on non-unsigned-integral field")
}

// Rational returns the ith RATIONAL element's numerator/denominator.
func (f *Field) Rational(i uint64, order binary.ByteOrder) (uint32, uint32) {
	return order.Uint32(f.Data[i*8:]), order.Uint32(f.Data[i*8+4:])
}

// PutRational sets the ith RATIONAL element.
func (f *Field) PutRational(i uint64, n, d uint32, order binary.ByteOrder) {
	order.PutUint32(f.Data[i*8:], n)
	order.PutUint32(f.Data[i*8+4:], d)
}

// SRational returns the ith SRATIONAL element's numerator/denominator.
func (f *Field) SRational(i uint64, order binary.ByteOrder) (int32, int32) {
	return int32(order.Uint32(f.Data[i*8:])), int32(order.Uint32(f.Data[i*8+4:]))
}

// PutSRational sets the ith SRATIONAL element.
func (f *Field) PutSRational(i uint64, n, d int32, order binary.ByteOrder) {
	order.PutUint32(f.Data[i*8:], uint32(n))
	order.PutUint32(f.Data[i*8+4:], uint32(d))
}

// AnyRational returns the ith element of a RATIONAL or SRATIONAL
// field, widened to int64 numerator/denominator.
func (f *Field) AnyRational(i uint64, order binary.ByteOrder) (int64, int64) {
	switch f.Type {
	case TypeRational:
		n, d := f.Rational(i, order)
		return int64(n), int64(d)
	case TypeSRational:
		n, d := f.SRational(i, order)
		return int64(n), int64(d)
	}
	panic("tifftools: AnyRational called on non-rational field")
}

// Float returns the ith FLOAT element.
func (f *Field) Float(i uint64, order binary.ByteOrder) float32 {
	return math.Float32frombits(order.Uint32(f.Data[i*4:]))
}

// PutFloat sets the ith FLOAT element.
func (f *Field) PutFloat(i uint64, val float32, order binary.ByteOrder) {
	order.PutUint32(f.Data[i*4:], math.Float32bits(val))
}

// Double returns the ith DOUBLE element.
func (f *Field) Double(i uint64, order binary.ByteOrder) float64 {
	return math.Float64frombits(order.Uint64(f.Data[i*8:]))
}

// PutDouble sets the ith DOUBLE element.
func (f *Field) PutDouble(i uint64, val float64, order binary.ByteOrder) {
	order.PutUint64(f.Data[i*8:], math.Float64bits(val))
}

// AnyFloat returns the ith element of a FLOAT or DOUBLE field,
// widened to float64.
func (f *Field) AnyFloat(i uint64, order binary.ByteOrder) float64 {
	switch f.Type {
	case TypeFloat:
		return float64(f.Float(i, order))
	case TypeDouble:
		return f.Double(i, order)
	}
	panic("tifftools: AnyFloat called on non-float field")
}

// ASCII returns an ASCII/UTF-8 field's value as a string, with any
// single trailing NUL removed (embedded NULs are kept, matching how
// multi-string ASCII fields like PageName arrays are sometimes
// packed).
func (f *Field) ASCII() string {
	if len(f.Data) > 0 && f.Data[len(f.Data)-1] == 0 {
		return string(f.Data[:len(f.Data)-1])
	}
	return string(f.Data)
}

// PutASCII replaces the field's data with val plus a trailing NUL,
// and updates Count to match.
func (f *Field) PutASCII(val string) {
	f.Data = make([]byte, len(val)+1)
	copy(f.Data, val)
	f.Count = uint64(len(f.Data))
}
