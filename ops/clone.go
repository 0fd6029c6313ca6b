package ops

import (
	"encoding/binary"

	"github.com/DigitalSlideArchive/tifftools"
)

// cloneIFD deep-copies ifd and everything beneath it (fields, their
// Data/Children, and image blocks) so the operations in this package
// can freely rearrange an Info tree without two output documents
// sharing mutable backing arrays.
func cloneIFD(ifd *tifftools.IFD) *tifftools.IFD {
	out := tifftools.NewIFD(ifd.Order, ifd.BigTIFF)
	out.Fields = make([]tifftools.Field, len(ifd.Fields))
	for i, f := range ifd.Fields {
		out.Fields[i] = cloneField(f)
	}
	out.ImageBlocks = make([]tifftools.ImageBlock, len(ifd.ImageBlocks))
	for i, blk := range ifd.ImageBlocks {
		segs := make([][]byte, len(blk.Segments))
		for j, s := range blk.Segments {
			segs[j] = append([]byte(nil), s...)
		}
		out.ImageBlocks[i] = tifftools.ImageBlock{OffsetTag: blk.OffsetTag, ByteCountTag: blk.ByteCountTag, Segments: segs}
	}
	return out
}

// reorderIFD deep-copies ifd, re-encoding every field's Data from
// fromOrder into toOrder. Pixel/tile/strip bytes in ImageBlocks are
// never touched: byte order is a TIFF metadata concept, not a
// property of the compressed or raw pixel stream they carry.
func reorderIFD(ifd *tifftools.IFD, fromOrder, toOrder binary.ByteOrder) *tifftools.IFD {
	if fromOrder == toOrder {
		return cloneIFD(ifd)
	}
	out := tifftools.NewIFD(toOrder, ifd.BigTIFF)
	out.Fields = make([]tifftools.Field, len(ifd.Fields))
	for i, f := range ifd.Fields {
		out.Fields[i] = reorderField(f, fromOrder, toOrder)
	}
	out.ImageBlocks = make([]tifftools.ImageBlock, len(ifd.ImageBlocks))
	for i, blk := range ifd.ImageBlocks {
		segs := make([][]byte, len(blk.Segments))
		for j, s := range blk.Segments {
			segs[j] = append([]byte(nil), s...)
		}
		out.ImageBlocks[i] = tifftools.ImageBlock{OffsetTag: blk.OffsetTag, ByteCountTag: blk.ByteCountTag, Segments: segs}
	}
	return out
}

func reorderField(f tifftools.Field, fromOrder, toOrder binary.ByteOrder) tifftools.Field {
	out := tifftools.Field{Tag: f.Tag, Type: f.Type, Count: f.Count}
	if f.Children != nil {
		out.Children = make([]*tifftools.IFD, len(f.Children))
		for i, child := range f.Children {
			out.Children[i] = reorderIFD(child, fromOrder, toOrder)
		}
		return out
	}
	switch {
	case f.Type.IsASCII() || f.Type == tifftools.TypeUndefined || f.Type == tifftools.TypeByte || f.Type == tifftools.TypeSByte:
		out.Data = append([]byte(nil), f.Data...)
	case f.Type.IsIntegral():
		src := f
		out.Data = make([]byte, f.Type.Size()*f.Count)
		for i := uint64(0); i < f.Count; i++ {
			switch f.Type {
			case tifftools.TypeShort:
				out.PutShort(i, src.Short(i, fromOrder), toOrder)
			case tifftools.TypeLong, tifftools.TypeIFD:
				out.PutLong(i, src.Long(i, fromOrder), toOrder)
			case tifftools.TypeLong8, tifftools.TypeIFD8:
				out.PutLong8(i, src.Long8(i, fromOrder), toOrder)
			case tifftools.TypeSShort:
				out.PutSShort(i, src.SShort(i, fromOrder), toOrder)
			case tifftools.TypeSLong:
				out.PutSLong(i, src.SLong(i, fromOrder), toOrder)
			case tifftools.TypeSLong8:
				out.PutSLong8(i, src.SLong8(i, fromOrder), toOrder)
			}
		}
	case f.Type.IsRational():
		src := f
		out.Data = make([]byte, f.Type.Size()*f.Count)
		for i := uint64(0); i < f.Count; i++ {
			n, d := src.AnyRational(i, fromOrder)
			if f.Type == tifftools.TypeSRational {
				out.PutSRational(i, int32(n), int32(d), toOrder)
			} else {
				out.PutRational(i, uint32(n), uint32(d), toOrder)
			}
		}
	case f.Type.IsFloat():
		src := f
		out.Data = make([]byte, f.Type.Size()*f.Count)
		for i := uint64(0); i < f.Count; i++ {
			v := src.AnyFloat(i, fromOrder)
			if f.Type == tifftools.TypeFloat {
				out.PutFloat(i, float32(v), toOrder)
			} else {
				out.PutDouble(i, v, toOrder)
			}
		}
	default:
		out.Data = append([]byte(nil), f.Data...)
	}
	return out
}

func cloneField(f tifftools.Field) tifftools.Field {
	out := tifftools.Field{Tag: f.Tag, Type: f.Type, Count: f.Count}
	if f.Data != nil {
		out.Data = append([]byte(nil), f.Data...)
	}
	if f.Children != nil {
		out.Children = make([]*tifftools.IFD, len(f.Children))
		for i, child := range f.Children {
			out.Children[i] = cloneIFD(child)
		}
	}
	return out
}
