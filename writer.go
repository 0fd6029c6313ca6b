package tifftools

import (
	"encoding/binary"
	"os"
)

// WriteOptions controls how Write lays out a file.
type WriteOptions struct {
	// ForceClassic requires classic (32-bit) output. If the model
	// can't fit, Write returns a KindBigTiffRequired error instead of
	// silently upgrading to BigTIFF.
	ForceClassic bool

	// IFDsFirst lays out every top-level IFD's directory contiguously
	// right after the header, before any field data, SubIFDs, or image
	// data. The default is a depth-first layout: each top-level IFD's
	// directory is immediately followed by its own data and children
	// before the next sibling's directory begins. Both layouts hold the
	// same regions; the total file size can differ only by word-alignment
	// padding.
	IFDsFirst bool
}

// classicEntryLimit is the largest entry count a classic (uint16
// count field) IFD can hold. BigTIFF's count field is 8 bytes and has
// no such ceiling.
const classicEntryLimit = 0xFFFF

// writeSizeMargin is subtracted from the 32-bit offset ceiling when
// deciding if a classic layout fits, leaving room for the final
// next-IFD terminator and any rounding.
const writeSizeMargin = 1 << 16

// WriteFile lays out info and writes it to path.
func WriteFile(path string, info *Info, opts WriteOptions) error {
	buf, err := Write(info, opts)
	if err != nil {
		return err
	}
	if werr := os.WriteFile(path, buf, 0o644); werr != nil {
		return wrapErr(KindIO, werr)
	}
	return nil
}

// Write serializes info into a complete TIFF or BigTIFF byte image.
// It plans every offset in a first pass, then emits bytes in a second
// pass purely by consulting the plan: nothing is ever back-patched.
func Write(info *Info, opts WriteOptions) ([]byte, *Error) {
	order := info.Order
	if order == nil {
		order = binary.LittleEndian
	}

	bigTIFF, err := decideBigTIFF(info, opts.ForceClassic)
	if err != nil {
		return nil, err
	}

	// Every IFD's own BigTIFF flag must agree with the file-wide
	// decision: EntrySize/DirectorySize read it directly, and the plan
	// built below has to match what emitIFD actually writes.
	walkIFDs(info.IFDs, func(ifd *IFD) { ifd.BigTIFF = bigTIFF })

	plan := newLayoutPlan()
	total, err := layoutTopLevel(info, plan, bigTIFF, opts.IFDsFirst)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, total)
	var firstIFD uint64
	if len(info.IFDs) > 0 {
		firstIFD = plan.ifdDirOffset[info.IFDs[0]]
	}
	writeHeader(buf, order, bigTIFF, firstIFD)

	for _, ifd := range info.IFDs {
		emitIFD(buf, ifd, plan, bigTIFF, order)
	}
	return buf, nil
}

// decideBigTIFF reports whether info must be written as BigTIFF: it
// contains a LONG8/SLONG8/IFD8 field, an IFD has more entries than
// classic's 16-bit count field can hold, or a trial classic layout
// would exceed the 32-bit offset range. If forceClassic is set and
// none of that applies, it honors classic; if it does apply, it
// returns a KindBigTiffRequired error instead of silently upgrading.
func decideBigTIFF(info *Info, forceClassic bool) (bool, *Error) {
	must := false
	walkIFDs(info.IFDs, func(ifd *IFD) {
		if len(ifd.Fields) > classicEntryLimit {
			must = true
		}
		for i := range ifd.Fields {
			if ifd.Fields[i].Type.IsOffsetSized() {
				must = true
			}
		}
	})
	if !must {
		trialPlan := newLayoutPlan()
		total, err := layoutTopLevel(info, trialPlan, false, false)
		if err != nil {
			return false, err
		}
		if total > 0xFFFFFFFF-writeSizeMargin {
			must = true
		}
	}
	if must {
		if forceClassic {
			return false, newErr(KindBigTiffRequired, "model requires BigTIFF but classic output was forced")
		}
		return true, nil
	}
	return false, nil
}

// walkIFDs visits every IFD reachable from ifds: the top-level chain
// and every SubIFD/ExifIFD/GPSIFD/InteropIFD nested beneath it.
func walkIFDs(ifds []*IFD, visit func(*IFD)) {
	for _, ifd := range ifds {
		visit(ifd)
		for i := range ifd.Fields {
			if ifd.Fields[i].IsIFDBearing() {
				walkIFDs(ifd.Fields[i].Children, visit)
			}
		}
	}
}

// layoutPlan records every offset Write will need during emission.
// Keys are pointers into the Info tree being written, which is never
// mutated or reallocated between the planning and emission passes.
type layoutPlan struct {
	ifdDirOffset    map[*IFD]uint64
	ifdNext         map[*IFD]uint64
	fieldData       map[*Field]uint64
	blockSegOffsets map[*ImageBlock][]uint64
}

func newLayoutPlan() *layoutPlan {
	return &layoutPlan{
		ifdDirOffset:    map[*IFD]uint64{},
		ifdNext:         map[*IFD]uint64{},
		fieldData:       map[*Field]uint64{},
		blockSegOffsets: map[*ImageBlock][]uint64{},
	}
}

func offsetWidthFor(bigTIFF bool) uint64 {
	if bigTIFF {
		return 8
	}
	return 4
}

// layoutTopLevel plans the whole tree and returns the final file size.
func layoutTopLevel(info *Info, plan *layoutPlan, bigTIFF, ifdsFirst bool) (uint64, *Error) {
	cursor := uint64(HeaderSizeClassic)
	if bigTIFF {
		cursor = HeaderSizeBigTIFF
	}

	if ifdsFirst {
		for _, ifd := range info.IFDs {
			cursor = Align(cursor)
			plan.ifdDirOffset[ifd] = cursor
			cursor += directorySize(ifd, bigTIFF)
		}
		for _, ifd := range info.IFDs {
			var err *Error
			cursor, err = layoutIFDBody(ifd, cursor, plan, bigTIFF, 0)
			if err != nil {
				return 0, err
			}
		}
	} else {
		for _, ifd := range info.IFDs {
			var err *Error
			cursor, err = layoutIFD(ifd, cursor, plan, bigTIFF, 0)
			if err != nil {
				return 0, err
			}
		}
	}

	for i, ifd := range info.IFDs {
		if i+1 < len(info.IFDs) {
			plan.ifdNext[ifd] = plan.ifdDirOffset[info.IFDs[i+1]]
		} else {
			plan.ifdNext[ifd] = 0
		}
	}
	return cursor, nil
}

// layoutIFD places ifd's own directory block, then its body.
func layoutIFD(ifd *IFD, cursor uint64, plan *layoutPlan, bigTIFF bool, depth int) (uint64, *Error) {
	if depth > MaxIFDDepth {
		return 0, newErr(KindFormat, msgMaxDepthExceeded)
	}
	cursor = Align(cursor)
	plan.ifdDirOffset[ifd] = cursor
	cursor += directorySize(ifd, bigTIFF)
	return layoutIFDBody(ifd, cursor, plan, bigTIFF, depth)
}

// directorySize computes an IFD's serialized directory size purely
// from the bigTIFF parameter, independent of the IFD's own BigTIFF
// field: during decideBigTIFF's trial layout the two can disagree
// (an IFD carried over from a BigTIFF source while we're estimating
// whether classic would fit), and the estimate must reflect what
// would actually be written, not how the IFD happens to be flagged.
func directorySize(ifd *IFD, bigTIFF bool) uint64 {
	var countWidth, nextWidth, entrySize uint64 = 2, 4, 12
	if bigTIFF {
		countWidth, nextWidth, entrySize = 8, 8, 20
	}
	return countWidth + uint64(len(ifd.Fields))*entrySize + nextWidth
}

// layoutIFDBody places every out-of-line field payload, nested child
// IFD (recursively, depth-first), and image-data segment that ifd
// owns.
func layoutIFDBody(ifd *IFD, cursor uint64, plan *layoutPlan, bigTIFF bool, depth int) (uint64, *Error) {
	width := offsetWidthFor(bigTIFF)
	for i := range ifd.Fields {
		f := &ifd.Fields[i]
		if f.IsIFDBearing() {
			size := f.Type.Size() * uint64(len(f.Children))
			if size > width {
				cursor = Align(cursor)
				plan.fieldData[f] = cursor
				cursor += size
			}
			for _, child := range f.Children {
				// Nested IFDs referenced from an array are independent
				// trees, not a "next" chain; ifdNext defaults to 0
				// (never set) which emitIFD treats as the terminator.
				var err *Error
				cursor, err = layoutIFD(child, cursor, plan, bigTIFF, depth+1)
				if err != nil {
					return 0, err
				}
			}
			continue
		}
		size := f.Type.Size() * f.Count
		if size > width {
			cursor = Align(cursor)
			plan.fieldData[f] = cursor
			cursor += size
		}
	}

	for bi := range ifd.ImageBlocks {
		block := &ifd.ImageBlocks[bi]
		offs := make([]uint64, len(block.Segments))
		for si, seg := range block.Segments {
			cursor = Align(cursor)
			offs[si] = cursor
			cursor += uint64(len(seg))
		}
		plan.blockSegOffsets[block] = offs
		// The offset field's Data must reflect its new home before
		// emitIFD serializes either the directory entry or the
		// out-of-line array: both reads happen after planning, never
		// interleaved with it, so rewriting here (not in emitIFD) is
		// what keeps the single planning-then-emission pass honest.
		rewriteImageBlockOffsets(ifd, block, offs, ifd.Order)
	}
	return cursor, nil
}

// emitIFD writes ifd's directory, its fields' out-of-line data, its
// children, and its image data, entirely from offsets already fixed
// by the planning pass.
func emitIFD(buf []byte, ifd *IFD, plan *layoutPlan, bigTIFF bool, order binary.ByteOrder) {
	width := offsetWidthFor(bigTIFF)
	dirOff := plan.ifdDirOffset[ifd]

	if bigTIFF {
		order.PutUint64(buf[dirOff:], uint64(len(ifd.Fields)))
		dirOff += 8
	} else {
		order.PutUint16(buf[dirOff:], uint16(len(ifd.Fields)))
		dirOff += 2
	}

	for i := range ifd.Fields {
		f := &ifd.Fields[i]
		order.PutUint16(buf[dirOff:], uint16(f.Tag))
		order.PutUint16(buf[dirOff+2:], uint16(f.Type))
		if bigTIFF {
			order.PutUint64(buf[dirOff+4:], f.Count)
		} else {
			order.PutUint32(buf[dirOff+4:], uint32(f.Count))
		}
		var valuePos uint64
		if bigTIFF {
			valuePos = dirOff + 12
		} else {
			valuePos = dirOff + 8
		}
		writeEntryValue(buf, valuePos, f, plan, bigTIFF, order, width)
		dirOff += ifd.EntrySize()
	}

	writeUintAt(buf, dirOff, plan.ifdNext[ifd], width, order)

	for i := range ifd.Fields {
		f := &ifd.Fields[i]
		if f.IsIFDBearing() {
			size := f.Type.Size() * uint64(len(f.Children))
			if size > width {
				off := plan.fieldData[f]
				for j, child := range f.Children {
					writeUintAt(buf, off+uint64(j)*f.Type.Size(), plan.ifdDirOffset[child], f.Type.Size(), order)
				}
			}
			for _, child := range f.Children {
				emitIFD(buf, child, plan, bigTIFF, order)
			}
			continue
		}
		size := f.Type.Size() * f.Count
		if size > width {
			off := plan.fieldData[f]
			copy(buf[off:off+size], f.Data)
		}
	}

	for bi := range ifd.ImageBlocks {
		block := &ifd.ImageBlocks[bi]
		offs := plan.blockSegOffsets[block]
		for si, seg := range block.Segments {
			copy(buf[offs[si]:offs[si]+uint64(len(seg))], seg)
		}
	}
}

// rewriteImageBlockOffsets overwrites the offset field's Data with the
// addresses the planning pass just assigned its segments, so that
// emitIFD (which runs after every field has been planned) always
// serializes the new, correct offsets.
func rewriteImageBlockOffsets(ifd *IFD, block *ImageBlock, offs []uint64, order binary.ByteOrder) {
	f := ifd.Find(block.OffsetTag)
	if f == nil {
		return
	}
	for i, off := range offs {
		switch f.Type {
		case TypeShort:
			f.PutShort(uint64(i), uint16(off), order)
		case TypeLong, TypeIFD:
			f.PutLong(uint64(i), uint32(off), order)
		case TypeLong8, TypeIFD8:
			f.PutLong8(uint64(i), off, order)
		default:
			f.PutLong(uint64(i), uint32(off), order)
		}
	}
}

func writeEntryValue(buf []byte, pos uint64, f *Field, plan *layoutPlan, bigTIFF bool, order binary.ByteOrder, width uint64) {
	if f.IsIFDBearing() {
		elemWidth := f.Type.Size()
		size := elemWidth * uint64(len(f.Children))
		if size <= width {
			for j, child := range f.Children {
				writeUintAt(buf, pos+uint64(j)*elemWidth, plan.ifdDirOffset[child], elemWidth, order)
			}
			return
		}
		writeUintAt(buf, pos, plan.fieldData[f], width, order)
		return
	}
	size := f.Type.Size() * f.Count
	if size <= width {
		copy(buf[pos:pos+width], f.Data)
		return
	}
	writeUintAt(buf, pos, plan.fieldData[f], width, order)
}

func writeUintAt(buf []byte, pos, val, width uint64, order binary.ByteOrder) {
	if width == 8 {
		order.PutUint64(buf[pos:], val)
		return
	}
	order.PutUint32(buf[pos:], uint32(val))
}
