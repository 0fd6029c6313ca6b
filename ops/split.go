package ops

import (
	"encoding/binary"

	"github.com/DigitalSlideArchive/tifftools"
)

// Split breaks info's top-level IFD chain into one single-IFD Info
// per entry, in chain order. If includeSubIFDs is set, each SubIFDs
// entry (tag 0x14A) in a top-level IFD also becomes its own top-level
// output document, appended after the IFD it came from, matching how
// pyramidal/thumbnail TIFFs are commonly split into standalone pages.
// ExifIFD/GPSIFD and other non-image nested IFDs always stay attached
// to their parent: they describe that one image, not a page of their
// own.
func Split(info *tifftools.Info, includeSubIFDs bool) []*tifftools.Info {
	var outputs []*tifftools.Info
	for _, ifd := range info.IFDs {
		outputs = append(outputs, singleIFDInfo(info, ifd))
		if includeSubIFDs {
			if f := ifd.Find(subIFDsTag); f != nil && f.IsIFDBearing() {
				for _, child := range f.Children {
					outputs = append(outputs, singleIFDInfo(info, child))
				}
			}
		}
	}
	return outputs
}

const subIFDsTag = tifftools.Tag(0x14A)

func singleIFDInfo(parent *tifftools.Info, ifd *tifftools.IFD) *tifftools.Info {
	order := ifd.Order
	if order == nil {
		order = binary.LittleEndian
	}
	out := &tifftools.Info{Order: order, BigTIFF: ifd.BigTIFF, Version: parent.Version, OffsetSize: parent.OffsetSize}
	out.IFDs = []*tifftools.IFD{cloneIFD(ifd)}
	return out
}
