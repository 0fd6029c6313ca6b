package ops

import "github.com/DigitalSlideArchive/tifftools"

// Concat appends every input Info's top-level IFD chain, in argument
// order, into a single output Info. All inputs are normalized to the
// byte order of the first input; later inputs with a different byte
// order have every field re-encoded (reorderIFD). The output's BigTIFF
// flag is copied from the first input, but Write chooses classic or
// BigTIFF layout from the merged content alone, not from that flag.
//
// Concat never deduplicates or merges fields across inputs: each
// source IFD becomes its own independent entry in the output chain,
// exactly as tiffcp/concat tools in this space behave.
func Concat(infos []*tifftools.Info) (*tifftools.Info, error) {
	if len(infos) == 0 {
		return nil, tifftools.NewUserError("concat requires at least one input")
	}
	target := infos[0].Order
	out := &tifftools.Info{Order: target, BigTIFF: infos[0].BigTIFF}
	for _, in := range infos {
		for _, ifd := range in.IFDs {
			out.IFDs = append(out.IFDs, reorderIFD(ifd, in.Order, target))
		}
		out.Warnings = append(out.Warnings, in.Warnings...)
	}
	return out, nil
}
