package tifftools

// Hamamatsu's NDPI format reuses the classic (32-bit offset) TIFF
// header for files that routinely exceed 4 GiB. Its writer copes by
// letting StripOffsets/TileOffsets wrap past 2^32 and leaving readers
// to reconstruct the real address: consecutive strips must land at
// monotonically increasing file positions, so whenever a raw 32-bit
// value would decode to an address no larger than the previous strip's,
// the right fix is to add another 2^32 until it lands past it.
//
// This is the only place the package second-guesses an offset value
// instead of trusting it outright, and it only ever fires for classic
// headers in files bigger than 4 GiB with a StripOffsets/TileOffsets
// entry that looks like it wrapped.

const fourGiB = uint64(1) << 32

// needsNDPIFixup reports whether offsets looks like it suffered the
// 32-bit wraparound: the file is bigger than 4 GiB and at least one
// raw offset has its top bit set, which is the only way a legitimate
// in-range classic offset could also read as "negative" and therefore
// suspicious for a file this large.
func needsNDPIFixup(fileSize uint64, offsets []uint64) bool {
	if fileSize <= fourGiB {
		return false
	}
	for _, off := range offsets {
		if off >= 0x80000000 {
			return true
		}
	}
	return false
}

// fixNDPIOffsets reconstructs true 64-bit addresses from a sequence of
// wrapped 32-bit offsets by forcing the sequence to be monotonically
// increasing, adding whatever multiple of 2^32 makes each entry land
// after the previous one.
func fixNDPIOffsets(offsets []uint64) []uint64 {
	fixed := make([]uint64, len(offsets))
	var high uint64
	var prev uint64
	havePrev := false
	for i, raw := range offsets {
		candidate := raw + high*fourGiB
		if havePrev && candidate <= prev {
			high++
			candidate = raw + high*fourGiB
		}
		fixed[i] = candidate
		prev = candidate
		havePrev = true
	}
	return fixed
}
