package tagset

// Interoperability IFD tag IDs (referenced from Exif's InteropIFD).
const (
	InteroperabilityIndex   TagID = 0x0001
	InteroperabilityVersion TagID = 0x0002
)

func interopSet() *Set {
	s := newSet("Interop")
	s.add(&Descriptor{ID: InteroperabilityIndex, Name: "InteroperabilityIndex", DefaultType: dtASCII})
	s.add(&Descriptor{ID: InteroperabilityVersion, Name: "InteroperabilityVersion", DefaultType: dtUndefined})
	return s
}
