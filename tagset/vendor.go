package tagset

import "strings"

// Hamamatsu NDPI private tags. NDPI reuses the classic TIFF structure
// but adds its own tags in the 0xFF8C-0xFFAB range and deliberately
// overflows 32-bit StripOffsets by treating them as moduli of 2^32
// (see the root package's ndpi.go).
const (
	NDPIFormatFlag          TagID = 0xFF8C // 65420
	NDPISourceLens          TagID = 0xFF8D // 65421
	NDPIXOffset             TagID = 0xFF8E // 65422
	NDPIYOffset             TagID = 0xFF8F // 65423
	NDPIFocalPlane          TagID = 0xFF90 // 65424
	NDPINumFocalPlanes      TagID = 0xFF91 // 65425
	NDPIMCUStarts           TagID = 0xFF92 // 65426
	NDPIReferenceIFD        TagID = 0xFF93 // 65427
	NDPIPropertyMap         TagID = 0xFFA4 // 65444
	NDPIScannerSerialNumber TagID = 0xFFA8 // 65448
)

func ndpiSet() *Set {
	s := newSet("NDPI")
	s.add(&Descriptor{ID: NDPIFormatFlag, Name: "NDPIFormatFlag", DefaultType: dtShort})
	s.add(&Descriptor{ID: NDPISourceLens, Name: "NDPISourceLens", DefaultType: dtRational})
	s.add(&Descriptor{ID: NDPIXOffset, Name: "NDPIXOffset", DefaultType: dtRational})
	s.add(&Descriptor{ID: NDPIYOffset, Name: "NDPIYOffset", DefaultType: dtRational})
	s.add(&Descriptor{ID: NDPIFocalPlane, Name: "NDPIFocalPlane", DefaultType: dtRational})
	s.add(&Descriptor{ID: NDPINumFocalPlanes, Name: "NDPINumFocalPlanes", DefaultType: dtLong})
	s.add(&Descriptor{ID: NDPIMCUStarts, Name: "NDPIMCUStarts", DefaultType: dtLong})
	s.add(&Descriptor{ID: NDPIReferenceIFD, Name: "NDPIReferenceIFD", DefaultType: dtLong})
	s.add(&Descriptor{ID: NDPIPropertyMap, Name: "NDPIPropertyMap", DefaultType: dtASCII})
	s.add(&Descriptor{ID: NDPIScannerSerialNumber, Name: "NDPIScannerSerialNumber", DefaultType: dtASCII})
	return s
}

// ParseAperioDescription splits an Aperio-format ImageDescription
// string ("AperioImageLibrary vX|key1 = val1|key2 = val2|...") into
// its free-text header line and its key/value fields. Aperio has no
// private numeric tags of its own; all of its vendor metadata lives
// in this text, which is why it has no Set, only this parser.
func ParseAperioDescription(desc string) (header string, fields map[string]string) {
	parts := strings.Split(desc, "|")
	if len(parts) == 0 {
		return "", nil
	}
	header = parts[0]
	fields = make(map[string]string, len(parts)-1)
	for _, p := range parts[1:] {
		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			continue
		}
		fields[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}
	return header, fields
}

// ParseImageJDescription parses an ImageJ-format ImageDescription
// string ("ImageJ=1.54f\nimages=5\nslices=5\n...") into its version
// line and key/value fields. Like Aperio, ImageJ has no private
// numeric tags; it overloads ImageDescription instead.
func ParseImageJDescription(desc string) (version string, fields map[string]string) {
	lines := strings.Split(desc, "\n")
	fields = make(map[string]string, len(lines))
	for i, line := range lines {
		kv := strings.SplitN(line, "=", 2)
		if len(kv) != 2 {
			continue
		}
		key, val := strings.TrimSpace(kv[0]), strings.TrimSpace(kv[1])
		if i == 0 && key == "ImageJ" {
			version = val
			continue
		}
		fields[key] = val
	}
	return version, fields
}

// IsImageJDescription reports whether desc looks like an ImageJ
// metadata blob (starts with "ImageJ=").
func IsImageJDescription(desc string) bool {
	return strings.HasPrefix(desc, "ImageJ=")
}

// IsAperioDescription reports whether desc looks like an Aperio
// metadata blob (starts with "Aperio" the way real scanner output
// does, e.g. "Aperio Image Library" or "AperioImageLibrary").
func IsAperioDescription(desc string) bool {
	return strings.HasPrefix(desc, "Aperio")
}
