package tagset

import "testing"

func TestLookupBySymbolInPreferredSet(t *testing.T) {
	r := Global()
	tiff := r.Set("TIFF")
	d, err := r.Lookup(tiff, "ImageWidth")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if d.ID != ImageWidth {
		t.Errorf("ID = %#x, want %#x", d.ID, ImageWidth)
	}
}

func TestLookupFallsBackAcrossSets(t *testing.T) {
	r := Global()
	tiff := r.Set("TIFF")
	d, err := r.Lookup(tiff, "GPSLatitudeRef")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if d.Set != "GPS" {
		t.Errorf("resolved %q from set %q, want GPS", d.Name, d.Set)
	}
}

func TestLookupNumericFallback(t *testing.T) {
	r := Global()
	d, err := r.Lookup(nil, "0x1234")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if d.ID != 0x1234 || d.Set != "Unknown" {
		t.Errorf("got %+v, want ID 0x1234 in Unknown set", d)
	}
}

func TestLookupUnknownSymbolFails(t *testing.T) {
	r := Global()
	if _, err := r.Lookup(nil, "NotARealTagName"); err == nil {
		t.Fatal("expected an error for an unresolvable symbol")
	}
}

func TestLookupIDWithinPreferredSet(t *testing.T) {
	r := Global()
	tiff := r.Set("TIFF")
	d, ok := r.LookupID(tiff, ImageWidth)
	if !ok || d.Name != "ImageWidth" {
		t.Fatalf("LookupID(ImageWidth) = %+v, %v", d, ok)
	}
}

func TestLookupIDFallsBackAcrossSets(t *testing.T) {
	r := Global()
	tiff := r.Set("TIFF")
	d, ok := r.LookupID(tiff, InteropIFD)
	if !ok || d.Set != "Exif" {
		t.Fatalf("LookupID(InteropIFD) = %+v, %v, want found in Exif", d, ok)
	}
}

func TestChildSetOpensExifAndGPSFromTIFF(t *testing.T) {
	r := Global()
	tiff := r.Set("TIFF")
	if got := r.ChildSet(tiff, ExifIFD); got == nil || got.Name != "Exif" {
		t.Errorf("ChildSet(TIFF, ExifIFD) = %v, want Exif", got)
	}
	if got := r.ChildSet(tiff, GPSIFD); got == nil || got.Name != "GPS" {
		t.Errorf("ChildSet(TIFF, GPSIFD) = %v, want GPS", got)
	}
}

func TestChildSetOpensInteropFromExif(t *testing.T) {
	r := Global()
	exif := r.Set("Exif")
	if got := r.ChildSet(exif, InteropIFD); got == nil || got.Name != "Interop" {
		t.Errorf("ChildSet(Exif, InteropIFD) = %v, want Interop", got)
	}
}

func TestChildSetStaysInParentForSubIFDs(t *testing.T) {
	r := Global()
	tiff := r.Set("TIFF")
	if got := r.ChildSet(tiff, SubIFDs); got != tiff {
		t.Errorf("ChildSet(TIFF, SubIFDs) = %v, want the same TIFF set back", got)
	}
}

func TestDecodeGeoKeyDirectory(t *testing.T) {
	shorts := []uint16{1, 1, 0, 2, 1024, 0, 1, 1, 2048, 0, 1, 4326}
	version, major, minor, entries, err := DecodeGeoKeyDirectory(shorts)
	if err != nil {
		t.Fatalf("DecodeGeoKeyDirectory: %v", err)
	}
	if version != 1 || major != 1 || minor != 0 {
		t.Errorf("header = %d.%d.%d, want 1.1.0", version, major, minor)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].KeyID != 1024 || entries[0].ValueOffset != 1 {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if entries[1].KeyID != 2048 || entries[1].ValueOffset != 4326 {
		t.Errorf("entries[1] = %+v", entries[1])
	}
}

func TestDecodeGeoKeyDirectoryRejectsShortHeader(t *testing.T) {
	if _, _, _, _, err := DecodeGeoKeyDirectory([]uint16{1, 1}); err == nil {
		t.Fatal("expected an error for a truncated header")
	}
}

func TestParseAperioDescription(t *testing.T) {
	header, fields := ParseAperioDescription("Aperio Image Library v12.0.15|AppMag = 20|MPP = 0.4990")
	if header != "Aperio Image Library v12.0.15" {
		t.Errorf("header = %q", header)
	}
	if fields["AppMag"] != "20" || fields["MPP"] != "0.4990" {
		t.Errorf("fields = %+v", fields)
	}
}

func TestParseImageJDescription(t *testing.T) {
	version, fields := ParseImageJDescription("ImageJ=1.54f\nimages=5\nslices=5")
	if version != "1.54f" {
		t.Errorf("version = %q, want 1.54f", version)
	}
	if fields["images"] != "5" || fields["slices"] != "5" {
		t.Errorf("fields = %+v", fields)
	}
}

func TestIsAperioAndImageJDescription(t *testing.T) {
	if !IsAperioDescription("AperioImageLibrary v10") {
		t.Error("expected AperioImageLibrary prefix to be recognized")
	}
	if !IsImageJDescription("ImageJ=1.54f") {
		t.Error("expected ImageJ= prefix to be recognized")
	}
	if IsAperioDescription("ImageJ=1.54f") || IsImageJDescription("Aperio Image Library") {
		t.Error("descriptions should not cross-match")
	}
}
