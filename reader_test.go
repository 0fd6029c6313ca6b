package tifftools

import (
	"encoding/binary"
	"strings"
	"testing"
)

// buildClassicTIFF assembles a minimal little-endian classic TIFF with
// one IFD holding the given entries (each a 12-byte directory entry
// already encoded) plus whatever trailing out-of-line bytes the caller
// appends afterward.
func buildClassicTIFF(entries [][12]byte, trailing []byte) []byte {
	buf := make([]byte, 0, 8+2+len(entries)*12+4+len(trailing))
	buf = append(buf, 'I', 'I')
	buf = append(buf, 42, 0)
	buf = append(buf, 8, 0, 0, 0) // first IFD at offset 8
	var countBytes [2]byte
	binary.LittleEndian.PutUint16(countBytes[:], uint16(len(entries)))
	buf = append(buf, countBytes[:]...)
	for _, e := range entries {
		buf = append(buf, e[:]...)
	}
	buf = append(buf, 0, 0, 0, 0) // no next IFD
	buf = append(buf, trailing...)
	return buf
}

func entry(tag Tag, typ Type, count uint32, value uint32) [12]byte {
	var e [12]byte
	binary.LittleEndian.PutUint16(e[0:], uint16(tag))
	binary.LittleEndian.PutUint16(e[2:], uint16(typ))
	binary.LittleEndian.PutUint32(e[4:], count)
	binary.LittleEndian.PutUint32(e[8:], value)
	return e
}

func TestReadInlineShortField(t *testing.T) {
	entries := [][12]byte{
		entry(Tag(256), TypeShort, 1, 640),
	}
	buf := buildClassicTIFF(entries, nil)
	info, err := Read(buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(info.IFDs) != 1 {
		t.Fatalf("expected 1 IFD, got %d", len(info.IFDs))
	}
	f := info.IFDs[0].Find(Tag(256))
	if f == nil {
		t.Fatal("tag 256 not found")
	}
	if got := f.Short(0, binary.LittleEndian); got != 640 {
		t.Errorf("ImageWidth = %d, want 640", got)
	}
}

func TestReadOutOfLineASCIIField(t *testing.T) {
	value := "hello\x00"
	entries := [][12]byte{
		entry(Tag(0x10E), TypeASCII, uint32(len(value)), 8+2+12+4),
	}
	buf := buildClassicTIFF(entries, []byte(value))
	info, err := Read(buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	f := info.IFDs[0].Find(Tag(0x10E))
	if f == nil {
		t.Fatal("ImageDescription not found")
	}
	if got := f.ASCII(); got != "hello" {
		t.Errorf("ImageDescription = %q, want %q", got, "hello")
	}
}

func TestReadRejectsBadMagic(t *testing.T) {
	buf := []byte{'X', 'X', 42, 0, 8, 0, 0, 0}
	_, err := Read(buf)
	if err == nil {
		t.Fatal("expected an error for bad magic")
	}
	if got := err.Error(); !strings.Contains(got, msgBadHeaderMagic) {
		t.Errorf("error %q does not mention %q", got, msgBadHeaderMagic)
	}
}

func TestReadDetectsCircularIFDChain(t *testing.T) {
	// A classic header whose first IFD is itself, i.e. offset 8 is
	// visited twice by construction: IFD at 8 points its own "next"
	// pointer back at 8.
	buf := make([]byte, 8+2+4)
	copy(buf, []byte{'I', 'I'})
	binary.LittleEndian.PutUint16(buf[2:], 42)
	binary.LittleEndian.PutUint32(buf[4:], 8)
	binary.LittleEndian.PutUint16(buf[8:], 0) // zero entries
	binary.LittleEndian.PutUint32(buf[10:], 8) // next points back at itself
	_, err := Read(buf)
	if err == nil {
		t.Fatal("expected a circular reference error")
	}
	if !strings.Contains(err.Error(), msgCircularReference) {
		t.Errorf("error %q does not mention circular reference", err.Error())
	}
}
