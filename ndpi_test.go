package tifftools

import "testing"

func TestNeedsNDPIFixupRequiresLargeFile(t *testing.T) {
	if needsNDPIFixup(1<<20, []uint64{0x80000001}) {
		t.Error("a small file should never trigger NDPI fixup regardless of offset shape")
	}
}

func TestNeedsNDPIFixupRequiresASuspiciousOffset(t *testing.T) {
	if needsNDPIFixup(fourGiB+1, []uint64{100, 200, 300}) {
		t.Error("in-range offsets in a large file shouldn't trigger fixup")
	}
	if !needsNDPIFixup(fourGiB+1, []uint64{100, 0x80000001}) {
		t.Error("a top-bit-set offset in a file over 4GiB should trigger fixup")
	}
}

func TestFixNDPIOffsetsReconstructsMonotonicSequence(t *testing.T) {
	// Strips at true addresses 0x1000, 0x1_0000_1000, 0x2_0000_1000,
	// each truncated to 32 bits by the writer.
	raw := []uint64{0x1000, 0x1000, 0x1000}
	got := fixNDPIOffsets(raw)
	want := []uint64{0x1000, 0x1_0000_1000, 0x2_0000_1000}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("fixed[%d] = %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestFixNDPIOffsetsLeavesAlreadyMonotonicAlone(t *testing.T) {
	raw := []uint64{0x1000, 0x2000, 0x3000}
	got := fixNDPIOffsets(raw)
	for i := range raw {
		if got[i] != raw[i] {
			t.Errorf("fixed[%d] = %#x, want unchanged %#x", i, got[i], raw[i])
		}
	}
}
