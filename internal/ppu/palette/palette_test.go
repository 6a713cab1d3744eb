package palette

import "testing"

func TestExpand5to8Formula(t *testing.T) {
	cases := map[uint8]uint8{
		0:  0,
		31: 255,
		15: 123, // (15*255+15)/31 = 3840/31 = 123 (truncated)
		16: 132,
	}
	for in, want := range cases {
		if got := expand5to8(in); got != want {
			t.Errorf("expand5to8(%d) = %d, want %d", in, got, want)
		}
	}
}

// TestCGBPaletteExpansion writes a red-only RGB555 word into background
// palette 0's first color and checks the resolved 24-bit color.
func TestCGBPaletteExpansion(t *testing.T) {
	s := New(true, 0)
	s.WriteCGBBG(0, 0x1F)
	s.WriteCGBBG(1, 0x00)

	got := s.BG(0).Colors[0]
	if want := RGB(0xFF, 0x00, 0x00); got != want {
		t.Fatalf("BG(0).Colors[0] = %#x, want %#x", got, want)
	}
}

func TestCGBInitialPaletteRAMIsWhite(t *testing.T) {
	s := New(true, 0)
	for i := uint8(0); i < 8; i++ {
		for _, c := range s.BG(i).Colors {
			if c != RGB(0xFF, 0xFF, 0xFF) {
				t.Fatalf("BG(%d) = %v, want all-white before any register write", i, s.BG(i).Colors)
			}
		}
	}
}

func TestCompatibilityPaletteFallback(t *testing.T) {
	s := New(false, 0xFF) // no compatibility table entry for 0xFF
	white := RGB(0xFF, 0xFF, 0xFF)
	black := RGB(0x00, 0x00, 0x00)

	if got := s.BG(0).Colors[0]; got != white {
		t.Fatalf("BG(0).Colors[0] = %#x, want grayscale white %#x", got, white)
	}
	if got := s.BG(0).Colors[3]; got != black {
		t.Fatalf("BG(0).Colors[3] = %#x, want grayscale black %#x", got, black)
	}
	if got := s.OBJ(0).Colors[0]; got != white {
		t.Fatalf("OBJ(0).Colors[0] = %#x, want grayscale white %#x", got, white)
	}
}

func TestCompatibilityTableBGOnlyEntryFallsBackForOBJ(t *testing.T) {
	// checksum 0x03 only defines a BG entry in the table; OBJ0/OBJ1
	// must fall back to grayscale rather than staying pure black.
	s := New(false, 0x03)
	if got := s.OBJ(0).Colors[0]; got != RGB(0xFF, 0xFF, 0xFF) {
		t.Fatalf("OBJ(0).Colors[0] = %#x, want grayscale white", got)
	}
}

func TestSetDMGBGMapsThroughCompatibilityTable(t *testing.T) {
	s := New(false, 0x15) // checksum with a distinctive BG entry
	s.SetDMGBG(0xE4)

	want := s.bgCompat.Colors[0]
	if got := s.BG(0).Colors[0]; got != want {
		t.Fatalf("BG(0).Colors[0] = %#x, want %#x", got, want)
	}
}

func TestClampOffsetWrapsOutOfRange(t *testing.T) {
	if got := clampOffset(64); got != 0 {
		t.Fatalf("clampOffset(64) = %d, want 0", got)
	}
	if got := clampOffset(70); got != 6 {
		t.Fatalf("clampOffset(70) = %d, want 6", got)
	}
}

func TestWriteCGBOBJRoundTrip(t *testing.T) {
	s := New(true, 0)
	s.WriteCGBOBJ(8, 0xE0) // palette 1, color 0, low byte: green bits 5-7
	s.WriteCGBOBJ(9, 0x03) // green bits 8-9, in the high byte

	got := s.OBJ(1).Colors[0]
	want := RGB(0x00, 0xFF, 0x00)
	if got != want {
		t.Fatalf("OBJ(1).Colors[0] = %#x, want %#x", got, want)
	}
	if got := s.ReadCGBOBJ(9); got != 0x03 {
		t.Fatalf("ReadCGBOBJ(9) = %#x, want 0x03", got)
	}
}
