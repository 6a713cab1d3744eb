package cartridge

import (
	"testing"

	gbio "github.com/nullpixel/gbcore/internal/io"
	"github.com/nullpixel/gbcore/internal/types"
)

func makeROM(cgbFlag, checksum uint8) []byte {
	rom := make([]byte, 0x150)
	rom[0x143] = cgbFlag
	rom[0x14D] = checksum
	copy(rom[0x134:0x144], []byte("TESTGAME"))
	return rom
}

func TestNewDetectsCGBFlag(t *testing.T) {
	c := New(makeROM(0x80, 0x03), nil)
	if got := c.Mode(); got != gbio.ModeCGB {
		t.Fatalf("Mode() = %v, want ModeCGB", got)
	}
}

func TestNewDetectsDMG(t *testing.T) {
	c := New(makeROM(0x00, 0x03), nil)
	if got := c.Mode(); got != gbio.ModeDMG {
		t.Fatalf("Mode() = %v, want ModeDMG", got)
	}
}

func TestNewForceModelOverridesDetection(t *testing.T) {
	forced := types.DMG
	c := New(makeROM(0x80, 0x03), &forced)
	if got := c.Mode(); got != gbio.ModeDMG {
		t.Fatalf("Mode() = %v, want ModeDMG (forced)", got)
	}
}

func TestChecksum(t *testing.T) {
	c := New(makeROM(0x00, 0xC9), nil)
	if got := c.Checksum(); got != 0xC9 {
		t.Fatalf("Checksum() = %#x, want 0xC9", got)
	}
}

func TestNewHandlesShortROM(t *testing.T) {
	c := New([]byte{0x01, 0x02}, nil)
	if got := c.Checksum(); got != 0 {
		t.Fatalf("Checksum() = %#x, want 0 for a truncated ROM", got)
	}
	if got := c.Mode(); got != gbio.ModeDMG {
		t.Fatalf("Mode() = %v, want ModeDMG for a truncated ROM", got)
	}
}

func TestTitleHashIsStableAcrossInstances(t *testing.T) {
	a := New(makeROM(0x00, 0x03), nil)
	b := New(makeROM(0x00, 0x03), nil)
	if a.TitleHash() != b.TitleHash() {
		t.Fatal("TitleHash differs for identical title bytes")
	}
}
