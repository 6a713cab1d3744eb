// Package cartridge models just enough of a Game Boy cartridge for the
// PPU's DMG compatibility-palette lookup and the domain-stack tooling:
// the hardware mode and header checksum, plus a content hash used to
// key diagnostic caches.
package cartridge

import (
	"github.com/cespare/xxhash"
	gbio "github.com/nullpixel/gbcore/internal/io"
	"github.com/nullpixel/gbcore/internal/types"
)

// Cartridge implements io.Cartridge against a raw ROM image.
type Cartridge struct {
	rom      []byte
	mode     types.Model
	checksum uint8
	titleSum uint64
}

// New parses a ROM image and determines its hardware mode and header
// checksum. forceModel overrides auto-detection when it is non-nil; a
// nil forceModel means "auto".
func New(rom []byte, forceModel *types.Model) *Cartridge {
	c := &Cartridge{rom: rom}

	if len(rom) > 0x14D {
		c.checksum = rom[0x14D]
	}

	title := titleBytes(rom)
	c.titleSum = xxhash.Sum64(title)

	if forceModel != nil {
		c.mode = *forceModel
	} else if len(rom) > 0x143 && (rom[0x143] == 0x80 || rom[0x143] == 0xC0) {
		c.mode = types.CGB
	} else {
		c.mode = types.DMG
	}

	return c
}

func titleBytes(rom []byte) []byte {
	if len(rom) < 0x144 {
		return nil
	}
	start := 0x134
	if start > len(rom) {
		return nil
	}
	end := 0x144
	if end > len(rom) {
		end = len(rom)
	}
	return rom[start:end]
}

// Mode returns whether the cartridge is running as DMG or CGB.
func (c *Cartridge) Mode() gbio.Mode {
	if c.mode == types.CGB {
		return gbio.ModeCGB
	}
	return gbio.ModeDMG
}

// Checksum returns the header checksum byte at ROM offset 0x14D, used
// to index the DMG boot compatibility palette table.
func (c *Cartridge) Checksum() uint8 {
	return c.checksum
}

// TitleHash returns the xxhash64 of the 16-byte title field, used by
// diagnostic tooling to disambiguate checksum collisions the way the
// teacher's CompatibilityHashEntries table does with a title hash.
func (c *Cartridge) TitleHash() uint64 {
	return c.titleSum
}
