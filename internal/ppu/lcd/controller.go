// Package lcd models the LCDC and STAT registers as plain bitfields,
// sampled once per scanline rather than tracked dot-by-dot. This is the
// deliberately simpler of two possible register models, appropriate
// here since sub-scanline timing accuracy is out of scope.
package lcd

import "github.com/nullpixel/gbcore/internal/types"

// Controller decodes the LCDC register (0xFF40).
type Controller struct {
	Enabled           bool  // Bit 7 - LCD Enable
	WindowTileMap     uint8 // Bit 6 - Window Tile Map Select (0=0x1800, 1=0x1C00)
	WindowEnabled     bool  // Bit 5 - Window Display
	AddressMode       uint8 // Bit 4 - BG/Win Tile Data Select (0=0x800 signed, 1=0x0 unsigned)
	BackgroundTileMap uint8 // Bit 3 - BG Tile Map Select
	SpriteSize        uint8 // Bit 2 - OBJ Size (8 or 16)
	SpriteEnabled     bool  // Bit 1 - OBJ Display
	BackgroundEnabled bool  // Bit 0 - BG/Window Display
}

// NewController returns a Controller decoded from the post-boot-ROM
// default LCDC value (0x91).
func NewController() *Controller {
	c := &Controller{}
	c.Write(0x91)
	return c
}

// Write decodes a byte written to LCDC.
func (c *Controller) Write(value uint8) {
	c.Enabled = value&types.Bit7 != 0
	c.WindowTileMap = value >> 6 & 1
	c.WindowEnabled = value&types.Bit5 != 0
	c.AddressMode = value >> 4 & 1
	c.BackgroundTileMap = value >> 3 & 1
	c.SpriteSize = 8
	if value&types.Bit2 != 0 {
		c.SpriteSize = 16
	}
	c.SpriteEnabled = value&types.Bit1 != 0
	c.BackgroundEnabled = value&types.Bit0 != 0
}

// Read re-encodes the Controller's fields back into an LCDC byte.
func (c *Controller) Read() uint8 {
	var v uint8
	if c.Enabled {
		v |= types.Bit7
	}
	v |= c.WindowTileMap << 6
	if c.WindowEnabled {
		v |= types.Bit5
	}
	v |= c.AddressMode << 4
	v |= c.BackgroundTileMap << 3
	if c.SpriteSize == 16 {
		v |= types.Bit2
	}
	if c.SpriteEnabled {
		v |= types.Bit1
	}
	if c.BackgroundEnabled {
		v |= types.Bit0
	}
	return v
}

// TileDataOffset returns the VRAM offset selecting which tile pattern
// table BG/Window addressing uses (0x0000 unsigned, 0x0800 signed).
func (c *Controller) TileDataOffset() uint16 {
	if c.AddressMode == 1 {
		return 0
	}
	return 0x800
}

// BackgroundMapOffset returns the VRAM offset of the active BG tile map.
func (c *Controller) BackgroundMapOffset() uint16 {
	if c.BackgroundTileMap == 1 {
		return 0x1C00
	}
	return 0x1800
}

// WindowMapOffset returns the VRAM offset of the active window tile map.
func (c *Controller) WindowMapOffset() uint16 {
	if c.WindowTileMap == 1 {
		return 0x1C00
	}
	return 0x1800
}
