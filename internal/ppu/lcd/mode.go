package lcd

// Mode is the two-bit value reported in STAT bits 1-0. The compositor
// only ever reports HBlank or VBlank; ModeOAM and ModeVRAM exist for
// documentation only, since sub-scanline timing is out of scope.
type Mode uint8

const (
	// HBlank (mode 0) covers the whole of a visible line's rendering in
	// this design, since register sampling happens once per line rather
	// than mid-scanline.
	HBlank Mode = iota
	// VBlank (mode 1) covers LY 144-153.
	VBlank
	// OAM (mode 2) is never reported; retained for documentation parity
	// with the hardware's four-mode STAT encoding.
	OAM
	// VRAM (mode 3) is never reported, for the same reason as OAM.
	VRAM
)
