package lcd

import "github.com/nullpixel/gbcore/internal/types"

// Status models the STAT register (0xFF41). Bit 7 always reads as set;
// bits 1-0 (Mode) and bit 2 (Coincidence) are read-only from the CPU's
// perspective and are only ever updated by the timing driver.
type Status struct {
	LYCInterruptEnable    bool // Bit 6
	VBlankInterruptEnable bool // Bit 4
	HBlankInterruptEnable bool // Bit 3
	Coincidence           bool // Bit 2, read-only
	Mode                  Mode // Bits 1-0, read-only
}

// Write decodes the writable bits of a byte written to STAT. The
// read-only coincidence/mode bits are left untouched.
func (s *Status) Write(value uint8) {
	s.LYCInterruptEnable = value&types.Bit6 != 0
	s.VBlankInterruptEnable = value&types.Bit4 != 0
	s.HBlankInterruptEnable = value&types.Bit3 != 0
}

// Read re-encodes Status into a STAT byte.
func (s *Status) Read() uint8 {
	var v uint8 = types.Bit7
	if s.LYCInterruptEnable {
		v |= types.Bit6
	}
	if s.VBlankInterruptEnable {
		v |= types.Bit4
	}
	if s.HBlankInterruptEnable {
		v |= types.Bit3
	}
	if s.Coincidence {
		v |= types.Bit2
	}
	v |= uint8(s.Mode) & 0x3
	return v
}
