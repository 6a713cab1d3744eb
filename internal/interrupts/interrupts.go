// Package interrupts defines the two LCD-related interrupt lines the
// PPU is capable of raising. Servicing them (IME, the IE/IF registers,
// the CPU's jump to the interrupt vector) belongs to the CPU core and
// is out of scope here.
package interrupts

import "github.com/nullpixel/gbcore/internal/types"

// Kind identifies which interrupt request the PPU is raising.
type Kind uint8

const (
	// VBlank is requested every time the PPU enters ModeVBlank (LY=144).
	VBlank Kind = iota
	// LCDSTAT is requested by the STAT register's mode/coincidence
	// interrupt sources.
	LCDSTAT
)

// Flag bits within the IF/IE registers corresponding to each Kind.
const (
	VBlankFlag = types.Bit0
	LCDFlag    = types.Bit1
)

// Flag returns the IF/IE bit associated with kind.
func (k Kind) Flag() uint8 {
	switch k {
	case VBlank:
		return VBlankFlag
	case LCDSTAT:
		return LCDFlag
	default:
		return 0
	}
}
