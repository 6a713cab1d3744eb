package ppu

import (
	"github.com/nullpixel/gbcore/internal/io"
	"github.com/nullpixel/gbcore/internal/types"
)

// DMA implements the OAM DMA transfer armed by writing the DMA register
// (0xFF46). It copies 160 bytes from source<<8 into OAM at one
// byte per 4 T-cycles, writing directly into the OAM capability rather
// than going through the register path, to avoid taking a lock on every
// byte of the transfer.
//
// DMA is owned by the PPU but ticked independently: the host loop calls
// Tick alongside the PPU's own Tick, and routes CPU writes to 0xFF46
// into Write.
type DMA struct {
	bus io.Bus

	active  bool
	source  uint16
	cycles  int
	written int
}

// NewDMA constructs an OAM DMA transfer unit bound to bus.
func NewDMA(bus io.Bus) *DMA {
	return &DMA{bus: bus}
}

// Write arms a transfer from value<<8. Re-arming mid-transfer restarts
// it from the new source.
func (d *DMA) Write(value uint8) {
	d.source = uint16(value) << 8
	d.active = true
	d.cycles = 0
	d.written = 0
}

// Active reports whether a transfer is in progress.
func (d *DMA) Active() bool {
	return d.active
}

// Tick advances the transfer by cycles T-cycles, copying one byte for
// every 4 T-cycles elapsed until all 160 bytes have landed.
func (d *DMA) Tick(cycles int) {
	if !d.active {
		return
	}

	d.cycles += cycles
	oam := d.bus.OAM()

	for d.cycles >= 4 && d.written < types.OAMSize {
		d.cycles -= 4
		oam[d.written] = d.bus.ReadMemory(d.source + uint16(d.written))
		d.written++
	}

	if d.written >= types.OAMSize {
		d.active = false
	}
}
