// Package ppu implements the Game Boy / Game Boy Color Pixel
// Processing Unit: the Palette Store, Tile Fetcher, Framebuffer,
// Scanline Compositor and PPU Timing Driver.
package ppu

import (
	"github.com/nullpixel/gbcore/internal/interrupts"
	"github.com/nullpixel/gbcore/internal/io"
	"github.com/nullpixel/gbcore/internal/ppu/lcd"
	"github.com/nullpixel/gbcore/internal/ppu/palette"
	"github.com/nullpixel/gbcore/internal/types"
	gblog "github.com/nullpixel/gbcore/pkg/log"
)

// Palette is a resolved four-color palette; aliased here so callers
// outside this package don't need to import ppu/palette directly.
type Palette = palette.Palette

// controllerView is the decoded LCDC view the compositor and timing
// driver consult; kept as an alias of *lcd.Controller rather than a
// duplicate type.
type controllerView = *lcd.Controller

// PPU implements the scanline-driven graphics engine. It owns the
// Palette Store, Framebuffer, and its own timing state; VRAM, OAM and
// the LCD registers live behind the io.Bus capability it's constructed
// with.
type PPU struct {
	bus      io.Bus
	Palettes *palette.Store
	FB       Framebuffer
	cgb      bool
	log      gblog.Logger

	// PPU timing state.
	lcdCycles   int
	vblankCount uint64

	// STAT's writable enable bits, shadowed here since the mode and
	// coincidence bits are driver-managed rather than CPU-writable.
	stat lcd.Status

	spritesDrawn [ScreenHeight]uint8

	// dma is the OAM DMA unit. It is ticked by the host loop
	// independently of Tick, since it runs on its own 4-cycles-per-byte
	// cadence rather than once-per-scanline.
	dma *DMA
}

// New constructs a PPU bound to bus. logger may be nil, in which case a
// no-op logger is used.
func New(bus io.Bus, logger gblog.Logger) *PPU {
	cgb := bus.Cartridge().Mode() == io.ModeCGB
	if logger == nil {
		logger = gblog.NewNullLogger()
	}

	return &PPU{
		bus:      bus,
		Palettes: palette.New(cgb, bus.Cartridge().Checksum()),
		cgb:      cgb,
		log:      logger,
		dma:      NewDMA(bus),
	}
}

// DMA returns the PPU-owned OAM DMA unit, so a host can route CPU
// writes to the DMA register (0xFF46) into it and tick it on its own
// 4-cycles-per-byte cadence.
func (p *PPU) DMA() *DMA {
	return p.dma
}

// controller decodes the current LCDC register value. It is re-decoded
// on every call rather than cached, since LCDC is owned by the host bus
// and may be written between calls.
func (p *PPU) controller() controllerView {
	c := &lcd.Controller{}
	c.Write(p.bus.ReadRegister(types.LCDC))
	return c
}

// Tick advances the PPU by cpuCycles elapsed CPU cycles.
func (p *PPU) Tick(cpuCycles int) {
	p.lcdCycles += cpuCycles

	for p.lcdCycles >= 456 {
		p.lcdCycles -= 456
		p.stepLine()
	}
}

// stepLine performs the once-per-scanline work: draw, advance LY,
// update STAT, raise interrupts, and tick HDMA at the HBlank edge.
func (p *PPU) stepLine() {
	ctrl := p.controller()
	ly := int(p.bus.ReadRegister(types.LY))

	if ctrl.Enabled {
		p.Draw(ly)
	}

	// isVBlank reflects the line just finished (the pre-increment LY),
	// matching "we just finished line LY": HDMA/LYC/HBlank gating below
	// belongs to that line, not to whatever LY becomes next.
	isVBlank := ly >= ScreenHeight

	ly = (ly + 1) % 154
	p.bus.WriteRegister(types.LY, uint8(ly))

	if !isVBlank {
		if hdma := p.bus.HDMA(); hdma != nil && hdma.Active() {
			hdma.Tick()
		}
	}

	if ctrl.Enabled {
		// refresh the writable STAT enable bits in case the CPU wrote
		// to STAT since the last line.
		p.stat.Write(p.bus.ReadRegister(types.STAT))
		p.stat.Mode = lcd.HBlank
		if isVBlank {
			p.stat.Mode = lcd.VBlank
		}

		if !isVBlank {
			lyc := p.bus.ReadRegister(types.LYC)
			if p.stat.LYCInterruptEnable {
				p.stat.Coincidence = uint8(ly) == lyc
				if p.stat.Coincidence {
					p.bus.RaiseInterrupt(interrupts.LCDSTAT)
				}
			} else {
				p.stat.Coincidence = uint8(ly) == lyc
			}
			if p.stat.HBlankInterruptEnable {
				p.bus.RaiseInterrupt(interrupts.LCDSTAT)
			}
		}

		p.bus.WriteRegister(types.STAT, p.stat.Read())
	}

	if ly == ScreenHeight {
		p.presentFrame()
		if ctrl.Enabled {
			p.vblankCount++
			p.bus.RaiseInterrupt(interrupts.VBlank)
			if p.stat.VBlankInterruptEnable {
				p.bus.RaiseInterrupt(interrupts.LCDSTAT)
			}
		}
	}
}

// presentFrame hands the finished framebuffer to the display surface,
// if one is attached. Compositing always runs regardless, so the
// sprite-per-line counter stays accurate whether or not anything is
// actually watching the frame.
func (p *PPU) presentFrame() {
	disp := p.bus.Display()
	if disp == nil {
		return
	}
	rows := p.FB.Rows()
	frame := make([][]uint32, ScreenHeight)
	for y := range rows {
		line := make([]uint32, ScreenWidth)
		for x, cell := range rows[y] {
			line[x] = cell & 0x00FFFFFF
		}
		frame[y] = line
	}
	disp.Present(frame)
}

// SpritesDrawn returns the number of sprites drawn on scanline ly by
// the most recent Draw call.
func (p *PPU) SpritesDrawn(ly int) uint8 {
	if ly < 0 || ly >= ScreenHeight {
		return 0
	}
	return p.spritesDrawn[ly]
}

// VBlankCount returns the number of VBlank interrupts raised over the
// PPU's lifetime.
func (p *PPU) VBlankCount() uint64 {
	return p.vblankCount
}

// Mode returns the STAT mode as of the most recently completed line
// step, for diagnostic tooling that wants to chart mode transitions
// without duplicating the timing driver.
func (p *PPU) Mode() lcd.Mode {
	return p.stat.Mode
}

// LY returns the current scanline counter.
func (p *PPU) LY() uint8 {
	return p.bus.ReadRegister(types.LY)
}
