// Package host is a minimal io.Bus implementation for the diagnostic
// command-line tools: it wires VRAM, OAM, a flat memory map and the
// LCD-related registers together without a CPU, so the PPU can be
// driven directly from test data or a loaded ROM's static tile/map
// content.
package host

import (
	"github.com/nullpixel/gbcore/internal/cartridge"
	"github.com/nullpixel/gbcore/internal/interrupts"
	"github.com/nullpixel/gbcore/internal/io"
	"github.com/nullpixel/gbcore/internal/ppu"
	"github.com/nullpixel/gbcore/internal/types"
)

// Harness owns the memory a headless PPU needs and satisfies io.Bus.
type Harness struct {
	registers map[uint16]uint8
	vram      []uint8
	oam       []uint8
	memory    []uint8
	cart      *cartridge.Cartridge
	hdma      *ppu.HDMA
	disp      io.Display
	Raised    []interrupts.Kind
}

// NewHarness builds a harness around rom, sized to the full 16-bit
// address space so ReadMemory can serve OAM/HDMA source reads from
// wherever a caller has staged tile or map data.
func NewHarness(rom []byte, forceModel *types.Model) *Harness {
	h := &Harness{
		registers: make(map[uint16]uint8),
		vram:      make([]uint8, 2*8192),
		oam:       make([]uint8, 160),
		memory:    make([]uint8, 1<<16),
		cart:      cartridge.New(rom, forceModel),
	}
	h.hdma = ppu.NewHDMA(h)
	copy(h.memory, rom)
	return h
}

func (h *Harness) ReadRegister(addr uint16) uint8    { return h.registers[addr] }
func (h *Harness) WriteRegister(addr uint16, v uint8) { h.registers[addr] = v }
func (h *Harness) VRAM() []uint8                      { return h.vram }
func (h *Harness) OAM() []uint8                       { return h.oam }
func (h *Harness) ReadMemory(addr uint16) uint8       { return h.memory[addr] }
func (h *Harness) Cartridge() io.Cartridge            { return h.cart }
func (h *Harness) HDMA() io.HDMA                      { return h.hdma }
func (h *Harness) RaiseInterrupt(kind interrupts.Kind) {
	h.Raised = append(h.Raised, kind)
}
func (h *Harness) Display() io.Display { return h.disp }

// SetDisplay attaches or detaches (nil) the presentation surface.
func (h *Harness) SetDisplay(d io.Display) { h.disp = d }

// WriteMemory lets a diagnostic tool stage arbitrary bytes (tile data,
// tile maps, OAM DMA source bytes) before driving the PPU.
func (h *Harness) WriteMemory(addr uint16, v uint8) { h.memory[addr] = v }

// LoadTileData copies raw 2bpp tile bytes into VRAM bank 0 starting at
// vramOffset (0x0000-0x1FFF within the bank).
func (h *Harness) LoadTileData(vramOffset uint16, data []uint8) {
	copy(h.vram[vramOffset:], data)
}

// LoadTileMap copies a 32x32 tile-index map into VRAM bank 0 at one of
// the two map offsets (0x1800 or 0x1C00).
func (h *Harness) LoadTileMap(vramOffset uint16, indices []uint8) {
	copy(h.vram[vramOffset:], indices)
}
