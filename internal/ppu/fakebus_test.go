package ppu

import (
	"github.com/nullpixel/gbcore/internal/interrupts"
	"github.com/nullpixel/gbcore/internal/io"
)

// fakeBus is a minimal io.Bus for exercising the PPU without a real
// CPU/MMU. Registers and memory are plain maps/slices; RaiseInterrupt
// just records what was raised.
type fakeBus struct {
	registers map[uint16]uint8
	vram      []uint8
	oam       []uint8
	memory    map[uint16]uint8

	mode     io.Mode
	checksum uint8

	hdma io.HDMA
	disp io.Display

	raised []interrupts.Kind
}

func newFakeBus(mode io.Mode) *fakeBus {
	return &fakeBus{
		registers: map[uint16]uint8{},
		vram:      make([]uint8, 2*8192),
		oam:       make([]uint8, 160),
		memory:    map[uint16]uint8{},
		mode:      mode,
	}
}

func (b *fakeBus) ReadRegister(addr uint16) uint8         { return b.registers[addr] }
func (b *fakeBus) WriteRegister(addr uint16, value uint8) { b.registers[addr] = value }
func (b *fakeBus) VRAM() []uint8                          { return b.vram }
func (b *fakeBus) OAM() []uint8                           { return b.oam }
func (b *fakeBus) ReadMemory(addr uint16) uint8           { return b.memory[addr] }
func (b *fakeBus) Cartridge() io.Cartridge                { return fakeCartridge{mode: b.mode, checksum: b.checksum} }
func (b *fakeBus) HDMA() io.HDMA                          { return b.hdma }
func (b *fakeBus) Display() io.Display                    { return b.disp }
func (b *fakeBus) RaiseInterrupt(kind interrupts.Kind)    { b.raised = append(b.raised, kind) }

type fakeCartridge struct {
	mode     io.Mode
	checksum uint8
}

func (c fakeCartridge) Mode() io.Mode    { return c.mode }
func (c fakeCartridge) Checksum() uint8 { return c.checksum }

type fakeDisplay struct {
	frames [][][]uint32
}

func (d *fakeDisplay) Width() int  { return ScreenWidth }
func (d *fakeDisplay) Height() int { return ScreenHeight }
func (d *fakeDisplay) Present(frame [][]uint32) {
	d.frames = append(d.frames, frame)
}
