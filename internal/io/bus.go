// Package io defines the capability surface the PPU borrows from its
// host: register access, VRAM/OAM, cartridge identity, HDMA, interrupt
// delivery and presentation. The PPU never owns any of these; it holds
// a Bus reference passed at construction time.
package io

import "github.com/nullpixel/gbcore/internal/interrupts"

// Bus is the capability object the PPU consumes from its host.
type Bus interface {
	// ReadRegister/WriteRegister access the LCD-related I/O registers
	// (LCDC, STAT, SCX, SCY, WX, WY, LY, LYC, BGP, OBP0, OBP1, and the
	// CGB palette/HDMA registers). Invalid addresses read as zero.
	ReadRegister(addr uint16) uint8
	WriteRegister(addr uint16, value uint8)

	// VRAM returns the raw video RAM, length 2*8192 (bank 0 then bank 1).
	VRAM() []uint8
	// OAM returns the raw Object Attribute Memory, length 160.
	OAM() []uint8

	// ReadMemory reads a single byte from the host's full address space
	// (ROM, WRAM, etc.), independent of ReadRegister's I/O-register-only
	// view. OAM DMA and HDMA source reads go through this, matching the
	// real hardware's DMA units reading off the same bus the CPU does.
	ReadMemory(addr uint16) uint8

	// Cartridge exposes the DMG/CGB mode and header checksum needed for
	// the DMG compatibility palette lookup.
	Cartridge() Cartridge

	// HDMA returns the host's HDMA controller, or nil if the host does
	// not model HDMA (e.g. a DMG-only host).
	HDMA() HDMA

	// RaiseInterrupt requests the given interrupt line.
	RaiseInterrupt(kind interrupts.Kind)

	// Display returns the presentation surface, or nil if none is
	// attached (e.g. running headless).
	Display() Display
}

// Cartridge exposes the identity information the PPU needs from the
// inserted cartridge.
type Cartridge interface {
	Mode() Mode
	Checksum() uint8
}

// Mode mirrors types.Model, kept distinct here so the io package has no
// import-cycle dependency on cartridge internals.
type Mode uint8

const (
	ModeDMG Mode = iota
	ModeCGB
)

// HDMA is the capability the PPU ticks once per non-VBlank scanline.
type HDMA interface {
	Tick()
	Active() bool
}

// Display is the presentation surface. Width/Height describe the
// surface in pixels; Present receives the finished frame at the LY=143
// boundary. The framebuffer format is 160x144 cells of
// 0x00RRGGBB — callers must not read the top byte.
type Display interface {
	Width() int
	Height() int
	Present(frame [][]uint32)
}
