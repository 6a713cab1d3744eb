package ppu

import (
	"testing"

	"github.com/nullpixel/gbcore/internal/io"
	"github.com/nullpixel/gbcore/internal/types"
)

// TestDrawAllZeroBackgroundUsesColorZero exercises an all-zero VRAM,
// BG-only frame on DMG with the default BGP mapping: every pixel should
// resolve to the background palette's color-0 entry at priority P1.
func TestDrawAllZeroBackgroundUsesColorZero(t *testing.T) {
	bus := newFakeBus(io.ModeDMG)
	bus.registers[types.LCDC] = 0x81 // enable + BG on

	p := New(bus, nil)
	for ly := 0; ly < ScreenHeight; ly++ {
		p.Draw(ly)
	}

	want := uint32(p.Palettes.BG(0).Colors[0])
	for y := 0; y < ScreenHeight; y++ {
		for x := 0; x < ScreenWidth; x++ {
			if got := p.FB.RGB(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %#x, want %#x", x, y, got, want)
			}
			if got := p.FB.Priority(x, y); got != P1 {
				t.Fatalf("pixel (%d,%d) priority = %d, want %d", x, y, got, P1)
			}
		}
	}
}

// TestDrawSingleOpaqueSprite exercises an 8x8 sprite drawn over the
// all-zero background, matching a single opaque sprite over a plain
// background: the sprite's block lands at priority P5, and the
// surrounding background pixels stay at priority P1.
func TestDrawSingleOpaqueSprite(t *testing.T) {
	bus := newFakeBus(io.ModeDMG)
	bus.registers[types.LCDC] = 0x83 // enable + BG on + sprites on, 8x8

	vram := bus.VRAM()
	tileBase := 1 * 16
	for row := 0; row < 8; row++ {
		vram[tileBase+row*2] = 0xFF
		vram[tileBase+row*2+1] = 0xFF
	}

	oam := bus.OAM()
	oam[0], oam[1], oam[2], oam[3] = 16, 16, 1, 0

	p := New(bus, nil)
	for ly := 0; ly < 8; ly++ {
		p.Draw(ly)
	}

	wantColor := uint32(p.Palettes.OBJ(0).Colors[3])
	for y := 0; y < 8; y++ {
		for x := 8; x < 16; x++ {
			if got := p.FB.Priority(x, y); got != P5 {
				t.Fatalf("sprite pixel (%d,%d) priority = %d, want %d", x, y, got, P5)
			}
			if got := p.FB.RGB(x, y); got != wantColor {
				t.Fatalf("sprite pixel (%d,%d) = %#x, want %#x", x, y, got, wantColor)
			}
		}
	}

	for _, x := range []int{7, 16} {
		if got := p.FB.Priority(x, 0); got != P1 {
			t.Fatalf("background pixel (%d,0) priority = %d, want %d", x, got, P1)
		}
	}
}

// TestDrawTallSpriteVFlipSwapsHalves exercises the tall-sprite vertical
// flip: with flip_y set, the half normally on the bottom is drawn on
// screen row 0 and vice versa.
func TestDrawTallSpriteVFlipSwapsHalves(t *testing.T) {
	bus := newFakeBus(io.ModeDMG)
	bus.registers[types.LCDC] = 0x86 // enable + sprites on, 8x16

	vram := bus.VRAM()
	// tile 0x30 (top half unflipped): color index 1 on every pixel.
	base30 := 0x30 * 16
	// tile 0x31 (bottom half unflipped): color index 2 on every pixel.
	base31 := 0x31 * 16
	for row := 0; row < 8; row++ {
		vram[base30+row*2], vram[base30+row*2+1] = 0xFF, 0x00
		vram[base31+row*2], vram[base31+row*2+1] = 0x00, 0xFF
	}

	oam := bus.OAM()
	// attr bit 6 (flip_y) set.
	oam[0], oam[1], oam[2], oam[3] = 16, 16, 0x30, types.Bit6

	p := New(bus, nil)
	p.Draw(0)
	p.Draw(8)

	color2 := uint32(p.Palettes.OBJ(0).Colors[2])
	color1 := uint32(p.Palettes.OBJ(0).Colors[1])

	// OAM x=16 places the sprite at screen columns 8-15.
	if got := p.FB.RGB(8, 0); got != color2 {
		t.Fatalf("row 0 = %#x, want %#x (tile 0x31, the bottom half)", got, color2)
	}
	if got := p.FB.RGB(8, 8); got != color1 {
		t.Fatalf("row 8 = %#x, want %#x (tile 0x30, the top half)", got, color1)
	}
}

// TestDrawSpriteBGOverObjOnlyCoversColorZero exercises the bg_over_obj
// attribute bit: with it set, the sprite must only win against
// background pixels stored at P1, never at P3.
func TestDrawSpriteBGOverObjOnlyCoversColorZero(t *testing.T) {
	var fb Framebuffer
	fb.Draw(0, 0, P1, 0x111111)
	fb.Draw(1, 0, P3, 0x222222)

	fb.Draw(0, 0, P2, 0x333333)
	fb.Draw(1, 0, P2, 0x333333)

	if got := fb.RGB(0, 0); got != 0x333333 {
		t.Fatalf("P2 over P1 = %#x, want the sprite color", got)
	}
	if got := fb.RGB(1, 0); got != 0x222222 {
		t.Fatalf("P2 over P3 = %#x, want the background to remain", got)
	}
}

// TestSpritesDrawnCapsAtTen exercises the 10-sprites-per-line cap: OAM
// holds 40 entries all visible on the same line, only 10 may draw.
func TestSpritesDrawnCapsAtTen(t *testing.T) {
	bus := newFakeBus(io.ModeDMG)
	bus.registers[types.LCDC] = 0x82 // enable + sprites on, no BG

	oam := bus.OAM()
	for i := 0; i < 40; i++ {
		base := i * 4
		oam[base] = 16     // y
		oam[base+1] = uint8(i) // x, spread out
		oam[base+2] = 0    // tile
		oam[base+3] = 0
	}

	p := New(bus, nil)
	p.Draw(0)

	if got := p.SpritesDrawn(0); got != 10 {
		t.Fatalf("SpritesDrawn(0) = %d, want 10", got)
	}
}
