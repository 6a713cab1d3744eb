// Command ppuview drives a PPU directly against a static VRAM image
// and shows the composited output in an SDL2 window, without a CPU
// core in the loop. Useful for eyeballing tile/palette/scroll changes
// while iterating on the compositor.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/nullpixel/gbcore/internal/display"
	"github.com/nullpixel/gbcore/internal/host"
	"github.com/nullpixel/gbcore/internal/ppu"
	"github.com/nullpixel/gbcore/internal/types"
)

func main() {
	romPath := flag.String("rom", "", "ROM image to read cartridge header fields from (optional)")
	scale := flag.Int("scale", 4, "window scale factor")
	model := flag.String("model", "auto", "auto, dmg or cgb")
	flag.Parse()

	rom := make([]byte, 0x150)
	if *romPath != "" {
		data, err := os.ReadFile(*romPath)
		if err != nil {
			log.Fatalf("ppuview: read rom: %v", err)
		}
		rom = data
	}

	var forced *types.Model
	switch *model {
	case "dmg":
		m := types.DMG
		forced = &m
	case "cgb":
		m := types.CGB
		forced = &m
	}

	h := host.NewHarness(rom, forced)

	win, err := display.NewSDLWindow("ppuview", ppu.ScreenWidth, ppu.ScreenHeight, *scale)
	if err != nil {
		log.Fatalf("ppuview: %v", err)
	}
	defer win.Close()
	h.SetDisplay(win)

	h.WriteRegister(types.LCDC, 0x91)
	h.WriteRegister(types.BGP, 0xE4)

	core := ppu.New(h, nil)

	for !win.PollQuit() {
		core.Tick(456)
	}
}
