package ppu

import "github.com/nullpixel/gbcore/internal/types"

// Draw renders one scanline into the framebuffer. It is a no-op when
// the LCD is disabled or LY is outside the visible range; the timing
// driver may legally call it on every line regardless.
func (p *PPU) Draw(ly int) {
	if ly < 0 || ly >= ScreenHeight {
		return
	}

	ctrl := p.controller()
	if !ctrl.Enabled {
		p.log.Debugf("ppu: skipping draw on line %d, LCD disabled", ly)
		return
	}

	if ly == 0 {
		p.FB.Clear()
	}

	p.spritesDrawn[ly] = 0

	if ctrl.BackgroundEnabled {
		p.drawBackground(ctrl, ly)
	}
	if ctrl.SpriteEnabled {
		p.drawSprites(ctrl, ly)
	}

	wy := p.bus.ReadRegister(types.WY)
	wx := int(p.bus.ReadRegister(types.WX)) - 7
	if ctrl.WindowEnabled && int(wy) <= ly && wx < ScreenWidth && wy >= 0 {
		p.drawWindow(ctrl, ly, wy, wx)
	}
}

// drawBackground draws the 21 background tile columns needed to cover
// horizontal scroll for the current line.
func (p *PPU) drawBackground(ctrl controllerView, ly int) {
	vram := p.bus.VRAM()
	scy := p.bus.ReadRegister(types.SCY)
	scx := p.bus.ReadRegister(types.SCX)

	tileDataOffset := ctrl.TileDataOffset()
	mapOffset := ctrl.BackgroundMapOffset()

	tileY := ((ly + int(scy)) / 8) % 32
	row := uint8((ly + int(scy)) % 8)

	for x := 0; x <= 20; x++ {
		tileX := (x + int(scx)/8) % 32
		mapAddr := mapOffset + uint16(tileY*32+tileX)

		tileNo := vram[mapAddr]
		var attr uint8
		if p.cgb {
			attr = vram[uint16(types.VRAMBankSize)+mapAddr]
		}

		p.drawTileRow(vram, tileDataOffset, tileNo, attr, row, x*8-int(scx)%8, ly, false)
	}
}

// drawWindow draws the window layer for the current line. wy/wx are
// the already-read WY/(WX-7) register values.
func (p *PPU) drawWindow(ctrl controllerView, ly int, wy uint8, wx int) {
	vram := p.bus.VRAM()
	mapOffset := ctrl.WindowMapOffset()

	y := (ly - int(wy)) / 8
	row := uint8((ly - int(wy)) % 8)

	xStart := wx / 8
	if xStart < 0 {
		xStart = 0
	}

	for x := xStart; x <= 20; x++ {
		mapAddr := mapOffset + uint16(y*32+x)
		tileNo := vram[mapAddr]
		var attr uint8
		if p.cgb {
			attr = vram[uint16(types.VRAMBankSize)+mapAddr]
		}

		p.drawTileRow(vram, ctrl.TileDataOffset(), tileNo, attr, row, wx+x*8, ly, true)
	}
}

// drawTileRow decodes and blends one 8-pixel BG/Window tile row at the
// given screen position, applying the background/window/sprite
// layer priority policy.
func (p *PPU) drawTileRow(vram []uint8, tileDataOffset uint16, tileNo, attr, row uint8, screenX, screenY int, isWindow bool) {
	bank := attr >> 3 & 1
	flipX := attr&types.Bit5 != 0
	flipY := attr&types.Bit6 != 0
	paletteIdx := attr & 0x7

	tileIndex := SignedTileIndex(tileDataOffset, tileNo)
	pixels := FetchTileRow(vram, bank, tileIndex, row, flipX, flipY)
	pal := p.Palettes.BG(paletteIdx)

	basePriority := P1
	for px, colorIdx := range pixels {
		priority := basePriority
		if colorIdx != 0 {
			priority = P3
		}
		if isWindow {
			priority = P6
		}
		p.FB.Draw(screenX+px, screenY, priority, uint32(pal.Colors[colorIdx]))
	}
}

// drawSprites scans OAM in index order, drawing up to 10 sprites that
// intersect the current line.
func (p *PPU) drawSprites(ctrl controllerView, ly int) {
	vram := p.bus.VRAM()
	oam := decodeOAM(p.bus.OAM())

	h := int(ctrl.SpriteSize)
	drawn := uint8(0)

	for i := 0; i < 40 && drawn < 10; i++ {
		o := oam[i]
		top := int(o.y) - 16
		if ly < top || ly >= top+h {
			continue
		}

		var bank uint8
		var pal Palette
		if p.cgb {
			bank = o.cgbBank()
			pal = p.Palettes.OBJ(o.cgbPalette())
		} else {
			bank = 0
			pal = p.Palettes.OBJ(o.dmgPalette())
		}

		priority := P5
		if o.bgOverObj() {
			priority = P2
		}

		var tileIdx int
		var rowInTile uint8
		lineInSprite := ly - top

		if h == 16 {
			topHalf, bottomHalf := o.tile&0xFE, o.tile|0x01
			if o.flipY() {
				topHalf, bottomHalf = bottomHalf, topHalf
			}
			if lineInSprite < 8 {
				tileIdx = int(topHalf)
				rowInTile = uint8(lineInSprite)
			} else {
				tileIdx = int(bottomHalf)
				rowInTile = uint8(lineInSprite - 8)
			}
		} else {
			tileIdx = int(o.tile)
			rowInTile = uint8(lineInSprite)
		}

		pixels := FetchTileRow(vram, bank, tileIdx, rowInTile, o.flipX(), o.flipY())
		for px, colorIdx := range pixels {
			if colorIdx == 0 {
				continue // sprite color index 0 is transparent
			}
			p.FB.Draw(int(o.x)-8+px, ly, priority, uint32(pal.Colors[colorIdx]))
		}

		drawn++
	}

	p.spritesDrawn[ly] = drawn
}
