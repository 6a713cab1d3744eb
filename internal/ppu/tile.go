package ppu

import "github.com/nullpixel/gbcore/internal/types"

// FetchTileRow decodes one 8-pixel row of 2-bit color indices from
// VRAM. tileIndex is in [0,383]: [0,255] address
// 0x0000-0x0FFF within the bank unsigned, and [256,383] address
// 0x1000-0x17FF (the CGB/DMG "signed addressing" second pattern table).
// It is a pure function over VRAM; there are no failure modes.
func FetchTileRow(vram []uint8, bank uint8, tileIndex int, row uint8, flipX, flipY bool) [8]uint8 {
	base := int(bank)*types.VRAMBankSize + tileIndex*16

	r := row
	if flipY {
		r = 7 - row
	}

	lo := vram[base+int(r)*2]
	hi := vram[base+int(r)*2+1]

	var out [8]uint8
	for px := uint8(0); px < 8; px++ {
		lx := px
		if flipX {
			lx = 7 - px
		}
		bit := 7 - lx
		out[px] = (hi>>bit&1)<<1 | (lo >> bit & 1)
	}
	return out
}

// SignedTileIndex converts a raw tile map byte and the LCDC addressing
// mode into the [0,383] index FetchTileRow expects: unsigned addressing
// (tileDataOffset==0) uses the byte directly, signed addressing
// (tileDataOffset==0x800) treats bytes >=128 as tiles 0-127 of the
// second pattern table (indices 256-383).
func SignedTileIndex(tileDataOffset uint16, tileNo uint8) int {
	if tileDataOffset == 0 {
		return int(tileNo)
	}
	if tileNo < 128 {
		return int(tileNo) + 256
	}
	return int(tileNo)
}
