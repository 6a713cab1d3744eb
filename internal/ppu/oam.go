package ppu

import "github.com/nullpixel/gbcore/internal/types"

// object is a single decoded OAM entry.
type object struct {
	y, x, tile, attr uint8
	oamIndex         uint8
}

func (o object) flipX() bool      { return o.attr&types.Bit5 != 0 }
func (o object) flipY() bool      { return o.attr&types.Bit6 != 0 }
func (o object) bgOverObj() bool  { return o.attr&types.Bit7 != 0 }
func (o object) cgbBank() uint8   { return o.attr >> 3 & 1 }
func (o object) cgbPalette() uint8 { return o.attr & 0x7 }
func (o object) dmgPalette() uint8 { return o.attr >> 4 & 1 }

// decodeOAM reads all 40 4-byte OAM entries in index order.
func decodeOAM(oam []uint8) [40]object {
	var out [40]object
	for i := 0; i < 40; i++ {
		base := i * 4
		out[i] = object{
			y:        oam[base],
			x:        oam[base+1],
			tile:     oam[base+2],
			attr:     oam[base+3],
			oamIndex: uint8(i),
		}
	}
	return out
}
