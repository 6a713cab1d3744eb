package palette

// Entry is a single row of the DMG boot ROM's compatibility palette
// table: the background, OBJ0 and OBJ1 palettes a game is assigned
// based on its cartridge header checksum, when no CGB-native palette
// data is present. Collapsed from the boot ROM's two-level
// (checksum, title-hash) table down to a checksum-only lookup; entries
// with a colliding checksum but a different title share the first
// match's row.
//
// https://tcrf.net/Game_Boy_Color_Bootstrap_ROM#Unused_Palette_Configurations
type Entry struct {
	BG, OBJ0, OBJ1 [4]Color
}

// CompatibilityTable maps a cartridge header checksum to its default
// compatibility palette entry.
var CompatibilityTable = map[uint8]Entry{
	0x03: {
		BG: [4]Color{RGB(0xFF, 0xFF, 0xFF), RGB(0xAD, 0xAD, 0x84), RGB(0x42, 0x73, 0x7B), RGB(0x00, 0x00, 0x00)},
	},
	0x14: {
		BG:   [4]Color{RGB(0xFF, 0xFF, 0xFF), RGB(0xFF, 0x84, 0x84), RGB(0x94, 0x3A, 0x3A), RGB(0x00, 0x00, 0x00)},
		OBJ0: [4]Color{RGB(0xFF, 0xFF, 0xFF), RGB(0x7B, 0xFF, 0x31), RGB(0x00, 0x84, 0x00), RGB(0x00, 0x00, 0x00)},
		OBJ1: [4]Color{RGB(0xFF, 0xFF, 0xFF), RGB(0xFF, 0x84, 0x84), RGB(0x94, 0x3A, 0x3A), RGB(0x00, 0x00, 0x00)},
	},
	0x15: {
		BG:   [4]Color{RGB(0xFF, 0xFF, 0xFF), RGB(0xFF, 0xFF, 0x00), RGB(0xFF, 0x00, 0x00), RGB(0x00, 0x00, 0x00)},
		OBJ0: [4]Color{RGB(0xFF, 0xFF, 0xFF), RGB(0xFF, 0xFF, 0x00), RGB(0xFF, 0x00, 0x00), RGB(0x00, 0x00, 0x00)},
		OBJ1: [4]Color{RGB(0xFF, 0xFF, 0xFF), RGB(0xFF, 0xFF, 0x00), RGB(0xFF, 0x00, 0x00), RGB(0x00, 0x00, 0x00)},
	},
	0x3D: {
		BG:   [4]Color{RGB(0xFF, 0xFF, 0xFF), RGB(0x52, 0xFF, 0x00), RGB(0xFF, 0x42, 0x00), RGB(0x00, 0x00, 0x00)},
		OBJ0: [4]Color{RGB(0xFF, 0xFF, 0xFF), RGB(0xFF, 0x84, 0x84), RGB(0x94, 0x3A, 0x3A), RGB(0x00, 0x00, 0x00)},
		OBJ1: [4]Color{RGB(0xFF, 0xFF, 0xFF), RGB(0xFF, 0x84, 0x84), RGB(0x94, 0x3A, 0x3A), RGB(0x00, 0x00, 0x00)},
	},
	0xC9: {
		BG:   [4]Color{RGB(0xFF, 0xFF, 0xCE), RGB(0x63, 0xEF, 0xEF), RGB(0x9C, 0x84, 0x31), RGB(0x5A, 0x5A, 0x5A)},
		OBJ0: [4]Color{RGB(0xFF, 0xFF, 0xFF), RGB(0xFF, 0x73, 0x00), RGB(0x94, 0x42, 0x00), RGB(0x00, 0x00, 0x00)},
		OBJ1: [4]Color{RGB(0xFF, 0xFF, 0xFF), RGB(0x63, 0xAF, 0xFF), RGB(0x00, 0x00, 0xFF), RGB(0x00, 0x00, 0x00)},
	},
	0xDB: {
		BG:   [4]Color{RGB(0xFF, 0xFF, 0xFF), RGB(0xFF, 0xFF, 0x00), RGB(0xFF, 0x00, 0x00), RGB(0x00, 0x00, 0x00)},
		OBJ0: [4]Color{RGB(0xFF, 0xFF, 0xFF), RGB(0xFF, 0xFF, 0x00), RGB(0xFF, 0x00, 0x00), RGB(0x00, 0x00, 0x00)},
		OBJ1: [4]Color{RGB(0xFF, 0xFF, 0xFF), RGB(0xFF, 0xFF, 0x00), RGB(0xFF, 0x00, 0x00), RGB(0x00, 0x00, 0x00)},
	},
}

// Lookup returns the compatibility palette entry for the given header
// checksum, or ok=false when the checksum isn't in the table, in which
// case the Store falls back to plain grayscale.
func Lookup(checksum uint8) (Entry, bool) {
	e, ok := CompatibilityTable[checksum]
	return e, ok
}
