package palette

// Palette is four resolved colors; index 0 is logically transparent
// when the palette is used for a sprite.
type Palette struct {
	Colors [4]Color
}

// Store holds the eight background and eight object palettes, plus the
// CGB palette RAM they're derived from on CGB, and the DMG
// colorisation tables that DMG register writes are remapped
// through.
type Store struct {
	bg  [8]Palette
	obj [8]Palette

	bgRAM  [64]uint8
	objRAM [64]uint8

	// DMG colorisation base palettes: the compatibility-table entry (or
	// pure grayscale, if none matched the cartridge checksum) that DMG
	// register writes are mapped through.
	bgCompat, obj0Compat, obj1Compat Palette

	cgb bool
}

// grayscale is used as the DMG colorisation base when no compatibility
// table entry matches the cartridge's checksum.
var grayscale = Palette{Colors: [4]Color{
	RGB(0xFF, 0xFF, 0xFF), RGB(0xAA, 0xAA, 0xAA), RGB(0x55, 0x55, 0x55), RGB(0x00, 0x00, 0x00),
}}

// New builds a Store for the given hardware mode. On CGB, background
// palette RAM is filled with RGB555 white (word 0x7FFF in every color
// slot) and every background palette recomputed from it. On DMG,
// the checksum-indexed compatibility entry (falling back to plain
// grayscale) seeds bg(0), obj(0) and obj(1).
func New(cgb bool, checksum uint8) *Store {
	s := &Store{cgb: cgb}

	entry, ok := Lookup(checksum)
	if ok {
		s.bgCompat = Palette{Colors: entry.BG}
		s.obj0Compat = Palette{Colors: entry.OBJ0}
		s.obj1Compat = Palette{Colors: entry.OBJ1}
	} else {
		s.bgCompat, s.obj0Compat, s.obj1Compat = grayscale, grayscale, grayscale
	}
	// a zero-value OBJ0/OBJ1 sub-entry (checksum matched BG only) falls
	// back to grayscale rather than staying pure black.
	if s.obj0Compat == (Palette{}) {
		s.obj0Compat = grayscale
	}
	if s.obj1Compat == (Palette{}) {
		s.obj1Compat = grayscale
	}

	if cgb {
		for i := 0; i < len(s.bgRAM); i += 2 {
			s.bgRAM[i] = 0xFF
			s.bgRAM[i+1] = 0x7F
		}
		for i := 0; i < 8; i++ {
			s.recomputeCGB(&s.bg, s.bgRAM[:], i)
		}
		// object palette RAM starts undefined on hardware; zero is as
		// good a default as any and keeps behaviour deterministic.
	} else {
		s.SetDMGBG(0xE4)
		s.SetDMGOBJ0(0xE4)
		s.SetDMGOBJ1(0xE4)
	}

	return s
}

func dmgIndex(value uint8, i int) uint8 {
	return (value >> uint(2*i)) & 0x3
}

// SetDMGBG recomputes bg(0) from the BGP register value by mapping each
// of its four 2-bit groups through the BG colorisation table.
func (s *Store) SetDMGBG(value uint8) {
	for i := 0; i < 4; i++ {
		s.bg[0].Colors[i] = s.bgCompat.Colors[dmgIndex(value, i)]
	}
}

// SetDMGOBJ0 recomputes obj(0) from the OBP0 register value.
func (s *Store) SetDMGOBJ0(value uint8) {
	for i := 0; i < 4; i++ {
		s.obj[0].Colors[i] = s.obj0Compat.Colors[dmgIndex(value, i)]
	}
}

// SetDMGOBJ1 recomputes obj(1) from the OBP1 register value.
func (s *Store) SetDMGOBJ1(value uint8) {
	for i := 0; i < 4; i++ {
		s.obj[1].Colors[i] = s.obj1Compat.Colors[dmgIndex(value, i)]
	}
}

// WriteCGBBG stores a byte into CGB background palette RAM at the
// given offset (0-63) and recomputes the affected palette entry.
func (s *Store) WriteCGBBG(offset uint8, value uint8) {
	offset = clampOffset(offset)
	s.bgRAM[offset] = value
	s.recomputeCGB(&s.bg, s.bgRAM[:], int(offset)>>3)
}

// WriteCGBOBJ stores a byte into CGB object palette RAM at the given
// offset (0-63) and recomputes the affected palette entry.
func (s *Store) WriteCGBOBJ(offset uint8, value uint8) {
	offset = clampOffset(offset)
	s.objRAM[offset] = value
	s.recomputeCGB(&s.obj, s.objRAM[:], int(offset)>>3)
}

// clampOffset wraps an out-of-range palette RAM offset into range
// rather than letting it corrupt adjacent memory.
func clampOffset(offset uint8) uint8 {
	if offset > 63 {
		return offset & 0x3F
	}
	return offset
}

// recomputeCGB recomputes all four colors of palette index palIdx from
// the two-byte little-endian RGB555 words stored in ram.
func (s *Store) recomputeCGB(palettes *[8]Palette, ram []uint8, palIdx int) {
	base := palIdx * 8
	for c := 0; c < 4; c++ {
		lo := ram[base+c*2]
		hi := ram[base+c*2+1]
		word := uint16(lo) | uint16(hi)<<8
		palettes[palIdx].Colors[c] = decodeRGB555(word)
	}
}

// BG returns the background palette at index i (0-7 on CGB, only 0
// defined on DMG).
func (s *Store) BG(i uint8) Palette {
	return s.bg[i&0x7]
}

// OBJ returns the object palette at index i (0-7 on CGB, only 0 and 1
// defined on DMG).
func (s *Store) OBJ(i uint8) Palette {
	return s.obj[i&0x7]
}

// ReadCGBBG reads back a byte of CGB background palette RAM.
func (s *Store) ReadCGBBG(offset uint8) uint8 {
	return s.bgRAM[clampOffset(offset)]
}

// ReadCGBOBJ reads back a byte of CGB object palette RAM.
func (s *Store) ReadCGBOBJ(offset uint8) uint8 {
	return s.objRAM[clampOffset(offset)]
}
