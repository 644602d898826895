package isa

// Fields holds the generic SEAOW field split described in spec.md §4.2 step 2:
// every 680x0 instruction word decomposes the same way regardless of family,
// before family-specific code decides what each field means.
type Fields struct {
	EAReg   uint16 // w & 0b111
	AltReg  uint16 // (w>>9)&0b111 — also the rotate/shift count; 0 means 8
	Mode    EAMode // the 12-way addressing-mode selector (spec.md step 2)
	RawMode uint16 // (w>>3)&0b111 before the mode-7 fan-out, 0-7
	Size    Size   // from the opcode's fixed size, or (w>>6)&0b11 otherwise
}

// Decompose extracts the generic fields of word. If the entry's flags declare
// a fixed size, that size is used instead of reading the size field from the
// word (spec.md step 2).
func Decompose(word uint16, e *Entry) Fields {
	eaReg := word & 0b111
	altReg := (word >> 9) & 0b111
	rawMode := (word >> 3) & 0b111

	var mode EAMode
	if rawMode != 0b111 {
		mode = EAMode(rawMode)
	} else {
		mode = DecodeEAMode(7, eaReg)
	}

	var size Size
	if e != nil && e.Flags&FlagFixedSize != 0 {
		size = e.FixedSize
	} else {
		size = SizeFromBits(word >> 6)
	}

	return Fields{EAReg: eaReg, AltReg: altReg, Mode: mode, RawMode: rawMode, Size: size}
}

// RotateCount interprets AltReg as a shift/rotate count, where 0 means 8
// (spec.md §8 boundary behavior).
func (f Fields) RotateCount() int {
	if f.AltReg == 0 {
		return 8
	}
	return int(f.AltReg)
}
