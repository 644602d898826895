package image

import "sort"

// Reloc is a single relocation entry: at AtAddress in the image lies a 32-bit
// pointer whose symbolic target is (TargetSection start + Offset).
type Reloc struct {
	AtAddress     uint32
	TargetValue   uint32
	Offset        uint32
	TargetSection int // index into Image.Sections
}

// RelocTable keeps relocations sorted strictly ascending by AtAddress, with
// duplicates collapsing on insert (spec.md §3 invariant).
type RelocTable struct {
	entries []Reloc
}

// Insert adds r, collapsing an existing entry at the same address.
func (t *RelocTable) Insert(r Reloc) {
	i := sort.Search(len(t.entries), func(i int) bool { return t.entries[i].AtAddress >= r.AtAddress })
	if i < len(t.entries) && t.entries[i].AtAddress == r.AtAddress {
		t.entries[i] = r
		return
	}
	t.entries = append(t.entries, Reloc{})
	copy(t.entries[i+1:], t.entries[i:])
	t.entries[i] = r
}

// At returns the relocation at addr, if any.
func (t *RelocTable) At(addr uint32) (Reloc, bool) {
	i := sort.Search(len(t.entries), func(i int) bool { return t.entries[i].AtAddress >= addr })
	if i < len(t.entries) && t.entries[i].AtAddress == addr {
		return t.entries[i], true
	}
	return Reloc{}, false
}

// All returns the relocations in ascending address order. Callers must not
// mutate the returned slice.
func (t *RelocTable) All() []Reloc { return t.entries }

// Len returns the number of relocations.
func (t *RelocTable) Len() int { return len(t.entries) }
