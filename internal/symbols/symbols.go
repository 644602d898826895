// Package symbols implements the label/cross-reference resolver (spec.md
// §4.8): turning a raw address into the operand text Pass 2 emits, and
// recording addresses that fall outside the image as external references.
package symbols

import (
	"fmt"
	"sort"

	"github.com/m68kira/ira68/internal/image"
)

// BaseReg is the optional `(An, base_address, offset)` configuration that
// lets an address relative to a fixed register be emitted symbolically
// relative to a section (spec.md §4.8 step 1).
type BaseReg struct {
	Active  bool
	Reg     int // 0-7, An
	Base    uint32
	Section int
}

// HardwareEntry is one statically-known hardware address, used by GetXref's
// binary search (spec.md §4.8: "matches a statically-known hardware
// address").
type HardwareEntry struct {
	Address uint32
	Name    string
}

// Resolver turns addresses into operand text and tracks which ones turned
// out to be external references.
type Resolver struct {
	Image    *image.Image
	Labels   *image.Labels
	Symbols  *image.SymbolTable
	Xrefs    *image.XrefTable
	BaseReg  BaseReg
	Hardware []HardwareEntry // must stay sorted by Address
}

// NewResolver builds a Resolver over the given image and tables.
func NewResolver(img *image.Image, labels *image.Labels, syms *image.SymbolTable, xrefs *image.XrefTable) *Resolver {
	return &Resolver{Image: img, Labels: labels, Symbols: syms, Xrefs: xrefs}
}

// Mode records how an address reached GetLabel. GetLabel does not read it:
// both modes get the same corrected-label rules.
type Mode int

const (
	// ModeDirect: the raw address is trusted as-is (step 5).
	ModeDirect Mode = iota
	// ModeViaRelocation: address arrived through a relocation entry and a
	// corrected (post-relocation) value is available (step 4).
	ModeViaRelocation
)

// GetLabel produces the operand text for a label reference at address,
// following spec.md §4.8.
func (r *Resolver) GetLabel(address uint32, mode Mode) string {
	if r.BaseReg.Active {
		if sec := r.sectionOf(r.BaseReg.Section); sec != nil && !sec.Contains(address) {
			return fmt.Sprintf("SECSTRT_%d+%d  ; warning: outside base section", r.BaseReg.Section, int64(address)-int64(sec.Base()))
		}
	}

	idx, found := r.Labels.Index(address)
	if !found {
		return fmt.Sprintf("LAB_%04X", address)
	}
	// Index already returns the leftmost match (step 3).
	labelAddr := r.Labels.All()[idx]

	if secIdx := r.sectionIndexContainingBase(labelAddr); secIdx >= 0 {
		delta := int64(address) - int64(labelAddr)
		if delta == 0 {
			return fmt.Sprintf("SECSTRT_%d", secIdx)
		}
		return fmt.Sprintf("SECSTRT_%d%s", secIdx, signedDelta(delta))
	}

	if name, ok := r.Symbols.Lookup(labelAddr); ok {
		return name + signedDelta(int64(address)-int64(labelAddr))
	}
	return fmt.Sprintf("LAB_%d%s", idx, signedDelta(int64(address)-int64(labelAddr)))
}

func signedDelta(delta int64) string {
	if delta == 0 {
		return ""
	}
	if delta > 0 {
		return fmt.Sprintf("+%d", delta)
	}
	return fmt.Sprintf("%d", delta)
}

func (r *Resolver) sectionOf(idx int) *image.Section {
	if idx < 0 || idx >= len(r.Image.Sections) {
		return nil
	}
	return r.Image.Sections[idx]
}

func (r *Resolver) sectionIndexContainingBase(addr uint32) int {
	for i, s := range r.Image.Sections {
		if s.Base() == addr {
			return i
		}
	}
	return -1
}

// GetXref resolves address as an external reference: a known hardware name
// if one matches, else a synthesized EXT_<hex> (spec.md §4.8).
func (r *Resolver) GetXref(address uint32) string {
	i := sort.Search(len(r.Hardware), func(i int) bool { return r.Hardware[i].Address >= address })
	if i < len(r.Hardware) && r.Hardware[i].Address == address {
		return r.Hardware[i].Name
	}
	x, _ := r.Xrefs.Get(address)
	if x.Name == "" {
		x.Name = fmt.Sprintf("EXT_%X", address)
	}
	return x.Name
}
