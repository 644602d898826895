package analysis

import (
	"github.com/m68kira/ira68/internal/image"
	"github.com/m68kira/ira68/internal/isa"
	"github.com/m68kira/ira68/internal/operand"
	"github.com/m68kira/ira68/internal/symbols"
)

// State is the mutable analysis record threaded through all three passes
// (spec.md §9's "global mutable record", reshaped as an explicit value
// instead of package-level globals). internal/engine owns the Config-facing
// wiring and embeds a *State, exposing Pass0/Pass1/Pass2 as its own methods.
type State struct {
	Img      *image.Image
	Areas    image.CodeArea
	Labels   *image.Labels
	Relocs   *image.RelocTable
	Equates  *image.EquateTable
	SymTab   *image.SymbolTable
	Xrefs    *image.XrefTable
	Resolver *symbols.Resolver

	JumpTables []image.JumpTable
	NoBase     image.IntervalSet
	NoPointer  image.IntervalSet
	TextAreas  image.IntervalSet
	Comments   image.CommentTable
	Confirmed  image.IntervalSet // configured "confirmed code areas" (spec.md §4.5)

	CPUs            isa.CPUMask
	ImmedByteCompat bool
	AddressEmission bool
	SplitFile       bool
	BinaryMode      bool // raw-binary container: emit ORG instead of SECTION

	Trace image.Trace
}

// newContext builds an operand.Context rooted at addr for this state.
func (s *State) newContext(addr uint32, labelsOnly bool) *operand.Context {
	return &operand.Context{
		Img:             s.Img,
		Cursor:          addr,
		Resolver:        s.Resolver,
		Equates:         s.Equates,
		Relocs:          s.Relocs,
		Labels:          s.Labels,
		LabelsOnly:      labelsOnly,
		ImmedByteCompat: s.ImmedByteCompat,
		AddressEmission: s.AddressEmission,
	}
}

// terminates reports whether mnemonic ends a straight-line walk (spec.md
// §4.5 Pass 0: "RTS/RTE/RTR/RTD/RTM, unconditional JMP, unconditional BRA").
func terminates(mnemonic string) bool {
	switch mnemonic {
	case "rts", "rte", "rtr", "rtd", "rtm", "jmp", "bra":
		return true
	default:
		return false
	}
}

// CodeAreaCount reports the number of finalized code areas.
func (s *State) CodeAreaCount() int { return s.Areas.Len() }
