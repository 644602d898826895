// Package engine ties the container reader, instruction decoder, and the
// three analysis passes into the single root value that spec.md §9 calls
// for: an Engine holding the immutable inputs (image, config) and the
// mutable analysis tables, with each pass exposed as a method.
package engine

import (
	"github.com/m68kira/ira68/internal/image"
	"github.com/m68kira/ira68/internal/isa"
	"github.com/m68kira/ira68/internal/symbols"
)

// Flag is one bit of the configuration flag set spec.md §6 lists verbatim.
type Flag uint32

const (
	FlagPREPROC Flag = 1 << iota
	FlagCONFIG
	FlagSPLITFILE
	FlagKeepBinary
	FlagKeepZeroHunks
	FlagESCCODES
	FlagADROutput
	FlagOldStyle
	FlagNewStyle
	FlagBASEREG1
	FlagBASEREG2
	FlagShowRelocInfo
)

// Has reports whether f is set in the receiver.
func (fs Flag) Has(f Flag) bool { return fs&f != 0 }

// Config is the populated configuration record spec.md §6 declares as an
// out-of-scope input: everything cmd/ira68 gathers from flags and an
// optional project file before a run starts.
type Config struct {
	Base  uint32
	Entry uint32
	CPUs  isa.CPUMask

	BaseReg symbols.BaseReg

	CodeAreas  []AreaOverride
	NoBase     []AreaOverride
	NoPointer  []AreaOverride
	TextAreas  []AreaOverride
	JumpTables []image.JumpTable
	Symbols    []image.Symbol
	Equates    []image.Equate
	Comments   []image.Comment
	Banners    []image.Banner

	Flags Flag

	ImmedByteCompat bool
}

// AreaOverride is a configured [Start, End) range, shared by the code-area,
// no-base, no-pointer, and text-area override lists.
type AreaOverride struct {
	Start, End uint32
}
