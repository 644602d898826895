// Package operand resolves the 680x0 addressing-mode space (spec.md §4.3)
// against a flat image: turning a decoded Entry/Fields pair into operand
// text (Pass 2) or just the labels/xrefs it touches (Pass 1). Both passes
// share this single implementation, selected by Context.LabelsOnly.
package operand

import (
	"fmt"

	"github.com/m68kira/ira68/internal/image"
	"github.com/m68kira/ira68/internal/isa"
	"github.com/m68kira/ira68/internal/symbols"
)

// Context carries everything a resolution needs: the image being read, the
// cursor past the opcode word, and the tables label/equate/xref lookups
// consult.
type Context struct {
	Img      *image.Image
	InsnAddr uint32 // address of the opcode word itself
	Cursor   uint32 // next unread byte
	Resolver *symbols.Resolver
	Equates  *image.EquateTable
	Relocs   *image.RelocTable
	Labels   *image.Labels

	LabelsOnly      bool // Pass 1: record labels/xrefs only, skip text formatting
	ImmedByteCompat bool // accept a sign-extended high byte on byte immediates
	AddressEmission bool // append ";<hex>" trailing comments
}

// Result is what a single operand resolution produced.
type Result struct {
	Text    string
	Labels  []uint32
	Invalid bool
}

func invalid() Result { return Result{Invalid: true} }

func text(s string) Result { return Result{Text: s} }

func withLabel(s string, addr uint32) Result { return Result{Text: s, Labels: []uint32{addr}} }

// readWord consumes and returns the big-endian word at the cursor.
func (c *Context) readWord() uint16 {
	w := c.Img.Word(c.Cursor)
	c.Cursor += 2
	return w
}

// readLong consumes and returns the big-endian longword at the cursor.
func (c *Context) readLong() uint32 {
	l := c.Img.Long(c.Cursor)
	c.Cursor += 4
	return l
}

func dataReg(n uint16) string { return fmt.Sprintf("d%d", n) }
func addrReg(n uint16) string { return fmt.Sprintf("a%d", n) }

// Local aliases keep ea.go/pseudo.go readable without an isa./image. prefix
// on every mode/size constant.
type (
	EAMode = isa.EAMode
	Size   = isa.Size
)

const (
	EADataDirect  = isa.EADataDirect
	EAAddrDirect  = isa.EAAddrDirect
	EAAddrIndirect = isa.EAAddrIndirect
	EAPostInc     = isa.EAPostInc
	EAPreDec      = isa.EAPreDec
	EADisp        = isa.EADisp
	EAIndex       = isa.EAIndex
	EAAbsShort    = isa.EAAbsShort
	EAAbsLong     = isa.EAAbsLong
	EAPCDisp      = isa.EAPCDisp
	EAPCIndex     = isa.EAPCIndex
	EAImmediate   = isa.EAImmediate

	SizeByte = isa.SizeByte
	SizeWord = isa.SizeWord
	SizeLong = isa.SizeLong
)

func symbolsModeDirect() symbols.Mode        { return symbols.ModeDirect }
func symbolsModeViaRelocation() symbols.Mode { return symbols.ModeViaRelocation }

func equByte() image.EquSize { return image.EquByte }
func equWord() image.EquSize { return image.EquWord }
func equLong() image.EquSize { return image.EquLong }
