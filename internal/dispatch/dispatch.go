// Package dispatch implements the opcode-family dispatcher (DoSpecific,
// spec.md §4.4): family-specific adjustments that the generic (mask,
// result) classification in internal/isa can't express — extra allowed
// modes on later CPUs and mnemonic sub-variants. It does not check reserved
// bits of the opcode word. It operates entirely on an isa.Effective copy and never mutates the
// shared isa.Table.
package dispatch

import (
	"fmt"

	"github.com/m68kira/ira68/internal/isa"
)

// Apply runs the family-specific override for eff against the decoded
// opcode word, given the caller's configured CPU set. It always returns true:
// no family rule here rejects a word, so reserved bits and control registers
// are not validated.
func Apply(eff *isa.Effective, word uint16, cpus isa.CPUMask) bool {
	switch eff.Family {
	case isa.FamilyImmediateArith:
		if eff.Mnemonic == "cmpi" && cpus&isa.CPU020Up != 0 {
			eff.DstMask |= isa.EA_PCDisp | isa.EA_PCIndex
		}
	case isa.FamilySingleOperand:
		if eff.Mnemonic == "tst" && cpus&isa.CPU020Up != 0 {
			eff.DstMask |= isa.EA_PCDisp | isa.EA_PCIndex | isa.EA_Immediate
		}
	case isa.FamilyCacheControl:
		applyCacheScope(eff, word)
	case isa.FamilyMOVEC, isa.FamilyMOVES:
		// Nothing to adjust from the opcode word alone. The control register
		// ID is read by internal/operand, which names it without checking it
		// against the configured CPUs.
	case isa.FamilyBitField:
		// Sub-op identity already lives in the table as distinct entries
		// (BFTST/BFEXTU/...); only the {EA_mask_A, EA_mask_B} duality from
		// spec.md §4.4 needs handling, applied here for the EXT*/FFO/TST
		// register-only forms.
		if eff.Mnemonic == "bftst" || eff.Mnemonic == "bfexts" || eff.Mnemonic == "bfextu" || eff.Mnemonic == "bfffo" {
			eff.DstMask = isa.EA_Data | isa.EA_Memory_All&^isa.EA_Immediate
		}
	}
	return true
}

// applyCacheScope picks the line/page/all scope selected by bits 6-7 of a
// CINV/CPUSH opcode word, rewriting the mnemonic the way spec.md §4.4
// describes ("CINV/CPUSH line/page variants").
func applyCacheScope(eff *isa.Effective, word uint16) {
	scope := (word >> 6) & 0x3
	names := [4]string{"", "l", "p", "a"}
	suffix := names[scope]
	if suffix == "" {
		return
	}
	eff.Mnemonic = fmt.Sprintf("%s%s", eff.Mnemonic, suffix)
}
