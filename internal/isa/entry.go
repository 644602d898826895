package isa

// Family groups opcode entries by the decoding/operand shape they share, so
// internal/dispatch and internal/operand can switch on something coarser than
// the mnemonic string.
type Family int

const (
	FamilyInvalid Family = iota
	FamilySystemNoOperand
	FamilyImmediateToStatus
	FamilyImmediateArith // ORI/ANDI/SUBI/ADDI/EORI/CMPI to <ea>
	FamilyBitManip       // BTST/BCHG/BCLR/BSET
	FamilyMOVEP
	FamilyMove // MOVE/MOVEA
	FamilyMoveToFromStatus
	FamilyMoveUSP
	FamilySingleOperand // NEGX/CLR/NEG/NOT/TST/NBCD/TAS
	FamilyPEA
	FamilyMOVEM
	FamilySwapExt
	FamilyLEA
	FamilyTrap
	FamilyLinkUnlk
	FamilyRTD
	FamilyJump // JMP/JSR
	FamilyAddqSubq
	FamilyScc
	FamilyDBcc
	FamilyBranch
	FamilyMoveq
	FamilyExg
	FamilyMulDivWord // MULU/MULS/DIVU/DIVS .w
	FamilyMulDivLong // MULU/MULS/DIVU/DIVS .l (64/32->32:32)
	FamilyABCDSBCD
	FamilyArith // ADD/SUB/CMP/AND/OR/EOR general forms
	FamilyAddrArith // ADDA/SUBA/CMPA
	FamilyAddxSubx
	FamilyCmpm
	FamilyChk
	FamilyShiftRotate
	FamilyBitField
	FamilyCAS
	FamilyCAS2
	FamilyChk2Cmp2
	FamilyRTM
	FamilyMOVEC
	FamilyMOVES
	FamilyCacheControl
	FamilyCoprocessorGeneral // catch-all for cpGEN/cpBcc/cpDBcc/cpScc/PMMU/PFLUSH/PTEST
	FamilyUnpackPack
	FamilyDCW // the invalid-instruction sentinel itself
)

// Flag bits carried by an opcode Entry (spec.md §4.2 "Opcode flag bits").
type Flag uint16

const (
	FlagAppendCC Flag = 1 << iota
	FlagAppendPCC
	FlagAppendSize
	FlagFixedSize
	FlagOneExtWord
)

// Entry is one row of the opcode table: (family, mnemonic, result, mask,
// source_ea_mask, dest_ea_mask, flags, cpu_mask) from spec.md §4.2.
//
// SrcMask/DstMask hold either an EA_* bitmask (bits 0-11) or, when
// PseudoSrc/PseudoDst is non-zero, select a pseudo-mode directly — mirroring
// "bit 15 and a low byte select a single pseudo-mode" in spec.md.
type Entry struct {
	Family    Family
	Mnemonic  string
	Mask      uint16
	Result    uint16
	SrcMask   uint16
	DstMask   uint16
	PseudoSrc PseudoMode
	PseudoDst PseudoMode
	Flags     Flag
	CPUs      CPUMask
	FixedSize Size // used when Flags&FlagFixedSize != 0
}

// Matches reports whether word decodes to this entry under the given
// configured CPU set (spec.md §4.2 step 1: "(w & mask) == result and
// cpu_mask ∩ configured_cpu_set ≠ ∅").
func (e *Entry) Matches(word uint16, cpus CPUMask) bool {
	return (word&e.Mask) == e.Result && (e.CPUs&cpus) != 0
}

// Effective is a per-decode copy of an Entry whose masks internal/dispatch
// may rewrite (spec.md §9: "never mutating the table"). Everything downstream
// reads from an Effective, never from the shared Table entry.
type Effective struct {
	Entry
	ExtWord    uint16 // cached one_more_word extension, if Flags&FlagOneExtWord
	HasExtWord bool
}
