package isa

// EAMode is the 12-entry base addressing-mode taxonomy from spec.md §4.3: the
// 6-bit <ea> field's mode/register pair collapsed into a single selector so
// that modes 7-11 (the "other" register submodes) sit alongside 0-6.
type EAMode int

const (
	EADataDirect    EAMode = iota // 0: Dn
	EAAddrDirect                  // 1: An
	EAAddrIndirect                // 2: (An)
	EAPostInc                     // 3: (An)+
	EAPreDec                      // 4: -(An)
	EADisp                        // 5: (d16,An)
	EAIndex                       // 6: (d8,An,Xn) / full extension format
	EAAbsShort                    // 7: (xxx).W
	EAAbsLong                     // 8: (xxx).L
	EAPCDisp                      // 9: (d16,PC)
	EAPCIndex                     // 10: (d8,PC,Xn)
	EAImmediate                   // 11: #<data>
)

// DecodeEAMode turns the raw (mode, register) fields of an <ea> into an
// EAMode per spec.md §4.2 step 2: modes 0-6 map directly; mode 7 fans out by
// register into modes 7-11.
func DecodeEAMode(mode, reg uint16) EAMode {
	if mode != 7 {
		return EAMode(mode)
	}
	switch reg {
	case 0:
		return EAAbsShort
	case 1:
		return EAAbsLong
	case 2:
		return EAPCDisp
	case 3:
		return EAPCIndex
	case 4:
		return EAImmediate
	default:
		return EAInvalid
	}
}

// EAInvalid marks an EA field that decoded to a reserved register number
// under mode 7 (5, 6, 7).
const EAInvalid EAMode = -1

// EAMaskBit returns the allowed-mode bitmask bit for a base EA mode (bits
// 0-11 of an opcode's source/destination mask, spec.md §4.3).
func EAMaskBit(m EAMode) uint16 {
	if m < 0 || m > EAImmediate {
		return 0
	}
	return 1 << uint(m)
}

// Common pre-built EA masks for the allowed-mode bitmask (spec.md §4.3).
const (
	EA_Data      = uint16(1) << EADataDirect
	EA_Addr      = uint16(1) << EAAddrDirect
	EA_AddrInd   = uint16(1) << EAAddrIndirect
	EA_PostInc   = uint16(1) << EAPostInc
	EA_PreDec    = uint16(1) << EAPreDec
	EA_Disp      = uint16(1) << EADisp
	EA_Index     = uint16(1) << EAIndex
	EA_AbsShort  = uint16(1) << EAAbsShort
	EA_AbsLong   = uint16(1) << EAAbsLong
	EA_PCDisp    = uint16(1) << EAPCDisp
	EA_PCIndex   = uint16(1) << EAPCIndex
	EA_Immediate = uint16(1) << EAImmediate

	// EA_Alterable is every writable destination mode: everything but
	// PC-relative and immediate.
	EA_Alterable = EA_Data | EA_Addr | EA_AddrInd | EA_PostInc | EA_PreDec | EA_Disp | EA_Index | EA_AbsShort | EA_AbsLong
	// EA_Control is every addressing mode that names a memory location
	// without implying increment/decrement (used by LEA, PEA, JMP, JSR).
	EA_Control = EA_AddrInd | EA_Disp | EA_Index | EA_AbsShort | EA_AbsLong | EA_PCDisp | EA_PCIndex
	// EA_Data_All is every mode usable as a readable source operand.
	EA_Data_All = EA_Data | EA_AddrInd | EA_PostInc | EA_PreDec | EA_Disp | EA_Index | EA_AbsShort | EA_AbsLong | EA_PCDisp | EA_PCIndex | EA_Immediate
	// EA_Memory_All is EA_Data_All without the data-register-direct mode,
	// for instructions that require a memory or PC-relative operand.
	EA_Memory_All = EA_Data_All &^ EA_Data
)

// PseudoMode selects one of the non-<ea> operand shapes spec.md §4.3 lists:
// CCR/SR/USP, MOVEM register list, quick immediate, and so on. Bit 15 of an
// opcode's mask selects a pseudo-mode directly instead of the 0-11 <ea> bits.
type PseudoMode int

const (
	PseudoNone PseudoMode = iota
	PseudoCCR
	PseudoSR
	PseudoUSP
	PseudoMovemList
	PseudoQuickImmediate
	PseudoBKPT
	PseudoDBccDisplacement
	PseudoTrapVector
	PseudoMoveq
	PseudoBccDisplacement
	PseudoStackDisplacement // LINK/RTD
	PseudoBitSource         // dynamic (Dn) vs static (next word) bit number
	PseudoBitField          // {offset, width} specifier
	PseudoRTMRegister
	PseudoCAS
	PseudoCAS2
	PseudoMulDiv32
	PseudoCacheReg
	PseudoMOVEC
	PseudoMOVES
	PseudoRotateShift
	PseudoCoprocessorBranch
	PseudoCoprocessorDisplacement
	PseudoFunctionCode
	PseudoFunctionCodeMask
	PseudoPValid
	PseudoPRegTT
	PseudoPRegFormat1
	PseudoPRegFormat2
	PseudoPTestOperand
	PseudoInvalid
)
