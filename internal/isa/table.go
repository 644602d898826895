package isa

// Table is the statically ordered opcode table spec.md §4.2 describes: a
// word matches the first entry whose (mask, result, cpu_mask) matches. The
// final entry is the "DC.W <hex>" invalid-instruction sentinel that matches
// unconditionally.
//
// Constants below reuse the well-known 680x0 encodings; family/flag
// assignment follows spec.md §4.2-§4.4.
var Table = buildTable()

func buildTable() []Entry {
	return []Entry{
		// --- Immediate-to-status-register forms (must precede the general
		// immediate-arithmetic entries below, which would otherwise also match) ---
		{Family: FamilyImmediateToStatus, Mnemonic: "ori", Mask: 0xFFFF, Result: 0x003C, PseudoDst: PseudoCCR, Flags: FlagFixedSize, FixedSize: SizeByte, CPUs: CPUAll},
		{Family: FamilyImmediateToStatus, Mnemonic: "ori", Mask: 0xFFFF, Result: 0x007C, PseudoDst: PseudoSR, Flags: FlagFixedSize, FixedSize: SizeWord, CPUs: CPUAll},
		{Family: FamilyImmediateToStatus, Mnemonic: "andi", Mask: 0xFFFF, Result: 0x023C, PseudoDst: PseudoCCR, Flags: FlagFixedSize, FixedSize: SizeByte, CPUs: CPUAll},
		{Family: FamilyImmediateToStatus, Mnemonic: "andi", Mask: 0xFFFF, Result: 0x027C, PseudoDst: PseudoSR, Flags: FlagFixedSize, FixedSize: SizeWord, CPUs: CPUAll},
		{Family: FamilyImmediateToStatus, Mnemonic: "eori", Mask: 0xFFFF, Result: 0x0A3C, PseudoDst: PseudoCCR, Flags: FlagFixedSize, FixedSize: SizeByte, CPUs: CPUAll},
		{Family: FamilyImmediateToStatus, Mnemonic: "eori", Mask: 0xFFFF, Result: 0x0A7C, PseudoDst: PseudoSR, Flags: FlagFixedSize, FixedSize: SizeWord, CPUs: CPUAll},

		// --- Immediate arithmetic/logical to <ea> ---
		{Family: FamilyImmediateArith, Mnemonic: "ori", Mask: 0xFF00, Result: 0x0000, DstMask: EA_Data_All &^ (EA_Immediate | EA_PCDisp | EA_PCIndex), Flags: FlagAppendSize, CPUs: CPUAll},
		{Family: FamilyImmediateArith, Mnemonic: "andi", Mask: 0xFF00, Result: 0x0200, DstMask: EA_Data_All &^ (EA_Immediate | EA_PCDisp | EA_PCIndex), Flags: FlagAppendSize, CPUs: CPUAll},
		{Family: FamilyImmediateArith, Mnemonic: "subi", Mask: 0xFF00, Result: 0x0400, DstMask: EA_Data_All &^ (EA_Immediate | EA_PCDisp | EA_PCIndex), Flags: FlagAppendSize, CPUs: CPUAll},
		{Family: FamilyImmediateArith, Mnemonic: "addi", Mask: 0xFF00, Result: 0x0600, DstMask: EA_Data_All &^ (EA_Immediate | EA_PCDisp | EA_PCIndex), Flags: FlagAppendSize, CPUs: CPUAll},
		{Family: FamilyImmediateArith, Mnemonic: "eori", Mask: 0xFF00, Result: 0x0A00, DstMask: EA_Data_All &^ (EA_Immediate | EA_PCDisp | EA_PCIndex), Flags: FlagAppendSize, CPUs: CPUAll},
		{Family: FamilyImmediateArith, Mnemonic: "cmpi", Mask: 0xFF00, Result: 0x0C00, DstMask: EA_Data_All &^ EA_Immediate, Flags: FlagAppendSize, CPUs: CPUAll},

		// --- CAS2 / CAS / CHK2 (68020+, must precede the generic bit-manip entries) ---
		{Family: FamilyCAS2, Mnemonic: "cas2", Mask: 0xFFF8, Result: 0x0CFC, Flags: FlagFixedSize | FlagOneExtWord, FixedSize: SizeWord, CPUs: CPU020Up},
		{Family: FamilyCAS2, Mnemonic: "cas2", Mask: 0xFFF8, Result: 0x0EFC, Flags: FlagFixedSize | FlagOneExtWord, FixedSize: SizeLong, CPUs: CPU020Up},
		{Family: FamilyCAS, Mnemonic: "cas", Mask: 0xFFC0, Result: 0x0AC0, DstMask: EA_Memory_All, Flags: FlagFixedSize | FlagOneExtWord, FixedSize: SizeByte, CPUs: CPU020Up},
		{Family: FamilyCAS, Mnemonic: "cas", Mask: 0xFFC0, Result: 0x0CC0, DstMask: EA_Memory_All, Flags: FlagFixedSize | FlagOneExtWord, FixedSize: SizeWord, CPUs: CPU020Up},
		{Family: FamilyCAS, Mnemonic: "cas", Mask: 0xFFC0, Result: 0x0EC0, DstMask: EA_Memory_All, Flags: FlagFixedSize | FlagOneExtWord, FixedSize: SizeLong, CPUs: CPU020Up},
		{Family: FamilyChk2Cmp2, Mnemonic: "chk2", Mask: 0xF9FF, Result: 0x00C0, Flags: FlagOneExtWord, CPUs: CPU020Up},

		// --- Bit manipulation (dynamic Dn,<ea> and static #imm,<ea>) ---
		{Family: FamilyBitManip, Mnemonic: "btst", Mask: 0xF1C0, Result: 0x0100, CPUs: CPUAll},
		{Family: FamilyBitManip, Mnemonic: "bchg", Mask: 0xF1C0, Result: 0x0140, CPUs: CPUAll},
		{Family: FamilyBitManip, Mnemonic: "bclr", Mask: 0xF1C0, Result: 0x0180, CPUs: CPUAll},
		{Family: FamilyBitManip, Mnemonic: "bset", Mask: 0xF1C0, Result: 0x01C0, CPUs: CPUAll},
		{Family: FamilyBitManip, Mnemonic: "btst", Mask: 0xFFC0, Result: 0x0800, Flags: FlagOneExtWord, CPUs: CPUAll},
		{Family: FamilyBitManip, Mnemonic: "bchg", Mask: 0xFFC0, Result: 0x0840, Flags: FlagOneExtWord, CPUs: CPUAll},
		{Family: FamilyBitManip, Mnemonic: "bclr", Mask: 0xFFC0, Result: 0x0880, Flags: FlagOneExtWord, CPUs: CPUAll},
		{Family: FamilyBitManip, Mnemonic: "bset", Mask: 0xFFC0, Result: 0x08C0, Flags: FlagOneExtWord, CPUs: CPUAll},

		// --- Bit field (68020+), one entry per sub-op (bits 8-10) ---
		{Family: FamilyBitField, Mnemonic: "bftst", Mask: 0xFFC0, Result: 0xE8C0, Flags: FlagOneExtWord, CPUs: CPU020Up},
		{Family: FamilyBitField, Mnemonic: "bfextu", Mask: 0xFFC0, Result: 0xE9C0, Flags: FlagOneExtWord, CPUs: CPU020Up},
		{Family: FamilyBitField, Mnemonic: "bfchg", Mask: 0xFFC0, Result: 0xEAC0, Flags: FlagOneExtWord, CPUs: CPU020Up},
		{Family: FamilyBitField, Mnemonic: "bfexts", Mask: 0xFFC0, Result: 0xEBC0, Flags: FlagOneExtWord, CPUs: CPU020Up},
		{Family: FamilyBitField, Mnemonic: "bfclr", Mask: 0xFFC0, Result: 0xECC0, Flags: FlagOneExtWord, CPUs: CPU020Up},
		{Family: FamilyBitField, Mnemonic: "bfffo", Mask: 0xFFC0, Result: 0xEDC0, Flags: FlagOneExtWord, CPUs: CPU020Up},
		{Family: FamilyBitField, Mnemonic: "bfset", Mask: 0xFFC0, Result: 0xEEC0, Flags: FlagOneExtWord, CPUs: CPU020Up},
		{Family: FamilyBitField, Mnemonic: "bfins", Mask: 0xFFC0, Result: 0xEFC0, Flags: FlagOneExtWord, CPUs: CPU020Up},

		// --- MOVEP ---
		{Family: FamilyMOVEP, Mnemonic: "movep", Mask: 0xF138, Result: 0x0108, Flags: FlagOneExtWord, CPUs: CPUAll},

		// --- MOVE / MOVEA (general, covers byte/word/long opcode space 0001/0011/0010) ---
		{Family: FamilyMove, Mnemonic: "move", Mask: 0xF000, Result: 0x1000, Flags: FlagFixedSize, FixedSize: SizeByte, CPUs: CPUAll},
		{Family: FamilyMove, Mnemonic: "move", Mask: 0xF000, Result: 0x3000, Flags: FlagFixedSize, FixedSize: SizeWord, CPUs: CPUAll},
		{Family: FamilyMove, Mnemonic: "move", Mask: 0xF000, Result: 0x2000, Flags: FlagFixedSize, FixedSize: SizeLong, CPUs: CPUAll},

		// --- MOVE to/from CCR/SR, MOVE USP ---
		{Family: FamilyMoveToFromStatus, Mnemonic: "move", Mask: 0xFFC0, Result: 0x40C0, PseudoSrc: PseudoSR, Flags: FlagFixedSize, FixedSize: SizeWord, CPUs: CPUAll}, // MOVE SR,<ea>
		{Family: FamilyMoveToFromStatus, Mnemonic: "move", Mask: 0xFFC0, Result: 0x42C0, PseudoSrc: PseudoCCR, Flags: FlagFixedSize, FixedSize: SizeWord, CPUs: CPU010Up}, // MOVE CCR,<ea>
		{Family: FamilyMoveToFromStatus, Mnemonic: "move", Mask: 0xFFC0, Result: 0x44C0, PseudoDst: PseudoCCR, Flags: FlagFixedSize, FixedSize: SizeWord, CPUs: CPUAll}, // MOVE <ea>,CCR
		{Family: FamilyMoveToFromStatus, Mnemonic: "move", Mask: 0xFFC0, Result: 0x46C0, PseudoDst: PseudoSR, Flags: FlagFixedSize, FixedSize: SizeWord, CPUs: CPUAll}, // MOVE <ea>,SR
		{Family: FamilyMoveUSP, Mnemonic: "move", Mask: 0xFFF8, Result: 0x4E60, PseudoDst: PseudoUSP, CPUs: CPUAll},
		{Family: FamilyMoveUSP, Mnemonic: "move", Mask: 0xFFF8, Result: 0x4E68, PseudoSrc: PseudoUSP, CPUs: CPUAll},

		// --- Single-operand group: NEGX/CLR/NEG/NOT/TST/NBCD/TAS ---
		{Family: FamilySingleOperand, Mnemonic: "negx", Mask: 0xFF00, Result: 0x4000, DstMask: EA_Data_All &^ EA_Immediate, Flags: FlagAppendSize, CPUs: CPUAll},
		{Family: FamilySingleOperand, Mnemonic: "clr", Mask: 0xFF00, Result: 0x4200, DstMask: EA_Data_All &^ EA_Immediate, Flags: FlagAppendSize, CPUs: CPUAll},
		{Family: FamilySingleOperand, Mnemonic: "neg", Mask: 0xFF00, Result: 0x4400, DstMask: EA_Data_All &^ EA_Immediate, Flags: FlagAppendSize, CPUs: CPUAll},
		{Family: FamilySingleOperand, Mnemonic: "not", Mask: 0xFF00, Result: 0x4600, DstMask: EA_Data_All &^ EA_Immediate, Flags: FlagAppendSize, CPUs: CPUAll},
		{Family: FamilySingleOperand, Mnemonic: "nbcd", Mask: 0xFFC0, Result: 0x4800, DstMask: EA_Data_All &^ EA_Immediate, Flags: FlagFixedSize, FixedSize: SizeByte, CPUs: CPUAll},
		{Family: FamilyPEA, Mnemonic: "pea", Mask: 0xFFC0, Result: 0x4840, SrcMask: EA_Control, CPUs: CPUAll},
		{Family: FamilySwapExt, Mnemonic: "swap", Mask: 0xFFF8, Result: 0x4840, CPUs: CPUAll},
		{Family: FamilyMOVEM, Mnemonic: "movem", Mask: 0xFB80, Result: 0x4880, Flags: FlagOneExtWord, CPUs: CPUAll},
		{Family: FamilySwapExt, Mnemonic: "ext", Mask: 0xFFB8, Result: 0x4880, CPUs: CPUAll},
		{Family: FamilySingleOperand, Mnemonic: "tst", Mask: 0xFF00, Result: 0x4A00, DstMask: EA_Data_All &^ EA_Immediate, Flags: FlagAppendSize, CPUs: CPUAll},
		{Family: FamilySingleOperand, Mnemonic: "tas", Mask: 0xFFC0, Result: 0x4AC0, DstMask: EA_Data_All &^ EA_Immediate, Flags: FlagFixedSize, FixedSize: SizeByte, CPUs: CPUAll},
		{Family: FamilySystemNoOperand, Mnemonic: "illegal", Mask: 0xFFFF, Result: 0x4AFC, CPUs: CPUAll},

		// --- Control-register & cache-control family (68010+) ---
		{Family: FamilyMOVEC, Mnemonic: "movec", Mask: 0xFFFE, Result: 0x4E7A, Flags: FlagOneExtWord, CPUs: CPU010Up},
		{Family: FamilyMOVES, Mnemonic: "moves", Mask: 0xFF00, Result: 0x0E00, Flags: FlagAppendSize | FlagOneExtWord, CPUs: CPU010Up},
		{Family: FamilyCacheControl, Mnemonic: "cinv", Mask: 0xFF20, Result: 0xF400, CPUs: CPU68040 | CPU68060},
		{Family: FamilyCacheControl, Mnemonic: "cpush", Mask: 0xFF20, Result: 0xF420, CPUs: CPU68040 | CPU68060},

		// --- LEA ---
		{Family: FamilyLEA, Mnemonic: "lea", Mask: 0xF1C0, Result: 0x41C0, SrcMask: EA_Control, CPUs: CPUAll},

		// --- TRAP/LINK/UNLK/system no-operand forms ---
		{Family: FamilyTrap, Mnemonic: "trap", Mask: 0xFFF0, Result: 0x4E40, CPUs: CPUAll},
		{Family: FamilyLinkUnlk, Mnemonic: "link", Mask: 0xFFF8, Result: 0x4E50, Flags: FlagFixedSize | FlagOneExtWord, FixedSize: SizeWord, CPUs: CPUAll},
		{Family: FamilyLinkUnlk, Mnemonic: "link", Mask: 0xFFF8, Result: 0x4808, Flags: FlagFixedSize | FlagOneExtWord, FixedSize: SizeLong, CPUs: CPU020Up},
		{Family: FamilyLinkUnlk, Mnemonic: "unlk", Mask: 0xFFF8, Result: 0x4E58, CPUs: CPUAll},
		{Family: FamilySystemNoOperand, Mnemonic: "reset", Mask: 0xFFFF, Result: 0x4E70, CPUs: CPUAll},
		{Family: FamilySystemNoOperand, Mnemonic: "nop", Mask: 0xFFFF, Result: 0x4E71, CPUs: CPUAll},
		{Family: FamilySystemNoOperand, Mnemonic: "stop", Mask: 0xFFFF, Result: 0x4E72, Flags: FlagOneExtWord, CPUs: CPUAll},
		{Family: FamilySystemNoOperand, Mnemonic: "rte", Mask: 0xFFFF, Result: 0x4E73, CPUs: CPUAll},
		{Family: FamilyRTD, Mnemonic: "rtd", Mask: 0xFFFF, Result: 0x4E74, Flags: FlagOneExtWord, CPUs: CPU010Up},
		{Family: FamilySystemNoOperand, Mnemonic: "rts", Mask: 0xFFFF, Result: 0x4E75, CPUs: CPUAll},
		{Family: FamilySystemNoOperand, Mnemonic: "trapv", Mask: 0xFFFF, Result: 0x4E76, CPUs: CPUAll},
		{Family: FamilySystemNoOperand, Mnemonic: "rtr", Mask: 0xFFFF, Result: 0x4E77, CPUs: CPUAll},

		// --- JMP/JSR ---
		{Family: FamilyJump, Mnemonic: "jsr", Mask: 0xFFC0, Result: 0x4E80, SrcMask: EA_Control, CPUs: CPUAll},
		{Family: FamilyJump, Mnemonic: "jmp", Mask: 0xFFC0, Result: 0x4EC0, SrcMask: EA_Control, CPUs: CPUAll},

		// --- ADDQ/SUBQ ---
		{Family: FamilyAddqSubq, Mnemonic: "addq", Mask: 0xF100, Result: 0x5000, DstMask: EA_Alterable, Flags: FlagAppendSize, CPUs: CPUAll},
		{Family: FamilyAddqSubq, Mnemonic: "subq", Mask: 0xF100, Result: 0x5100, DstMask: EA_Alterable, Flags: FlagAppendSize, CPUs: CPUAll},

		// --- Scc / DBcc ---
		{Family: FamilyDBcc, Mnemonic: "db", Mask: 0xF0F8, Result: 0x50C8, Flags: FlagAppendCC | FlagOneExtWord, CPUs: CPUAll},
		{Family: FamilyScc, Mnemonic: "s", Mask: 0xF0C0, Result: 0x50C0, DstMask: EA_Data_All &^ (EA_Addr | EA_Immediate | EA_PCDisp | EA_PCIndex), Flags: FlagAppendCC | FlagFixedSize, FixedSize: SizeByte, CPUs: CPUAll},

		// --- Bcc/BRA/BSR ---
		{Family: FamilyBranch, Mnemonic: "b", Mask: 0xF000, Result: 0x6000, Flags: FlagAppendCC, CPUs: CPUAll},

		// --- MOVEQ ---
		{Family: FamilyMoveq, Mnemonic: "moveq", Mask: 0xF100, Result: 0x7000, CPUs: CPUAll},

		// --- OR / DIVU / DIVS / SBCD (0x8xxx) ---
		{Family: FamilyMulDivWord, Mnemonic: "divu", Mask: 0xF1C0, Result: 0x80C0, CPUs: CPUAll},
		{Family: FamilyMulDivWord, Mnemonic: "divs", Mask: 0xF1C0, Result: 0x81C0, CPUs: CPUAll},
		{Family: FamilyABCDSBCD, Mnemonic: "sbcd", Mask: 0xF1F0, Result: 0x8100, CPUs: CPUAll},
		{Family: FamilyUnpackPack, Mnemonic: "pack", Mask: 0xF1F8, Result: 0x8140, Flags: FlagOneExtWord, CPUs: CPU020Up},
		{Family: FamilyUnpackPack, Mnemonic: "unpk", Mask: 0xF1F8, Result: 0x8180, Flags: FlagOneExtWord, CPUs: CPU020Up},
		{Family: FamilyArith, Mnemonic: "or", Mask: 0xF000, Result: 0x8000, Flags: FlagAppendSize, CPUs: CPUAll},

		// --- SUB / SUBA / SUBX (0x9xxx) ---
		{Family: FamilyAddxSubx, Mnemonic: "subx", Mask: 0xF130, Result: 0x9100, Flags: FlagAppendSize, CPUs: CPUAll},
		{Family: FamilyAddrArith, Mnemonic: "suba", Mask: 0xF0C0, Result: 0x90C0, CPUs: CPUAll},
		{Family: FamilyArith, Mnemonic: "sub", Mask: 0xF000, Result: 0x9000, Flags: FlagAppendSize, CPUs: CPUAll},

		// --- CAS/CHK2/CMP2 were placed earlier to win priority; CMP/CMPA/CMPM/EOR (0xBxxx) ---
		{Family: FamilyCmpm, Mnemonic: "cmpm", Mask: 0xF138, Result: 0xB108, Flags: FlagAppendSize, CPUs: CPUAll},
		{Family: FamilyAddrArith, Mnemonic: "cmpa", Mask: 0xF0C0, Result: 0xB0C0, CPUs: CPUAll},
		{Family: FamilyArith, Mnemonic: "eor", Mask: 0xF100, Result: 0xB100, Flags: FlagAppendSize, CPUs: CPUAll},
		{Family: FamilyArith, Mnemonic: "cmp", Mask: 0xF000, Result: 0xB000, Flags: FlagAppendSize, CPUs: CPUAll},

		// --- AND / MULU / MULS / ABCD / EXG (0xCxxx) ---
		{Family: FamilyMulDivWord, Mnemonic: "mulu", Mask: 0xF1C0, Result: 0xC0C0, CPUs: CPUAll},
		{Family: FamilyMulDivWord, Mnemonic: "muls", Mask: 0xF1C0, Result: 0xC1C0, CPUs: CPUAll},
		{Family: FamilyABCDSBCD, Mnemonic: "abcd", Mask: 0xF1F0, Result: 0xC100, CPUs: CPUAll},
		{Family: FamilyExg, Mnemonic: "exg", Mask: 0xF1F8, Result: 0xC140, CPUs: CPUAll}, // Dx,Dy
		{Family: FamilyExg, Mnemonic: "exg", Mask: 0xF1F8, Result: 0xC148, CPUs: CPUAll}, // Ax,Ay
		{Family: FamilyExg, Mnemonic: "exg", Mask: 0xF1F8, Result: 0xC188, CPUs: CPUAll}, // Dx,Ay
		{Family: FamilyArith, Mnemonic: "and", Mask: 0xF000, Result: 0xC000, Flags: FlagAppendSize, CPUs: CPUAll},

		// --- ADD / ADDA / ADDX (0xDxxx) ---
		{Family: FamilyAddxSubx, Mnemonic: "addx", Mask: 0xF130, Result: 0xD100, Flags: FlagAppendSize, CPUs: CPUAll},
		{Family: FamilyAddrArith, Mnemonic: "adda", Mask: 0xF0C0, Result: 0xD0C0, CPUs: CPUAll},
		{Family: FamilyArith, Mnemonic: "add", Mask: 0xF000, Result: 0xD000, Flags: FlagAppendSize, CPUs: CPUAll},

		// --- Shift/rotate, register and memory forms (0xExxx) ---
		{Family: FamilyMulDivLong, Mnemonic: "muldiv.l", Mask: 0xFF80, Result: 0x4C00, Flags: FlagOneExtWord, CPUs: CPU020Up},
		{Family: FamilyShiftRotate, Mnemonic: "asr", Mask: 0xF118, Result: 0xE000, CPUs: CPUAll},
		{Family: FamilyShiftRotate, Mnemonic: "asl", Mask: 0xF118, Result: 0xE100, CPUs: CPUAll},
		{Family: FamilyShiftRotate, Mnemonic: "lsr", Mask: 0xF118, Result: 0xE008, CPUs: CPUAll},
		{Family: FamilyShiftRotate, Mnemonic: "lsl", Mask: 0xF118, Result: 0xE108, CPUs: CPUAll},
		{Family: FamilyShiftRotate, Mnemonic: "roxr", Mask: 0xF118, Result: 0xE010, CPUs: CPUAll},
		{Family: FamilyShiftRotate, Mnemonic: "roxl", Mask: 0xF118, Result: 0xE110, CPUs: CPUAll},
		{Family: FamilyShiftRotate, Mnemonic: "ror", Mask: 0xF118, Result: 0xE018, CPUs: CPUAll},
		{Family: FamilyShiftRotate, Mnemonic: "rol", Mask: 0xF118, Result: 0xE118, CPUs: CPUAll},
		{Family: FamilyShiftRotate, Mnemonic: "asr", Mask: 0xFFC0, Result: 0xE0C0, DstMask: EA_Memory_All &^ (EA_PCDisp | EA_PCIndex | EA_Immediate), Flags: FlagFixedSize, FixedSize: SizeWord, CPUs: CPUAll},
		{Family: FamilyShiftRotate, Mnemonic: "asl", Mask: 0xFFC0, Result: 0xE1C0, DstMask: EA_Memory_All &^ (EA_PCDisp | EA_PCIndex | EA_Immediate), Flags: FlagFixedSize, FixedSize: SizeWord, CPUs: CPUAll},
		{Family: FamilyShiftRotate, Mnemonic: "lsr", Mask: 0xFFC0, Result: 0xE2C0, DstMask: EA_Memory_All &^ (EA_PCDisp | EA_PCIndex | EA_Immediate), Flags: FlagFixedSize, FixedSize: SizeWord, CPUs: CPUAll},
		{Family: FamilyShiftRotate, Mnemonic: "lsl", Mask: 0xFFC0, Result: 0xE3C0, DstMask: EA_Memory_All &^ (EA_PCDisp | EA_PCIndex | EA_Immediate), Flags: FlagFixedSize, FixedSize: SizeWord, CPUs: CPUAll},
		{Family: FamilyShiftRotate, Mnemonic: "roxr", Mask: 0xFFC0, Result: 0xE4C0, DstMask: EA_Memory_All &^ (EA_PCDisp | EA_PCIndex | EA_Immediate), Flags: FlagFixedSize, FixedSize: SizeWord, CPUs: CPUAll},
		{Family: FamilyShiftRotate, Mnemonic: "roxl", Mask: 0xFFC0, Result: 0xE5C0, DstMask: EA_Memory_All &^ (EA_PCDisp | EA_PCIndex | EA_Immediate), Flags: FlagFixedSize, FixedSize: SizeWord, CPUs: CPUAll},
		{Family: FamilyShiftRotate, Mnemonic: "ror", Mask: 0xFFC0, Result: 0xE6C0, DstMask: EA_Memory_All &^ (EA_PCDisp | EA_PCIndex | EA_Immediate), Flags: FlagFixedSize, FixedSize: SizeWord, CPUs: CPUAll},
		{Family: FamilyShiftRotate, Mnemonic: "rol", Mask: 0xFFC0, Result: 0xE7C0, DstMask: EA_Memory_All &^ (EA_PCDisp | EA_PCIndex | EA_Immediate), Flags: FlagFixedSize, FixedSize: SizeWord, CPUs: CPUAll},

		// --- CHK ---
		{Family: FamilyChk, Mnemonic: "chk", Mask: 0xF1C0, Result: 0x4180, Flags: FlagFixedSize, FixedSize: SizeWord, CPUs: CPUAll},

		// --- Coprocessor / MMU general family: structural dispatch happens in
		// internal/dispatch; the table only needs to route 0xFxxx words here. ---
		{Family: FamilyCoprocessorGeneral, Mnemonic: "dc.w", Mask: 0xF000, Result: 0xF000, Flags: FlagOneExtWord, CPUs: CPU68881 | CPU68882 | CPU68851 | CPU68040 | CPU68060},

		// --- Sentinel: matches any remaining word. ---
		{Family: FamilyDCW, Mnemonic: "dc.w", Mask: 0x0000, Result: 0x0000, CPUs: CPUAll},
	}
}
