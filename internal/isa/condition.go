package isa

// ConditionNames maps the 4-bit condition-code field (bits 8-11 of an opcode
// word) to its mnemonic suffix. Branch instructions remap 0/1 to RA/SR
// (spec.md §4.2 append_cc).
var ConditionNames = [16]string{
	0x0: "t", 0x1: "f", 0x2: "hi", 0x3: "ls",
	0x4: "cc", 0x5: "cs", 0x6: "ne", 0x7: "eq",
	0x8: "vc", 0x9: "vs", 0xA: "pl", 0xB: "mi",
	0xC: "ge", 0xD: "lt", 0xE: "gt", 0xF: "le",
}

// BranchConditionNames is ConditionNames with 0/1 remapped to ra/sr for
// BRA/BSR, per spec.md's append_cc flag description.
var BranchConditionNames = func() [16]string {
	n := ConditionNames
	n[0x0] = "ra"
	n[0x1] = "sr"
	return n
}()

// CoprocessorConditionNames maps the 6-bit coprocessor condition field used
// by cpBcc/cpDBcc/cpScc/cpTRAPcc (spec.md §4.2 append_pcc).
var CoprocessorConditionNames = map[uint16]string{
	0x00: "f", 0x01: "eq", 0x02: "ogt", 0x03: "oge",
	0x04: "olt", 0x05: "ole", 0x06: "ogl", 0x07: "or",
	0x08: "un", 0x09: "ueq", 0x0A: "ugt", 0x0B: "uge",
	0x0C: "ult", 0x0D: "ule", 0x0E: "ne", 0x0F: "t",
	0x10: "sf", 0x11: "seq", 0x12: "gt", 0x13: "ge",
	0x14: "lt", 0x15: "le", 0x16: "gl", 0x17: "gle",
	0x18: "ngle", 0x19: "ngl", 0x1A: "nle", 0x1B: "nlt",
	0x1C: "nge", 0x1D: "ngt", 0x1E: "sne", 0x1F: "st",
}
