package isa

// CPUMask selects which 680x0-family members an opcode entry or control
// register is valid on. spec.md §4.2: a word matches an entry iff its mask
// also has cpu_mask ∩ configured_cpu_set ≠ ∅.
type CPUMask uint16

const (
	CPU68000 CPUMask = 1 << iota
	CPU68010
	CPU68020
	CPU68030
	CPU68040
	CPU68060
	CPU68881 // FPU, accepted in config but not decoded by this core (spec.md §1)
	CPU68882
	CPU68851 // PMMU
)

// CPUAll matches every CPU in the mask, used for the few opcodes valid on
// every member of the family (NOP, MOVEQ, Bcc, ...).
const CPUAll = CPU68000 | CPU68010 | CPU68020 | CPU68030 | CPU68040 | CPU68060

// CPU020Up matches the 68020 and every later integer CPU.
const CPU020Up = CPU68020 | CPU68030 | CPU68040 | CPU68060

// CPU010Up matches the 68010 and later.
const CPU010Up = CPU68010 | CPU020Up
