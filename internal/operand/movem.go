package operand

import (
	"fmt"
	"strings"
)

// movemList converts a MOVEM register mask into canonical range notation
// (e.g. "d0-d3/a0/a6"). predecrement reverses the bit order, since -(An)
// destinations store the mask MSB-first.
func movemList(mask uint16, predecrement bool) string {
	var dRegs, aRegs []int
	bit := func(i int) bool {
		if predecrement {
			return mask&(1<<uint(15-i)) != 0
		}
		return mask&(1<<uint(i)) != 0
	}
	for i := 0; i < 8; i++ {
		if bit(i) {
			dRegs = append(dRegs, i)
		}
		if bit(i + 8) {
			aRegs = append(aRegs, i)
		}
	}
	var parts []string
	parts = append(parts, formatRegRange("d", dRegs)...)
	parts = append(parts, formatRegRange("a", aRegs)...)
	return strings.Join(parts, "/")
}

func formatRegRange(prefix string, regs []int) []string {
	if len(regs) == 0 {
		return nil
	}
	var parts []string
	start, end := regs[0], regs[0]
	flush := func() {
		if start == end {
			parts = append(parts, fmt.Sprintf("%s%d", prefix, start))
		} else {
			parts = append(parts, fmt.Sprintf("%s%d-%s%d", prefix, start, prefix, end))
		}
	}
	for i := 1; i < len(regs); i++ {
		if regs[i] == end+1 {
			end = regs[i]
			continue
		}
		flush()
		start, end = regs[i], regs[i]
	}
	flush()
	return parts
}
