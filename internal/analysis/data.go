package analysis

import (
	"fmt"
	"strings"

	"github.com/m68kira/ira68/internal/image"
	"github.com/m68kira/ira68/internal/symbols"
)

// minStringLen is the shortest run of printable bytes, terminated by a NUL,
// that the text-detection heuristic accepts as a string (spec.md §4.7,
// §9's open question: "minimum length... magic numbers preserved verbatim").
const minStringLen = 4

// emitDataRun classifies the byte at addr and writes one data directive,
// returning the address just past what it consumed. Called repeatedly by
// Emit across a data region in priority order: relocation, equate,
// jump-table, text, then a raw byte/zero-fill run (spec.md §4.7).
func (s *State) emitDataRun(write func(string), addr, end uint32) uint32 {
	if addr >= end {
		return end
	}
	if r, ok := s.Relocs.At(addr); ok && addr+4 <= end {
		name := s.Resolver.GetLabel(r.TargetValue, symbols.ModeViaRelocation)
		write(fmt.Sprintf("\tDC.L\t%s\n", name))
		return addr + 4
	}
	if eq, ok := s.Equates.AtAddress(addr); ok {
		suffix, n := equateSizeSuffix(eq.Size)
		if addr+n <= end {
			write(fmt.Sprintf("\tDC.%s\t%s\n", suffix, eq.Name))
			return addr + n
		}
	}
	if jt, ok := jumpTableAt(s.JumpTables, addr); ok && jt.End <= end {
		return s.emitJumpTable(write, jt)
	}
	if next, text, ok := s.detectText(addr, end); ok {
		write(text)
		return next
	}
	return s.emitRawRun(write, addr, end)
}

func equateSizeSuffix(size image.EquSize) (string, uint32) {
	switch size {
	case image.EquByte:
		return "B", 1
	case image.EquWord:
		return "W", 2
	case image.EquLong:
		return "L", 4
	default:
		return "B", 1
	}
}

func elemSizeSuffix(n int) string {
	switch n {
	case 2:
		return "W"
	case 4:
		return "L"
	default:
		return "B"
	}
}

// emitJumpTable expands jt into one DC.<size> (target)-(base) line per
// element (spec.md §4.5/§8 scenario 5), advancing past whole elements only.
func (s *State) emitJumpTable(write func(string), jt image.JumpTable) uint32 {
	suffix := elemSizeSuffix(jt.ElemSize)
	baseName := s.Resolver.GetLabel(jt.Base, symbols.ModeDirect)
	for _, target := range jumpTableTargets(s.Img, jt) {
		name := s.Resolver.GetLabel(target, symbols.ModeDirect)
		write(fmt.Sprintf("\tDC.%s\t(%s)-(%s)\n", suffix, name, baseName))
	}
	return jt.Start + uint32(jt.Count()*jt.ElemSize)
}

func isPrintableASCII(b byte) bool { return b >= 0x20 && b <= 0x7E }

// detectText implements the string-recognition heuristic: a printable run of
// at least minStringLen bytes, NUL-terminated, preceded by a non-NUL byte,
// and not crossing a relocation (spec.md §4.7, §8 scenario 3). A configured
// text area overrides the length/termination thresholds entirely.
func (s *State) detectText(addr, end uint32) (uint32, string, bool) {
	forced := s.TextAreas.Contains(addr)
	if !forced {
		if !isPrintableASCII(s.Img.Byte(addr)) {
			return 0, "", false
		}
		if addr > s.Img.Base && s.Img.Byte(addr-1) == 0 {
			return 0, "", false
		}
	}

	i := addr
	for i < end && isPrintableASCII(s.Img.Byte(i)) {
		if _, ok := s.Relocs.At(i); ok {
			break
		}
		i++
	}
	length := i - addr
	if length == 0 {
		return 0, "", false
	}
	terminated := i < end && s.Img.Byte(i) == 0
	if !forced && (!terminated || length < minStringLen) {
		return 0, "", false
	}

	raw := make([]byte, length)
	for k := uint32(0); k < length; k++ {
		raw[k] = s.Img.Byte(addr + k)
	}
	escaped := strings.ReplaceAll(string(raw), "'", "''")
	next := i
	if terminated {
		next = i + 1
	}
	return next, fmt.Sprintf("\tDC.B\t'%s',0\n", escaped), true
}

// emitRawRun emits the bytes up to the next classified item (or end) as
// DS.L zero-fill runs interleaved with DC.B hex chunks of up to 16 bytes
// (spec.md §4.7: "four longs per line maximum").
func (s *State) emitRawRun(write func(string), addr, end uint32) uint32 {
	stop := s.nextClassifiedBoundary(addr, end)
	n := stop - addr
	data := make([]byte, n)
	for k := uint32(0); k < n; k++ {
		data[k] = s.Img.Byte(addr + k)
	}
	writeRawBytes(write, data)
	return stop
}

// nextClassifiedBoundary scans ahead for the first address where a different
// data-directive kind takes over, so emitRawRun can hand off to it instead
// of swallowing it into a hex dump.
func (s *State) nextClassifiedBoundary(addr, end uint32) uint32 {
	for a := addr + 1; a < end; a++ {
		if _, ok := s.Relocs.At(a); ok {
			return a
		}
		if _, ok := s.Equates.AtAddress(a); ok {
			return a
		}
		if _, ok := jumpTableAt(s.JumpTables, a); ok {
			return a
		}
		if _, _, ok := s.detectText(a, end); ok {
			return a
		}
	}
	return end
}

func writeRawBytes(write func(string), data []byte) {
	n := len(data)
	i := 0
	for i < n {
		if data[i] == 0 {
			j := i
			for j < n && data[j] == 0 {
				j++
			}
			if longs := (j - i) / 4; longs > 0 {
				write(fmt.Sprintf("\tDS.L\t%d\n", longs))
				i += longs * 4
				continue
			}
		}
		chunkEnd := i + 16
		if chunkEnd > n {
			chunkEnd = n
		}
		for k := i; k < chunkEnd; k++ {
			if data[k] != 0 {
				continue
			}
			zc := 0
			for k+zc < chunkEnd && data[k+zc] == 0 {
				zc++
			}
			if zc >= 4 {
				chunkEnd = k
				break
			}
		}
		if chunkEnd <= i {
			chunkEnd = i + 1
		}
		write(formatHexLine(data[i:chunkEnd]))
		i = chunkEnd
	}
}

func formatHexLine(chunk []byte) string {
	var b strings.Builder
	b.WriteString("\tDC.B\t")
	for j, c := range chunk {
		if j > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, "$%02X", c)
	}
	b.WriteString("\n")
	return b.String()
}
