package analysis

import (
	"fmt"
	"strings"

	"github.com/m68kira/ira68/internal/image"
	"github.com/m68kira/ira68/internal/isa"
	"github.com/m68kira/ira68/internal/symbols"
)

// span is a half-open code-area interval, copied out of image.CodeArea for
// easy sequential indexing while emitting.
type span struct{ start, end uint32 }

func (s *State) codeSpans() []span {
	out := make([]span, s.Areas.Len())
	for i := range out {
		start, end := s.Areas.At(i)
		out[i] = span{start, end}
	}
	return out
}

// EmitResult is Pass 2's rendered output (spec.md §4.7): either a single
// combined listing, or one listing per section plus a main file of INCLUDE
// directives when SplitFile is set.
type EmitResult struct {
	Combined string
	Sections []string // one entry per image.Section, populated only when split
	Main     string    // INCLUDE-directive stub, populated only when split
}

// Emit implements Pass 2: re-walks the finalized code areas and the data
// regions between them, producing assembler source text.
func (s *State) Emit() EmitResult {
	var out strings.Builder
	emitHeader(&out, s.CPUs)

	spans := s.codeSpans()
	si := 0
	sectionBuilders := make([]*strings.Builder, len(s.Img.Sections))
	var cur *strings.Builder

	write := func(text string) {
		out.WriteString(text)
		if cur != nil {
			cur.WriteString(text)
		}
	}

	addr := s.Img.Base
	for addr < s.Img.End() {
		if sec := s.Img.SectionAt(addr); sec != nil && sec.Base() == addr {
			idx := s.Img.SectionIndex(sec)
			b := &strings.Builder{}
			sectionBuilders[idx] = b
			cur = b
			write(s.sectionHeader(sec, idx))
		}

		s.emitAnnotations(write, addr)

		if si < len(spans) && spans[si].start <= addr && addr < spans[si].end {
			addr = s.emitInstructionAt(write, addr)
			if addr >= spans[si].end {
				si++
			}
			continue
		}

		next := s.Img.End()
		if si < len(spans) && spans[si].start > addr && spans[si].start < next {
			next = spans[si].start
		}
		if b := s.Img.SectionAt(addr); b != nil {
			if b.End() < next {
				next = b.End()
			}
		}
		addr = s.emitDataRun(write, addr, next)
	}

	write("\tEND\n")

	if !s.SplitFile {
		return EmitResult{Combined: out.String()}
	}
	sections := make([]string, len(sectionBuilders))
	var main strings.Builder
	for i, b := range sectionBuilders {
		if b != nil {
			sections[i] = b.String()
		}
		fmt.Fprintf(&main, "\tINCLUDE\t\"target.S%d\"\n", i)
	}
	return EmitResult{Combined: out.String(), Sections: sections, Main: main.String()}
}

// emitHeader writes the leading CPU/FPU/MMU declaration lines (spec.md §6).
func emitHeader(out *strings.Builder, cpus isa.CPUMask) {
	names := []struct {
		bit  isa.CPUMask
		name string
	}{
		{isa.CPU68000, "MC68000"}, {isa.CPU68010, "MC68010"},
		{isa.CPU68020, "MC68020"}, {isa.CPU68030, "MC68030"},
		{isa.CPU68040, "MC68040"}, {isa.CPU68060, "MC68060"},
		{isa.CPU68881, "MC68881"}, {isa.CPU68882, "MC68882"},
		{isa.CPU68851, "MC68851"},
	}
	for _, n := range names {
		if cpus&n.bit != 0 {
			fmt.Fprintf(out, "\t%s\n", n.name)
		}
	}
}

func (s *State) sectionHeader(sec *image.Section, idx int) string {
	var b strings.Builder
	if s.BinaryMode {
		fmt.Fprintf(&b, "\tORG\t$%X\n", sec.Base())
	} else {
		kind := sec.Kind.String()
		if sec.Attr != image.MemPublic {
			fmt.Fprintf(&b, "\tSECTION\tS_%d,%s,%s\n", idx, kind, memAttrName(sec.Attr))
		} else {
			fmt.Fprintf(&b, "\tSECTION\tS_%d,%s\n", idx, kind)
		}
	}
	fmt.Fprintf(&b, "SECSTRT_%d:\n", idx)
	return b.String()
}

func memAttrName(a image.MemAttr) string {
	switch a {
	case image.MemChip:
		return "CHIP"
	case image.MemFast:
		return "FAST"
	case image.MemExplicit:
		return "EXPLICIT"
	default:
		return "PUBLIC"
	}
}

// emitAnnotations writes every banner registered at addr, then that
// address's label declarations if any, then its comments (spec.md §4.7
// step 2: "banners, label, inline comments").
func (s *State) emitAnnotations(write func(string), addr uint32) {
	comments, banners := s.Comments.At(addr)
	for _, b := range banners {
		write(fmt.Sprintf("; %s\n; %s\n; %s\n", strings.Repeat("-", len(b)), b, strings.Repeat("-", len(b))))
	}
	for _, name := range s.labelNamesAt(addr) {
		write(name + ":\n")
	}
	for _, c := range comments {
		write(fmt.Sprintf("\t; %s\n", c))
	}
}

// labelNamesAt reports the declaration names that belong at addr: every
// recorded label whose corrected placement (spec.md §3) — the nearest
// Pass-1-trace address at or before it, inside a code area, or itself
// outside one — lands exactly here. Section-base addresses are excluded:
// their SECSTRT_n: label is already written by the section header.
func (s *State) labelNamesAt(addr uint32) []string {
	for _, sec := range s.Img.Sections {
		if sec.Base() == addr {
			return nil
		}
	}
	var names []string
	seen := map[string]bool{}
	for _, raw := range s.Labels.All() {
		corrected := raw
		if s.Areas.Contains(raw) {
			if c, ok := s.Trace.Corrected(raw); ok {
				corrected = c
			}
		}
		if corrected != addr {
			continue
		}
		name := s.Resolver.GetLabel(raw, symbols.ModeDirect)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// emitInstructionAt decodes and formats one instruction at addr, or a reloc
// longword if one lies at this address (relocations take priority over
// decoding even inside a code area, per spec.md §4.7 step 2).
func (s *State) emitInstructionAt(write func(string), addr uint32) uint32 {
	if r, ok := s.Relocs.At(addr); ok {
		name := s.Resolver.GetLabel(r.TargetValue, symbols.ModeViaRelocation)
		write(fmt.Sprintf("\tDC.L\t%s\n", name))
		return addr + 4
	}
	ctx := s.newContext(addr, false)
	ctx.AddressEmission = s.AddressEmission
	ctx.ImmedByteCompat = s.ImmedByteCompat
	d := decodeOne(ctx, s.CPUs)
	write(formatInstructionLine(d, s.AddressEmission))
	return d.NextAddr
}

func formatInstructionLine(d Decoded, addressEmission bool) string {
	var b strings.Builder
	if d.Operands != "" {
		fmt.Fprintf(&b, "\t%s\t%s", d.Mnemonic, d.Operands)
	} else {
		fmt.Fprintf(&b, "\t%s", d.Mnemonic)
	}
	if addressEmission {
		fmt.Fprintf(&b, "\t\t;$%X", d.Addr)
	}
	b.WriteString("\n")
	return b.String()
}
