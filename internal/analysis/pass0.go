package analysis

import (
	"github.com/m68kira/ira68/internal/image"
	"github.com/m68kira/ira68/internal/isa"
)

// DiscoverCode implements Pass 0 (spec.md §4.5): a work-queue walk from a set
// of known code entry points (configured entry, ROM-tag hits, and targets
// discovered along the way) that finalizes disjoint code-area intervals.
//
// Inside a configured "confirmed" area, an invalid decode does not stop the
// walk: the word is treated as a skipped DC.W and scanning resumes at the
// next word, since the caller has asserted that region really is code.
func (s *State) DiscoverCode(entries []uint32) {
	queue := append([]uint32(nil), entries...)
	visited := map[uint32]bool{}

	for len(queue) > 0 {
		addr := queue[0]
		queue = queue[1:]
		if visited[addr] || s.Areas.Contains(addr) || !s.Img.InBounds(addr) {
			continue
		}
		sec := s.Img.SectionAt(addr)
		if sec == nil || sec.Kind != image.Code {
			continue
		}
		visited[addr] = true

		start := addr
		cursor := addr
		finalize := true
		ctx := s.newContext(addr, true)

		for {
			if cursor != start && s.Areas.Contains(cursor) {
				break // re-entry into an already-finalized area
			}
			if cursor >= sec.End() {
				break // section end
			}

			ctx.Cursor = cursor
			d := decodeOne(ctx, s.CPUs)
			if d.Invalid {
				if s.Confirmed.Contains(cursor) {
					cursor = d.NextAddr
					continue
				}
				finalize = false
				break
			}
			cursor = d.NextAddr
			visited[d.Addr] = true

			switch d.Family {
			case isa.FamilyBranch, isa.FamilyDBcc, isa.FamilyJump:
				if len(d.Labels) > 0 {
					queue = append(queue, d.Labels[0])
				}
			}

			if terminates(d.Mnemonic) {
				break
			}
		}

		if finalize && cursor > start {
			s.Areas.InsertArea(start, cursor)
		}
	}
}
