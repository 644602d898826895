package analysis

// CollectLabels implements Pass 1 (spec.md §4.6): re-walks every finalized
// code area recording labels and cross-references, and expands configured
// jump-tables that fall in the data regions between areas. Each visited
// instruction address is appended to s.Trace, which Pass 2 consults for
// corrected-label placement.
func (s *State) CollectLabels() {
	prevEnd := s.Img.Base
	for i := 0; i < s.Areas.Len(); i++ {
		start, end := s.Areas.At(i)
		s.collectDataRegion(prevEnd, start)
		s.walkArea(start, end)
		prevEnd = end
	}
	s.collectDataRegion(prevEnd, s.Img.End())
}

// walkArea decodes every instruction in [start, end), recording its address
// to the trace and any label it names. An invalid word re-syncs at the next
// word boundary exactly as decodeOne already arranges via NextAddr.
func (s *State) walkArea(start, end uint32) {
	ctx := s.newContext(start, true)
	cursor := start
	for cursor < end {
		ctx.Cursor = cursor
		d := decodeOne(ctx, s.CPUs)
		s.Trace.Append(d.Addr)
		for _, l := range d.Labels {
			s.Labels.Insert(l)
		}
		cursor = d.NextAddr
	}
}

// collectDataRegion expands every configured jump-table entirely contained
// in [start, end) into labels, per spec.md §4.5: a label at the table's base
// and one at base+entry for each element.
func (s *State) collectDataRegion(start, end uint32) {
	if start >= end {
		return
	}
	for _, jt := range s.JumpTables {
		if jt.Start < start || jt.End > end {
			continue
		}
		s.Labels.Insert(jt.Base)
		for _, target := range jumpTableTargets(s.Img, jt) {
			s.Labels.Insert(target)
		}
	}
}
