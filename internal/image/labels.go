package image

import "sort"

// Labels is a weakly-ascending sorted sequence of addresses flagged as jump,
// branch, or pointer destinations. Consecutive equal entries are permitted and
// collapse to one label at lookup time.
type Labels struct {
	addrs []uint32
}

// Insert adds addr in sorted position. Duplicates are kept (they collapse on
// lookup), matching spec.md's "non-strictly-ascending allowed" wording.
func (l *Labels) Insert(addr uint32) {
	i := sort.Search(len(l.addrs), func(i int) bool { return l.addrs[i] >= addr })
	l.addrs = append(l.addrs, 0)
	copy(l.addrs[i+1:], l.addrs[i:])
	l.addrs[i] = addr
}

// Index returns the leftmost index of addr in the sorted array, and whether it
// was found at all.
func (l *Labels) Index(addr uint32) (int, bool) {
	i := sort.Search(len(l.addrs), func(i int) bool { return l.addrs[i] >= addr })
	if i < len(l.addrs) && l.addrs[i] == addr {
		return i, true
	}
	return i, false
}

// Has reports whether addr is a known label.
func (l *Labels) Has(addr uint32) bool {
	_, ok := l.Index(addr)
	return ok
}

// Floor returns the address of the largest recorded entry <= addr (a "corrected
// label" source, spec.md §3), and whether any such entry exists.
func (l *Labels) Floor(addr uint32) (uint32, bool) {
	i := sort.Search(len(l.addrs), func(i int) bool { return l.addrs[i] > addr })
	if i == 0 {
		return 0, false
	}
	return l.addrs[i-1], true
}

// All returns the sorted addresses. Callers must not mutate the slice.
func (l *Labels) All() []uint32 { return l.addrs }

// Len returns the number of recorded entries (including duplicates).
func (l *Labels) Len() int { return len(l.addrs) }

// Trace is the ordered sequence of addresses visited during Pass 1, used to
// compute corrected labels (spec.md §3, §4.6) and to write the side file.
type Trace struct {
	addrs []uint32
}

// Append records addr as the next visited instruction/data boundary.
func (t *Trace) Append(addr uint32) { t.addrs = append(t.addrs, addr) }

// All returns the trace in visitation order.
func (t *Trace) All() []uint32 { return t.addrs }

// Corrected returns the address of the Pass-1 trace entry immediately at or
// before raw, per spec.md's "corrected label" definition. The trace is sorted
// ascending because Pass 1 walks addresses monotonically within each area.
func (t *Trace) Corrected(raw uint32) (uint32, bool) {
	i := sort.Search(len(t.addrs), func(i int) bool { return t.addrs[i] > raw })
	if i == 0 {
		return 0, false
	}
	return t.addrs[i-1], true
}
