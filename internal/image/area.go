package image

import "sort"

// CodeArea is an ordered set of disjoint half-open intervals [a, b) over
// virtual addresses, represented as two parallel ascending arrays per
// spec.md §3/§4.5. Equality b[i] == a[i+1] is allowed: "adjacent, not merged,"
// preserving section boundaries.
type CodeArea struct {
	starts []uint32
	ends   []uint32
}

// Len returns the number of intervals.
func (c *CodeArea) Len() int { return len(c.starts) }

// At returns the i-th interval.
func (c *CodeArea) At(i int) (start, end uint32) { return c.starts[i], c.ends[i] }

// Contains reports whether addr falls in some interval.
func (c *CodeArea) Contains(addr uint32) bool {
	i := sort.Search(len(c.starts), func(i int) bool { return c.ends[i] > addr })
	return i < len(c.starts) && c.starts[i] <= addr
}

// InsertArea merges [a, b) into the set, following spec.md §4.5:
// find the first interval i with ends[i] >= a; if ends[i] == a, extend it to b
// and merge forward while intervals touch or overlap; else if the new upper
// bound reaches into [starts[i], ends[i]], extend starts[i] down to a; else
// insert a fresh interval at i.
func (c *CodeArea) InsertArea(a, b uint32) {
	if a >= b {
		return
	}
	i := sort.Search(len(c.starts), func(i int) bool { return c.ends[i] >= a })

	switch {
	case i < len(c.starts) && c.ends[i] == a:
		c.ends[i] = b
		c.mergeForwardFrom(i)
	case i < len(c.starts) && c.starts[i] <= b:
		if a < c.starts[i] {
			c.starts[i] = a
		}
		if b > c.ends[i] {
			c.ends[i] = b
		}
		c.mergeForwardFrom(i)
	default:
		c.starts = append(c.starts, 0)
		c.ends = append(c.ends, 0)
		copy(c.starts[i+1:], c.starts[i:])
		copy(c.ends[i+1:], c.ends[i:])
		c.starts[i] = a
		c.ends[i] = b
	}
}

// mergeForwardFrom absorbs every following interval that overlaps (strictly,
// not merely touches — touching is preserved per spec.md) interval i.
func (c *CodeArea) mergeForwardFrom(i int) {
	j := i + 1
	for j < len(c.starts) && c.starts[j] < c.ends[i] {
		if c.ends[j] > c.ends[i] {
			c.ends[i] = c.ends[j]
		}
		j++
	}
	if j > i+1 {
		c.starts = append(c.starts[:i+1], c.starts[j:]...)
		c.ends = append(c.ends[:i+1], c.ends[j:]...)
	}
}

// SplitAt ensures p appears as both an interval end and the following
// interval's start, so that per-section emission in Pass 2 never crosses a
// hunk boundary (spec.md §4.5).
func (c *CodeArea) SplitAt(p uint32) {
	for i := range c.starts {
		if c.starts[i] < p && p < c.ends[i] {
			end := c.ends[i]
			c.ends[i] = p
			c.starts = append(c.starts, 0)
			c.ends = append(c.ends, 0)
			copy(c.starts[i+2:], c.starts[i+1:])
			copy(c.ends[i+2:], c.ends[i+1:])
			c.starts[i+1] = p
			c.ends[i+1] = end
			return
		}
	}
}

// JumpTable is [Start, End) over the image containing signed displacements of
// ElemSize bytes, each naming a target Base + displacement (spec.md §3/§4.5).
type JumpTable struct {
	Start, End uint32
	Base       uint32
	ElemSize   int // 1, 2, or 4
}

// Count returns the number of whole elements, discarding a partial trailing
// element (spec.md §8 boundary behavior).
func (j JumpTable) Count() int {
	return int((j.End - j.Start)) / j.ElemSize
}
