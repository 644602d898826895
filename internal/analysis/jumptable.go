package analysis

import "github.com/m68kira/ira68/internal/image"

// jumpTableTargets computes the resolved target address of every element of
// jt (spec.md §4.5: "each element denotes a target base + displacement"),
// discarding a partial trailing element per jt.Count().
func jumpTableTargets(img *image.Image, jt image.JumpTable) []uint32 {
	n := jt.Count()
	out := make([]uint32, n)
	for i := 0; i < n; i++ {
		off := jt.Start + uint32(i*jt.ElemSize)
		var disp int64
		switch jt.ElemSize {
		case 1:
			disp = int64(int8(img.Byte(off)))
		case 2:
			disp = int64(int16(img.Word(off)))
		case 4:
			disp = int64(int32(img.Long(off)))
		}
		out[i] = uint32(int64(jt.Base) + disp)
	}
	return out
}

// jumpTableAt returns the configured jump-table starting exactly at addr, if
// any — used by Pass 2's data classifier (spec.md §4.7 priority list).
func jumpTableAt(tables []image.JumpTable, addr uint32) (image.JumpTable, bool) {
	for _, jt := range tables {
		if jt.Start == addr {
			return jt, true
		}
	}
	return image.JumpTable{}, false
}
