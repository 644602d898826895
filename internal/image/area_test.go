package image_test

import (
	"testing"

	"github.com/m68kira/ira68/internal/image"
	"github.com/stretchr/testify/assert"
)

func TestCodeAreaInsertMergesOverlap(t *testing.T) {
	var c image.CodeArea
	c.InsertArea(10, 20)
	c.InsertArea(20, 30) // touches — extends the first interval to [10,30)
	assert.Equal(t, 1, c.Len())

	c.InsertArea(15, 25) // lies inside — still one interval
	assert.Equal(t, 1, c.Len())
	a, b := c.At(0)
	assert.Equal(t, uint32(10), a)
	assert.Equal(t, uint32(30), b)
}

func TestCodeAreaSplitAt(t *testing.T) {
	var c image.CodeArea
	c.InsertArea(0, 100)
	c.SplitAt(40)
	assert.Equal(t, 2, c.Len())
	a0, b0 := c.At(0)
	a1, b1 := c.At(1)
	assert.Equal(t, uint32(0), a0)
	assert.Equal(t, uint32(40), b0)
	assert.Equal(t, uint32(40), a1)
	assert.Equal(t, uint32(100), b1)
}

func TestCodeAreaContains(t *testing.T) {
	var c image.CodeArea
	c.InsertArea(10, 20)
	assert.True(t, c.Contains(10))
	assert.True(t, c.Contains(19))
	assert.False(t, c.Contains(20))
	assert.False(t, c.Contains(9))
}

func TestLabelsWeaklyAscendingAndCollapse(t *testing.T) {
	var l image.Labels
	l.Insert(100)
	l.Insert(50)
	l.Insert(100)
	assert.Equal(t, []uint32{50, 100, 100}, l.All())

	idx, ok := l.Index(100)
	assert.True(t, ok)
	assert.Equal(t, 1, idx) // leftmost
}

func TestLabelsFloor(t *testing.T) {
	var l image.Labels
	l.Insert(10)
	l.Insert(20)
	l.Insert(30)
	got, ok := l.Floor(25)
	assert.True(t, ok)
	assert.Equal(t, uint32(20), got)

	_, ok = l.Floor(5)
	assert.False(t, ok)
}

func TestRelocTableCollapsesDuplicates(t *testing.T) {
	var rt image.RelocTable
	rt.Insert(image.Reloc{AtAddress: 100, TargetValue: 1})
	rt.Insert(image.Reloc{AtAddress: 50, TargetValue: 2})
	rt.Insert(image.Reloc{AtAddress: 100, TargetValue: 3}) // collapses

	assert.Equal(t, 2, rt.Len())
	r, ok := rt.At(100)
	assert.True(t, ok)
	assert.Equal(t, uint32(3), r.TargetValue)

	all := rt.All()
	assert.True(t, all[0].AtAddress < all[1].AtAddress)
}

func TestJumpTableCountDropsPartialElement(t *testing.T) {
	jt := image.JumpTable{Start: 0x1000, End: 0x1009, ElemSize: 2}
	assert.Equal(t, 4, jt.Count()) // 9 bytes / 2 = 4, partial trailing element dropped
}
