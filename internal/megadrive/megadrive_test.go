package megadrive_test

import (
	"testing"

	"github.com/m68kira/ira68/internal/megadrive"
	"github.com/stretchr/testify/assert"
)

func sequentialBlock() []byte {
	b := make([]byte, megadrive.BlockSize)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestDetransposeTransposeRoundTrip(t *testing.T) {
	original := sequentialBlock()

	block := append([]byte(nil), original...)
	megadrive.Detranspose(block)
	assert.NotEqual(t, original, block, "detransposing should reorder a sequential block")

	megadrive.Transpose(block)
	assert.Equal(t, original, block, "transpose should undo detranspose")
}

func TestDetransposePreservesMultiset(t *testing.T) {
	block := sequentialBlock()
	want := make(map[byte]int)
	for _, v := range block {
		want[v]++
	}
	megadrive.Detranspose(block)

	got := make(map[byte]int)
	for _, v := range block {
		got[v]++
	}
	assert.Equal(t, want, got, "detranspose must permute, never duplicate or drop bytes")
}

func TestDetransposeAllProcessesWholeMultiples(t *testing.T) {
	one := sequentialBlock()
	two := append(append([]byte(nil), one...), one...)

	megadrive.DetransposeAll(two)

	want := append([]byte(nil), one...)
	megadrive.Detranspose(want)

	assert.Equal(t, want, two[:megadrive.BlockSize])
	assert.Equal(t, want, two[megadrive.BlockSize:])
}

func TestDetransposeIgnoresShortInput(t *testing.T) {
	short := []byte{1, 2, 3, 4}
	cp := append([]byte(nil), short...)
	megadrive.Detranspose(short)
	assert.Equal(t, cp, short, "a block smaller than BlockSize must be left untouched")
}

func TestDetransposeAllIgnoresTrailingPartialBlock(t *testing.T) {
	data := append(sequentialBlock(), []byte{0xAA, 0xBB, 0xCC}...)
	trailer := append([]byte(nil), data[megadrive.BlockSize:]...)

	megadrive.DetransposeAll(data)

	assert.Equal(t, trailer, data[megadrive.BlockSize:], "a trailing partial block must be left untouched")
}
