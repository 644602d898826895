package ioutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m68kira/ira68/internal/image"
	"github.com/m68kira/ira68/internal/ioutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage() *image.Image {
	img := image.New(0x1000)
	img.AddSection(&image.Section{Kind: image.Code, Size: 4, Payload: []byte{0xDE, 0xAD, 0xBE, 0xEF}})
	img.AddSection(&image.Section{Kind: image.BSS, Size: 8})
	return img
}

func TestWriteBinarySkipsBSSByDefault(t *testing.T) {
	dir := t.TempDir()
	stem := filepath.Join(dir, "out")
	a := ioutil.New(stem, true, true)

	require.NoError(t, a.WriteBinary(testImage(), false))

	got, err := os.ReadFile(a.BinaryPath)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, got)
}

func TestWriteBinaryKeepsZeroHunksWhenRequested(t *testing.T) {
	dir := t.TempDir()
	stem := filepath.Join(dir, "out")
	a := ioutil.New(stem, true, true)

	require.NoError(t, a.WriteBinary(testImage(), true))

	got, err := os.ReadFile(a.BinaryPath)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF, 0, 0, 0, 0, 0, 0, 0, 0}, got)
}

func TestWriteLabelsRoundTrips(t *testing.T) {
	dir := t.TempDir()
	stem := filepath.Join(dir, "out")
	a := ioutil.New(stem, true, true)

	var trace image.Trace
	trace.Append(0x1000)
	trace.Append(0x1004)
	trace.Append(0x100A)

	require.NoError(t, a.WriteLabels(&trace))

	got, err := os.ReadFile(a.LabelPath)
	require.NoError(t, err)
	assert.Equal(t, 12, len(got), "three little-endian uint32 addresses")
}

func TestCloseRemovesArtifactsUnlessKept(t *testing.T) {
	dir := t.TempDir()
	stem := filepath.Join(dir, "out")
	a := ioutil.New(stem, false, false)

	require.NoError(t, a.WriteBinary(testImage(), false))
	require.NoError(t, a.WriteLabels(&image.Trace{}))
	require.NoError(t, a.Close())

	_, err := os.Stat(a.BinaryPath)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(a.LabelPath)
	assert.True(t, os.IsNotExist(err))
}

func TestCloseKeepsArtifactsWhenRequested(t *testing.T) {
	dir := t.TempDir()
	stem := filepath.Join(dir, "out")
	a := ioutil.New(stem, true, true)

	require.NoError(t, a.WriteBinary(testImage(), false))
	require.NoError(t, a.WriteLabels(&image.Trace{}))
	require.NoError(t, a.Close())

	_, err := os.Stat(a.BinaryPath)
	assert.NoError(t, err)
	_, err = os.Stat(a.LabelPath)
	assert.NoError(t, err)
}
