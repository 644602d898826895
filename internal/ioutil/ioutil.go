// Package ioutil owns the lifecycle of the two intermediate files spec.md
// §6 names: the post-relocation binary image and the Pass-1 label side file.
// Per spec.md §9's design note, neither is load-bearing for this
// implementation — the image stays in memory throughout, and the label
// trace is a sorted in-memory array (image.Trace) — so both writers here are
// diagnostic artifacts, created only when the caller asks to keep them and
// removed at exit otherwise.
package ioutil

import (
	"encoding/binary"
	"os"

	"github.com/m68kira/ira68/internal/image"
)

// Artifacts tracks the on-disk paths created for one run, so Close can clean
// up whichever of them the caller didn't ask to keep.
type Artifacts struct {
	BinaryPath string
	LabelPath  string

	keepBinary bool
	keepLabel  bool
}

// New prepares an Artifacts for base name stem (without extension); no files
// are created until WriteBinary/WriteLabels are called.
func New(stem string, keepBinary, keepLabel bool) *Artifacts {
	return &Artifacts{
		BinaryPath: stem + ".bin",
		LabelPath:  stem + ".label",
		keepBinary: keepBinary,
		keepLabel:  keepLabel,
	}
}

// WriteBinary dumps img's flat bytes to BinaryPath, section after section.
// keepZeroHunks controls whether BSS sections' zero-fill is written; without
// it BSS sections are left out of the file entirely, so later sections follow
// directly — original_source's KEEP_ZEROHUNKS option, meaningful only for
// on-disk inspection since Bytes is already fully materialized in memory
// either way.
func (a *Artifacts) WriteBinary(img *image.Image, keepZeroHunks bool) error {
	f, err := os.Create(a.BinaryPath)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, sec := range img.Sections {
		if sec.Kind == image.BSS && !keepZeroHunks {
			continue
		}
		start := sec.Base() - img.Base
		end := sec.End() - img.Base
		if _, err := f.Write(img.Bytes[start:end]); err != nil {
			return err
		}
	}
	return nil
}

// WriteLabels writes every address in trace as a 4-byte little-endian word to
// LabelPath, the format spec.md §6 specifies for the side file.
func (a *Artifacts) WriteLabels(trace *image.Trace) error {
	f, err := os.Create(a.LabelPath)
	if err != nil {
		return err
	}
	defer f.Close()

	var buf [4]byte
	for _, addr := range trace.All() {
		binary.LittleEndian.PutUint32(buf[:], addr)
		if _, err := f.Write(buf[:]); err != nil {
			return err
		}
	}
	return nil
}

// Close removes whichever artifacts the caller didn't ask to keep. Missing
// files (never written) are not an error.
func (a *Artifacts) Close() error {
	if !a.keepBinary {
		if err := os.Remove(a.BinaryPath); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	if !a.keepLabel {
		if err := os.Remove(a.LabelPath); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}
