// Package container loads an input program into the flat image model,
// recognizing the Amiga Hunk executable/object format (spec.md §4.1) and
// falling back to a raw single-CODE-section image for anything else.
package container

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/m68kira/ira68/internal/image"
)

// Hunk type identifiers, per original_source/amiga_hunks.h.
const (
	hunkUnit          = 0x03E7
	hunkName          = 0x03E8
	hunkCode          = 0x03E9
	hunkData          = 0x03EA
	hunkBSS           = 0x03EB
	hunkReloc32       = 0x03EC
	hunkReloc16       = 0x03ED
	hunkReloc8        = 0x03EE
	hunkExt           = 0x03EF
	hunkSymbol        = 0x03F0
	hunkDebug         = 0x03F1
	hunkEnd           = 0x03F2
	hunkHeader        = 0x03F3
	hunkOverlay       = 0x03F5
	hunkBreak         = 0x03F6
	hunkDrel32        = 0x03F7
	hunkDrel16        = 0x03F8
	hunkDrel8         = 0x03F9
	hunkLib           = 0x03FA
	hunkIndex         = 0x03FB
	hunkReloc32Short  = 0x03FC
	hunkRelReloc32    = 0x03FD
	hunkAbsReloc16    = 0x03FE
)

// EXT sub-kinds, per original_source/amiga_hunks.h.
const (
	extSymb      = 0
	extDef       = 1
	extAbs       = 2
	extRes       = 3
	extRef32     = 129
	extCommon    = 130
	extRef16     = 131
	extRef8      = 132
	extDext32    = 133
	extDext16    = 134
	extDext8     = 135
	extRelRef32  = 136
	extRelCommon = 137
	extAbsRef16  = 138
	extAbsRef8   = 139
)

// Format identifies a recognized container.
type Format int

const (
	FormatUnknown Format = iota
	FormatAmigaHunk
	FormatRaw
)

// Detect inspects data's leading magic and reports which loader applies.
// Unsupported-but-recognized magics (ELF, Atari GEMDOS) are reported by name
// so the caller can fail with a clear message instead of misreading them as
// raw code.
func Detect(data []byte) (Format, error) {
	if len(data) < 4 {
		return FormatRaw, nil
	}
	magic := binary.BigEndian.Uint32(data)
	switch magic {
	case hunkHeader, hunkUnit:
		return FormatAmigaHunk, nil
	case 0x7F454C46: // "\x7FELF"
		return FormatUnknown, fmt.Errorf("container: ELF input is not supported")
	}
	if data[0] == 0x60 && data[1] == 0x1A {
		return FormatUnknown, fmt.Errorf("container: Atari GEMDOS (TOS) executables are not supported")
	}
	return FormatRaw, nil
}

// reader wraps a big-endian byte stream with the primitive reads the hunk
// loader needs, mirroring original_source's readbe32/readbe16 helpers.
type reader struct {
	r   *bytes.Reader
	err error
}

func newReader(data []byte) *reader { return &reader{r: bytes.NewReader(data)} }

func (rd *reader) long() uint32 {
	if rd.err != nil {
		return 0
	}
	var v uint32
	rd.err = binary.Read(rd.r, binary.BigEndian, &v)
	return v
}

func (rd *reader) word() uint16 {
	if rd.err != nil {
		return 0
	}
	var v uint16
	rd.err = binary.Read(rd.r, binary.BigEndian, &v)
	return v
}

func (rd *reader) bytesN(n int) []byte {
	if rd.err != nil || n <= 0 {
		return nil
	}
	buf := make([]byte, n)
	_, rd.err = io.ReadFull(rd.r, buf)
	return buf
}

func (rd *reader) skip(n int64) {
	if rd.err != nil {
		return
	}
	_, rd.err = rd.r.Seek(n, 1)
}

// readHunkString reads a hunk-format name: a longword word count followed by
// that many longwords of ASCII, NUL-padded (original_source ReadSymbol).
func (rd *reader) readHunkString() (string, bool) {
	words := rd.long()
	if rd.err != nil || words == 0 {
		return "", false
	}
	raw := rd.bytesN(int(words) * 4)
	end := bytes.IndexByte(raw, 0)
	if end < 0 {
		end = len(raw)
	}
	return string(raw[:end]), true
}

// Loaded is the result of loading an Amiga Hunk container: the flat image,
// its relocation table, and the set of addresses relocations referenced
// (candidate Pass 1 labels, per original_source's InsertLabel-on-relocate
// behavior).
type Loaded struct {
	Image        *image.Image
	Relocs       *image.RelocTable
	RelocTargets []uint32
	Symbols      *image.SymbolTable
}

// LoadAmigaHunk parses an Amiga Hunk executable or unit starting at data and
// lays its hunks out contiguously at base, following original_source's
// ExamineHunks/ReadAmigaHunkExecutable.
func LoadAmigaHunk(data []byte, base uint32) (*Loaded, error) {
	rd := newReader(data)
	tag := rd.long()
	isUnit := tag == hunkUnit

	if !isUnit {
		// HUNK_HEADER: optional resident-library names, then the hunk table.
		for {
			name, ok := rd.readHunkString()
			if !ok {
				break
			}
			_ = name
		}
	} else {
		rd.readHunkString() // unit name
	}

	var hunkCount, first, last uint32
	if !isUnit {
		hunkCount = rd.long()
		first = rd.long()
		last = rd.long()
	}
	if first != 0 {
		return nil, fmt.Errorf("container: resident-library hunk files (first hunk != 0) are not supported")
	}
	if rd.err != nil {
		return nil, fmt.Errorf("container: truncated header: %w", rd.err)
	}

	sizes := make([]uint32, hunkCount)
	for i := range sizes {
		raw := rd.long()
		memType := (raw >> 30) & 3
		size := (raw &^ 0xC0000000) * 4
		if memType == 3 {
			rd.long() // explicit AllocMem flags, not modeled
		}
		sizes[i] = size
	}
	_ = last

	img := image.New(base)
	relocs := &image.RelocTable{}
	syms := image.NewSymbolTable()
	var targets []uint32
	sections := make([]*image.Section, 0, hunkCount)
	pendingName := ""

	appendSection := func(kind image.Kind, size uint32, payload []byte) *image.Section {
		s := &image.Section{Name: pendingName, Kind: kind, Size: size, Payload: payload}
		pendingName = ""
		img.AddSection(s)
		sections = append(sections, s)
		return s
	}

	patchLong := func(sec *image.Section, offset, value uint32) {
		addr := sec.Base() + offset
		img.PutLong(addr, value)
	}

	// declaredSize returns the header's hunk-table size for the cur'th hunk,
	// or 0 if this file carries no such table (a HUNK_UNIT object, where each
	// hunk announces its own length inline instead).
	declaredSize := func(cur int) uint32 {
		if cur < len(sizes) {
			return sizes[cur]
		}
		return 0
	}

	cur := 0
	for rd.err == nil {
		raw := rd.long()
		if rd.err == io.EOF {
			rd.err = nil
			break
		}
		if rd.err != nil {
			break
		}
		kind := raw & 0x0000FFFF
		switch kind {
		case hunkCode:
			length := rd.long()
			payload := rd.bytesN(int(length) * 4)
			sz := declaredSize(cur)
			if sz < uint32(len(payload)) {
				sz = uint32(len(payload))
			}
			appendSection(image.Code, sz, payload)
			cur++
		case hunkData:
			length := rd.long()
			payload := rd.bytesN(int(length) * 4)
			sz := declaredSize(cur)
			if sz < uint32(len(payload)) {
				sz = uint32(len(payload))
			}
			appendSection(image.Data, sz, payload)
			cur++
		case hunkBSS:
			length := rd.long()
			sz := declaredSize(cur)
			if sz < length*4 {
				sz = length * 4
			}
			appendSection(image.BSS, sz, nil)
			cur++
		case hunkName:
			name, _ := rd.readHunkString()
			pendingName = name
		case hunkReloc32, hunkReloc32Short, hunkRelReloc32:
			sec := sections[len(sections)-1]
			for {
				count := rd.long()
				if count == 0 || rd.err != nil {
					break
				}
				target := int(rd.long())
				if target < 0 || target >= len(sections) {
					rd.err = fmt.Errorf("container: relocation references unknown hunk %d", target)
					break
				}
				targetSec := sections[target]
				for n := uint32(0); n < count; n++ {
					offset := rd.long()
					old := img.Long(sec.Base() + offset)
					value := targetSec.Base() + old
					patchLong(sec, offset, value)
					relocs.Insert(image.Reloc{AtAddress: sec.Base() + offset, TargetValue: value, Offset: old, TargetSection: target})
					targets = append(targets, value)
				}
			}
		case hunkDrel32:
			sec := sections[len(sections)-1]
			for {
				count := uint32(rd.word())
				target := uint32(rd.word())
				if count == 0 || rd.err != nil {
					break
				}
				targetSec := sections[target]
				for n := uint32(0); n < count; n++ {
					offset := uint32(rd.word())
					old := img.Long(sec.Base() + offset)
					value := targetSec.Base() + old
					patchLong(sec, offset, value)
					relocs.Insert(image.Reloc{AtAddress: sec.Base() + offset, TargetValue: value, Offset: old, TargetSection: int(target)})
					targets = append(targets, value)
				}
			}
		case hunkReloc16, hunkReloc8, hunkDrel16, hunkDrel8:
			// Short-displacement relocations do not occur in practice on
			// flat 32-bit Amiga images; skip their entries without decoding.
			for {
				count := rd.long()
				if count == 0 || rd.err != nil {
					break
				}
				rd.skip(int64(count+1) * 4)
			}
		case hunkSymbol:
			sec := sections[len(sections)-1]
			for {
				n := rd.long()
				if n == 0 || rd.err != nil {
					break
				}
				raw := rd.bytesN(int(n) * 4)
				value := rd.long()
				if end := bytes.IndexByte(raw, 0); end >= 0 {
					raw = raw[:end]
				}
				syms.Insert(string(raw), sec.Base()+value)
			}
		case hunkExt:
			sec := sections[len(sections)-1]
			for {
				tagged := rd.long()
				if tagged == 0 || rd.err != nil {
					break
				}
				subtype := tagged >> 24
				n := tagged & 0x00FFFFFF
				raw := rd.bytesN(int(n) * 4) // symbol name
				if end := bytes.IndexByte(raw, 0); end >= 0 {
					raw = raw[:end]
				}
				switch subtype {
				case extDef, extAbs, extRes:
					value := rd.long()
					syms.Insert(string(raw), sec.Base()+value)
				case extRef32, extRef16, extRef8, extCommon, extDext32, extDext16, extDext8, extRelRef32, extRelCommon, extAbsRef16, extAbsRef8:
					count := rd.long()
					rd.skip(int64(count) * 4)
				case extSymb:
					rd.long()
				}
			}
		case hunkDebug:
			n := rd.long()
			rd.bytesN(int(n) * 4)
		case hunkEnd:
			// no payload
		case hunkBreak, hunkOverlay:
			// not modeled: treated as an end-of-scan marker like the
			// original's overlay handling, which this reassembler does not
			// attempt to follow.
			rd.err = nil
			goto done
		default:
			rd.err = fmt.Errorf("container: unrecognized hunk type 0x%04X", kind)
		}
	}
done:
	if rd.err != nil {
		return nil, rd.err
	}
	return &Loaded{Image: img, Relocs: relocs, RelocTargets: targets, Symbols: syms}, nil
}
