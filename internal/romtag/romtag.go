// Package romtag recognizes Amiga resident-module headers (spec.md §4.9):
// an ILLEGAL opcode word followed by a self-referencing pointer, which marks
// the start of an exec.library Resident structure.
package romtag

import "github.com/m68kira/ira68/internal/image"

const (
	matchWord   = 0x4AFC
	rtfAutoInit = 0x80
)

// Kind is the rt_Type byte of a Resident structure.
type Kind byte

const (
	KindUnknown  Kind = 0
	KindDevice   Kind = 3
	KindResource Kind = 8
	KindLibrary  Kind = 9
)

// autoInitFuncNames are the well-known vector-table entries a device/library
// auto-init function table supplies, in table order (spec.md §4.9).
var autoInitFuncNames = []string{"OPEN", "CLOSE", "EXPUNGE", "BEGINIO", "ABORTIO"}

// Header is one recognized Resident structure.
type Header struct {
	Address    uint32
	Name       string
	NamePtr    uint32
	IDPtr      uint32
	Flags      byte
	Type       Kind
	InitTarget uint32
	AutoInit   bool
}

// Hit is a recognized header plus everything it seeds for the caller to fold
// into the symbol table, relocation table, and Pass 0 work queue.
type Hit struct {
	Header      Header
	Labels      []uint32 // candidate Pass 0 code-entry seeds
	Symbols     []image.Symbol
	Relocations []uint32 // addresses holding a pointer worth a relocation label
}

// readCString reads a NUL-terminated string directly out of img at addr. An
// out-of-bounds addr yields "".
func readCString(img *image.Image, addr uint32) string {
	if !img.InBounds(addr) {
		return ""
	}
	var b []byte
	for a := addr; img.InBounds(a); a++ {
		c := img.Byte(a)
		if c == 0 {
			break
		}
		b = append(b, c)
	}
	return string(b)
}

// Scan walks img looking for every ILLEGAL-word + self-pointer pair and
// decodes the resident header that follows (spec.md §4.9). Scanning is word
// by word, at every even address; no false-positive suppression beyond the match-word + self-pointer test is
// performed, mirroring the original tool.
func Scan(img *image.Image) []Hit {
	var hits []Hit
	for addr := img.Base; addr+6 <= img.End(); addr += 2 {
		if img.Word(addr) != matchWord {
			continue
		}
		if img.Long(addr+2) != addr {
			continue
		}
		h, ok := decodeHeader(img, addr)
		if !ok {
			continue
		}
		hits = append(hits, buildHit(img, h))
	}
	return hits
}

// decodeHeader reads the Resident structure starting at addr (the ILLEGAL
// word itself). Layout follows exec/nodes.h's struct Resident:
//
//	UWORD rt_MatchWord; APTR rt_MatchTag; APTR rt_EndSkip;
//	UBYTE rt_Flags; UBYTE rt_Version; UBYTE rt_Type; BYTE rt_Pri;
//	char *rt_Name; char *rt_IdString; APTR rt_Init;
func decodeHeader(img *image.Image, addr uint32) (Header, bool) {
	const size = 2 + 4 + 4 + 4 + 4 + 4 + 4
	if addr+size > img.End() {
		return Header{}, false
	}
	flags := img.Byte(addr + 10)
	rtType := img.Byte(addr + 12)
	namePtr := img.Long(addr + 14)
	idPtr := img.Long(addr + 18)
	initPtr := img.Long(addr + 22)

	h := Header{
		Address:    addr,
		NamePtr:    namePtr,
		IDPtr:      idPtr,
		Flags:      flags,
		Type:       Kind(rtType),
		InitTarget: initPtr,
		AutoInit:   flags&rtfAutoInit != 0,
	}
	h.Name = readCString(img, namePtr)
	return h, true
}

// buildHit expands an AUTOINIT header's init target into named function
// symbols, per spec.md §4.9: "data-table, function-table, and init-function
// pointers; expands the function table into named symbols."
func buildHit(img *image.Image, h Header) Hit {
	hit := Hit{Header: h}
	if h.NamePtr != 0 {
		hit.Symbols = append(hit.Symbols, image.Symbol{Name: h.Name, Value: h.NamePtr})
	}
	if !h.AutoInit || !img.InBounds(h.InitTarget) || h.InitTarget+16 > img.End() {
		if h.InitTarget != 0 {
			hit.Labels = append(hit.Labels, h.InitTarget)
		}
		return hit
	}

	// struct { ULONG size; APTR dataTable; APTR functionTable; APTR initFunc; }
	dataTable := img.Long(h.InitTarget + 4)
	functionTable := img.Long(h.InitTarget + 8)
	initFunc := img.Long(h.InitTarget + 12)

	if initFunc != 0 {
		hit.Labels = append(hit.Labels, initFunc)
		hit.Relocations = append(hit.Relocations, h.InitTarget+12)
	}
	if dataTable != 0 {
		hit.Relocations = append(hit.Relocations, h.InitTarget+4)
	}
	if functionTable != 0 {
		hit.Relocations = append(hit.Relocations, h.InitTarget+8)
		entries := functionTableEntries(img, functionTable)
		for i, fn := range entries {
			hit.Labels = append(hit.Labels, fn)
			hit.Symbols = append(hit.Symbols, image.Symbol{Name: autoInitFuncNames[i], Value: fn})
		}
	}
	return hit
}

// functionTableEntries reads the auto-init function table: consecutive
// absolute longword code addresses terminated by 0xFFFFFFFF or image end.
func functionTableEntries(img *image.Image, addr uint32) []uint32 {
	var out []uint32
	for a := addr; a+4 <= img.End() && len(out) < len(autoInitFuncNames); a += 4 {
		v := img.Long(a)
		if v == 0xFFFFFFFF {
			break
		}
		out = append(out, v)
	}
	return out
}
