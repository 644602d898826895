package operand

import "fmt"

// resolveIndex implements the brief-format (d8,An,Xn) / (d8,PC,Xn) addressing
// modes (spec.md §4.3). Full-extension-word forms (68020+ scaled index,
// base/outer displacement, memory-indirect) are a documented simplification:
// this reassembler recognizes the brief format used by the overwhelming
// majority of 680x0 object code and falls back to DC.W when bit 8 of the
// extension word marks the full format.
func (c *Context) resolveIndex(baseReg uint16, pcRelative bool) Result {
	extAddr := c.Cursor
	ext := c.readWord()
	if ext&0x0100 != 0 {
		// Full extension word format: base/outer displacement sizes, scale,
		// suppress bits. Not decoded; the Invalid result makes the
		// instruction decoder emit the word as DC.W.
		return invalid()
	}

	disp := int8(ext & 0xFF)
	idxNum := (ext >> 12) & 7
	idxIsAddr := ext&0x8000 != 0
	idxIsLong := ext&0x0800 != 0

	idxName := dataReg(idxNum)
	if idxIsAddr {
		idxName = addrReg(idxNum)
	}
	sizeCh := "w"
	if idxIsLong {
		sizeCh = "l"
	}

	var base string
	var baseAddr uint32
	if pcRelative {
		base = "pc"
		baseAddr = extAddr
	} else {
		base = addrReg(baseReg)
	}

	op := fmt.Sprintf("(%d,%s,%s.%s)", disp, base, idxName, sizeCh)
	if pcRelative {
		target := uint32(int64(baseAddr) + int64(disp))
		return withLabel(op, target)
	}
	return text(op)
}
