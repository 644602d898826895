package operand

import "fmt"

// ResolveEA resolves one of the 12 base addressing modes (spec.md §4.3) at
// the current cursor. reg is the 3-bit register field already extracted by
// isa.Decompose; size governs immediate-operand width and byte-mode
// register restrictions.
func (c *Context) ResolveEA(mode EAMode, reg uint16, size Size) Result {
	switch mode {
	case EADataDirect:
		return text(dataReg(reg))
	case EAAddrDirect:
		if size == SizeByte {
			return invalid() // address-register direct is rejected for byte ops
		}
		return text(addrReg(reg))
	case EAAddrIndirect:
		return text(fmt.Sprintf("(%s)", addrReg(reg)))
	case EAPostInc:
		return text(fmt.Sprintf("(%s)+", addrReg(reg)))
	case EAPreDec:
		return text(fmt.Sprintf("-(%s)", addrReg(reg)))
	case EADisp:
		return c.resolveDisp16(reg)
	case EAIndex:
		return c.resolveIndex(reg, false)
	case EAAbsShort:
		return c.resolveAbsShort()
	case EAAbsLong:
		return c.resolveAbsLong()
	case EAPCDisp:
		return c.resolvePCDisp()
	case EAPCIndex:
		return c.resolveIndex(0, true)
	case EAImmediate:
		return c.resolveImmediate(size)
	default:
		return invalid()
	}
}

// resolveDisp16 implements (d16,An), including the optional base-register
// substitution (spec.md §4.3 "Areg-indirect-with-displacement").
func (c *Context) resolveDisp16(reg uint16) Result {
	disp := int16(c.readWord())
	if c.Resolver != nil && c.Resolver.BaseReg.Active && c.Resolver.BaseReg.Reg == int(reg) {
		target := uint32(int64(c.Resolver.BaseReg.Base) + int64(disp))
		if sec := c.Img.SectionAt(target); sec != nil {
			return text(c.Resolver.GetLabel(target, symbolsModeDirect()))
		}
	}
	if disp == 0 {
		return text(fmt.Sprintf("(%s)", addrReg(reg)))
	}
	return text(fmt.Sprintf("(%d,%s)", disp, addrReg(reg)))
}

// resolveAbsShort implements (xxx).W: a relocation always wins, else the
// value is treated as a signed 16-bit address and resolved like absolute.
func (c *Context) resolveAbsShort() Result {
	addr := c.Cursor
	v := c.readWord()
	if c.Relocs != nil {
		if r, ok := c.Relocs.At(addr); ok {
			return c.labelAt(r.TargetValue)
		}
	}
	target := uint32(int32(int16(v)))
	return c.resolveAbsolute(target)
}

// resolveAbsLong implements (xxx).L.
func (c *Context) resolveAbsLong() Result {
	addr := c.Cursor
	v := c.readLong()
	if c.Relocs != nil {
		if r, ok := c.Relocs.At(addr); ok {
			return c.labelAt(r.TargetValue)
		}
	}
	return c.resolveAbsolute(v)
}

func (c *Context) labelAt(target uint32) Result {
	if c.LabelsOnly || c.Resolver == nil {
		return withLabel(fmt.Sprintf("$%X", target), target)
	}
	return withLabel(c.Resolver.GetLabel(target, symbolsModeViaRelocation()), target)
}

// resolveAbsolute resolves a plain absolute value against the image (spec.md
// §4.3: inside image -> GetLabel, else GetXref).
func (c *Context) resolveAbsolute(target uint32) Result {
	if c.Img.InBounds(target) {
		if c.LabelsOnly || c.Resolver == nil {
			return withLabel(fmt.Sprintf("$%X", target), target)
		}
		return withLabel(c.Resolver.GetLabel(target, symbolsModeDirect()), target)
	}
	if c.LabelsOnly || c.Resolver == nil {
		return text(fmt.Sprintf("$%X", target))
	}
	return text(c.Resolver.GetXref(target))
}

// resolvePCDisp implements (d16,PC): odd targets are rejected. The target is
// not checked against the current section's bounds.
func (c *Context) resolvePCDisp() Result {
	extAddr := c.Cursor
	disp := int16(c.readWord())
	target := uint32(int64(extAddr) + int64(disp))
	if target&1 != 0 {
		return invalid()
	}
	if c.LabelsOnly || c.Resolver == nil {
		return withLabel(fmt.Sprintf("(%d,pc)", disp), target)
	}
	return withLabel(fmt.Sprintf("(%s,pc)", c.Resolver.GetLabel(target, symbolsModeDirect())), target)
}

// resolveImmediate implements the size-dependent #<data> form (spec.md
// §4.3). For longs, a relocation makes it symbolic; else an equate; else a
// numeric literal.
func (c *Context) resolveImmediate(size Size) Result {
	addr := c.Cursor
	switch size {
	case SizeByte:
		w := c.readWord()
		hi, lo := byte(w>>8), byte(w)
		if hi != 0 && !(c.ImmedByteCompat && hi == 0xFF && lo&0x80 != 0) {
			return invalid()
		}
		if c.Equates != nil {
			if eq, ok := c.Equates.At(addr, equByte()); ok {
				return text("#" + eq.Name)
			}
		}
		return text(fmt.Sprintf("#$%X", lo))
	case SizeWord:
		w := c.readWord()
		if c.Equates != nil {
			if eq, ok := c.Equates.At(addr, equWord()); ok {
				return text("#" + eq.Name)
			}
		}
		return text(fmt.Sprintf("#$%X", w))
	case SizeLong:
		if c.Relocs != nil {
			if r, ok := c.Relocs.At(addr); ok {
				c.readLong()
				if c.LabelsOnly || c.Resolver == nil {
					return withLabel(fmt.Sprintf("#$%X", r.TargetValue), r.TargetValue)
				}
				return withLabel("#"+c.Resolver.GetLabel(r.TargetValue, symbolsModeViaRelocation()), r.TargetValue)
			}
		}
		v := c.readLong()
		if c.Equates != nil {
			if eq, ok := c.Equates.At(addr, equLong()); ok {
				return text("#" + eq.Name)
			}
		}
		return text(fmt.Sprintf("#$%X", v))
	default:
		return invalid()
	}
}
