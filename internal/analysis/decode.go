// Package analysis implements the three-pass engine (spec.md §4.5-§4.7):
// Pass 0 code discovery, Pass 1 label collection, and Pass 2 emission. All
// three share decodeOne, the single per-instruction decode step that turns
// an isa.Entry match into a mnemonic/operand pair (or records it invalid).
package analysis

import (
	"fmt"

	"github.com/m68kira/ira68/internal/dispatch"
	"github.com/m68kira/ira68/internal/isa"
	"github.com/m68kira/ira68/internal/operand"
)

// Decoded is one fully resolved instruction.
type Decoded struct {
	Addr     uint32
	NextAddr uint32
	Mnemonic string
	Operands string
	RawWord  uint16
	Invalid  bool
	Labels   []uint32
	Family   isa.Family
}

// decodeOne reads one instruction at ctx.Cursor (== the instruction's
// address on entry) and returns its mnemonic/operand text, advancing
// ctx.Cursor past it. Invalid combinations rewind the cursor to just past
// the opcode word and set Invalid, per spec.md §4.3's "invalid-mode
// recovery".
func decodeOne(ctx *operand.Context, cpus isa.CPUMask) Decoded {
	addr := ctx.Cursor
	ctx.InsnAddr = addr
	word := ctx.Img.Word(addr)
	ctx.Cursor = addr + 2

	entry, _ := isa.Decode(word, cpus)
	eff := isa.Effective{Entry: *entry}
	if !dispatch.Apply(&eff, word, cpus) || eff.Family == isa.FamilyDCW {
		return invalidWord(addr, word)
	}

	fields := isa.Decompose(word, &eff.Entry)
	var labels []uint32
	mnemonic, operands, ok := resolveFamily(ctx, &eff, word, fields, &labels)
	if !ok {
		ctx.Cursor = addr + 2
		return invalidWord(addr, word)
	}

	d := Decoded{Addr: addr, NextAddr: ctx.Cursor, Mnemonic: mnemonic, Operands: operands, RawWord: word, Labels: labels, Family: eff.Family}
	return d
}

func invalidWord(addr uint32, word uint16) Decoded {
	return Decoded{Addr: addr, NextAddr: addr + 2, Mnemonic: "dc.w", Operands: fmt.Sprintf("$%04X", word), RawWord: word, Invalid: true, Family: isa.FamilyDCW}
}

func sizeSuffix(f isa.Flag, size isa.Size) string {
	if f&isa.FlagAppendSize == 0 {
		return ""
	}
	return size.Suffix()
}

func ccSuffix(word uint16, f isa.Flag, branch bool) string {
	if f&isa.FlagAppendCC == 0 {
		return ""
	}
	cond := (word >> 8) & 0xF
	if branch {
		return isa.BranchConditionNames[cond]
	}
	return isa.ConditionNames[cond]
}

// resolveFamily dispatches on the opcode family to build the mnemonic and
// operand text for every instruction family, operating against the flat
// image via operand.Context rather than a raw byte slice.
func resolveFamily(ctx *operand.Context, eff *isa.Effective, word uint16, f isa.Fields, labels *[]uint32) (string, string, bool) {
	collect := func(rs ...operand.Result) (string, bool) {
		var parts []string
		for _, r := range rs {
			if r.Invalid {
				return "", false
			}
			if r.Text != "" {
				parts = append(parts, r.Text)
			}
			*labels = append(*labels, r.Labels...)
		}
		out := ""
		for i, p := range parts {
			if i > 0 {
				out += ","
			}
			out += p
		}
		return out, true
	}

	switch eff.Family {
	case isa.FamilyImmediateToStatus:
		v := ctx.ResolveEA(isa.EAImmediate, 0, eff.FixedSize)
		dst := ctx.ResolvePseudo(eff.PseudoDst, word, f)
		ops, ok := collect(v, dst)
		return eff.Mnemonic, ops, ok

	case isa.FamilyImmediateArith:
		src := ctx.ResolveEA(isa.EAImmediate, 0, f.Size)
		dstMode := f.Mode
		dstReg := f.EAReg
		dst := ctx.ResolveEA(dstMode, dstReg, f.Size)
		ops, ok := collect(src, dst)
		return eff.Mnemonic + sizeSuffix(eff.Flags, f.Size), ops, ok

	case isa.FamilyBitManip:
		src := ctx.ResolvePseudo(isa.PseudoBitSource, word, f)
		dstSize := isa.SizeByte
		if f.Mode == isa.EADataDirect {
			dstSize = isa.SizeLong
		}
		dst := ctx.ResolveEA(f.Mode, f.EAReg, dstSize)
		ops, ok := collect(src, dst)
		return eff.Mnemonic, ops, ok

	case isa.FamilyBitField:
		ea := ctx.ResolveEA(f.Mode, f.EAReg, isa.SizeLong)
		bf := ctx.ResolvePseudo(isa.PseudoBitField, word, f)
		switch eff.Mnemonic {
		case "bfextu", "bfexts", "bfffo":
			reg := operand.Result{Text: fmt.Sprintf("d%d", f.AltReg)}
			ops, ok := collect(ea, bf, reg)
			return eff.Mnemonic, ops, ok
		case "bfins":
			reg := operand.Result{Text: fmt.Sprintf("d%d", f.AltReg)}
			ops, ok := collect(reg, ea, bf)
			return eff.Mnemonic, ops, ok
		default:
			ops, ok := collect(ea, bf)
			return eff.Mnemonic, ops, ok
		}

	case isa.FamilyMOVEP:
		dReg, aReg := f.AltReg, f.EAReg
		opmode := (word >> 6) & 7
		sz := isa.SizeWord
		if opmode == 5 || opmode == 7 {
			sz = isa.SizeLong
		}
		disp := ctx.ResolveEA(isa.EADisp, aReg, sz)
		if disp.Invalid {
			return "", "", false
		}
		if opmode == 4 || opmode == 5 {
			return eff.Mnemonic + sz.Suffix(), fmt.Sprintf("%s,d%d", disp.Text, dReg), true
		}
		return eff.Mnemonic + sz.Suffix(), fmt.Sprintf("d%d,%s", dReg, disp.Text), true

	case isa.FamilyMove:
		srcMode := isa.DecodeEAMode((word>>3)&7, word&7)
		dstModeRaw := (word >> 6) & 7
		dstReg := (word >> 9) & 7
		dstMode := isa.DecodeEAMode(dstModeRaw, dstReg)
		src := ctx.ResolveEA(srcMode, word&7, eff.FixedSize)
		dst := ctx.ResolveEA(dstMode, dstReg, eff.FixedSize)
		mn := eff.Mnemonic
		if dstMode == isa.EAAddrDirect {
			if eff.FixedSize == isa.SizeLong {
				mn = "movea.l"
			} else {
				mn = "movea.w"
			}
		} else {
			mn = mn + eff.FixedSize.Suffix()
		}
		ops, ok := collect(src, dst)
		return mn, ops, ok

	case isa.FamilyMoveToFromStatus:
		if eff.PseudoSrc != isa.PseudoNone {
			dst := ctx.ResolveEA(f.Mode, f.EAReg, isa.SizeWord)
			ops, ok := collect(operand.Result{Text: pseudoName(eff.PseudoSrc)}, dst)
			return "move", ops, ok
		}
		src := ctx.ResolveEA(f.Mode, f.EAReg, isa.SizeWord)
		ops, ok := collect(src, operand.Result{Text: pseudoName(eff.PseudoDst)})
		return "move", ops, ok

	case isa.FamilyMoveUSP:
		reg := word & 7
		if eff.PseudoDst == isa.PseudoUSP {
			return "move.l", fmt.Sprintf("a%d,usp", reg), true
		}
		return "move.l", fmt.Sprintf("usp,a%d", reg), true

	case isa.FamilySingleOperand:
		size := f.Size
		if eff.Flags&isa.FlagFixedSize != 0 {
			size = eff.FixedSize
		}
		ea := ctx.ResolveEA(f.Mode, f.EAReg, size)
		if ea.Invalid {
			return "", "", false
		}
		*labels = append(*labels, ea.Labels...)
		return eff.Mnemonic + sizeSuffix(eff.Flags|isa.FlagAppendSize, size), ea.Text, true

	case isa.FamilyPEA:
		ea := ctx.ResolveEA(f.Mode, f.EAReg, isa.SizeLong)
		if ea.Invalid {
			return "", "", false
		}
		*labels = append(*labels, ea.Labels...)
		return "pea", ea.Text, true

	case isa.FamilySwapExt:
		reg := word & 7
		if eff.Mnemonic == "swap" {
			return "swap", fmt.Sprintf("d%d", reg), true
		}
		if word&0x0040 != 0 {
			return "ext.l", fmt.Sprintf("d%d", reg), true
		}
		return "ext.w", fmt.Sprintf("d%d", reg), true

	case isa.FamilyMOVEM:
		isLoad := word&0x0400 != 0
		size := "w"
		if word&0x0040 != 0 {
			size = "l"
		}
		list := ctx.ResolvePseudo(isa.PseudoMovemList, word, f)
		ea := ctx.ResolveEA(f.Mode, f.EAReg, isa.SizeWord)
		if ea.Invalid || list.Invalid {
			return "", "", false
		}
		*labels = append(*labels, ea.Labels...)
		if isLoad {
			return "movem." + size, fmt.Sprintf("%s,%s", ea.Text, list.Text), true
		}
		return "movem." + size, fmt.Sprintf("%s,%s", list.Text, ea.Text), true

	case isa.FamilyLEA:
		ea := ctx.ResolveEA(f.Mode, f.EAReg, isa.SizeLong)
		if ea.Invalid {
			return "", "", false
		}
		*labels = append(*labels, ea.Labels...)
		return "lea", fmt.Sprintf("%s,a%d", ea.Text, f.AltReg), true

	case isa.FamilyTrap:
		v := ctx.ResolvePseudo(isa.PseudoTrapVector, word, f)
		return "trap", v.Text, true

	case isa.FamilyLinkUnlk:
		reg := word & 7
		if eff.Mnemonic == "unlk" {
			return "unlk", fmt.Sprintf("a%d", reg), true
		}
		disp := ctx.ResolvePseudo(isa.PseudoStackDisplacement, word, f)
		return "link", fmt.Sprintf("a%d,%s", reg, disp.Text), true

	case isa.FamilyRTD:
		disp := ctx.ResolvePseudo(isa.PseudoStackDisplacement, word, f)
		return "rtd", disp.Text, true

	case isa.FamilySystemNoOperand:
		if eff.Mnemonic == "stop" {
			w := ctx.Img.Word(ctx.Cursor)
			ctx.Cursor += 2
			return "stop", fmt.Sprintf("#$%X", w), true
		}
		return eff.Mnemonic, "", true

	case isa.FamilyJump:
		ea := ctx.ResolveEA(f.Mode, f.EAReg, isa.SizeLong)
		if ea.Invalid {
			return "", "", false
		}
		*labels = append(*labels, ea.Labels...)
		return eff.Mnemonic, ea.Text, true

	case isa.FamilyAddqSubq:
		q := ctx.ResolvePseudo(isa.PseudoQuickImmediate, word, f)
		dst := ctx.ResolveEA(f.Mode, f.EAReg, f.Size)
		ops, ok := collect(q, dst)
		return eff.Mnemonic + sizeSuffix(eff.Flags, f.Size), ops, ok

	case isa.FamilyScc:
		dst := ctx.ResolveEA(f.Mode, f.EAReg, isa.SizeByte)
		if dst.Invalid {
			return "", "", false
		}
		*labels = append(*labels, dst.Labels...)
		return "s" + ccSuffix(word, isa.FlagAppendCC, false), dst.Text, true

	case isa.FamilyDBcc:
		reg := word & 7
		disp := ctx.ResolvePseudo(isa.PseudoDBccDisplacement, word, f)
		*labels = append(*labels, disp.Labels...)
		return "db" + ccSuffix(word, isa.FlagAppendCC, false), fmt.Sprintf("d%d,%s", reg, disp.Text), true

	case isa.FamilyBranch:
		cond := (word >> 8) & 0xF
		mn := "b" + isa.BranchConditionNames[cond]
		disp := ctx.ResolvePseudo(isa.PseudoBccDisplacement, word, f)
		*labels = append(*labels, disp.Labels...)
		return mn, disp.Text, true

	case isa.FamilyMoveq:
		imm := ctx.ResolvePseudo(isa.PseudoMoveq, word, f)
		return "moveq", fmt.Sprintf("%s,d%d", imm.Text, f.AltReg), true

	case isa.FamilyExg:
		rx, ry := f.AltReg, word&7
		switch word & 0x01F8 {
		case 0x140:
			return "exg", fmt.Sprintf("d%d,d%d", rx, ry), true
		case 0x148:
			return "exg", fmt.Sprintf("a%d,a%d", rx, ry), true
		default:
			return "exg", fmt.Sprintf("d%d,a%d", rx, ry), true
		}

	case isa.FamilyMulDivWord:
		src := ctx.ResolveEA(f.Mode, f.EAReg, isa.SizeWord)
		if src.Invalid {
			return "", "", false
		}
		*labels = append(*labels, src.Labels...)
		return eff.Mnemonic + ".w", fmt.Sprintf("%s,d%d", src.Text, f.AltReg), true

	case isa.FamilyMulDivLong:
		src := ctx.ResolveEA(f.Mode, f.EAReg, isa.SizeLong)
		regs := ctx.ResolvePseudo(isa.PseudoMulDiv32, word, f)
		ops, ok := collect(src, regs)
		return eff.Mnemonic, ops, ok

	case isa.FamilyABCDSBCD:
		if word&0x0008 != 0 {
			return eff.Mnemonic, fmt.Sprintf("-(a%d),-(a%d)", word&7, f.AltReg), true
		}
		return eff.Mnemonic, fmt.Sprintf("d%d,d%d", word&7, f.AltReg), true

	case isa.FamilyUnpackPack:
		adj := ctx.Img.Word(ctx.Cursor)
		ctx.Cursor += 2
		if word&0x0008 != 0 {
			return eff.Mnemonic, fmt.Sprintf("-(a%d),-(a%d),#$%X", word&7, f.AltReg, adj), true
		}
		return eff.Mnemonic, fmt.Sprintf("d%d,d%d,#$%X", word&7, f.AltReg, adj), true

	case isa.FamilyArith:
		dir := word&0x0100 != 0
		ea := ctx.ResolveEA(f.Mode, f.EAReg, f.Size)
		if ea.Invalid {
			return "", "", false
		}
		*labels = append(*labels, ea.Labels...)
		mn := eff.Mnemonic + sizeSuffix(eff.Flags, f.Size)
		if dir {
			return mn, fmt.Sprintf("d%d,%s", f.AltReg, ea.Text), true
		}
		return mn, fmt.Sprintf("%s,d%d", ea.Text, f.AltReg), true

	case isa.FamilyAddrArith:
		size := isa.SizeWord
		if word&0x0100 != 0 {
			size = isa.SizeLong
		}
		ea := ctx.ResolveEA(f.Mode, f.EAReg, size)
		if ea.Invalid {
			return "", "", false
		}
		*labels = append(*labels, ea.Labels...)
		return eff.Mnemonic + size.Suffix(), fmt.Sprintf("%s,a%d", ea.Text, f.AltReg), true

	case isa.FamilyAddxSubx:
		mn := eff.Mnemonic + sizeSuffix(eff.Flags, f.Size)
		if word&0x0008 != 0 {
			return mn, fmt.Sprintf("-(a%d),-(a%d)", word&7, f.AltReg), true
		}
		return mn, fmt.Sprintf("d%d,d%d", word&7, f.AltReg), true

	case isa.FamilyCmpm:
		return eff.Mnemonic + sizeSuffix(eff.Flags, f.Size), fmt.Sprintf("(a%d)+,(a%d)+", word&7, f.AltReg), true

	case isa.FamilyChk:
		src := ctx.ResolveEA(f.Mode, f.EAReg, isa.SizeWord)
		if src.Invalid {
			return "", "", false
		}
		*labels = append(*labels, src.Labels...)
		return "chk", fmt.Sprintf("%s,d%d", src.Text, f.AltReg), true

	case isa.FamilyShiftRotate:
		if eff.DstMask != 0 {
			ea := ctx.ResolveEA(f.Mode, f.EAReg, isa.SizeWord)
			if ea.Invalid {
				return "", "", false
			}
			*labels = append(*labels, ea.Labels...)
			return eff.Mnemonic, ea.Text, true
		}
		cnt := ctx.ResolvePseudo(isa.PseudoRotateShift, word, f)
		if word&0x0020 == 0 {
			return eff.Mnemonic + sizeSuffix(eff.Flags|isa.FlagAppendSize, f.Size), fmt.Sprintf("d%d,d%d", f.AltReg, word&7), true
		}
		return eff.Mnemonic + sizeSuffix(eff.Flags|isa.FlagAppendSize, f.Size), fmt.Sprintf("%s,d%d", cnt.Text, word&7), true

	case isa.FamilyCAS:
		ea := ctx.ResolveEA(f.Mode, f.EAReg, f.Size)
		regs := ctx.ResolvePseudo(isa.PseudoCAS, word, f)
		ops, ok := collect(regs, ea)
		return eff.Mnemonic + sizeSuffix(eff.Flags, f.Size), ops, ok

	case isa.FamilyCAS2:
		regs := ctx.ResolvePseudo(isa.PseudoCAS2, word, f)
		return eff.Mnemonic, regs.Text, true

	case isa.FamilyChk2Cmp2:
		ea := ctx.ResolveEA(f.Mode, f.EAReg, isa.SizeLong)
		*labels = append(*labels, ea.Labels...)
		ext := ctx.Img.Word(ctx.Cursor)
		ctx.Cursor += 2
		reg := (ext >> 12) & 7
		regName := fmt.Sprintf("d%d", reg)
		if ext&0x8000 != 0 {
			regName = fmt.Sprintf("a%d", reg)
		}
		mn := "cmp2"
		if ext&0x0800 != 0 {
			mn = "chk2"
		}
		return mn, fmt.Sprintf("%s,%s", ea.Text, regName), true

	case isa.FamilyRTM:
		reg := ctx.ResolvePseudo(isa.PseudoRTMRegister, word, f)
		return "rtm", reg.Text, true

	case isa.FamilyMOVEC:
		ctrlReg, gp := ctx.ResolveMOVEC()
		if word&1 != 0 {
			return "movec", fmt.Sprintf("%s,%s", gp, ctrlReg), true
		}
		return "movec", fmt.Sprintf("%s,%s", ctrlReg, gp), true

	case isa.FamilyMOVES:
		ext := ctx.Img.Word(ctx.Cursor)
		ctx.Cursor += 2
		regNum := (ext >> 12) & 7
		greg := fmt.Sprintf("d%d", regNum)
		if ext&0x8000 != 0 {
			greg = fmt.Sprintf("a%d", regNum)
		}
		ea := ctx.ResolveEA(f.Mode, f.EAReg, f.Size)
		if ea.Invalid {
			return "", "", false
		}
		*labels = append(*labels, ea.Labels...)
		if ext&0x0800 != 0 {
			return "moves" + sizeSuffix(eff.Flags, f.Size), fmt.Sprintf("%s,%s", greg, ea.Text), true
		}
		return "moves" + sizeSuffix(eff.Flags, f.Size), fmt.Sprintf("%s,%s", ea.Text, greg), true

	case isa.FamilyCacheControl:
		if word&0x00C0 == 0xC0 {
			return eff.Mnemonic, "", true
		}
		return eff.Mnemonic, fmt.Sprintf("(a%d)", word&7), true

	default:
		return "", "", false
	}
}

func pseudoName(pm isa.PseudoMode) string {
	switch pm {
	case isa.PseudoCCR:
		return "ccr"
	case isa.PseudoSR:
		return "sr"
	case isa.PseudoUSP:
		return "usp"
	default:
		return "?"
	}
}
