package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/m68kira/ira68/internal/engine"
	"github.com/m68kira/ira68/internal/image"
	"github.com/m68kira/ira68/internal/isa"
	"github.com/m68kira/ira68/internal/symbols"
	"github.com/spf13/viper"
)

// options is the flag set climate parses, covering the CLI surface spec.md
// §6 names plus the flag this repository adds (--megadrive).
type options struct {
	Input      string `arg:"positional" description:"input ROM, Amiga executable, or raw binary"`
	Output     string `arg:"-o,--output" default:"a.asm" description:"output assembly source file"`
	Project    string `arg:"-p,--project" description:"YAML project file supplying symbols/equates/comments/areas"`
	Base       string `arg:"-b,--base" default:"0" description:"base load address (decimal or 0x-prefixed hex)"`
	Entry      string `arg:"-e,--entry" default:"0" description:"code entry address"`
	CPUs       string `arg:"--cpu" default:"68000" description:"comma-separated target CPUs, e.g. 68000,68881"`
	SplitFile  bool   `arg:"--split" description:"emit one source file per section plus an include stub"`
	AdrOutput  bool   `arg:"--adr" description:"append ;$address trailing comments to every instruction"`
	ImmedByte  bool   `arg:"--immed-byte-compat" description:"accept immediate bytes with set top bits (0xFF80)"`
	KeepBinary bool   `arg:"--keep-binary" description:"keep the intermediate .bin file"`
	KeepLabel  bool   `arg:"--keep-label" description:"keep the intermediate .label side file"`
	Megadrive  bool   `arg:"--megadrive" description:"de-interleave an SMD-format Megadrive dump before reading"`
	LogFile    string `arg:"--log" description:"also write a JSON log to this file"`
}

// projectFile is the flat, non-Turing-complete data file spec.md §6's Config
// record construction note permits: list-valued configuration that would be
// unwieldy as flags, unmarshaled directly by viper.
type projectFile struct {
	CodeAreas  []areaSpec   `mapstructure:"codeareas"`
	NoBase     []areaSpec   `mapstructure:"nobase"`
	NoPointer  []areaSpec   `mapstructure:"nopointer"`
	TextAreas  []areaSpec   `mapstructure:"textareas"`
	JumpTables []jtSpec     `mapstructure:"jumptables"`
	Symbols    []symSpec    `mapstructure:"symbols"`
	Equates    []equSpec    `mapstructure:"equates"`
	Comments   []commentSpec `mapstructure:"comments"`
	Banners    []commentSpec `mapstructure:"banners"`
	BaseReg    *baseRegSpec `mapstructure:"basereg"`
}

type areaSpec struct {
	Start string `mapstructure:"start"`
	End   string `mapstructure:"end"`
}

type jtSpec struct {
	Start string `mapstructure:"start"`
	End   string `mapstructure:"end"`
	Base  string `mapstructure:"base"`
	Size  int    `mapstructure:"size"`
}

type symSpec struct {
	Name  string `mapstructure:"name"`
	Value string `mapstructure:"value"`
}

type equSpec struct {
	Name    string `mapstructure:"name"`
	Address string `mapstructure:"address"`
	Size    string `mapstructure:"size"`
	Value   string `mapstructure:"value"`
}

type commentSpec struct {
	Address string `mapstructure:"address"`
	Text    string `mapstructure:"text"`
}

type baseRegSpec struct {
	Reg     int    `mapstructure:"reg"`
	Base    string `mapstructure:"base"`
	Section int    `mapstructure:"section"`
}

func parseAddr(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid address %q: %w", s, err)
	}
	return uint32(v), nil
}

func parseCPUs(spec string) (isa.CPUMask, error) {
	names := map[string]isa.CPUMask{
		"68000": isa.CPU68000, "68010": isa.CPU68010, "68020": isa.CPU68020,
		"68030": isa.CPU68030, "68040": isa.CPU68040, "68060": isa.CPU68060,
		"68881": isa.CPU68881, "68882": isa.CPU68882, "68851": isa.CPU68851,
	}
	var mask isa.CPUMask
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(strings.TrimPrefix(part, "MC"))
		if part == "" {
			continue
		}
		bit, ok := names[part]
		if !ok {
			return 0, fmt.Errorf("unknown CPU %q", part)
		}
		mask |= bit
	}
	if mask == 0 {
		return 0, fmt.Errorf("at least one CPU must be selected")
	}
	return mask, nil
}

func parseEquSize(s string) image.EquSize {
	switch strings.ToLower(s) {
	case "b", "byte":
		return image.EquByte
	case "w", "word":
		return image.EquWord
	case "l", "long":
		return image.EquLong
	default:
		return image.EquQuick
	}
}

func loadProjectFile(path string) (*projectFile, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading project file %q: %w", path, err)
	}
	var pf projectFile
	if err := v.Unmarshal(&pf); err != nil {
		return nil, fmt.Errorf("parsing project file %q: %w", path, err)
	}
	return &pf, nil
}

// buildConfig turns the parsed flags and optional project file into the
// populated engine.Config spec.md §6 treats as an externally supplied input.
func buildConfig(opt *options) (engine.Config, error) {
	base, err := parseAddr(opt.Base)
	if err != nil {
		return engine.Config{}, err
	}
	entry, err := parseAddr(opt.Entry)
	if err != nil {
		return engine.Config{}, err
	}
	cpus, err := parseCPUs(opt.CPUs)
	if err != nil {
		return engine.Config{}, err
	}

	cfg := engine.Config{
		Base:            base,
		Entry:           entry,
		CPUs:            cpus,
		ImmedByteCompat: opt.ImmedByte,
	}
	if opt.SplitFile {
		cfg.Flags |= engine.FlagSPLITFILE
	}
	if opt.AdrOutput {
		cfg.Flags |= engine.FlagADROutput
	}
	if opt.KeepBinary {
		cfg.Flags |= engine.FlagKeepBinary
	}

	if opt.Project == "" {
		return cfg, nil
	}
	pf, err := loadProjectFile(opt.Project)
	if err != nil {
		return engine.Config{}, err
	}
	if err := applyProjectFile(&cfg, pf); err != nil {
		return engine.Config{}, err
	}
	return cfg, nil
}

func applyProjectFile(cfg *engine.Config, pf *projectFile) error {
	areas := func(specs []areaSpec) ([]engine.AreaOverride, error) {
		out := make([]engine.AreaOverride, 0, len(specs))
		for _, a := range specs {
			start, err := parseAddr(a.Start)
			if err != nil {
				return nil, err
			}
			end, err := parseAddr(a.End)
			if err != nil {
				return nil, err
			}
			out = append(out, engine.AreaOverride{Start: start, End: end})
		}
		return out, nil
	}

	var err error
	if cfg.CodeAreas, err = areas(pf.CodeAreas); err != nil {
		return err
	}
	if cfg.NoBase, err = areas(pf.NoBase); err != nil {
		return err
	}
	if cfg.NoPointer, err = areas(pf.NoPointer); err != nil {
		return err
	}
	if cfg.TextAreas, err = areas(pf.TextAreas); err != nil {
		return err
	}

	for _, j := range pf.JumpTables {
		start, err := parseAddr(j.Start)
		if err != nil {
			return err
		}
		end, err := parseAddr(j.End)
		if err != nil {
			return err
		}
		jbase, err := parseAddr(j.Base)
		if err != nil {
			return err
		}
		size := j.Size
		if size == 0 {
			size = 2
		}
		cfg.JumpTables = append(cfg.JumpTables, image.JumpTable{Start: start, End: end, Base: jbase, ElemSize: size})
	}

	for _, s := range pf.Symbols {
		v, err := parseAddr(s.Value)
		if err != nil {
			return err
		}
		cfg.Symbols = append(cfg.Symbols, image.Symbol{Name: s.Name, Value: v})
	}

	for _, e := range pf.Equates {
		addr, err := parseAddr(e.Address)
		if err != nil {
			return err
		}
		val, err := parseAddr(e.Value)
		if err != nil {
			return err
		}
		cfg.Equates = append(cfg.Equates, image.Equate{Name: e.Name, Address: addr, Size: parseEquSize(e.Size), Value: val})
	}

	for _, c := range pf.Comments {
		addr, err := parseAddr(c.Address)
		if err != nil {
			return err
		}
		cfg.Comments = append(cfg.Comments, image.Comment{Address: addr, Text: c.Text})
	}

	for _, b := range pf.Banners {
		addr, err := parseAddr(b.Address)
		if err != nil {
			return err
		}
		cfg.Banners = append(cfg.Banners, image.Banner{Address: addr, Text: b.Text})
	}

	if pf.BaseReg != nil {
		base, err := parseAddr(pf.BaseReg.Base)
		if err != nil {
			return err
		}
		cfg.BaseReg = symbols.BaseReg{Active: true, Reg: pf.BaseReg.Reg, Base: base, Section: pf.BaseReg.Section}
	}
	return nil
}
