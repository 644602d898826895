package engine

import (
	"github.com/m68kira/ira68/internal/analysis"
	"github.com/m68kira/ira68/internal/container"
	"github.com/m68kira/ira68/internal/image"
	"github.com/m68kira/ira68/internal/romtag"
	"github.com/m68kira/ira68/internal/symbols"
)

// Engine is the root value threading a loaded image and its configuration
// through the three analysis passes. Each pass is a thin delegating method
// over *analysis.State, which does the actual work.
type Engine struct {
	Config  Config
	State   *analysis.State
	entries []uint32 // Pass 0 work-queue seeds: configured entry + ROM-tag hits
}

// New builds an Engine from a populated Config and an already-loaded image,
// wiring every table Pass 0/1/2 consult: configured overrides, ROM-tag hits,
// and the symbol resolver.
func New(cfg Config, loaded *container.Loaded) *Engine {
	st := &analysis.State{
		Img:     loaded.Image,
		Relocs:  loaded.Relocs,
		SymTab:  loaded.Symbols,
		Labels:  &image.Labels{},
		Equates: image.NewEquateTable(),
		Xrefs:   image.NewXrefTable(),

		CPUs:            cfg.CPUs,
		ImmedByteCompat: cfg.ImmedByteCompat,
		AddressEmission: cfg.Flags.Has(FlagADROutput),
		SplitFile:       cfg.Flags.Has(FlagSPLITFILE),
	}

	for _, a := range cfg.CodeAreas {
		st.Confirmed.Insert(a.Start, a.End)
	}
	for _, a := range cfg.NoBase {
		st.NoBase.Insert(a.Start, a.End)
	}
	for _, a := range cfg.NoPointer {
		st.NoPointer.Insert(a.Start, a.End)
	}
	for _, a := range cfg.TextAreas {
		st.TextAreas.Insert(a.Start, a.End)
	}
	st.JumpTables = append(st.JumpTables, cfg.JumpTables...)
	for _, sym := range cfg.Symbols {
		st.SymTab.Insert(sym.Name, sym.Value)
	}
	for _, eq := range cfg.Equates {
		st.Equates.Insert(eq)
	}
	st.Comments.Comments = append(st.Comments.Comments, cfg.Comments...)
	st.Comments.Banners = append(st.Comments.Banners, cfg.Banners...)

	entries := []uint32{cfg.Entry}
	for _, hit := range romtag.Scan(st.Img) {
		entries = append(entries, hit.Labels...)
		for _, sym := range hit.Symbols {
			st.SymTab.Insert(sym.Name, sym.Value)
		}
		for _, addr := range hit.Relocations {
			st.Labels.Insert(addr)
		}
	}

	resolver := symbols.NewResolver(st.Img, st.Labels, st.SymTab, st.Xrefs)
	resolver.BaseReg = cfg.BaseReg
	st.Resolver = resolver

	return &Engine{Config: cfg, State: st, entries: entries}
}

// Pass0 runs code discovery (spec.md §4.5) from the entry point plus every
// ROM-tag hit found during New.
func (e *Engine) Pass0() {
	e.State.DiscoverCode(e.entries)
}

// Pass1 runs label collection (spec.md §4.6).
func (e *Engine) Pass1() {
	e.State.CollectLabels()
}

// Pass2 runs emission (spec.md §4.7) and returns the rendered source.
func (e *Engine) Pass2() analysis.EmitResult {
	return e.State.Emit()
}
