// Command ira68 is the batch driver for the reassembler: it loads a
// container, runs the three analysis passes, and writes the resulting
// assembler source (spec.md §5/§6). Configuration-record construction from
// flags and an optional project file is this repository's out-of-spec
// collaborator — spec.md treats the populated record itself as the input.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/grimdork/climate"
	"github.com/m68kira/ira68/internal/analysis"
	"github.com/m68kira/ira68/internal/container"
	"github.com/m68kira/ira68/internal/engine"
	"github.com/m68kira/ira68/internal/ioutil"
	"github.com/m68kira/ira68/internal/megadrive"
)

func main() {
	var opt options
	if err := climate.Parse(&opt); err != nil {
		fmt.Fprintf(os.Stderr, "IRA_ERROR: %v\n", err)
		os.Exit(1)
	}

	log, closeLog, err := setupLogger(opt.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "IRA_ERROR: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(&opt, log); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func run(opt *options, log *slog.Logger) error {
	if opt.Input == "" {
		return fmt.Errorf("no input file given")
	}

	cfg, err := buildConfig(opt)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(opt.Input)
	if err != nil {
		return fmt.Errorf("reading %q: %w", opt.Input, err)
	}

	if opt.Megadrive {
		log.Info("de-interleaving Megadrive SMD blocks")
		megadrive.DetransposeAll(data)
	}

	loaded, err := loadContainer(data, cfg.Base)
	if err != nil {
		return err
	}

	eng := engine.New(cfg, loaded)
	log.Info("pass 0: discovering code")
	eng.Pass0()
	log.Info("pass 1: collecting labels", "codeAreas", eng.State.CodeAreaCount())
	eng.Pass1()
	log.Info("pass 2: emitting source")
	result := eng.Pass2()

	if err := writeOutput(opt, result); err != nil {
		return err
	}

	stem := strings.TrimSuffix(opt.Output, filepath.Ext(opt.Output))
	artifacts := ioutil.New(stem, opt.KeepBinary, opt.KeepLabel)
	if opt.KeepBinary {
		if err := artifacts.WriteBinary(eng.State.Img, false); err != nil {
			log.Warn("could not write binary artifact", "error", err)
		}
	}
	if opt.KeepLabel {
		if err := artifacts.WriteLabels(&eng.State.Trace); err != nil {
			log.Warn("could not write label artifact", "error", err)
		}
	}
	defer artifacts.Close()

	return nil
}

func loadContainer(data []byte, base uint32) (*container.Loaded, error) {
	format, err := container.Detect(data)
	if err != nil {
		return nil, err
	}
	switch format {
	case container.FormatAmigaHunk:
		return container.LoadAmigaHunk(data, base)
	default:
		return container.LoadRaw(data, base), nil
	}
}

// writeOutput writes either a single combined source file, or (when
// SplitFile is set) one file per section plus a stub of INCLUDE directives
// at opt.Output naming them (spec.md §6 "a single file, or split per
// section with INCLUDE directives").
func writeOutput(opt *options, result analysis.EmitResult) error {
	if result.Sections == nil {
		return os.WriteFile(opt.Output, []byte(result.Combined), 0o644)
	}

	stem := strings.TrimSuffix(opt.Output, filepath.Ext(opt.Output))
	if err := os.WriteFile(opt.Output, []byte(result.Main), 0o644); err != nil {
		return err
	}
	for i, src := range result.Sections {
		path := fmt.Sprintf("%s.S%d", stem, i)
		if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
			return err
		}
	}
	return nil
}
