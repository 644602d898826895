package engine_test

import (
	"strings"
	"testing"

	"github.com/m68kira/ira68/internal/container"
	"github.com/m68kira/ira68/internal/engine"
	"github.com/m68kira/ira68/internal/image"
	"github.com/m68kira/ira68/internal/isa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A minimal raw binary: a single RTS instruction at the entry point, loaded
// with LoadRaw. This exercises code discovery and emission with the smallest
// opcode that needs no operand resolution.
func TestEngineMinimalExecutable(t *testing.T) {
	data := []byte{0x4E, 0x75} // rts
	loaded := container.LoadRaw(data, 0x1000)

	cfg := engine.Config{
		Base:  0x1000,
		Entry: 0x1000,
		CPUs:  isa.CPU68000,
	}

	eng := engine.New(cfg, loaded)
	eng.Pass0()
	require.Equal(t, 1, eng.State.CodeAreaCount())

	eng.Pass1()
	result := eng.Pass2()

	assert.Contains(t, strings.ToLower(result.Combined), "rts")
}

func TestEngineSplitFileProducesPerSectionOutput(t *testing.T) {
	data := []byte{0x4E, 0x75}
	loaded := container.LoadRaw(data, 0x2000)

	cfg := engine.Config{
		Base:  0x2000,
		Entry: 0x2000,
		CPUs:  isa.CPU68000,
		Flags: engine.FlagSPLITFILE,
	}

	eng := engine.New(cfg, loaded)
	eng.Pass0()
	eng.Pass1()
	result := eng.Pass2()

	require.Len(t, result.Sections, 1)
	assert.NotEmpty(t, result.Main)
}

func TestEngineHonorsConfiguredSymbol(t *testing.T) {
	data := []byte{0x4E, 0x75}
	loaded := container.LoadRaw(data, 0x3000)

	cfg := engine.Config{
		Base:  0x3000,
		Entry: 0x3000,
		CPUs:  isa.CPU68000,
		Symbols: []image.Symbol{
			{Name: "ENTRYPOINT", Value: 0x3000},
		},
	}

	eng := engine.New(cfg, loaded)
	name, ok := eng.State.SymTab.Lookup(0x3000)
	assert.True(t, ok)
	assert.Equal(t, "ENTRYPOINT", name)
}

func TestEngineFlagHas(t *testing.T) {
	fs := engine.FlagSPLITFILE | engine.FlagADROutput
	assert.True(t, fs.Has(engine.FlagSPLITFILE))
	assert.True(t, fs.Has(engine.FlagADROutput))
	assert.False(t, fs.Has(engine.FlagKeepBinary))
}
