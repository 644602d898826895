package container

import "github.com/m68kira/ira68/internal/image"

// LoadRaw synthesizes a single-section image from an input that carries no
// container format at all: the whole file becomes one CODE section at base,
// with no relocations or labels beyond the entry point itself.
func LoadRaw(data []byte, base uint32) *Loaded {
	img := image.New(base)
	img.AddSection(&image.Section{Kind: image.Code, Size: uint32(len(data)), Payload: data})
	return &Loaded{Image: img, Relocs: &image.RelocTable{}, Symbols: image.NewSymbolTable()}
}
