package image

// Symbol is a (name, value) pair. Values are unique: inserting a second symbol
// at an already-known value is a no-op (spec.md §3).
type Symbol struct {
	Name  string
	Value uint32
}

// SymbolTable maps addresses to user-visible names and back.
type SymbolTable struct {
	byValue map[uint32]string
	byName  map[string]uint32
}

// NewSymbolTable creates an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{byValue: map[uint32]string{}, byName: map[string]uint32{}}
}

// Insert adds name at value unless value already has a symbol.
func (t *SymbolTable) Insert(name string, value uint32) {
	if _, ok := t.byValue[value]; ok {
		return
	}
	t.byValue[value] = name
	t.byName[name] = value
}

// Lookup returns the symbol name at value, if any.
func (t *SymbolTable) Lookup(value uint32) (string, bool) {
	n, ok := t.byValue[value]
	return n, ok
}

// EquSize is the size class of an Equate's immediate.
type EquSize int

const (
	EquQuick EquSize = iota
	EquByte
	EquWord
	EquLong
)

// Equate binds a name to an address/size/value; when the decoder emits an
// immediate of the matching size at Address, the equate name is substituted
// for the raw constant (spec.md §3, §4.7 scenario 6).
type Equate struct {
	Name    string
	Address uint32
	Size    EquSize
	Value   uint32
}

// EquateTable indexes equates by (address, size) for Pass 2 substitution.
type EquateTable struct {
	byKey map[equKey]Equate
}

type equKey struct {
	addr uint32
	size EquSize
}

// NewEquateTable creates an empty table.
func NewEquateTable() *EquateTable {
	return &EquateTable{byKey: map[equKey]Equate{}}
}

// Insert adds e. A second equate with the same name is expected to agree on
// value; callers validating configuration should check that before calling.
func (t *EquateTable) Insert(e Equate) {
	t.byKey[equKey{e.Address, e.Size}] = e
}

// At looks up the equate registered at (address, size).
func (t *EquateTable) At(addr uint32, size EquSize) (Equate, bool) {
	e, ok := t.byKey[equKey{addr, size}]
	return e, ok
}

// AtAddress reports whether any equate at all is registered at addr, for the
// Pass 2 data classifier's priority check (spec.md §4.7).
func (t *EquateTable) AtAddress(addr uint32) (Equate, bool) {
	for _, size := range []EquSize{EquByte, EquWord, EquLong, EquQuick} {
		if e, ok := t.byKey[equKey{addr, size}]; ok {
			return e, true
		}
	}
	return Equate{}, false
}

// Xref is an external (out-of-image) absolute address referenced by the code.
type Xref struct {
	Address uint32
	Name    string // "" until resolved against the hardware table or synthesized
}

// XrefTable records cross-references discovered during analysis.
type XrefTable struct {
	byAddr map[uint32]*Xref
	order  []uint32
}

// NewXrefTable creates an empty table.
func NewXrefTable() *XrefTable {
	return &XrefTable{byAddr: map[uint32]*Xref{}}
}

// Get returns the existing Xref at addr, creating one (without a name) if
// necessary, and reports whether it already existed.
func (t *XrefTable) Get(addr uint32) (*Xref, bool) {
	if x, ok := t.byAddr[addr]; ok {
		return x, true
	}
	x := &Xref{Address: addr}
	t.byAddr[addr] = x
	t.order = append(t.order, addr)
	return x, false
}

// All returns xrefs in discovery order.
func (t *XrefTable) All() []*Xref {
	out := make([]*Xref, len(t.order))
	for i, a := range t.order {
		out[i] = t.byAddr[a]
	}
	return out
}
