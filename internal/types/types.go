// Package types models the small slice of the semantic type system the
// match-lowering core needs to read: primitives, enums, and tuples of enums,
// plus the snapshot wrapper that the core must carry transparently through
// bound payload variables (spec invariant 6).
package types

// Type is any type the core can see post-elaboration.
type Type interface {
	String() string
	IsType()
}

// PrimitiveKind enumerates the scalar kinds the core cares about.
type PrimitiveKind string

const (
	Int  PrimitiveKind = "int"
	Bool PrimitiveKind = "bool"
	Unit PrimitiveKind = "unit"
)

// Primitive is a primitive (non-enum, non-tuple) type.
type Primitive struct {
	Kind PrimitiveKind
}

func (p *Primitive) String() string { return string(p.Kind) }
func (p *Primitive) IsType()        {}

var (
	TypeInt  = &Primitive{Kind: Int}
	TypeBool = &Primitive{Kind: Bool}
	TypeUnit = &Primitive{Kind: Unit}
)

// Variant is one concrete constructor of an Enum, in definition order.
type Variant struct {
	Name    string
	Payload Type // nil for a unit variant
}

// Enum is a concrete (generics already resolved) enum type.
type Enum struct {
	Name     string
	Variants []Variant
}

func (e *Enum) String() string { return e.Name }
func (e *Enum) IsType()        {}

// VariantIndex returns the definition-order index of name, or -1.
func (e *Enum) VariantIndex(name string) int {
	for i, v := range e.Variants {
		if v.Name == name {
			return i
		}
	}
	return -1
}

// Tuple is a fixed-arity product type; the core only ever matches tuples
// whose elements are all Enum types (a "tuple of enums").
type Tuple struct {
	Elements []Type
}

func (t *Tuple) String() string {
	s := "("
	for i, e := range t.Elements {
		if i > 0 {
			s += ", "
		}
		s += e.String()
	}
	return s + ")"
}
func (t *Tuple) IsType() {}

// Snapshot is a read-only wrapper type applied by the source language. Its
// count is preserved across pattern matching so bound payloads carry the
// correct view (spec invariant 6, GLOSSARY "Snapshot").
type Snapshot struct {
	Inner Type
}

func (s *Snapshot) String() string { return "@" + s.Inner.String() }
func (s *Snapshot) IsType()        {}

// PeelSnapshots strips N layers of Snapshot wrappers off t, returning the
// count peeled and the inner type. Mirrors the original's peel_snapshots.
func PeelSnapshots(t Type) (int, Type) {
	n := 0
	for {
		snap, ok := t.(*Snapshot)
		if !ok {
			return n, t
		}
		t = snap.Inner
		n++
	}
}

// WrapSnapshots wraps t in n layers of Snapshot.
func WrapSnapshots(t Type, n int) Type {
	for i := 0; i < n; i++ {
		t = &Snapshot{Inner: t}
	}
	return t
}
