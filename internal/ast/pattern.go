package ast

// Pattern is a match-arm pattern node. The core classifies exactly the shapes
// below; anything else is reported as UnsupportedMatchArmNotAVariant,
// UnsupportedMatchArmNotATuple, or UnsupportedMatchArmNotALiteral.
type Pattern interface {
	Node
	patternNode()
}

// PatternWild is the `_` / "otherwise" pattern. At most one is honored per
// match: only the first one encountered in source order.
type PatternWild struct {
	span Span
}

func NewPatternWild(span Span) *PatternWild { return &PatternWild{span: span} }
func (p *PatternWild) Span() Span           { return p.span }
func (*PatternWild) patternNode()           {}

// PatternVar binds the matched value (or payload) to a name without further
// destructuring. It is the simplest "inner pattern" an enum-variant pattern
// can carry and is handed to the external lower_single_pattern unchanged.
type PatternVar struct {
	Name *Ident
	span Span
}

func NewPatternVar(name *Ident, span Span) *PatternVar { return &PatternVar{Name: name, span: span} }
func (p *PatternVar) Span() Span                       { return p.span }
func (*PatternVar) patternNode()                       {}

// PatternLiteral matches an integer literal exactly.
type PatternLiteral struct {
	Value *IntegerLit
	span  Span
}

func NewPatternLiteral(value *IntegerLit, span Span) *PatternLiteral {
	return &PatternLiteral{Value: value, span: span}
}
func (p *PatternLiteral) Span() Span { return p.span }
func (*PatternLiteral) patternNode() {}

// PatternEnum matches one concrete variant of an enum, optionally destructuring
// its payload with Inner (nil when the arm ignores the payload entirely).
type PatternEnum struct {
	Enum    *Ident
	Variant *Ident
	Inner   Pattern
	span    Span
}

func NewPatternEnum(enum, variant *Ident, inner Pattern, span Span) *PatternEnum {
	return &PatternEnum{Enum: enum, Variant: variant, Inner: inner, span: span}
}
func (p *PatternEnum) Span() Span { return p.span }
func (*PatternEnum) patternNode() {}

// PatternTuple matches a fixed-arity tuple of enums; each field is either a
// PatternEnum of the corresponding axis enum or a PatternWild. Nesting any
// other pattern kind inside a tuple field is rejected by the classifier.
type PatternTuple struct {
	Fields []Pattern
	span   Span
}

func NewPatternTuple(fields []Pattern, span Span) *PatternTuple {
	return &PatternTuple{Fields: fields, span: span}
}
func (p *PatternTuple) Span() Span { return p.span }
func (*PatternTuple) patternNode() {}
