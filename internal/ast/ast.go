package ast

// Node is any AST node with an associated source span.
type Node interface {
	Span() Span
}

// Expr is an expression node. The lowering core only ever needs to pass
// expression ids through to lower_expr/lower_tail_expr; it never inspects
// their shape, so this surface stays intentionally thin.
type Expr interface {
	Node
	exprNode()
}

// Ident is an identifier reference (enum name, variant name, bound name).
type Ident struct {
	Name string
	span Span
}

func NewIdent(name string, span Span) *Ident { return &Ident{Name: name, span: span} }
func (i *Ident) Span() Span                  { return i.span }
func (*Ident) exprNode()                     {}

// IntegerLit is an integer literal, carried as text until a concrete
// evaluation (native unsigned machine integer, per the integer-match
// pre-validation) is needed.
type IntegerLit struct {
	Text string
	span Span
}

func NewIntegerLit(text string, span Span) *IntegerLit { return &IntegerLit{Text: text, span: span} }
func (l *IntegerLit) Span() Span                       { return l.span }
func (*IntegerLit) exprNode()                          {}

// BlockExpr is an arm body. The core never looks inside it, it is handed
// whole to lower_tail_expr exactly once per reachable arm.
type BlockExpr struct {
	span Span
}

func NewBlockExpr(span Span) *BlockExpr { return &BlockExpr{span: span} }
func (b *BlockExpr) Span() Span         { return b.span }
func (*BlockExpr) exprNode()            {}

// MatchArm is one user-written clause: one or more patterns (`A | B => ...`)
// sharing a single body.
type MatchArm struct {
	Patterns []Pattern
	Body     *BlockExpr
	span     Span
}

func NewMatchArm(patterns []Pattern, body *BlockExpr, span Span) *MatchArm {
	return &MatchArm{Patterns: patterns, Body: body, span: span}
}
func (a *MatchArm) Span() Span { return a.span }

// MatchExpr is a whole match expression: a subject and its arms.
type MatchExpr struct {
	Subject Expr
	Arms    []*MatchArm
	span    Span
}

func NewMatchExpr(subject Expr, arms []*MatchArm, span Span) *MatchExpr {
	return &MatchExpr{Subject: subject, Arms: arms, span: span}
}
func (e *MatchExpr) Span() Span { return e.span }
func (*MatchExpr) exprNode()    {}
