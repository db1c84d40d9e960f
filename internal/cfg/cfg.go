// Package cfg models the control-flow graph the match-lowering core emits:
// basic blocks, statements, operands, and multi-way Match terminators. It
// plays the role an internal/mir package plays for a lowering pass,
// generalized with a native multi-way dispatch terminator a two-way-branch
// MIR never needed.
package cfg

import (
	"fmt"

	"github.com/malphas-lang/matchlower/internal/ast"
	"github.com/malphas-lang/matchlower/internal/types"
)

// Local is a CFG-level variable: a payload binding, a scratch value, or a
// function parameter.
type Local struct {
	ID   int
	Name string
	Type types.Type
}

// BasicBlock is a single block of straight-line statements ending in one
// terminator.
type BasicBlock struct {
	ID         int
	Label      string
	BoundRefs  []Local // locals considered live-in, from CreateSubscopeWithBoundRefs
	Statements []Statement
	Terminator Terminator
}

func (b *BasicBlock) String() string { return fmt.Sprintf("bb%d(%s)", b.ID, b.Label) }

// Statement is a non-terminating operation.
type Statement interface{ stmtNode() }

// Operand is a value used by a statement or terminator.
type Operand interface {
	operandNode()
	OperandType() types.Type
}

// LocalRef reads a local variable.
type LocalRef struct{ Local Local }

func (*LocalRef) operandNode()              {}
func (l *LocalRef) OperandType() types.Type { return l.Local.Type }

// Literal is a constant operand.
type Literal struct {
	Type  types.Type
	Value any // uint64 for integer literals, bool, or nil for unit
}

func (*Literal) operandNode()              {}
func (l *Literal) OperandType() types.Type { return l.Type }

// Assign stores an rvalue into a local: `local = rhs`.
type Assign struct {
	Local Local
	RHS   Operand
}

func (*Assign) stmtNode() {}

// Subtract computes `result = lhs - rhs` over native unsigned integers, used
// by the cascade integer-match strategy to offset the subject by each literal
// before testing it for zero.
type Subtract struct {
	Result Local
	LHS    Operand
	RHS    Operand
}

func (*Subtract) stmtNode() {}

// Terminator is control flow out of a basic block.
type Terminator interface{ terminatorNode() }

// Goto is an unconditional jump.
type Goto struct{ Target *BasicBlock }

func (*Goto) terminatorNode() {}

// Match is the multi-way dispatch terminator produced by the CFG emitter:
// one arm per concrete variant (enum match), per extern-function result
// variant (is_zero / downcast), or per literal value (value match).
type Match struct {
	Info     MatchInfo
	Location ast.Span
}

func (*Match) terminatorNode() {}

// Join is the confluence terminator the arm joiner uses to merge several
// decision-tree leaves that share one source arm body. It is the dedicated
// terminator the original's "empty MatchInfo" placeholder convention can be
// replaced with: the CFG container recognizes a single entry / multiple
// predecessor join and routes control into that arm's body lowering exactly
// once (spec §9 "Confluence-block construction").
type Join struct {
	// Predecessors are the sealed leaf blocks being joined. Each already ends
	// in a Goto back into the confluence block that owns this Join.
	Predecessors []*BasicBlock
}

func (*Join) terminatorNode() {}

// MatchInfo is the sum type produced by the CFG emitter (spec §6 Outward).
type MatchInfo interface{ matchInfoNode() }

// EnumMatchArm routes one concrete variant to a block, naming the payload
// variables bound for that arm.
type EnumMatchArm struct {
	VariantIndex int
	Block        *BasicBlock
	VarIDs       []Local
}

// EnumMatch dispatches on an enum's discriminant.
type EnumMatch struct {
	Enum  *types.Enum
	Input Operand
	Arms  []EnumMatchArm
}

func (*EnumMatch) matchInfoNode() {}

// ExternMatchArm routes one named result variant (e.g. "Zero"/"NonZero",
// "Some"/"None") to a block.
type ExternMatchArm struct {
	VariantName string
	Block       *BasicBlock
	VarIDs      []Local
}

// ExternMatch dispatches on the result of calling an external (semantic
// query) function, such as is_zero or the bounded-int downcast.
type ExternMatch struct {
	Callee string
	Inputs []Operand
	Arms   []ExternMatchArm
}

func (*ExternMatch) matchInfoNode() {}

// ValueMatchArm routes one literal value to a block.
type ValueMatchArm struct {
	Value uint64
	Block *BasicBlock
}

// ValueMatch dispatches on a bounded integer value (the jump-table strategy).
type ValueMatch struct {
	NumArms int
	Input   Operand
	Arms    []ValueMatchArm
}

func (*ValueMatch) matchInfoNode() {}
