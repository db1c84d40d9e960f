package cfg

import (
	"fmt"

	"github.com/malphas-lang/matchlower/internal/ast"
	"github.com/malphas-lang/matchlower/internal/types"
)

// Function is a MIR function: the CFG container the match-lowering core
// writes into. In the full pipeline this is owned by the wider compiler;
// here it is the concrete (non-opaque) implementation that lets this module
// exercise its own core end-to-end.
type Function struct {
	Name string

	Locals []Local
	Blocks []*BasicBlock
	Entry  *BasicBlock

	localCounter int
	blockCounter int
}

// NewFunction creates an empty function with a fresh entry block.
func NewFunction(name string) *Function {
	fn := &Function{Name: name}
	fn.Entry = fn.newBlock("entry")
	fn.Blocks = append(fn.Blocks, fn.Entry)
	return fn
}

func (fn *Function) newBlock(label string) *BasicBlock {
	if label == "" {
		label = fmt.Sprintf("bb%d", fn.blockCounter)
	}
	b := &BasicBlock{ID: fn.blockCounter, Label: label}
	fn.blockCounter++
	return b
}

// NewVar allocates a fresh local variable of the given type. This is the
// "variable allocator" inward interface of spec §6.
func (fn *Function) NewVar(typ types.Type) Local {
	local := Local{ID: fn.localCounter, Type: typ}
	fn.localCounter++
	fn.Locals = append(fn.Locals, local)
	return local
}

// Builder is a block builder positioned at one in-progress basic block. It
// implements the "Block builder" inward interface of spec §6.
type Builder struct {
	fn    *Function
	block *BasicBlock
}

// NewBuilder returns a builder positioned at block within fn.
func NewBuilder(fn *Function, block *BasicBlock) *Builder {
	return &Builder{fn: fn, block: block}
}

// Block returns the block this builder is currently positioned at.
func (b *Builder) Block() *BasicBlock { return b.block }

// Function returns the function this builder writes into.
func (b *Builder) Function() *Function { return b.fn }

// EmitStatement appends a statement to the current block.
func (b *Builder) EmitStatement(s Statement) {
	b.block.Statements = append(b.block.Statements, s)
}

// CreateSubscope allocates a fresh block within the same function and
// returns a builder positioned at it. The new block is not yet linked to
// anything; the caller is responsible for wiring a terminator into it.
func (b *Builder) CreateSubscope(label string) *Builder {
	child := b.fn.newBlock(label)
	b.fn.Blocks = append(b.fn.Blocks, child)
	return NewBuilder(b.fn, child)
}

// CreateSubscopeWithBoundRefs is CreateSubscope, additionally recording which
// locals are live-in at the new block.
func (b *Builder) CreateSubscopeWithBoundRefs(label string, bound ...Local) *Builder {
	child := b.CreateSubscope(label)
	child.block.BoundRefs = append(child.block.BoundRefs, bound...)
	return child
}

// SiblingBlockBuilder allocates a brand new block unrelated to the current
// one, still within the same function. Used by the arm joiner to create the
// confluence block.
func (b *Builder) SiblingBlockBuilder(label string) *Builder {
	return b.CreateSubscope(label)
}

// Finalize sets the current block's terminator.
func (b *Builder) Finalize(term Terminator) {
	b.block.Terminator = term
}

// MergeAndEndWithMatch finalizes the current block with a Match terminator
// and records the arm's sealed confluence blocks for the caller (spec §6
// Outward: "a list of sealed confluence blocks, one per source arm").
func (b *Builder) MergeAndEndWithMatch(info MatchInfo, sealed []*BasicBlock, loc ast.Span) []*BasicBlock {
	b.block.Terminator = &Match{Info: info, Location: loc}
	return sealed
}
