// Package matchlower implements the match-expression lowering core: given a
// semantically-elaborated match over an enum, a tuple of enums, or a
// fixed-width integer literal set, it produces a CFG of basic blocks
// terminated by multi-way Match terminators, plus per-arm variable bindings.
//
// Parsing, name resolution, semantic elaboration, non-match expression
// lowering, the CFG container itself, and diagnostics storage are all
// external collaborators, consumed only through the interfaces in context.go.
package matchlower

import (
	"github.com/malphas-lang/matchlower/internal/ast"
	"github.com/malphas-lang/matchlower/internal/cfg"
	"github.com/malphas-lang/matchlower/internal/types"
)

// PatternPath locates a pattern inside the original match: which arm, and
// which pattern within that arm. Immutable after construction.
type PatternPath struct {
	ArmIndex     int
	PatternIndex int
}

// MatchingPath is an ordered sequence of concrete variants, one per axis of
// an outer tuple match. Equality is by sequence, so it is safe to use as a
// map key once converted with Key.
type MatchingPath struct {
	Variants []string
}

// Key returns a comparable representation of the path suitable for use as a
// map key.
func (p MatchingPath) Key() string {
	s := ""
	for i, v := range p.Variants {
		if i > 0 {
			s += "\x00"
		}
		s += v
	}
	return s
}

// Push returns a new path with variant appended. Implementations may also
// mutate a path in place (push before recurse, pop after) as the original
// does; tests in this module never depend on aliasing (spec §9).
func (p MatchingPath) Push(variant string) MatchingPath {
	next := make([]string, len(p.Variants)+1)
	copy(next, p.Variants)
	next[len(p.Variants)] = variant
	return MatchingPath{Variants: next}
}

// ExtractedEnumDetails is what the pattern classifier extracts for one
// matched axis: the concrete enum, its variants in definition order, how
// many snapshot wrappers were peeled off the matched type to reach it, and
// (for a tuple axis) how many snapshot wrappers were peeled off the outer
// tuple type itself. A bound payload must carry both counts: snapshot^{Oi+O}
// in spec §3 invariant 6, where Oi is SnapshotsPeeled and O is
// OuterSnapshotsPeeled.
type ExtractedEnumDetails struct {
	Enum                 *types.Enum
	SnapshotsPeeled      int
	OuterSnapshotsPeeled int
}

// MatchLeafBuilder is a pending leaf of the decision tree: the source arm it
// belongs to, the CFG block builder for that leaf, and whether the inner
// pattern (if any) lowered successfully.
type MatchLeafBuilder struct {
	ArmIndex       int
	Block          BlockBuilder
	LoweringResult error // nil on success; spec §9 renames the source's "lowerin_result"
}

// LoweringMatchTupleContext is the mutable state threaded through the
// tuple-match CFG walk (emitTupleAxis): the current path and the
// current per-axis variable ids, pushed before recursing and popped after.
type LoweringMatchTupleContext struct {
	Location        ast.Span
	Wildcard        *PatternPath
	DecisionMap     map[string]PatternPath
	Inputs          []cfg.Operand
	OuterSnapshots  int
	CurrentPath     MatchingPath
	CurrentVarIDs   []cfg.Local
}
