package matchlower

import (
	"github.com/malphas-lang/matchlower/internal/ast"
	"github.com/malphas-lang/matchlower/internal/diag"
)

// BuildEnumVariantMap builds the variant -> arm map for a single-enum match
// (component B, single-enum case). Arms/patterns made unreachable by a
// wildcard are skipped (already diagnosed by DiscoverWildcard). Within the
// reachable prefix, the first pattern to cover a variant wins; any later
// pattern covering the same variant is reported UnreachableMatchArm but does
// not overwrite the earlier mapping (spec invariant 3).
func BuildEnumVariantMap(ctx *Context, arms []*ast.MatchArm, wildcard *PatternPath) map[string]PatternPath {
	m := make(map[string]PatternPath)
	for ai, arm := range arms {
		n := reachablePatternCount(arms, wildcard, ai)
		for pi := 0; pi < n; pi++ {
			ep, ok := arm.Patterns[pi].(*ast.PatternEnum)
			if !ok {
				continue // already diagnosed by ClassifyEnumArms
			}
			if _, exists := m[ep.Variant.Name]; exists {
				ctx.report(diag.CodeUnreachableMatchArm, "variant already covered by an earlier arm", ep.Span())
				continue
			}
			m[ep.Variant.Name] = PatternPath{ArmIndex: ai, PatternIndex: pi}
		}
	}
	return m
}

// BuildTupleDecisionMap builds the MatchingPath -> arm decision map for a
// tuple-of-enums match (component B, tuple case), expanding every otherwise
// field across every concrete variant of its axis.
func BuildTupleDecisionMap(ctx *Context, arms []*ast.MatchArm, axes []ExtractedEnumDetails, wildcard *PatternPath) map[string]PatternPath {
	m := make(map[string]PatternPath)
	for ai, arm := range arms {
		n := reachablePatternCount(arms, wildcard, ai)
		for pi := 0; pi < n; pi++ {
			tp, ok := arm.Patterns[pi].(*ast.PatternTuple)
			if !ok {
				continue // already diagnosed by ClassifyTupleArms
			}
			pp := PatternPath{ArmIndex: ai, PatternIndex: pi}
			before := len(m)
			expandTuplePattern(m, tp.Fields, axes, 0, MatchingPath{}, pp)
			if len(m) == before {
				ctx.report(diag.CodeUnreachableMatchArm, "tuple pattern covers no case not already covered by an earlier arm", tp.Span())
			}
		}
	}
	return m
}

// expandTuplePattern recursively walks one tuple pattern's fields, pushing
// each concrete variant (or, for otherwise, every variant of that axis) onto
// path and inserting the completed MatchingPath into m once depth reaches the
// tuple's arity. Earlier arms win: an existing key is never overwritten.
func expandTuplePattern(m map[string]PatternPath, fields []ast.Pattern, axes []ExtractedEnumDetails, depth int, path MatchingPath, pp PatternPath) {
	if depth == len(fields) {
		key := path.Key()
		if _, exists := m[key]; !exists {
			m[key] = pp
		}
		return
	}

	switch f := fields[depth].(type) {
	case *ast.PatternEnum:
		expandTuplePattern(m, fields, axes, depth+1, path.Push(f.Variant.Name), pp)
	case *ast.PatternWild:
		for _, v := range axes[depth].Enum.Variants {
			expandTuplePattern(m, fields, axes, depth+1, path.Push(v.Name), pp)
		}
	}
}
