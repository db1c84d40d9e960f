package matchlower

import (
	"fmt"

	"github.com/malphas-lang/matchlower/internal/ast"
	"github.com/malphas-lang/matchlower/internal/diag"
	"github.com/malphas-lang/matchlower/internal/types"
)

// MatchedKind classifies the shape of the matched value (component A).
type MatchedKind int

const (
	KindUnsupported MatchedKind = iota
	KindEnum
	KindTupleOfEnums
	KindInteger
)

// ClassifyMatchedType inspects the subject type and decides which of the
// three lowering strategies applies. Snapshot wrappers around the subject are
// peeled here and their count recorded in the returned details. Anything else is
// UnsupportedMatchedType / UnsupportedMatchedValueTuple.
func ClassifyMatchedType(ctx *Context, subjectType types.Type, span ast.Span) (MatchedKind, []ExtractedEnumDetails, error) {
	switch t := subjectType.(type) {
	case *types.Enum:
		n, inner := types.PeelSnapshots(subjectType)
		enum, ok := inner.(*types.Enum)
		if !ok {
			enum = t
			n = 0
		}
		return KindEnum, []ExtractedEnumDetails{{Enum: enum, SnapshotsPeeled: n}}, nil

	case *types.Tuple:
		details := make([]ExtractedEnumDetails, len(t.Elements))
		for i, elem := range t.Elements {
			n, inner := types.PeelSnapshots(elem)
			enum, ok := inner.(*types.Enum)
			if !ok {
				ctx.report(diag.CodeUnsupportedMatchedValueTuple, "tuple match axis is not an enum", span)
				return KindUnsupported, nil, fmt.Errorf("matchlower: tuple axis %d is not an enum: %s", i, elem.String())
			}
			details[i] = ExtractedEnumDetails{Enum: enum, SnapshotsPeeled: n}
		}
		return KindTupleOfEnums, details, nil

	case *types.Primitive:
		if t.Kind == types.Int {
			return KindInteger, nil, nil
		}
	case *types.Snapshot:
		n, inner := types.PeelSnapshots(subjectType)
		kind, details, err := ClassifyMatchedType(ctx, inner, span)
		switch {
		case kind == KindEnum && len(details) == 1:
			details[0].SnapshotsPeeled = n
		case kind == KindTupleOfEnums:
			// One Snapshot wraps the whole tuple, so every axis's payload
			// must carry it, on top of whatever that axis peeled on its own.
			for i := range details {
				details[i].OuterSnapshotsPeeled = n
			}
		}
		return kind, details, err
	}

	ctx.report(diag.CodeUnsupportedMatchedType, fmt.Sprintf("unsupported matched type: %s", subjectType.String()), span)
	return KindUnsupported, nil, fmt.Errorf("matchlower: unsupported matched type: %s", subjectType.String())
}

// DiscoverWildcard scans arms in source order (arm index ascending, pattern
// index ascending within an arm) for the first otherwise pattern. Every
// pattern strictly after it, within its own arm and in every later arm,
// is reported UnreachableMatchArm and excluded from further classification.
func DiscoverWildcard(ctx *Context, arms []*ast.MatchArm) *PatternPath {
	for ai, arm := range arms {
		for pi, pat := range arm.Patterns {
			if _, ok := pat.(*ast.PatternWild); ok {
				wc := PatternPath{ArmIndex: ai, PatternIndex: pi}
				reportUnreachableAfterWildcard(ctx, arms, wc)
				return &wc
			}
		}
	}
	return nil
}

func reportUnreachableAfterWildcard(ctx *Context, arms []*ast.MatchArm, wc PatternPath) {
	for ai := wc.ArmIndex; ai < len(arms); ai++ {
		start := 0
		if ai == wc.ArmIndex {
			start = wc.PatternIndex + 1
		}
		for pi := start; pi < len(arms[ai].Patterns); pi++ {
			ctx.report(diag.CodeUnreachableMatchArm, "pattern is unreachable: it appears after the otherwise arm", arms[ai].Patterns[pi].Span())
		}
	}
}

// reachablePatternCount returns how many leading patterns of arm ai are still
// classified, given the wildcard path (nil if there is none). Arms strictly
// after the wildcard's arm are not classified at all.
func reachablePatternCount(arms []*ast.MatchArm, wildcard *PatternPath, ai int) int {
	if wildcard == nil {
		return len(arms[ai].Patterns)
	}
	if ai > wildcard.ArmIndex {
		return 0
	}
	if ai == wildcard.ArmIndex {
		return wildcard.PatternIndex
	}
	return len(arms[ai].Patterns)
}

// ClassifyEnumArms checks that every classified pattern of every arm is an
// enum-variant pattern of the matched enum (UnsupportedMatchArmNotAVariant
// otherwise).
func ClassifyEnumArms(ctx *Context, arms []*ast.MatchArm, enum *types.Enum, wildcard *PatternPath) error {
	for ai, arm := range arms {
		n := reachablePatternCount(arms, wildcard, ai)
		for pi := 0; pi < n; pi++ {
			ep, ok := arm.Patterns[pi].(*ast.PatternEnum)
			if !ok || ep.Enum == nil || ep.Enum.Name != enum.Name {
				ctx.report(diag.CodeUnsupportedMatchArmNotAVariant, "match arm pattern is not a variant of the matched enum", arm.Patterns[pi].Span())
				return fmt.Errorf("matchlower: arm %d pattern %d is not a variant of %s", ai, pi, enum.Name)
			}
		}
	}
	return nil
}

// ClassifyTupleArms checks that every classified pattern of every arm is a
// tuple pattern of the correct arity whose fields are each an enum-variant
// pattern of the corresponding axis enum, or otherwise. Nesting a deeper
// pattern inside a tuple field is rejected.
func ClassifyTupleArms(ctx *Context, arms []*ast.MatchArm, axes []ExtractedEnumDetails, wildcard *PatternPath) error {
	for ai, arm := range arms {
		n := reachablePatternCount(arms, wildcard, ai)
		for pi := 0; pi < n; pi++ {
			tp, ok := arm.Patterns[pi].(*ast.PatternTuple)
			if !ok {
				ctx.report(diag.CodeUnsupportedMatchArmNotATuple, "match arm pattern is not a tuple", arm.Patterns[pi].Span())
				return fmt.Errorf("matchlower: arm %d pattern %d is not a tuple", ai, pi)
			}
			if len(tp.Fields) != len(axes) {
				ctx.report(diag.CodeUnsupportedMatchArmNotATuple, "tuple pattern arity does not match the matched tuple", tp.Span())
				return fmt.Errorf("matchlower: arm %d pattern %d has wrong arity", ai, pi)
			}
			for axis, field := range tp.Fields {
				switch f := field.(type) {
				case *ast.PatternWild:
					// otherwise: every concrete variant of this axis, expanded in §4.B.
				case *ast.PatternEnum:
					if f.Enum == nil || f.Enum.Name != axes[axis].Enum.Name {
						ctx.report(diag.CodeUnsupportedMatchArmNotAVariant, "tuple field pattern is not a variant of its axis enum", f.Span())
						return fmt.Errorf("matchlower: arm %d pattern %d axis %d is not a variant of %s", ai, pi, axis, axes[axis].Enum.Name)
					}
				default:
					ctx.report(diag.CodeUnsupportedMatchArmNotAVariant, "nested tuple field patterns are not supported", field.Span())
					return fmt.Errorf("matchlower: arm %d pattern %d axis %d is not a variant or otherwise", ai, pi, axis)
				}
			}
		}
	}
	return nil
}
