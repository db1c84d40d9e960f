package matchlower

import (
	"fmt"
	"strings"

	"github.com/malphas-lang/matchlower/internal/ast"
	"github.com/malphas-lang/matchlower/internal/cfg"
	"github.com/malphas-lang/matchlower/internal/diag"
	"github.com/malphas-lang/matchlower/internal/types"
)

// EmitTupleMatch lowers a tuple-of-enums match (spec §4.C.2) as a nested tree
// of EnumMatch terminators, one level per tuple axis, in axis order. The
// outermost EnumMatch is returned for the caller to hand to
// MergeAndEndWithMatch; every other level is finalized directly. Leaves are
// collected depth-first, left-to-right, across the whole tree.
func EmitTupleMatch(
	ctx *Context,
	builder BlockBuilder,
	axes []ExtractedEnumDetails,
	arms []*ast.MatchArm,
	decisionMap map[string]PatternPath,
	wildcard *PatternPath,
	inputs []cfg.Operand,
	loc ast.Span,
) (*cfg.EnumMatch, []*MatchLeafBuilder, error) {
	ltc := &LoweringMatchTupleContext{
		Location:    loc,
		Wildcard:    wildcard,
		DecisionMap: decisionMap,
		Inputs:      inputs,
	}
	if len(axes) > 0 {
		// One Snapshot wraps the whole tuple, so it applies uniformly to
		// every axis; ClassifyMatchedType already copied it onto each.
		ltc.OuterSnapshots = axes[0].OuterSnapshotsPeeled
	}
	return emitTupleAxis(ctx, builder, axes, arms, ltc, 0)
}

// emitTupleAxis walks one axis of the decision tree, pushing the variant
// under consideration onto ltc.CurrentPath and, when that variant carries a
// payload, its freshly allocated variable onto ltc.CurrentVarIDs, before
// recursing into the next axis or, at the last axis, resolving a leaf. Both
// are popped again before the next sibling variant is tried.
func emitTupleAxis(
	ctx *Context,
	builder BlockBuilder,
	axes []ExtractedEnumDetails,
	arms []*ast.MatchArm,
	ltc *LoweringMatchTupleContext,
	depth int,
) (*cfg.EnumMatch, []*MatchLeafBuilder, error) {
	axis := axes[depth]
	matchArms := make([]cfg.EnumMatchArm, 0, len(axis.Enum.Variants))
	var leaves []*MatchLeafBuilder
	missing := false

	basePath := ltc.CurrentPath
	baseVarIDs := len(ltc.CurrentVarIDs)

	for vi, variant := range axis.Enum.Variants {
		ltc.CurrentPath = basePath.Push(variant.Name)
		sub := builder.CreateSubscope(fmt.Sprintf("match.%d.%s", depth, variant.Name))

		var varIDs []cfg.Local
		if variant.Payload != nil {
			payloadVar := ctx.Vars.NewVar(types.WrapSnapshots(variant.Payload, axis.SnapshotsPeeled+ltc.OuterSnapshots))
			varIDs = []cfg.Local{payloadVar}
			ltc.CurrentVarIDs = append(ltc.CurrentVarIDs[:baseVarIDs], payloadVar)
		} else {
			ltc.CurrentVarIDs = append(ltc.CurrentVarIDs[:baseVarIDs], cfg.Local{})
		}

		if depth+1 == len(axes) {
			pp, ok := ltc.DecisionMap[ltc.CurrentPath.Key()]
			if !ok && ltc.Wildcard == nil {
				ctx.report(diag.CodeMissingMatchArm, fmt.Sprintf("missing match arm for (%s)", strings.Join(ltc.CurrentPath.Variants, ", ")), ltc.Location)
				missing = true
			} else {
				if !ok {
					pp = *ltc.Wildcard
				}
				leaf := &MatchLeafBuilder{ArmIndex: pp.ArmIndex, Block: sub}
				leaf.LoweringResult = destructureTupleLeaf(ctx, sub, arms[pp.ArmIndex].Patterns[pp.PatternIndex], ltc.CurrentVarIDs)
				leaves = append(leaves, leaf)
			}
		} else {
			nestedInfo, nestedLeaves, err := emitTupleAxis(ctx, sub, axes, arms, ltc, depth+1)
			if err != nil {
				return nil, nil, err
			}
			sub.Finalize(&cfg.Match{Info: nestedInfo, Location: ltc.Location})
			leaves = append(leaves, nestedLeaves...)
		}

		matchArms = append(matchArms, cfg.EnumMatchArm{VariantIndex: vi, Block: sub.Block(), VarIDs: varIDs})
	}

	ltc.CurrentPath = basePath
	ltc.CurrentVarIDs = ltc.CurrentVarIDs[:baseVarIDs]

	if missing {
		return nil, nil, fmt.Errorf("matchlower: tuple match is not exhaustive")
	}

	info := &cfg.EnumMatch{Enum: axis.Enum, Input: ltc.Inputs[depth], Arms: matchArms}
	return info, leaves, nil
}

// destructureTupleLeaf lowers the selected arm's tuple pattern against the
// per-axis payload variables bound on the path down to this leaf (spec
// §4.C.2): for each field that is an enum-variant pattern with a non-empty
// inner pattern, lower that inner pattern against the matching axis's
// current variable. A bare otherwise pattern (the whole-tuple wildcard) and
// otherwise tuple fields bind nothing.
func destructureTupleLeaf(ctx *Context, builder BlockBuilder, pattern ast.Pattern, varIDs []cfg.Local) error {
	tp, ok := pattern.(*ast.PatternTuple)
	if !ok {
		return nil
	}
	for axis, field := range tp.Fields {
		ep, ok := field.(*ast.PatternEnum)
		if !ok || ep.Inner == nil {
			continue
		}
		if err := ctx.LowerSinglePattern(builder, ep.Inner, &cfg.LocalRef{Local: varIDs[axis]}); err != nil {
			return err
		}
	}
	return nil
}
