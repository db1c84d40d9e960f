package matchlower

import (
	"fmt"
	"strconv"

	"github.com/malphas-lang/matchlower/internal/ast"
	"github.com/malphas-lang/matchlower/internal/cfg"
	"github.com/malphas-lang/matchlower/internal/diag"
	"github.com/malphas-lang/matchlower/internal/types"
)

// ValidateIntegerMatch performs the integer-match pre-validation (spec
// §4.C.3): every classified pattern must be a literal that fits a native
// unsigned machine integer, the literal set must be exactly {0, ..., max},
// and an otherwise arm is mandatory. Returns the literal -> arm map and max
// on success.
func ValidateIntegerMatch(ctx *Context, arms []*ast.MatchArm, wildcard *PatternPath, loc ast.Span) (map[uint64]PatternPath, uint64, error) {
	if len(arms) == 0 {
		ctx.report(diag.CodeNonExhaustiveMatchFelt252, "integer match has no arms", loc)
		return nil, 0, fmt.Errorf("matchlower: integer match has no arms")
	}

	literalMap := make(map[uint64]PatternPath)
	var max uint64

	for ai, arm := range arms {
		n := reachablePatternCount(arms, wildcard, ai)
		for pi := 0; pi < n; pi++ {
			lit, ok := arm.Patterns[pi].(*ast.PatternLiteral)
			if !ok {
				ctx.report(diag.CodeUnsupportedMatchArmNotALiteral, "match arm pattern is not an integer literal", arm.Patterns[pi].Span())
				return nil, 0, fmt.Errorf("matchlower: arm %d pattern %d is not a literal", ai, pi)
			}
			v, err := strconv.ParseUint(lit.Value.Text, 10, 64)
			if err != nil {
				ctx.report(diag.CodeUnsupportedMatchArmNonSequential, "integer literal does not fit a native unsigned machine integer", lit.Span())
				return nil, 0, fmt.Errorf("matchlower: arm %d pattern %d literal out of range: %w", ai, pi, err)
			}
			if _, exists := literalMap[v]; exists {
				ctx.report(diag.CodeUnreachableMatchArm, "literal already covered by an earlier arm", lit.Span())
				continue
			}
			literalMap[v] = PatternPath{ArmIndex: ai, PatternIndex: pi}
			if v > max || len(literalMap) == 1 {
				max = v
			}
		}
	}

	if wildcard == nil {
		ctx.report(diag.CodeNonExhaustiveMatchFelt252, "integer match requires an otherwise arm", loc)
		return nil, 0, fmt.Errorf("matchlower: integer match has no otherwise arm")
	}

	if uint64(len(literalMap)) != max+1 {
		ctx.report(diag.CodeUnsupportedMatchArmNonSequential, "integer literal set is not a contiguous range starting at zero", loc)
		return nil, 0, fmt.Errorf("matchlower: integer literal set {0,...,%d} has gaps", max)
	}

	return literalMap, max, nil
}

// EmitIntegerMatchCascade builds the chained is_zero cascade (spec §4.C.3,
// used when max <= the configured threshold): for literal i in increasing
// order, test input-i (the raw input for i==0) against is_zero; the zero
// branch is that literal's leaf, the nonzero branch recurses to i+1, and the
// final nonzero branch is the otherwise arm's leaf.
func EmitIntegerMatchCascade(ctx *Context, builder BlockBuilder, literalMap map[uint64]PatternPath, wildcard PatternPath, max uint64, input cfg.Operand, loc ast.Span) (*cfg.ExternMatch, []*MatchLeafBuilder, error) {
	return emitCascadeLevel(ctx, builder, literalMap, wildcard, 0, max, input, loc)
}

func emitCascadeLevel(ctx *Context, builder BlockBuilder, literalMap map[uint64]PatternPath, wildcard PatternPath, i, max uint64, input cfg.Operand, loc ast.Span) (*cfg.ExternMatch, []*MatchLeafBuilder, error) {
	zeroSub := builder.CreateSubscope(fmt.Sprintf("match.int.%d.zero", i))
	pp := literalMap[i]
	leaves := []*MatchLeafBuilder{{ArmIndex: pp.ArmIndex, Block: zeroSub}}

	nonzeroSub := builder.CreateSubscope(fmt.Sprintf("match.int.%d.nonzero", i))
	var nonzeroVarIDs []cfg.Local
	if i < max {
		nonzeroVarIDs = []cfg.Local{ctx.Vars.NewVar(types.TypeInt)}
		nestedInfo, nestedLeaves, err := emitCascadeLevel(ctx, nonzeroSub, literalMap, wildcard, i+1, max, input, loc)
		if err != nil {
			return nil, nil, err
		}
		nonzeroSub.Finalize(&cfg.Match{Info: nestedInfo, Location: loc})
		leaves = append(leaves, nestedLeaves...)
	} else {
		leaves = append(leaves, &MatchLeafBuilder{ArmIndex: wildcard.ArmIndex, Block: nonzeroSub})
	}

	var operand cfg.Operand = input
	if i > 0 {
		diff := ctx.Vars.NewVar(types.TypeInt)
		builder.EmitStatement(&cfg.Subtract{Result: diff, LHS: input, RHS: &cfg.Literal{Type: types.TypeInt, Value: i}})
		operand = &cfg.LocalRef{Local: diff}
	}

	info := &cfg.ExternMatch{
		Callee: "is_zero",
		Inputs: []cfg.Operand{operand},
		Arms: []cfg.ExternMatchArm{
			{VariantName: "Zero", Block: zeroSub.Block()},
			{VariantName: "NonZero", Block: nonzeroSub.Block(), VarIDs: nonzeroVarIDs},
		},
	}
	return info, leaves, nil
}

// EmitIntegerMatchJumpTable builds the bounded-int downcast + indexed
// MatchValue strategy (spec §4.C.3, used when max exceeds the configured
// threshold): a single Some/None ExternMatch on the downcast, whose Some
// branch is an inner ValueMatch routing every literal 0..max to its arm and
// whose None branch is the otherwise arm's leaf.
func EmitIntegerMatchJumpTable(ctx *Context, builder BlockBuilder, literalMap map[uint64]PatternPath, wildcard PatternPath, max uint64, input cfg.Operand, loc ast.Span) (*cfg.ExternMatch, []*MatchLeafBuilder, error) {
	someSub := builder.CreateSubscope("match.int.some")
	noneSub := builder.CreateSubscope("match.int.none")
	boundedVar := ctx.Vars.NewVar(types.TypeInt)

	valueArms := make([]cfg.ValueMatchArm, 0, max+1)
	leaves := make([]*MatchLeafBuilder, 0, max+2)
	for i := uint64(0); i <= max; i++ {
		pp := literalMap[i]
		leaf := someSub.CreateSubscope(fmt.Sprintf("match.int.value.%d", i))
		valueArms = append(valueArms, cfg.ValueMatchArm{Value: i, Block: leaf.Block()})
		leaves = append(leaves, &MatchLeafBuilder{ArmIndex: pp.ArmIndex, Block: leaf})
	}
	someSub.Finalize(&cfg.Match{
		Info:     &cfg.ValueMatch{NumArms: len(valueArms), Input: &cfg.LocalRef{Local: boundedVar}, Arms: valueArms},
		Location: loc,
	})
	leaves = append(leaves, &MatchLeafBuilder{ArmIndex: wildcard.ArmIndex, Block: noneSub})

	info := &cfg.ExternMatch{
		Callee: "downcast_bounded_int",
		Inputs: []cfg.Operand{input},
		Arms: []cfg.ExternMatchArm{
			{VariantName: "Some", Block: someSub.Block(), VarIDs: []cfg.Local{boundedVar}},
			{VariantName: "None", Block: noneSub.Block()},
		},
	}
	return info, leaves, nil
}
