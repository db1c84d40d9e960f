package matchlower

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malphas-lang/matchlower/internal/ast"
	"github.com/malphas-lang/matchlower/internal/cfg"
	"github.com/malphas-lang/matchlower/internal/types"
)

func TestEmitTupleMatchDestructuresLeafAndWrapsOuterSnapshot(t *testing.T) {
	e0 := &types.Enum{Name: "E0", Variants: []types.Variant{
		{Name: "A", Payload: types.TypeInt},
		{Name: "B"},
	}}
	e1 := &types.Enum{Name: "E1", Variants: []types.Variant{{Name: "X"}}}

	axes := []ExtractedEnumDetails{
		{Enum: e0, OuterSnapshotsPeeled: 1},
		{Enum: e1, OuterSnapshotsPeeled: 1},
	}

	xName := ast.NewIdent("x", ast.Span{})
	armAX := newArm(t, ast.NewPatternTuple([]ast.Pattern{
		enumVariantPat("E0", "A", ast.NewPatternVar(xName, ast.Span{})),
		enumVariantPat("E1", "X", nil),
	}, ast.Span{}))
	armBX := newArm(t, ast.NewPatternTuple([]ast.Pattern{
		enumVariantPat("E0", "B", nil),
		enumVariantPat("E1", "X", nil),
	}, ast.Span{}))
	arms := []*ast.MatchArm{armAX, armBX}

	decisionMap := map[string]PatternPath{
		(MatchingPath{Variants: []string{"A", "X"}}).Key(): {ArmIndex: 0, PatternIndex: 0},
		(MatchingPath{Variants: []string{"B", "X"}}).Key(): {ArmIndex: 1, PatternIndex: 0},
	}

	type capture struct {
		pattern ast.Pattern
		value   cfg.Operand
	}
	var captured []capture

	fn := cfg.NewFunction("test")
	ctx := &Context{
		Vars:  fn,
		Diags: newTestSink(),
		LowerSinglePattern: func(builder BlockBuilder, pattern ast.Pattern, value cfg.Operand) error {
			captured = append(captured, capture{pattern, value})
			return nil
		},
	}
	builder := cfg.NewBuilder(fn, fn.Entry)

	subject := &cfg.Literal{Type: types.TypeUnit}
	info, leaves, err := EmitTupleMatch(ctx, builder, axes, arms, decisionMap, nil, []cfg.Operand{subject, subject}, ast.Span{})
	require.NoError(t, err)
	require.Len(t, leaves, 2)

	require.Len(t, captured, 1)
	ref, ok := captured[0].value.(*cfg.LocalRef)
	require.True(t, ok)
	assert.Equal(t, &types.Snapshot{Inner: types.TypeInt}, ref.Local.Type)

	require.Len(t, info.Arms, 2)
	require.Len(t, info.Arms[0].VarIDs, 1) // variant A carries a payload var
	assert.Empty(t, info.Arms[1].VarIDs)   // variant B carries none
}

func enumVariantPat(enum, variant string, inner ast.Pattern) *ast.PatternEnum {
	return ast.NewPatternEnum(ast.NewIdent(enum, ast.Span{}), ast.NewIdent(variant, ast.Span{}), inner, ast.Span{})
}
