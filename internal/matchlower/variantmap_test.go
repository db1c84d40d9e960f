package matchlower

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malphas-lang/matchlower/internal/ast"
	"github.com/malphas-lang/matchlower/internal/diag"
	"github.com/malphas-lang/matchlower/internal/types"
)

func enumVariant(enum, variant string, inner ast.Pattern) *ast.PatternEnum {
	return ast.NewPatternEnum(ast.NewIdent(enum, ast.Span{}), ast.NewIdent(variant, ast.Span{}), inner, ast.Span{})
}

func TestBuildEnumVariantMapDedup(t *testing.T) {
	sink := newTestSink()
	ctx := &Context{Diags: sink}

	arms := []*ast.MatchArm{
		newArm(t, enumVariant("E", "A", nil)),
		newArm(t, enumVariant("E", "A", nil)), // unreachable: A already mapped
		newArm(t, enumVariant("E", "B", nil)),
	}

	m := BuildEnumVariantMap(ctx, arms, nil)
	assert.Equal(t, PatternPath{ArmIndex: 0, PatternIndex: 0}, m["A"])
	assert.Equal(t, PatternPath{ArmIndex: 2, PatternIndex: 0}, m["B"])

	require.Len(t, sink.All(), 1)
	assert.Equal(t, diag.CodeUnreachableMatchArm, sink.All()[0].Code)
}

func TestBuildTupleDecisionMapFanOut(t *testing.T) {
	sink := newTestSink()
	ctx := &Context{Diags: sink}

	axisE := ExtractedEnumDetails{Enum: &types.Enum{Name: "E", Variants: []types.Variant{{Name: "A"}, {Name: "B"}}}}
	axisF := ExtractedEnumDetails{Enum: &types.Enum{Name: "F", Variants: []types.Variant{{Name: "X"}, {Name: "Y"}, {Name: "Z"}}}}
	axes := []ExtractedEnumDetails{axisE, axisF}

	arms := []*ast.MatchArm{
		newArm(t, ast.NewPatternTuple([]ast.Pattern{enumVariant("E", "A", nil), ast.NewPatternWild(ast.Span{})}, ast.Span{})),
		newArm(t, ast.NewPatternTuple([]ast.Pattern{ast.NewPatternWild(ast.Span{}), enumVariant("F", "Y", nil)}, ast.Span{})),
		newArm(t, ast.NewPatternTuple([]ast.Pattern{ast.NewPatternWild(ast.Span{}), ast.NewPatternWild(ast.Span{})}, ast.Span{})),
	}

	m := BuildTupleDecisionMap(ctx, arms, axes, nil)

	expect := map[string]PatternPath{
		MatchingPath{Variants: []string{"A", "X"}}.Key(): {ArmIndex: 0, PatternIndex: 0},
		MatchingPath{Variants: []string{"A", "Y"}}.Key(): {ArmIndex: 0, PatternIndex: 0},
		MatchingPath{Variants: []string{"A", "Z"}}.Key(): {ArmIndex: 0, PatternIndex: 0},
		MatchingPath{Variants: []string{"B", "Y"}}.Key(): {ArmIndex: 1, PatternIndex: 0},
		MatchingPath{Variants: []string{"B", "X"}}.Key(): {ArmIndex: 2, PatternIndex: 0},
		MatchingPath{Variants: []string{"B", "Z"}}.Key(): {ArmIndex: 2, PatternIndex: 0},
	}
	assert.Equal(t, expect, m)
	assert.Empty(t, sink.All())
}
