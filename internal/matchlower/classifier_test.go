package matchlower

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malphas-lang/matchlower/internal/ast"
	"github.com/malphas-lang/matchlower/internal/diag"
	"github.com/malphas-lang/matchlower/internal/types"
)

func newArm(t *testing.T, patterns ...ast.Pattern) *ast.MatchArm {
	t.Helper()
	return ast.NewMatchArm(patterns, ast.NewBlockExpr(ast.Span{}), ast.Span{})
}

func TestClassifyMatchedType(t *testing.T) {
	ctx := &Context{Diags: newTestSink()}

	enumE := &types.Enum{Name: "E", Variants: []types.Variant{{Name: "A"}}}

	kind, details, err := ClassifyMatchedType(ctx, enumE, ast.Span{})
	require.NoError(t, err)
	assert.Equal(t, KindEnum, kind)
	assert.Equal(t, enumE, details[0].Enum)

	kind, _, err = ClassifyMatchedType(ctx, types.TypeInt, ast.Span{})
	require.NoError(t, err)
	assert.Equal(t, KindInteger, kind)

	tuple := &types.Tuple{Elements: []types.Type{enumE, enumE}}
	kind, details, err = ClassifyMatchedType(ctx, tuple, ast.Span{})
	require.NoError(t, err)
	assert.Equal(t, KindTupleOfEnums, kind)
	assert.Len(t, details, 2)

	kind, _, err = ClassifyMatchedType(ctx, types.TypeBool, ast.Span{})
	assert.Error(t, err)
	assert.Equal(t, KindUnsupported, kind)

	snap := &types.Snapshot{Inner: enumE}
	kind, details, err = ClassifyMatchedType(ctx, snap, ast.Span{})
	require.NoError(t, err)
	assert.Equal(t, KindEnum, kind)
	assert.Equal(t, 1, details[0].SnapshotsPeeled)

	snapTuple := &types.Snapshot{Inner: tuple}
	kind, details, err = ClassifyMatchedType(ctx, snapTuple, ast.Span{})
	require.NoError(t, err)
	assert.Equal(t, KindTupleOfEnums, kind)
	require.Len(t, details, 2)
	assert.Equal(t, 1, details[0].OuterSnapshotsPeeled)
	assert.Equal(t, 1, details[1].OuterSnapshotsPeeled)
}

func TestDiscoverWildcard(t *testing.T) {
	sink := newTestSink()
	ctx := &Context{Diags: sink}

	wildPat := ast.NewPatternWild(ast.Span{})
	litA := ast.NewPatternEnum(ast.NewIdent("E", ast.Span{}), ast.NewIdent("A", ast.Span{}), nil, ast.Span{})
	litB := ast.NewPatternEnum(ast.NewIdent("E", ast.Span{}), ast.NewIdent("B", ast.Span{}), nil, ast.Span{})

	arms := []*ast.MatchArm{
		newArm(t, litA),
		newArm(t, wildPat),
		newArm(t, litB), // unreachable: whole arm after the wildcard arm
	}

	wc := DiscoverWildcard(ctx, arms)
	require.NotNil(t, wc)
	assert.Equal(t, PatternPath{ArmIndex: 1, PatternIndex: 0}, *wc)

	reported := sink.All()
	require.Len(t, reported, 1)
	assert.Equal(t, diag.CodeUnreachableMatchArm, reported[0].Code)
}

func TestDiscoverWildcardNone(t *testing.T) {
	ctx := &Context{Diags: newTestSink()}
	litA := ast.NewPatternEnum(ast.NewIdent("E", ast.Span{}), ast.NewIdent("A", ast.Span{}), nil, ast.Span{})
	arms := []*ast.MatchArm{newArm(t, litA)}
	assert.Nil(t, DiscoverWildcard(ctx, arms))
}

func TestClassifyEnumArmsRejectsNonVariant(t *testing.T) {
	sink := newTestSink()
	ctx := &Context{Diags: sink}
	enumE := &types.Enum{Name: "E", Variants: []types.Variant{{Name: "A"}}}

	arms := []*ast.MatchArm{newArm(t, ast.NewPatternVar(ast.NewIdent("x", ast.Span{}), ast.Span{}))}
	err := ClassifyEnumArms(ctx, arms, enumE, nil)
	assert.Error(t, err)
	require.Len(t, sink.All(), 1)
	assert.Equal(t, diag.CodeUnsupportedMatchArmNotAVariant, sink.All()[0].Code)
}
