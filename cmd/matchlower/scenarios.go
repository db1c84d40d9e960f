package main

import (
	"fmt"

	"github.com/malphas-lang/matchlower/internal/ast"
	"github.com/malphas-lang/matchlower/internal/types"
)

// scenario is a built-in match expression demonstrating one of the core's
// lowering strategies. Real source parsing is out of scope (spec §1); the
// CLI exercises the core directly against fixtures it already knows how to
// build, the way a unit test would.
type scenario struct {
	name        string
	description string
	match       *ast.MatchExpr
	subjectType types.Type
}

func enumVariantPattern(enum, variant string, inner ast.Pattern) *ast.PatternEnum {
	return ast.NewPatternEnum(ast.NewIdent(enum, ast.Span{}), ast.NewIdent(variant, ast.Span{}), inner, ast.Span{})
}

func literalPattern(text string) *ast.PatternLiteral {
	return ast.NewPatternLiteral(ast.NewIntegerLit(text, ast.Span{}), ast.Span{})
}

func scenarios() []scenario {
	enumE := &types.Enum{Name: "E", Variants: []types.Variant{
		{Name: "A", Payload: types.TypeInt},
		{Name: "B"},
		{Name: "C"},
	}}

	exhaustive := ast.NewMatchExpr(ast.NewIdent("subject", ast.Span{}), []*ast.MatchArm{
		ast.NewMatchArm([]ast.Pattern{enumVariantPattern("E", "A", ast.NewPatternVar(ast.NewIdent("x", ast.Span{}), ast.Span{}))}, ast.NewBlockExpr(ast.Span{}), ast.Span{}),
		ast.NewMatchArm([]ast.Pattern{enumVariantPattern("E", "B", nil)}, ast.NewBlockExpr(ast.Span{}), ast.Span{}),
		ast.NewMatchArm([]ast.Pattern{enumVariantPattern("E", "C", nil)}, ast.NewBlockExpr(ast.Span{}), ast.Span{}),
	}, ast.Span{})

	wildcard := ast.NewMatchExpr(ast.NewIdent("subject", ast.Span{}), []*ast.MatchArm{
		ast.NewMatchArm([]ast.Pattern{enumVariantPattern("E", "A", ast.NewPatternVar(ast.NewIdent("x", ast.Span{}), ast.Span{}))}, ast.NewBlockExpr(ast.Span{}), ast.Span{}),
		ast.NewMatchArm([]ast.Pattern{ast.NewPatternWild(ast.Span{})}, ast.NewBlockExpr(ast.Span{}), ast.Span{}),
	}, ast.Span{})

	missing := ast.NewMatchExpr(ast.NewIdent("subject", ast.Span{}), []*ast.MatchArm{
		ast.NewMatchArm([]ast.Pattern{enumVariantPattern("E", "A", nil)}, ast.NewBlockExpr(ast.Span{}), ast.Span{}),
		ast.NewMatchArm([]ast.Pattern{enumVariantPattern("E", "B", nil)}, ast.NewBlockExpr(ast.Span{}), ast.Span{}),
	}, ast.Span{})

	integerArms := []*ast.MatchArm{
		ast.NewMatchArm([]ast.Pattern{literalPattern("0")}, ast.NewBlockExpr(ast.Span{}), ast.Span{}),
		ast.NewMatchArm([]ast.Pattern{literalPattern("1")}, ast.NewBlockExpr(ast.Span{}), ast.Span{}),
		ast.NewMatchArm([]ast.Pattern{literalPattern("2")}, ast.NewBlockExpr(ast.Span{}), ast.Span{}),
		ast.NewMatchArm([]ast.Pattern{ast.NewPatternWild(ast.Span{})}, ast.NewBlockExpr(ast.Span{}), ast.Span{}),
	}
	integer := ast.NewMatchExpr(ast.NewIdent("subject", ast.Span{}), integerArms, ast.Span{})

	return []scenario{
		{name: "enum-exhaustive", description: "single enum, every variant named explicitly", match: exhaustive, subjectType: enumE},
		{name: "enum-wildcard", description: "single enum with an otherwise arm joining two variants", match: wildcard, subjectType: enumE},
		{name: "missing-variant", description: "single enum missing a variant and no otherwise arm", match: missing, subjectType: enumE},
		{name: "integer", description: "contiguous integer literals 0..2 plus otherwise", match: integer, subjectType: types.TypeInt},
	}
}

func findScenario(name string) (scenario, error) {
	for _, s := range scenarios() {
		if s.name == name {
			return s, nil
		}
	}
	return scenario{}, fmt.Errorf("unknown scenario %q", name)
}
