package matchlower

import (
	"fmt"

	"github.com/malphas-lang/matchlower/internal/ast"
	"github.com/malphas-lang/matchlower/internal/cfg"
	"github.com/malphas-lang/matchlower/internal/types"
)

// LowerMatch is the entry point tying components A through D together for
// one match expression: it classifies the subject type, dispatches to the
// matching CFG-emission strategy, joins the resulting leaves into one block
// per source arm, and finalizes builder with the resulting Match terminator.
//
// subjectType is the match subject's already-elaborated type, including any
// snapshot wrappers (ClassifyMatchedType peels and counts them); the caller
// (the wider lowering session) is responsible for having resolved it.
func LowerMatch(ctx *Context, builder BlockBuilder, match *ast.MatchExpr, subjectType types.Type) ([]*cfg.BasicBlock, error) {
	input, err := ctx.LowerExpr(builder, match.Subject)
	if err != nil {
		return nil, fmt.Errorf("matchlower: lowering match subject: %w", err)
	}

	kind, details, err := ClassifyMatchedType(ctx, subjectType, match.Span())
	if err != nil {
		return nil, err
	}

	wildcard := DiscoverWildcard(ctx, match.Arms)

	switch kind {
	case KindEnum:
		return lowerEnumMatch(ctx, builder, match, details[0], wildcard, input)
	case KindTupleOfEnums:
		return lowerTupleMatch(ctx, builder, match, details, wildcard, input)
	case KindInteger:
		return lowerIntegerMatch(ctx, builder, match, wildcard, input)
	default:
		return nil, fmt.Errorf("matchlower: unsupported matched type")
	}
}

func lowerEnumMatch(ctx *Context, builder BlockBuilder, match *ast.MatchExpr, details ExtractedEnumDetails, wildcard *PatternPath, input cfg.Operand) ([]*cfg.BasicBlock, error) {
	if err := ClassifyEnumArms(ctx, match.Arms, details.Enum, wildcard); err != nil {
		return nil, err
	}

	variantMap := BuildEnumVariantMap(ctx, match.Arms, wildcard)
	info, leaves, err := EmitEnumMatch(ctx, builder, details, match.Arms, variantMap, wildcard, input, match.Span())
	if err != nil {
		return nil, err
	}

	sealed, err := JoinArms(ctx, match.Arms, leaves)
	if err != nil {
		return nil, err
	}

	return builder.MergeAndEndWithMatch(info, sealed, match.Span()), nil
}

func lowerTupleMatch(ctx *Context, builder BlockBuilder, match *ast.MatchExpr, axes []ExtractedEnumDetails, wildcard *PatternPath, subject cfg.Operand) ([]*cfg.BasicBlock, error) {
	if err := ClassifyTupleArms(ctx, match.Arms, axes, wildcard); err != nil {
		return nil, err
	}

	decisionMap := BuildTupleDecisionMap(ctx, match.Arms, axes, wildcard)

	// Per-axis element access on the tuple subject is an external-collaborator
	// concern (lower_expr over a field-projection expression); the AST this
	// module consumes carries no such node, so every axis reuses the already
	// lowered subject operand as its matched value.
	inputs := make([]cfg.Operand, len(axes))
	for i := range axes {
		inputs[i] = subject
	}

	info, leaves, err := EmitTupleMatch(ctx, builder, axes, match.Arms, decisionMap, wildcard, inputs, match.Span())
	if err != nil {
		return nil, err
	}

	sealed, err := JoinArms(ctx, match.Arms, leaves)
	if err != nil {
		return nil, err
	}

	return builder.MergeAndEndWithMatch(info, sealed, match.Span()), nil
}

func lowerIntegerMatch(ctx *Context, builder BlockBuilder, match *ast.MatchExpr, wildcard *PatternPath, input cfg.Operand) ([]*cfg.BasicBlock, error) {
	literalMap, max, err := ValidateIntegerMatch(ctx, match.Arms, wildcard, match.Span())
	if err != nil {
		return nil, err
	}

	var info cfg.MatchInfo
	var leaves []*MatchLeafBuilder
	if max <= ctx.Threshold() {
		info, leaves, err = EmitIntegerMatchCascade(ctx, builder, literalMap, *wildcard, max, input, match.Span())
	} else {
		info, leaves, err = EmitIntegerMatchJumpTable(ctx, builder, literalMap, *wildcard, max, input, match.Span())
	}
	if err != nil {
		return nil, err
	}

	sealed, err := JoinArms(ctx, match.Arms, leaves)
	if err != nil {
		return nil, err
	}

	return builder.MergeAndEndWithMatch(info, sealed, match.Span()), nil
}
