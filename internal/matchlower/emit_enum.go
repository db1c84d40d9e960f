package matchlower

import (
	"fmt"

	"github.com/malphas-lang/matchlower/internal/ast"
	"github.com/malphas-lang/matchlower/internal/cfg"
	"github.com/malphas-lang/matchlower/internal/diag"
	"github.com/malphas-lang/matchlower/internal/types"
)

// EmitEnumMatch lowers a flat enum match (spec §4.C.1): one subscope per
// concrete variant, in the enum's definition order, finalized with a single
// EnumMatch terminator whose arms mirror that order.
func EmitEnumMatch(
	ctx *Context,
	builder BlockBuilder,
	details ExtractedEnumDetails,
	arms []*ast.MatchArm,
	variantMap map[string]PatternPath,
	wildcard *PatternPath,
	input cfg.Operand,
	loc ast.Span,
) (*cfg.EnumMatch, []*MatchLeafBuilder, error) {
	enum := details.Enum
	matchArms := make([]cfg.EnumMatchArm, 0, len(enum.Variants))
	leaves := make([]*MatchLeafBuilder, 0, len(enum.Variants))
	missing := false

	for vi, variant := range enum.Variants {
		pp, ok := variantMap[variant.Name]
		if !ok {
			if wildcard == nil {
				ctx.report(diag.CodeMissingMatchArm, fmt.Sprintf("missing match arm for %s", variant.Name), loc)
				missing = true
				continue
			}
			pp = *wildcard
		}

		sub := builder.CreateSubscope(fmt.Sprintf("match.%s", variant.Name))

		var varIDs []cfg.Local
		if variant.Payload != nil {
			payloadVar := ctx.Vars.NewVar(types.WrapSnapshots(variant.Payload, details.SnapshotsPeeled))
			varIDs = []cfg.Local{payloadVar}

			if pat, ok := arms[pp.ArmIndex].Patterns[pp.PatternIndex].(*ast.PatternEnum); ok && pat.Inner != nil {
				leaf := &MatchLeafBuilder{ArmIndex: pp.ArmIndex, Block: sub}
				if err := ctx.LowerSinglePattern(sub, pat.Inner, &cfg.LocalRef{Local: payloadVar}); err != nil {
					leaf.LoweringResult = err
				}
				matchArms = append(matchArms, cfg.EnumMatchArm{VariantIndex: vi, Block: sub.Block(), VarIDs: varIDs})
				leaves = append(leaves, leaf)
				continue
			}
		}

		matchArms = append(matchArms, cfg.EnumMatchArm{VariantIndex: vi, Block: sub.Block(), VarIDs: varIDs})
		leaves = append(leaves, &MatchLeafBuilder{ArmIndex: pp.ArmIndex, Block: sub})
	}

	if missing {
		return nil, nil, fmt.Errorf("matchlower: %s is not exhaustive", enum.Name)
	}

	info := &cfg.EnumMatch{Enum: enum, Input: input, Arms: matchArms}
	return info, leaves, nil
}
