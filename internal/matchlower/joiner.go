package matchlower

import (
	"fmt"
	"sort"

	"github.com/malphas-lang/matchlower/internal/ast"
	"github.com/malphas-lang/matchlower/internal/cfg"
)

// JoinArms is the arm joiner (component D, spec §4.D). It groups the CFG
// emitter's leaves by source arm (stable, ascending arm index), lowers each
// reachable arm's body exactly once, and returns the sealed block for each
// arm in arm order, the list MergeAndEndWithMatch threads back out.
//
// A leaf whose inner-pattern lowering failed (MatchLeafBuilder.LoweringResult
// != nil) still participates in its arm's join: the external
// lower_single_pattern call is responsible for its own diagnostic, and the
// arm body is lowered regardless (spec §7).
func JoinArms(ctx *Context, arms []*ast.MatchArm, leaves []*MatchLeafBuilder) ([]*cfg.BasicBlock, error) {
	groups := make(map[int][]*MatchLeafBuilder)
	var order []int
	for _, leaf := range leaves {
		if _, seen := groups[leaf.ArmIndex]; !seen {
			order = append(order, leaf.ArmIndex)
		}
		groups[leaf.ArmIndex] = append(groups[leaf.ArmIndex], leaf)
	}
	sort.Ints(order)

	sealed := make([]*cfg.BasicBlock, 0, len(order))
	for _, ai := range order {
		group := groups[ai]
		arm := arms[ai]

		if len(group) == 1 {
			leaf := group[0]
			if _, err := ctx.LowerTailExpr(leaf.Block, arm.Body); err != nil {
				return nil, fmt.Errorf("matchlower: arm %d body: %w", ai, err)
			}
			sealed = append(sealed, leaf.Block.Block())
			continue
		}

		predecessors := make([]*cfg.BasicBlock, 0, len(group))
		for _, leaf := range group {
			predecessors = append(predecessors, leaf.Block.Block())
		}

		confluence := group[0].Block.SiblingBlockBuilder(fmt.Sprintf("match.join.%d", ai))
		for _, leaf := range group {
			leaf.Block.Finalize(&cfg.Goto{Target: confluence.Block()})
		}
		confluence.Finalize(&cfg.Join{Predecessors: predecessors})

		if _, err := ctx.LowerTailExpr(confluence, arm.Body); err != nil {
			return nil, fmt.Errorf("matchlower: arm %d body: %w", ai, err)
		}
		sealed = append(sealed, confluence.Block())
	}

	return sealed, nil
}
