package cfg

import (
	"testing"

	"github.com/malphas-lang/matchlower/internal/ast"
	"github.com/malphas-lang/matchlower/internal/types"
)

func TestCreateSubscopeAllocatesDistinctBlocks(t *testing.T) {
	fn := NewFunction("f")
	entry := NewBuilder(fn, fn.Entry)

	a := entry.CreateSubscope("a")
	b := entry.CreateSubscope("b")

	if a.Block().ID == b.Block().ID {
		t.Fatalf("expected distinct block ids, got %d and %d", a.Block().ID, b.Block().ID)
	}
	if len(fn.Blocks) != 3 {
		t.Fatalf("expected 3 blocks (entry + 2 subscopes), got %d", len(fn.Blocks))
	}
}

func TestCreateSubscopeWithBoundRefsRecordsLiveIns(t *testing.T) {
	fn := NewFunction("f")
	entry := NewBuilder(fn, fn.Entry)
	v := fn.NewVar(types.TypeInt)

	child := entry.CreateSubscopeWithBoundRefs("confluence", v)
	if len(child.Block().BoundRefs) != 1 || child.Block().BoundRefs[0].ID != v.ID {
		t.Fatalf("expected bound ref %v, got %v", v, child.Block().BoundRefs)
	}
}

func TestMergeAndEndWithMatchSetsTerminatorAndReturnsSealed(t *testing.T) {
	fn := NewFunction("f")
	entry := NewBuilder(fn, fn.Entry)
	armBlock := entry.CreateSubscope("arm0")

	info := &EnumMatch{
		Enum:  &types.Enum{Name: "E", Variants: []types.Variant{{Name: "A"}}},
		Input: &Literal{Type: types.TypeInt, Value: uint64(0)},
		Arms:  []EnumMatchArm{{VariantIndex: 0, Block: armBlock.Block()}},
	}

	sealed := entry.MergeAndEndWithMatch(info, []*BasicBlock{armBlock.Block()}, ast.Span{})
	if len(sealed) != 1 || sealed[0] != armBlock.Block() {
		t.Fatalf("expected sealed blocks to be returned unchanged, got %v", sealed)
	}

	match, ok := entry.Block().Terminator.(*Match)
	if !ok {
		t.Fatalf("expected Match terminator, got %T", entry.Block().Terminator)
	}
	if match.Info != MatchInfo(info) {
		t.Fatalf("expected terminator to carry the given MatchInfo")
	}
}
