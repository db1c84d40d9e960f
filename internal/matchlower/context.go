package matchlower

import (
	"github.com/malphas-lang/matchlower/internal/ast"
	"github.com/malphas-lang/matchlower/internal/cfg"
	"github.com/malphas-lang/matchlower/internal/diag"
	"github.com/malphas-lang/matchlower/internal/types"
)

// BlockBuilder is the small CFG-container API the core calls (spec §6
// "Block builder"). *cfg.Builder satisfies it.
type BlockBuilder interface {
	Block() *cfg.BasicBlock
	EmitStatement(cfg.Statement)
	CreateSubscope(label string) *cfg.Builder
	CreateSubscopeWithBoundRefs(label string, bound ...cfg.Local) *cfg.Builder
	SiblingBlockBuilder(label string) *cfg.Builder
	Finalize(cfg.Terminator)
	MergeAndEndWithMatch(info cfg.MatchInfo, sealed []*cfg.BasicBlock, loc ast.Span) []*cfg.BasicBlock
}

// VarAllocator is the variable allocator the core calls to bind payloads
// and scratch values (spec §6 "Variable allocator").
type VarAllocator interface {
	NewVar(typ types.Type) cfg.Local
}

// Diagnostics is the append-only diagnostic sink (spec §6 "Diagnostics").
type Diagnostics interface {
	Report(code diag.Code, message string, span ast.Span)
}

// FlagStore is the read-only compiler-flag store (spec §6 "Flag store").
// The core reads only numeric_match_optimization_min_arms_threshold.
type FlagStore interface {
	GetFlag(name string) (uint64, bool)
}

// LowerExprFunc lowers an arbitrary sub-expression (e.g. the match subject).
type LowerExprFunc func(builder BlockBuilder, expr ast.Expr) (cfg.Operand, error)

// LowerSinglePatternFunc binds a payload variable into an arbitrary
// destructuring pattern (the arm's inner pattern, one level deep).
type LowerSinglePatternFunc func(builder BlockBuilder, pattern ast.Pattern, value cfg.Operand) error

// LowerTailExprFunc lowers an arm body as a block-terminating expression,
// returning the value it produces.
type LowerTailExprFunc func(builder BlockBuilder, body *ast.BlockExpr) (cfg.Operand, error)

// NumericMatchOptimizationThreshold is the flag name the core reads (spec §6).
// Its default, when absent from the flag store, is the maximum uint64 value,
// effectively disabling the jump-table strategy.
const NumericMatchOptimizationThreshold = "numeric_match_optimization_min_arms_threshold"

// DefaultNumericMatchOptimizationThreshold is the value used when the flag
// store has no entry for NumericMatchOptimizationThreshold.
const DefaultNumericMatchOptimizationThreshold uint64 = ^uint64(0)

// Context bundles every external collaborator the core needs for one
// lowering call. It holds a mutable borrow on the wider lowering session for
// the duration of that call and makes no concurrent accesses (spec §5).
type Context struct {
	Vars        VarAllocator
	Diags       Diagnostics
	Flags       FlagStore
	LowerExpr         LowerExprFunc
	LowerSinglePattern LowerSinglePatternFunc
	LowerTailExpr      LowerTailExprFunc
}

// Threshold returns the configured numeric-match optimization threshold, or
// the default (effectively disabling the jump table) when unset.
func (c *Context) Threshold() uint64 {
	if c.Flags == nil {
		return DefaultNumericMatchOptimizationThreshold
	}
	if v, ok := c.Flags.GetFlag(NumericMatchOptimizationThreshold); ok {
		return v
	}
	return DefaultNumericMatchOptimizationThreshold
}

// report is a small convenience wrapper around Diags.Report.
func (c *Context) report(code diag.Code, message string, span ast.Span) {
	if c.Diags != nil {
		c.Diags.Report(code, message, span)
	}
}
