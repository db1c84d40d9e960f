package matchlower

import (
	"github.com/malphas-lang/matchlower/internal/ast"
	"github.com/malphas-lang/matchlower/internal/cfg"
	"github.com/malphas-lang/matchlower/internal/diag"
	"github.com/malphas-lang/matchlower/internal/types"
)

// testSink adapts diag.Sink (which collects pre-built Diagnostic values) to
// the Diagnostics interface the core calls against.
type testSink struct {
	sink diag.Sink
}

func newTestSink() *testSink { return &testSink{} }

func (t *testSink) Report(code diag.Code, message string, span ast.Span) {
	t.sink.Report(diag.New(code, message, span))
}

func (t *testSink) All() []diag.Diagnostic { return t.sink.All() }

// testFlags is a fixed-threshold FlagStore.
type testFlags struct {
	threshold uint64
}

func (f *testFlags) GetFlag(name string) (uint64, bool) {
	if name == NumericMatchOptimizationThreshold {
		return f.threshold, true
	}
	return 0, false
}

// testExternals stubs the three opaque lowering callbacks. tailCalls counts
// how many times each arm body was lowered, keyed by body identity, so tests
// can assert the "one body per arm" invariant.
type testExternals struct {
	tailCalls map[*ast.BlockExpr]int
}

func newTestExternals() *testExternals {
	return &testExternals{tailCalls: make(map[*ast.BlockExpr]int)}
}

func (e *testExternals) lowerExpr(builder BlockBuilder, expr ast.Expr) (cfg.Operand, error) {
	return &cfg.Literal{Type: types.TypeUnit}, nil
}

func (e *testExternals) lowerSinglePattern(builder BlockBuilder, pattern ast.Pattern, value cfg.Operand) error {
	return nil
}

func (e *testExternals) lowerTailExpr(builder BlockBuilder, body *ast.BlockExpr) (cfg.Operand, error) {
	e.tailCalls[body]++
	return &cfg.Literal{Type: types.TypeUnit}, nil
}

func newTestContext(sink *testSink, flags *testFlags, ext *testExternals) (*Context, *cfg.Function) {
	fn := cfg.NewFunction("test")
	ctx := &Context{
		Vars:               fn,
		Diags:              sink,
		Flags:              flags,
		LowerExpr:          ext.lowerExpr,
		LowerSinglePattern: ext.lowerSinglePattern,
		LowerTailExpr:      ext.lowerTailExpr,
	}
	return ctx, fn
}
