package diag_test

import (
	"strings"
	"testing"

	"github.com/malphas-lang/matchlower/internal/ast"
	"github.com/malphas-lang/matchlower/internal/diag"
)

func TestNewAssignsSeverityByCode(t *testing.T) {
	errD := diag.New(diag.CodeMissingMatchArm, "missing arm for C", ast.Span{})
	if errD.Severity != diag.SeverityError {
		t.Fatalf("expected error severity, got %q", errD.Severity)
	}

	warnD := diag.New(diag.CodeUnreachableMatchArm, "unreachable arm", ast.Span{})
	if warnD.Severity != diag.SeverityWarning {
		t.Fatalf("expected warning severity, got %q", warnD.Severity)
	}

	if errD.Stage != diag.StageMatchLower {
		t.Fatalf("expected stage %q, got %q", diag.StageMatchLower, errD.Stage)
	}
}

func TestSinkIsAppendOnlyAndOrdered(t *testing.T) {
	var sink diag.Sink
	sink.Report(diag.New(diag.CodeUnreachableMatchArm, "first", ast.Span{}))
	sink.Report(diag.New(diag.CodeMissingMatchArm, "second", ast.Span{}))

	all := sink.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(all))
	}
	if all[0].Message != "first" || all[1].Message != "second" {
		t.Fatalf("expected report order preserved, got %+v", all)
	}
	if !sink.HasErrors() {
		t.Fatalf("expected HasErrors to be true when an error was reported")
	}
}

func TestFormatterIncludesCodeAndLocation(t *testing.T) {
	d := diag.New(diag.CodeMissingMatchArm, "missing arm for C", ast.Span{Filename: "m.mal", Line: 4, Column: 2})
	out := diag.NewFormatter().Format(d)

	if !strings.Contains(out, string(diag.CodeMissingMatchArm)) {
		t.Fatalf("expected formatted output to contain the code, got %q", out)
	}
	if !strings.Contains(out, "m.mal:4:2") {
		t.Fatalf("expected formatted output to contain the location, got %q", out)
	}
}
