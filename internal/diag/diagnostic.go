// Package diag models compiler diagnostics the way the rest of the pipeline
// does: a stage, a severity, a stable code, a message, and a source span.
package diag

import "github.com/malphas-lang/matchlower/internal/ast"

// Stage identifies which compiler phase produced the diagnostic.
type Stage string

const (
	StageMatchLower Stage = "match_lower"
)

// Severity captures how impactful the diagnostic is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

// Code is a stable identifier for a diagnostic kind.
type Code string

// The diagnostic kinds the match-lowering core produces (spec §6).
const (
	CodeUnsupportedMatchedType        Code = "MATCH_UNSUPPORTED_MATCHED_TYPE"
	CodeUnsupportedMatchedValueTuple  Code = "MATCH_UNSUPPORTED_MATCHED_VALUE_TUPLE"
	CodeUnsupportedMatchArmNotAVariant Code = "MATCH_UNSUPPORTED_ARM_NOT_A_VARIANT"
	CodeUnsupportedMatchArmNotATuple   Code = "MATCH_UNSUPPORTED_ARM_NOT_A_TUPLE"
	CodeUnsupportedMatchArmNotALiteral Code = "MATCH_UNSUPPORTED_ARM_NOT_A_LITERAL"
	CodeUnsupportedMatchArmNonSequential Code = "MATCH_UNSUPPORTED_ARM_NON_SEQUENTIAL"
	CodeUnreachableMatchArm           Code = "MATCH_UNREACHABLE_ARM"
	CodeMissingMatchArm               Code = "MATCH_MISSING_ARM"
	CodeNonExhaustiveMatchFelt252     Code = "MATCH_NON_EXHAUSTIVE_FELT252"
)

// severityFor maps each code to its failure class (spec §7):
// structural/exhaustiveness failures are errors, unreachability is a warning.
func severityFor(code Code) Severity {
	if code == CodeUnreachableMatchArm {
		return SeverityWarning
	}
	return SeverityError
}

// Diagnostic is a single compiler diagnostic surfaced to end users.
type Diagnostic struct {
	Stage    Stage
	Severity Severity
	Code     Code
	Message  string
	Span     ast.Span
}

// New builds a Diagnostic with the severity implied by its code.
func New(code Code, message string, span ast.Span) Diagnostic {
	return Diagnostic{
		Stage:    StageMatchLower,
		Severity: severityFor(code),
		Code:     code,
		Message:  message,
		Span:     span,
	}
}

// Sink is an append-only diagnostic collector. The core never removes or
// reorders entries it has already reported.
type Sink struct {
	diagnostics []Diagnostic
}

// Report appends a diagnostic.
func (s *Sink) Report(d Diagnostic) {
	s.diagnostics = append(s.diagnostics, d)
}

// All returns the diagnostics reported so far, in report order.
func (s *Sink) All() []Diagnostic {
	return s.diagnostics
}

// HasErrors reports whether any error-severity diagnostic was recorded.
func (s *Sink) HasErrors() bool {
	for _, d := range s.diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}
