package diag

import (
	"fmt"
	"sort"
	"strings"
)

// Formatter renders diagnostics in the compiler's plain-text, Rust-flavored
// style: "error[CODE]: message" followed by a "--> file:line:col" location
// line when the span carries one. Color is applied only at the CLI boundary
// (cmd/matchlower), never here, so this stays trivially testable.
type Formatter struct{}

// NewFormatter creates a diagnostic formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// FormatAll renders a batch of diagnostics, sorted by span (file, line,
// column) for stable, deterministic output regardless of report order.
func (f *Formatter) FormatAll(diagnostics []Diagnostic) string {
	sorted := make([]Diagnostic, len(diagnostics))
	copy(sorted, diagnostics)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Span, sorted[j].Span
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})

	var b strings.Builder
	for i, d := range sorted {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(f.Format(d))
	}
	return b.String()
}

// Format renders a single diagnostic.
func (f *Formatter) Format(d Diagnostic) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s[%s]: %s\n", d.Severity, d.Code, d.Message)
	if d.Span.Filename != "" {
		fmt.Fprintf(&b, "  --> %s:%d:%d", d.Span.Filename, d.Span.Line, d.Span.Column)
	}
	return b.String()
}
