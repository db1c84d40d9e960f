// Package render formats a lowered CFG for human inspection, styled with
// lipgloss the way the pack's own CLI output layers are (see
// miaomiao1992-dingo's pkg/ui), for the matchlower CLI's "explain" command.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/malphas-lang/matchlower/internal/cfg"
)

var (
	colorBlock  = lipgloss.Color("#56C3F4")
	colorArm    = lipgloss.Color("#5AF78E")
	colorTerm   = lipgloss.Color("#F7DC6F")
	colorMuted  = lipgloss.Color("#6C7086")

	styleBlock = lipgloss.NewStyle().Bold(true).Foreground(colorBlock)
	styleArm   = lipgloss.NewStyle().Foreground(colorArm)
	styleTerm  = lipgloss.NewStyle().Foreground(colorTerm)
	styleMuted = lipgloss.NewStyle().Foreground(colorMuted)
)

// Function renders every block of fn, in allocation order, followed by a
// description of its terminator.
func Function(fn *cfg.Function) string {
	var b strings.Builder
	for _, block := range fn.Blocks {
		b.WriteString(styleBlock.Render(block.String()))
		b.WriteByte('\n')
		for _, ref := range block.BoundRefs {
			fmt.Fprintf(&b, "  %s\n", styleMuted.Render("bound: "+ref.Name))
		}
		b.WriteString(terminator(block.Terminator))
		b.WriteByte('\n')
	}
	return b.String()
}

func terminator(term cfg.Terminator) string {
	switch t := term.(type) {
	case nil:
		return "  " + styleMuted.Render("<unterminated>")
	case *cfg.Goto:
		return "  " + styleTerm.Render("goto") + " " + t.Target.String()
	case *cfg.Join:
		preds := make([]string, len(t.Predecessors))
		for i, p := range t.Predecessors {
			preds[i] = p.String()
		}
		return "  " + styleTerm.Render("join") + " [" + strings.Join(preds, ", ") + "]"
	case *cfg.Match:
		return matchInfo(t.Info)
	default:
		return "  " + styleMuted.Render("<unknown terminator>")
	}
}

func matchInfo(info cfg.MatchInfo) string {
	var b strings.Builder
	switch m := info.(type) {
	case *cfg.EnumMatch:
		fmt.Fprintf(&b, "  %s %s\n", styleTerm.Render("match enum"), m.Enum.Name)
		for _, arm := range m.Arms {
			fmt.Fprintf(&b, "    %s %s -> %s\n", styleArm.Render("variant"), m.Enum.Variants[arm.VariantIndex].Name, arm.Block.String())
		}
	case *cfg.ExternMatch:
		fmt.Fprintf(&b, "  %s %s\n", styleTerm.Render("match extern"), m.Callee)
		for _, arm := range m.Arms {
			fmt.Fprintf(&b, "    %s %s -> %s\n", styleArm.Render("case"), arm.VariantName, arm.Block.String())
		}
	case *cfg.ValueMatch:
		fmt.Fprintf(&b, "  %s (%d arms)\n", styleTerm.Render("match value"), m.NumArms)
		for _, arm := range m.Arms {
			fmt.Fprintf(&b, "    %s %d -> %s\n", styleArm.Render("value"), arm.Value, arm.Block.String())
		}
	default:
		b.WriteString("  " + styleMuted.Render("<empty match>"))
	}
	return strings.TrimRight(b.String(), "\n")
}
