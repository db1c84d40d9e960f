// Package main implements the matchlower CLI: a small driver that runs the
// match-lowering core against a handful of built-in scenarios and prints the
// resulting CFG and diagnostics, in the vein of miaomiao1992-dingo's own
// cobra-based compiler CLI.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/malphas-lang/matchlower/internal/ast"
	"github.com/malphas-lang/matchlower/internal/cfg"
	"github.com/malphas-lang/matchlower/internal/config"
	"github.com/malphas-lang/matchlower/internal/diag"
	"github.com/malphas-lang/matchlower/internal/matchlower"
	"github.com/malphas-lang/matchlower/internal/render"
	"github.com/malphas-lang/matchlower/internal/types"
)

var (
	errColor  = color.New(color.FgRed, color.Bold).SprintFunc()
	warnColor = color.New(color.FgYellow, color.Bold).SprintFunc()
	okColor   = color.New(color.FgGreen, color.Bold).SprintFunc()
	boldColor = color.New(color.Bold).SprintFunc()
)

func main() {
	root := &cobra.Command{
		Use:   "matchlower",
		Short: "Run the match-expression lowering core against built-in scenarios",
	}

	root.AddCommand(listCmd())
	root.AddCommand(explainCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errColor("error: ")+err.Error())
		os.Exit(1)
	}
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in lowering scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := scenarios()
			sort.Slice(names, func(i, j int) bool { return names[i].name < names[j].name })
			for _, s := range names {
				fmt.Printf("  %s\t%s\n", boldColor(s.name), s.description)
			}
			return nil
		},
	}
}

func explainCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "explain <scenario>",
		Short: "Lower a built-in scenario and print its CFG and diagnostics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := findScenario(args[0])
			if err != nil {
				return err
			}

			var flags matchlower.FlagStore
			if configPath != "" {
				cfgFile, err := config.Load(configPath)
				if err != nil {
					return err
				}
				flags = cfgFile
			}

			sink := &diag.Sink{}
			fn := cfg.NewFunction(s.name)
			builder := cfg.NewBuilder(fn, fn.Entry)

			ctx := &matchlower.Context{
				Vars:               fn,
				Diags:              sinkAdapter{sink},
				Flags:              flags,
				LowerExpr:          stubLowerExpr,
				LowerSinglePattern: stubLowerSinglePattern,
				LowerTailExpr:      stubLowerTailExpr,
			}

			_, lowerErr := matchlower.LowerMatch(ctx, builder, s.match, s.subjectType)

			for _, d := range sink.All() {
				printDiagnostic(d)
			}

			if lowerErr != nil {
				return lowerErr
			}

			fmt.Println(okColor("lowered successfully"))
			fmt.Println(render.Function(fn))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML flag-store config file (see internal/config)")
	return cmd
}

func printDiagnostic(d diag.Diagnostic) {
	switch d.Severity {
	case diag.SeverityError:
		fmt.Printf("%s [%s] %s\n", errColor("error"), d.Code, d.Message)
	case diag.SeverityWarning:
		fmt.Printf("%s [%s] %s\n", warnColor("warning"), d.Code, d.Message)
	default:
		fmt.Printf("note [%s] %s\n", d.Code, d.Message)
	}
}

// sinkAdapter satisfies matchlower.Diagnostics against a diag.Sink.
type sinkAdapter struct{ sink *diag.Sink }

func (a sinkAdapter) Report(code diag.Code, message string, span ast.Span) {
	a.sink.Report(diag.New(code, message, span))
}

// The scenarios this CLI drives never exercise real sub-expression or
// pattern lowering (out of scope per spec §1); these stand in for the
// external collaborators the core expects at that boundary.
func stubLowerExpr(builder matchlower.BlockBuilder, expr ast.Expr) (cfg.Operand, error) {
	return &cfg.Literal{Type: types.TypeUnit}, nil
}

func stubLowerSinglePattern(builder matchlower.BlockBuilder, pattern ast.Pattern, value cfg.Operand) error {
	return nil
}

func stubLowerTailExpr(builder matchlower.BlockBuilder, body *ast.BlockExpr) (cfg.Operand, error) {
	return &cfg.Literal{Type: types.TypeUnit}, nil
}
