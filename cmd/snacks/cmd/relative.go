package cmd

import (
	"strconv"

	mdwlog "github.com/msto63/snacks/core/log"
	"github.com/spf13/cobra"
)

var (
	relativeBase    float64
	relativeExplain bool
)

var relativeCmd = &cobra.Command{
	Use:   "relative <expression>",
	Short: "Apply a relative value expression",
	Long: `Parses a relative expression such as "+5", "*2", "**3" or "%4" and
applies it to --base. Without --base the operator's identity is used
(0 for add and sub, 1 for mul and div, 0 otherwise). An expression that
cannot be parsed leaves the base unchanged.

Examples:
  snacks relative --base 10 +5      # 15
  snacks relative --base 2 "**3"    # 8
  snacks relative "*4"              # 4
  snacks relative --explain /2`,
	Args: cobra.ExactArgs(1),
	RunE: runRelative,
}

func init() {
	rootCmd.AddCommand(relativeCmd)

	relativeCmd.Flags().Float64Var(&relativeBase, "base", 0, "base value the expression is applied to")
	relativeCmd.Flags().BoolVar(&relativeExplain, "explain", false, "show the parsed expression")
}

type relativeResult struct {
	Input    string   `json:"input" yaml:"input"`
	Base     *float64 `json:"base,omitempty" yaml:"base,omitempty"`
	Parsed   bool     `json:"parsed" yaml:"parsed"`
	Operator string   `json:"operator,omitempty" yaml:"operator,omitempty"`
	Symbol   string   `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	Number   float64  `json:"number" yaml:"number"`
	Value    float64  `json:"value" yaml:"value"`
}

func runRelative(cmd *cobra.Command, args []string) error {
	registry := cfg.Registry()
	input := args[0]

	result := relativeResult{Input: input}
	expr, ok := registry.Parse(input)
	if ok {
		result.Parsed = true
		result.Operator = expr.Operator.Key()
		result.Symbol = expr.Symbol
		result.Number = expr.Number
	} else {
		logger.Warn("Relative value not understood, applying no change", mdwlog.String("input", input))
	}

	if cmd.Flags().Changed("base") {
		base := relativeBase
		result.Base = &base
		result.Value = registry.ApplyWithBase(base, input)
	} else {
		result.Value = registry.ApplyStandalone(input)
	}

	p := newPrinter(cmd)
	if !relativeExplain && p.format == "text" {
		p.value(result.Value)
		return nil
	}

	return fail("relative", p.print(result, func() {
		p.title("Relative expression")
		p.field("Input", strconv.Quote(result.Input))
		if result.Parsed {
			p.field("Operator", result.Operator)
			symbol := result.Symbol
			if symbol == "" {
				symbol = p.styles.Muted.Render("none, plain number")
			} else {
				symbol = p.styles.Symbol.Render(symbol)
			}
			p.field("Symbol", symbol)
			p.field("Number", p.number(result.Number))
		} else {
			p.field("Operator", p.styles.Error.Render("not understood, no change"))
		}
		if result.Base != nil {
			p.field("Base", p.number(*result.Base))
		} else {
			p.field("Base", p.styles.Muted.Render("identity"))
		}
		p.field("Value", p.styles.Value.Render(p.number(result.Value)))
	}))
}
