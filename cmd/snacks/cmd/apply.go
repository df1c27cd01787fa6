package cmd

import (
	mdwlog "github.com/msto63/snacks/core/log"
	"github.com/msto63/snacks/utils/operatorx"
	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply <operator> <base> [operands...]",
	Short: "Fold operands onto a base with an operator",
	Long: `Applies an operator, given by key or symbol, to a base and each operand
in turn. Without operands the base is returned unchanged, except for
inc and dec which always step once.

Examples:
  snacks apply + 1 2 3        # 6
  snacks apply mul 2 3 4      # 24
  snacks apply ** 2 10        # 1024
  snacks apply inc 5          # 6`,
	Args: cobra.MinimumNArgs(2),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
}

type applyResult struct {
	Operator string    `json:"operator" yaml:"operator"`
	Base     float64   `json:"base" yaml:"base"`
	Operands []float64 `json:"operands" yaml:"operands"`
	Value    float64   `json:"value" yaml:"value"`
}

func runApply(cmd *cobra.Command, args []string) error {
	numbers, err := parseNumbers("apply", args[1:])
	if err != nil {
		return fail("apply", err)
	}

	registry := cfg.Registry()
	ref := operatorx.Symbol(args[0])
	value, err := registry.Apply(ref, numbers[0], numbers[1:]...)
	if err != nil {
		return fail("apply", err)
	}

	op := registry.MustLookup(ref)
	logger.Debug("Operator applied", mdwlog.Fields{
		"operator": op.Key(),
		"operands": len(numbers) - 1,
	})

	result := applyResult{Operator: op.Key(), Base: numbers[0], Operands: numbers[1:], Value: value}
	p := newPrinter(cmd)
	return fail("apply", p.print(result, func() { p.value(value) }))
}
