package cmd

import (
	mdwerrors "github.com/msto63/snacks/core/errors"
	"github.com/msto63/snacks/utils/mathx"
	"github.com/spf13/cobra"
)

var averageWeights []float64

var averageCmd = &cobra.Command{
	Use:   "average <values...>",
	Short: "Weighted linear mean",
	Long: `Computes the weighted arithmetic mean of the given values. Missing
weights count as 1 and surplus weights are ignored. No values give 0.

Examples:
  snacks average 1 2 3                 # 2
  snacks average 1 2 3 --weights 1,1,2 # 2.25`,
	RunE: runAverage,
}

func init() {
	rootCmd.AddCommand(averageCmd)

	averageCmd.Flags().Float64SliceVar(&averageWeights, "weights", nil, "weight per value, comma separated")
}

func runAverage(cmd *cobra.Command, args []string) error {
	values, err := parseNumbers("average", args)
	if err != nil {
		return fail("average", err)
	}

	value := mathx.Average(values, averageWeights)
	if !mathx.IsUsefulNumber(value) {
		return fail("average", mdwerrors.InvalidInput(mdwerrors.ModuleMathx, "average", averageWeights, "weights with a non-zero total"))
	}

	result := seriesResult{Values: values, Weights: averageWeights, Value: value}
	p := newPrinter(cmd)
	return fail("average", p.print(result, func() { p.value(value) }))
}
