package cmd

import (
	"strconv"
	"strings"

	mdwerrors "github.com/msto63/snacks/core/errors"
	"github.com/msto63/snacks/utils/mathx"
)

// parseNumber parses a command argument as a finite number
func parseNumber(op, arg string) (float64, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
	if err != nil || !mathx.IsUsefulNumber(n) {
		return 0, mdwerrors.InvalidInput(mdwerrors.ModuleMathx, op, arg, "finite number")
	}
	return n, nil
}

func parseNumbers(op string, args []string) ([]float64, error) {
	values := make([]float64, 0, len(args))
	for _, arg := range args {
		n, err := parseNumber(op, arg)
		if err != nil {
			return nil, err
		}
		values = append(values, n)
	}
	return values, nil
}
