package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var operatorsCmd = &cobra.Command{
	Use:   "operators",
	Short: "List operators, their symbols and identities",
	Args:  cobra.NoArgs,
	RunE:  runOperators,
}

func init() {
	rootCmd.AddCommand(operatorsCmd)
}

type operatorInfo struct {
	Key      string   `json:"key" yaml:"key"`
	Symbols  []string `json:"symbols" yaml:"symbols"`
	Identity *float64 `json:"identity,omitempty" yaml:"identity,omitempty"`
}

func runOperators(cmd *cobra.Command, args []string) error {
	registry := cfg.Registry()

	var infos []operatorInfo
	for _, op := range registry.Operators() {
		info := operatorInfo{Key: op.Key(), Symbols: op.Symbols()}
		if id, ok := op.Identity(); ok {
			info.Identity = &id
		}
		infos = append(infos, info)
	}

	p := newPrinter(cmd)
	return fail("operators", p.print(infos, func() {
		p.title(fmt.Sprintf("Operators (modulo: %s)", registry.ModuloMode()))
		for _, info := range infos {
			identity := p.styles.Muted.Render("none")
			if info.Identity != nil {
				identity = p.number(*info.Identity)
			}
			fmt.Fprintf(p.out, "%s %s  %s\n",
				p.styles.Label.Render(info.Key),
				identity,
				p.styles.Symbol.Render(strings.Join(info.Symbols, " ")))
		}
	}))
}
