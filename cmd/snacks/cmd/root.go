package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/msto63/snacks/core/config"
	mdwerrors "github.com/msto63/snacks/core/errors"
	mdwlog "github.com/msto63/snacks/core/log"
	"github.com/spf13/cobra"
)

var (
	cfgFile      string
	verbose      bool
	outputFormat string

	cfg    *config.Config
	logger *mdwlog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "snacks",
	Short: "snacks - relative values and circular statistics",
	Long: `snacks applies relative value expressions such as "+5", "*2" or "**3"
to numbers and computes circular means and midpoints of angles.

Commands:
  apply     - fold operands onto a base with an operator
  operators - list the operator table
  relative  - apply a relative expression
  mean      - circular mean of angles
  midpoint  - weighted midpoint of two angles
  average   - weighted linear mean
  eval      - evaluate a batch job document

Negative numbers must follow "--" so they are not read as flags:
  snacks relative --base 10 -- -3`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// commandError carries the failing operation for the error line
type commandError struct {
	op  string
	err error
}

func (e *commandError) Error() string { return e.err.Error() }
func (e *commandError) Unwrap() error { return e.err }

func fail(op string, err error) error {
	if err == nil {
		return nil
	}
	return &commandError{op: op, err: err}
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./snacks.toml or the user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: text, json or yaml")
}

// setup loads the configuration and builds the logger before every command
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return fail("config", err)
	}

	if outputFormat != "" {
		switch outputFormat {
		case "text", "json", "yaml":
			loaded.Output.Format = outputFormat
		default:
			return fail("output", mdwerrors.InvalidInput(mdwerrors.ModuleConfig, "output", outputFormat, "text, json or yaml"))
		}
	}

	cfg = loaded
	logger = cfg.Logger(cmd.ErrOrStderr())
	if verbose {
		logger.SetLevel(mdwlog.LevelDebug)
	}

	logger.Debug("Configuration loaded", mdwlog.Fields{
		"path":   cfg.Path(),
		"modulo": cfg.Operators.Modulo,
		"ring":   cfg.Ring(),
		"output": cfg.Output.Format,
	})
	return nil
}

func printError(w io.Writer, err error) {
	op := "snacks"
	var ce *commandError
	if errors.As(err, &ce) {
		op = ce.op
	}
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, "error: %s: %v\n", op, err)
}
