package cmd

import (
	"fmt"
	"io"
	"os"

	mdwerrors "github.com/msto63/snacks/core/errors"
	"github.com/msto63/snacks/internal/batch"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval <file|->",
	Short: "Evaluate a batch job document",
	Long: `Evaluates every job of a YAML or JSON document and prints one result per
job. Use "-" to read the document from standard input. A failing job is
reported in its result; the command exits non-zero if any job failed.

Example document:
  jobs:
    - name: grow
      op: relative
      base: 10
      value: "+5"
    - op: mean
      values: [350, 10]
    - op: midpoint
      a: 350
      b: 30
      wrap: true

Operations: relative, apply, mean, midpoint, average, ratio.`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	doc, err := readDocument(cmd, args[0])
	if err != nil {
		return fail("eval", err)
	}

	engine := batch.New(batch.Options{
		Logger:   logger,
		Registry: cfg.Registry(),
		Ring:     cfg.Ring(),
	})

	results, err := engine.Run(cmd.Context(), doc)
	if err != nil {
		return fail("eval", err)
	}

	failed := 0
	for _, r := range results {
		if r.Failed() {
			failed++
		}
	}

	p := newPrinter(cmd)
	err = p.print(results, func() {
		for _, r := range results {
			label := r.Name
			if label == "" {
				label = fmt.Sprintf("#%d", r.Index+1)
			}
			if r.Failed() {
				fmt.Fprintf(p.out, "%s %s %s\n", p.styles.Label.Render(label), p.styles.Muted.Render(r.Op), p.styles.Error.Render(r.Error))
				continue
			}
			fmt.Fprintf(p.out, "%s %s %s\n", p.styles.Label.Render(label), p.styles.Muted.Render(r.Op), p.styles.Value.Render(p.number(r.Value)))
		}
	})
	if err != nil {
		return fail("eval", err)
	}

	if failed > 0 {
		return fail("eval", mdwerrors.NewErrorBuilder(mdwerrors.ModuleBatch).
			Operation("run").
			Messagef("%d of %d jobs failed", failed, len(results)).
			Build())
	}
	return nil
}

func readDocument(cmd *cobra.Command, path string) (*batch.Document, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if os.IsNotExist(err) {
			return nil, mdwerrors.NotFound(mdwerrors.ModuleBatch, "open", path)
		}
		if err != nil {
			return nil, mdwerrors.OperationFailed(mdwerrors.ModuleBatch, "open", err)
		}
		defer f.Close()
		r = f
	}
	return batch.Decode(r)
}
