package batch

import (
	"context"
	"fmt"

	mdwerrors "github.com/msto63/snacks/core/errors"
	mdwlog "github.com/msto63/snacks/core/log"
	"github.com/msto63/snacks/utils/anglex"
	"github.com/msto63/snacks/utils/mathx"
	"github.com/msto63/snacks/utils/operatorx"
)

// Engine evaluates job documents against an operator registry
type Engine struct {
	registry *operatorx.Registry
	ring     float64
	logger   *mdwlog.Logger
}

// Options configures engine behavior
type Options struct {
	Logger   *mdwlog.Logger
	Registry *operatorx.Registry
	// Ring is the default range for mean and midpoint jobs
	Ring float64
}

// Result is the outcome of one job. Error is empty on success.
type Result struct {
	Index int     `json:"index" yaml:"index"`
	Name  string  `json:"name,omitempty" yaml:"name,omitempty"`
	Op    string  `json:"op" yaml:"op"`
	Value float64 `json:"value" yaml:"value"`
	Error string  `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failed reports whether the job produced an error
func (r Result) Failed() bool {
	return r.Error != ""
}

// New creates a batch engine
func New(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.Registry == nil {
		opts.Registry = operatorx.Default()
	}
	if !mathx.IsUsefulNumber(opts.Ring) || opts.Ring <= 0 {
		opts.Ring = anglex.FullTurnDegrees
	}

	engine := &Engine{
		registry: opts.Registry,
		ring:     opts.Ring,
		logger:   opts.Logger.WithField("component", "batch"),
	}

	engine.logger.Debug("Batch engine initialized", mdwlog.Fields{
		"modulo": opts.Registry.ModuloMode().String(),
		"ring":   opts.Ring,
	})

	return engine
}

// Run evaluates every job in order. A failing job is recorded in its
// Result and does not stop the run; only a cancelled context does.
func (e *Engine) Run(ctx context.Context, doc *Document) ([]Result, error) {
	if doc == nil {
		return nil, nil
	}

	timer := e.logger.StartTimer("batch run").WithField("jobs", len(doc.Jobs))
	results := make([]Result, 0, len(doc.Jobs))
	failed := 0

	for i, job := range doc.Jobs {
		if err := ctx.Err(); err != nil {
			timer.StopWithError(err)
			return results, err
		}

		result := Result{Index: i, Name: job.Name, Op: job.Op}
		value, err := e.Evaluate(job)
		fields := mdwlog.Fields{"index": i, "op": job.Op, "name": job.Name}
		if err != nil {
			failed++
			result.Error = err.Error()
			e.logger.WarnWithErr("Job failed", err, fields)
		} else {
			result.Value = value
			e.logger.Debug("Job evaluated", fields, mdwlog.Float64("value", value))
		}
		results = append(results, result)
	}

	timer.WithField("failed", failed).Stop()
	return results, nil
}

// Evaluate runs a single job
func (e *Engine) Evaluate(job Job) (float64, error) {
	var (
		value float64
		err   error
	)

	switch job.Op {
	case OpRelative:
		value = e.relative(job)
	case OpApply:
		value, err = e.apply(job)
	case OpMean:
		value, err = anglex.CircularMeanOfOnRing(job.Values, job.Weights, e.ringFor(job))
	case OpMidpoint:
		value, err = e.midpoint(job)
	case OpAverage:
		value, err = average(job)
	case OpRatio:
		value, err = mathx.RatioToQuotient(job.Ratio)
	default:
		return 0, mdwerrors.NotFound(mdwerrors.ModuleBatch, "evaluate", job.Op).
			WithCode(mdwerrors.CodeBatchNotFound)
	}
	if err != nil {
		return 0, err
	}

	if !mathx.IsUsefulNumber(value) {
		return 0, mdwerrors.NewErrorBuilder(mdwerrors.ModuleBatch).
			Operation("evaluate").
			Messagef("%s job produced %v", job.Op, value).
			Detail("value", fmt.Sprint(value)).
			Build()
	}
	return value, nil
}

func (e *Engine) ringFor(job Job) float64 {
	if job.Range > 0 && mathx.IsUsefulNumber(job.Range) {
		return job.Range
	}
	return e.ring
}

func (e *Engine) relative(job Job) float64 {
	if _, ok := e.registry.ParseValue(job.Value); !ok {
		e.logger.Warn("Relative value not understood, applying no change", mdwlog.Fields{
			"value": fmt.Sprint(job.Value),
		})
	}
	if job.Base == nil {
		return e.registry.ApplyStandalone(job.Value)
	}
	return e.registry.ApplyWithBase(*job.Base, job.Value)
}

func (e *Engine) apply(job Job) (float64, error) {
	if job.Operator == "" {
		return 0, mdwerrors.InvalidInput(mdwerrors.ModuleBatch, "apply", job.Operator, "operator key or symbol")
	}

	var operands []float64
	if job.Operands != nil {
		fs, bad, ok := mathx.ToFloats(job.Operands)
		if !ok || bad >= 0 {
			return 0, mdwerrors.InvalidInput(mdwerrors.ModuleBatch, "apply", fmt.Sprint(job.Operands), "list of finite numbers")
		}
		operands = fs
	}

	var base float64
	if job.Base != nil {
		base = *job.Base
	}
	return e.registry.Apply(operatorx.Symbol(job.Operator), base, operands...)
}

func (e *Engine) midpoint(job Job) (float64, error) {
	if job.A == nil || job.B == nil {
		return 0, mdwerrors.InvalidInput(mdwerrors.ModuleBatch, "midpoint", job.Name, "both a and b")
	}

	opts := []anglex.MidpointOption{anglex.WithRange(e.ringFor(job))}
	if job.Weights != nil {
		ws, bad, ok := mathx.ToFloats(job.Weights)
		if !ok || bad >= 0 || len(ws) != 2 {
			return 0, mdwerrors.InvalidInput(mdwerrors.ModuleBatch, "midpoint", fmt.Sprint(job.Weights), "two finite weights")
		}
		opts = append(opts, anglex.WithWeights(ws[0], ws[1]))
	}

	if job.Wrap {
		return anglex.MidpointWrapped(*job.A, *job.B, opts...), nil
	}
	return anglex.Midpoint(*job.A, *job.B, opts...), nil
}

func average(job Job) (float64, error) {
	values, bad, ok := mathx.ToFloats(job.Values)
	if !ok || bad >= 0 {
		return 0, mdwerrors.InvalidInput(mdwerrors.ModuleBatch, "average", fmt.Sprint(job.Values), "list of finite numbers")
	}

	var weights []float64
	if job.Weights != nil {
		weights, bad, ok = mathx.ToFloats(job.Weights)
		if !ok || bad >= 0 {
			return 0, mdwerrors.InvalidInput(mdwerrors.ModuleBatch, "average", fmt.Sprint(job.Weights), "list of finite numbers")
		}
	}
	return mathx.Average(values, weights), nil
}
