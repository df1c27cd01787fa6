package batch

import (
	"errors"
	"io"

	mdwerrors "github.com/msto63/snacks/core/errors"
	"gopkg.in/yaml.v3"
)

// Operation names accepted in a job's op field
const (
	OpRelative = "relative"
	OpApply    = "apply"
	OpMean     = "mean"
	OpMidpoint = "midpoint"
	OpAverage  = "average"
	OpRatio    = "ratio"
)

// Document is a list of jobs evaluated in order
type Document struct {
	Jobs []Job `yaml:"jobs" json:"jobs"`
}

// Job is one evaluation. Which fields are read depends on Op.
//
//	relative: value, base (optional)
//	apply:    operator, base, operands
//	mean:     values, weights, range
//	midpoint: a, b, weights (two entries), range, wrap
//	average:  values, weights
//	ratio:    ratio
type Job struct {
	Name     string   `yaml:"name,omitempty" json:"name,omitempty"`
	Op       string   `yaml:"op" json:"op"`
	Base     *float64 `yaml:"base,omitempty" json:"base,omitempty"`
	Value    any      `yaml:"value,omitempty" json:"value,omitempty"`
	Values   any      `yaml:"values,omitempty" json:"values,omitempty"`
	Weights  any      `yaml:"weights,omitempty" json:"weights,omitempty"`
	A        *float64 `yaml:"a,omitempty" json:"a,omitempty"`
	B        *float64 `yaml:"b,omitempty" json:"b,omitempty"`
	Range    float64  `yaml:"range,omitempty" json:"range,omitempty"`
	Wrap     bool     `yaml:"wrap,omitempty" json:"wrap,omitempty"`
	Operator string   `yaml:"operator,omitempty" json:"operator,omitempty"`
	Operands any      `yaml:"operands,omitempty" json:"operands,omitempty"`
	Ratio    string   `yaml:"ratio,omitempty" json:"ratio,omitempty"`
}

// Decode reads a job document. The top level is either a mapping with a
// jobs key or a bare sequence of jobs. JSON input decodes the same way.
// Empty input yields an empty document.
func Decode(r io.Reader) (*Document, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return &Document{}, nil
		}
		return nil, decodeError(err)
	}

	node := &root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return &Document{}, nil
		}
		node = node.Content[0]
	}

	doc := &Document{}
	switch node.Kind {
	case yaml.SequenceNode:
		if err := node.Decode(&doc.Jobs); err != nil {
			return nil, decodeError(err)
		}
	case yaml.MappingNode:
		if err := node.Decode(doc); err != nil {
			return nil, decodeError(err)
		}
	default:
		return nil, mdwerrors.InvalidFormat(mdwerrors.ModuleBatch, "decode", node.Tag, "mapping with jobs or a sequence of jobs")
	}
	return doc, nil
}

func decodeError(err error) error {
	return mdwerrors.NewErrorBuilder(mdwerrors.ModuleBatch).
		Operation("decode").
		Message("cannot decode job document").
		Cause(err).
		Build()
}
