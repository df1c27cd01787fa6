// File: registry.go
// Title: Operator Registry
// Description: A closed, read-only table of operators indexed by symbol.
//              Symbols are matched case-insensitively and a symbol claimed
//              by several operators belongs to the first one registered.
//              The default registry is built during package initialization
//              and is safe for concurrent readers.
// Author: msto63
// Version: v1.0.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v1.0.0: Initial implementation

package operatorx

import (
	"fmt"
	"sort"
	"strings"

	mdwerrors "github.com/msto63/snacks/core/errors"
)

// ErrNoOperation is returned by Apply when the operator cannot be resolved.
// Errors returned by Apply carry details and match it under errors.Is.
var ErrNoOperation = mdwerrors.NewErrorBuilder(mdwerrors.ModuleOperatorx).
	Operation("apply").
	Message("no operation performed").
	Build()

// Ref identifies an operator: either a Symbol or an *Operator handle
// obtained from the same registry.
type Ref interface {
	fmt.Stringer
	resolve(r *Registry) (*Operator, bool)
}

// Symbol is a textual operator reference such as "+", "mul" or "÷"
type Symbol string

func (s Symbol) String() string {
	return string(s)
}

func (s Symbol) resolve(r *Registry) (*Operator, bool) {
	op, ok := r.bySymbol[strings.ToLower(string(s))]
	return op, ok
}

func (o *Operator) resolve(r *Registry) (*Operator, bool) {
	if o == nil {
		return nil, false
	}
	owned, ok := r.byKey[o.key]
	if !ok || owned != o {
		return nil, false
	}
	return o, true
}

// symbolEntry is a symbol owned by an operator, used for prefix matching
type symbolEntry struct {
	symbol   string
	operator *Operator
}

// Registry is an immutable operator table
type Registry struct {
	operators []*Operator
	byKey     map[string]*Operator
	bySymbol  map[string]*Operator
	prefixes  []symbolEntry
	modulo    ModuloMode
}

type registryOptions struct {
	modulo ModuloMode
	extra  []Definition
}

// RegistryOption configures NewRegistry
type RegistryOption func(*registryOptions)

// WithModuloMode selects the reduction rule of the modulo operator
func WithModuloMode(mode ModuloMode) RegistryOption {
	return func(o *registryOptions) {
		o.modulo = mode
	}
}

// WithDefinitions registers additional operators after the built-ins.
// Symbols already claimed by an earlier operator stay with that operator.
func WithDefinitions(defs ...Definition) RegistryOption {
	return func(o *registryOptions) {
		o.extra = append(o.extra, defs...)
	}
}

// NewRegistry builds a registry holding the built-in operators followed by
// any definitions passed with WithDefinitions.
func NewRegistry(opts ...RegistryOption) (*Registry, error) {
	options := registryOptions{modulo: DefaultModuloMode}
	for _, opt := range opts {
		opt(&options)
	}

	r := &Registry{
		byKey:    make(map[string]*Operator),
		bySymbol: make(map[string]*Operator),
		modulo:   options.modulo,
	}

	defs := append(builtins(options.modulo), options.extra...)
	for _, def := range defs {
		if err := r.register(def); err != nil {
			return nil, err
		}
	}

	// Longest symbols first; the stable sort keeps registration order on ties
	sort.SliceStable(r.prefixes, func(i, j int) bool {
		return len(r.prefixes[i].symbol) > len(r.prefixes[j].symbol)
	})

	return r, nil
}

// MustNewRegistry is like NewRegistry but panics on an invalid definition
func MustNewRegistry(opts ...RegistryOption) *Registry {
	r, err := NewRegistry(opts...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) register(def Definition) error {
	key := strings.ToLower(strings.TrimSpace(def.Key))
	if key == "" || def.Reduce == nil {
		return mdwerrors.InvalidInput(mdwerrors.ModuleOperatorx, "register", def.Key, "non-empty key and a reduce function")
	}
	if _, exists := r.byKey[key]; exists {
		return mdwerrors.NewErrorBuilder(mdwerrors.ModuleOperatorx).
			Operation("register").
			Messagef("operator %q already registered", key).
			Detail("key", key).
			Build()
	}

	op := &Operator{
		key:         key,
		symbols:     []string{key},
		identity:    def.Identity,
		hasIdentity: def.HasIdentity,
		reduce:      def.Reduce,
	}
	for _, s := range def.Symbols {
		s = strings.ToLower(s)
		if s == "" || s == key {
			continue
		}
		op.symbols = append(op.symbols, s)
	}

	r.operators = append(r.operators, op)
	r.byKey[key] = op
	for _, s := range op.symbols {
		if _, claimed := r.bySymbol[s]; claimed {
			continue
		}
		r.bySymbol[s] = op
		r.prefixes = append(r.prefixes, symbolEntry{symbol: s, operator: op})
	}
	return nil
}

// Lookup resolves ref to an operator of this registry
func (r *Registry) Lookup(ref Ref) (*Operator, bool) {
	if ref == nil {
		return nil, false
	}
	return ref.resolve(r)
}

// MustLookup is like Lookup but panics when ref does not resolve
func (r *Registry) MustLookup(ref Ref) *Operator {
	op, ok := r.Lookup(ref)
	if !ok {
		panic(fmt.Sprintf("operatorx: unknown operator %q", refName(ref)))
	}
	return op
}

// Apply folds operands onto base with the operator ref resolves to. An
// unresolved ref returns an error matching ErrNoOperation.
func (r *Registry) Apply(ref Ref, base float64, operands ...float64) (float64, error) {
	op, ok := r.Lookup(ref)
	if !ok {
		return 0, ErrNoOperation.Clone().WithDetail("ref", refName(ref))
	}
	return op.reduce(base, operands), nil
}

// Operators returns the operators in registration order
func (r *Registry) Operators() []*Operator {
	out := make([]*Operator, len(r.operators))
	copy(out, r.operators)
	return out
}

// ModuloMode returns the modulo mode the registry was built with
func (r *Registry) ModuloMode() ModuloMode {
	return r.modulo
}

func refName(ref Ref) string {
	if ref == nil {
		return "<nil>"
	}
	return ref.String()
}

// =============================================================================
// DEFAULT REGISTRY
// =============================================================================

var defaultRegistry = MustNewRegistry()

// Default returns the process-wide registry with DefaultModuloMode
func Default() *Registry {
	return defaultRegistry
}

// Lookup resolves ref in the default registry
func Lookup(ref Ref) (*Operator, bool) {
	return defaultRegistry.Lookup(ref)
}

// MustLookup resolves ref in the default registry and panics if it is unknown
func MustLookup(ref Ref) *Operator {
	return defaultRegistry.MustLookup(ref)
}

// Apply applies ref with the default registry
func Apply(ref Ref, base float64, operands ...float64) (float64, error) {
	return defaultRegistry.Apply(ref, base, operands...)
}

// Operators returns the default registry's operators in registration order
func Operators() []*Operator {
	return defaultRegistry.Operators()
}
