// Package ref implements an in-process reference framework for strata.
//
// It is the collaborator the binding is written against: symbolic tensors
// with full shape inference, sequential containers, and just enough concrete
// evaluation to run small models end to end. It is not an accelerated
// runtime; real deployments plug in their own framework behind the same
// interfaces.
package ref

import (
	"fmt"

	"github.com/strata-ml/strata/internal/framework"
	"github.com/strata-ml/strata/internal/layers"
)

// Compile-time check that Framework satisfies the binding's contract.
var _ layers.Framework = (*Framework)(nil)

// Framework is the reference framework. A Framework owns the auto-naming
// counters and the seed used for weight initialization; graph construction
// against a single Framework is expected to happen on one goroutine.
type Framework struct {
	seed     int64
	counters map[string]int
	numBuilt int
}

// Option configures a Framework.
type Option func(*Framework)

// WithSeed fixes the weight-initialization seed, making layer parameters
// reproducible across runs.
func WithSeed(seed int64) Option {
	return func(f *Framework) { f.seed = seed }
}

// New creates a reference framework.
func New(opts ...Option) *Framework {
	f := &Framework{
		seed:     1,
		counters: make(map[string]int),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// uniqueName returns the supplied name, or the next auto-generated name for
// the given layer kind ("dense_1", "dense_2", ...).
func (f *Framework) uniqueName(kind, name string) string {
	if name != "" {
		return name
	}
	f.counters[kind]++
	return fmt.Sprintf("%s_%d", kind, f.counters[kind])
}

// layerSeed derives a per-layer seed so that each layer draws an
// independent reproducible parameter stream.
func (f *Framework) layerSeed() int64 {
	f.numBuilt++
	return f.seed + int64(f.numBuilt)*1_000_003
}

// NewSequential creates an empty sequential container.
func (f *Framework) NewSequential() framework.Sequential {
	return &Sequential{}
}

// Input creates a symbolic entry-point tensor.
func (f *Framework) Input(cfg layers.InputConfig) (framework.Tensor, error) {
	s := cfg.BatchShape
	if s.IsAbsent() {
		s = cfg.Shape.WithBatch()
	}
	return &Symbol{
		name:  f.uniqueName("input", cfg.Name),
		shape: s,
		dtype: cfg.DType,
	}, nil
}
