// SPDX-License-Identifier: MIT
// Package: hyperpath/builder
//
// api.go - public entry points of the builder package.
//
// Design contract:
//   - One orchestrator: Build(lift, opts, cons...). Resolves the config, runs
//     cons in order against one Plan, then materialises the plan.
//   - Factories are implemented in impl_*.go.
//   - Determinism: same options, seed and constructor order give identical
//     hypergraphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hyperpath/hypergraph"
	"github.com/katalvlaran/hyperpath/symbol"
	"github.com/katalvlaran/hyperpath/weight"
)

// Constructor records a fixture into p using the resolved config. It must
// validate its parameters and return sentinel errors instead of panicking.
type Constructor func(p *Plan, cfg builderConfig) error

// Build resolves opts, applies every constructor in order and converts the
// plan into a hypergraph whose arc weights are lift(cost). Constructor errors
// are wrapped with "Build: %w"; nothing is returned on failure.
func Build[W weight.Weight[W]](lift func(float64) W, opts []Option, cons ...Constructor) (*hypergraph.Hypergraph[W], error) {
	cfg := newBuilderConfig(opts...)
	p := newPlan()

	// 1. Record
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(p, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	// 2. Materialise in recorded order so ids line up
	hgOpts := append([]hypergraph.Option{hypergraph.WithCapacity(len(p.states), len(p.arcs))}, cfg.hgOpts...)
	hg := hypergraph.New[W](hgOpts...)
	for _, s := range p.states {
		if s.lexical {
			hg.AddLexicalState(s.label)
		} else {
			hg.AddState(s.label)
		}
	}
	for i, a := range p.arcs {
		if _, err := hg.AddArc(a.head, a.tails, lift(a.cost)); err != nil {
			return nil, fmt.Errorf("Build: arc %d: %w: %w", i, ErrConstructFailed, err)
		}
	}
	if p.start != hypergraph.NoState {
		if err := hg.SetStart(p.start); err != nil {
			return nil, fmt.Errorf("Build: start: %w: %w", ErrConstructFailed, err)
		}
	}
	if p.final != hypergraph.NoState {
		if err := hg.SetFinal(p.final); err != nil {
			return nil, fmt.Errorf("Build: final: %w: %w", ErrConstructFailed, err)
		}
	}

	return hg, nil
}

// word returns the terminal label of the i-th word.
func (c builderConfig) word(i int) symbol.Symbol {
	return symbol.New(symbol.Terminal, c.labelOffset+uint32(i))
}
