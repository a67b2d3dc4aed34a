// SPDX-License-Identifier: MIT
// Package: hyperpath/builder
//
// plan.go - weight-agnostic recording surface for constructors.

package builder

import (
	"github.com/katalvlaran/hyperpath/hypergraph"
	"github.com/katalvlaran/hyperpath/symbol"
)

type planState struct {
	label   symbol.Symbol
	lexical bool
}

type planArc struct {
	head  hypergraph.StateID
	tails []hypergraph.StateID
	cost  float64
}

// Plan records states and arcs with float costs. State ids are assigned in
// the order Build will recreate them, so ids seen by constructors are the
// ids of the final hypergraph.
type Plan struct {
	states []planState
	arcs   []planArc
	memo   map[symbol.Symbol]hypergraph.StateID
	start  hypergraph.StateID
	final  hypergraph.StateID
}

func newPlan() *Plan {
	return &Plan{
		memo:  make(map[symbol.Symbol]hypergraph.StateID),
		start: hypergraph.NoState,
		final: hypergraph.NoState,
	}
}

// NumStates returns the number of recorded states.
func (p *Plan) NumStates() int { return len(p.states) }

// NumArcs returns the number of recorded arcs.
func (p *Plan) NumArcs() int { return len(p.arcs) }

// AddState records an unlabelled state.
func (p *Plan) AddState() hypergraph.StateID {
	p.states = append(p.states, planState{label: symbol.NoSymbol})

	return hypergraph.StateID(len(p.states) - 1)
}

// AddLexicalState returns the lexical state for label, recording it on
// first use.
func (p *Plan) AddLexicalState(label symbol.Symbol) hypergraph.StateID {
	if id, ok := p.memo[label]; ok {
		return id
	}
	p.states = append(p.states, planState{label: label, lexical: true})
	id := hypergraph.StateID(len(p.states) - 1)
	p.memo[label] = id

	return id
}

// AddArc records head <- tails. Ids are checked by Build.
func (p *Plan) AddArc(head hypergraph.StateID, tails []hypergraph.StateID, cost float64) {
	p.arcs = append(p.arcs, planArc{head: head, tails: append([]hypergraph.StateID(nil), tails...), cost: cost})
}

// AddFSMArc records src --label--> dst as dst <- (src, lexical(label)).
func (p *Plan) AddFSMArc(src, dst hypergraph.StateID, label symbol.Symbol, cost float64) {
	p.AddArc(dst, []hypergraph.StateID{src, p.AddLexicalState(label)}, cost)
}

// SetStart records the start state; the last call wins.
func (p *Plan) SetStart(s hypergraph.StateID) { p.start = s }

// SetFinal records the final state; the last call wins.
func (p *Plan) SetFinal(s hypergraph.StateID) { p.final = s }
