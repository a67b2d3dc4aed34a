// Package builder assembles deterministic hypergraph fixtures for tests,
// examples and benchmarks.
//
// Constructors (Chain, Lattice, Chart, RandomDAG) record states and
// arcs into a weight-agnostic Plan. Build applies them in order and then
// materialises the plan as a hypergraph over any weight type, converting
// every float cost through a caller-supplied lift function:
//
//	lift := func(c float64) weight.Viterbi { return weight.Viterbi(c) }
//	g, err := builder.Build(lift, nil, builder.Chart(4))
//
// Components:
//
//   - Option: functional options resolved into an immutable config.
//   - CostFn: per-arc cost generators (ConstantCost, UniformCost, IndexCost).
//   - Plan:   the recording surface constructors write to.
//
// Guarantees:
//
//   - Determinism: equal options, seed and constructor order give identical
//     hypergraphs, state ids and arc ids included.
//   - Constructors validate their parameters and return sentinel errors;
//     only option constructors panic, and only on nil arguments.
//   - Fixtures produced by Chain, Lattice and Chart are sorted
//     (every non-lexical tail precedes its head) and acyclic.
package builder
