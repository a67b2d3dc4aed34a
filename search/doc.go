// Package search runs a lazy best-first search over an implicit automaton.
//
// What:
//
//	The automaton is described by three callbacks (Start, IsFinal, Expand),
//	so the state space is never materialised. Search pops states in order of
//	priority = cost-so-far + heuristic and stops at the first final state.
//
// Laziness:
//
//	Expand is expected to return transitions sorted by weight. When a state is
//	popped only its cheapest transition is followed; the rest stay behind a
//	single continuation entry whose priority bounds every remaining arrival
//	from below: the next transition's cost, raised to cost-so-far +
//	heuristic of the popped state when a heuristic is set, minus a slack
//	margin. A positive slack tolerates transitions that are
//	nearly, but not exactly, sorted. WithFullyExpand follows every transition
//	at once, for automata that are not sorted at all.
//
// Correctness:
//
//	With sorted transitions and an admissible, consistent heuristic the first
//	final state popped is optimal. Each state is settled at most once, so the
//	search terminates on finite automata even when they contain cycles.
//
// Complexity:
//
//	O((V + E) log(V + E)) with a binary heap, where V and E count the states
//	and transitions actually touched.
//
// Errors:
//
//	ErrPopLimit when WithMaxPops is exceeded. Finding no final state is not
//	an error: Search returns ok=false.
package search
