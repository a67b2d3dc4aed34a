// Package hyperpath is a weighted hypergraph engine: semiring weights, an
// arc/state data model with pluggable adjacency, and the algorithms that
// decoders and parsers run over it.
//
// What is in the box?
//
//	symbol/     - tagged label ids and the Vocabulary contract
//	weight/     - semirings: Viterbi, Log, Bool, Feature, Expectation,
//	              Tuple1..Tuple3, Token and Ngram
//	hypergraph/ - arena-backed states and hyperarcs, lazy property bits,
//	              native or side-index adjacency, Restrict/Trim/Permute
//	sortstates/ - topological state ordering with lexical partitioning
//	distance/   - all-pairs shortest distance (generic and DAG sweep)
//	bestpath/   - Knuth's generalised Dijkstra, inside/outside scores
//	prune/      - single-best and beam pruning
//	kbest/      - lazy k-best derivation forest
//	search/     - lazy best-first search over implicit automata
//	train/      - concurrent expectation-semiring gradients
//	builder/    - deterministic hypergraph fixtures
//
// Concurrency
//
//	Every package except train is single-threaded and synchronous and does
//	no locking. Callers that share work across goroutines must give each
//	goroutine its own hypergraph, which is exactly what train does.
//
// Errors
//
//	Structural errors are sentinels exported by hypergraph (ErrCycle,
//	ErrBounds, ErrNotGraph, ...) and wrapped by the algorithm packages, so
//	errors.Is works across package boundaries. A query that finds nothing
//	reports ok=false rather than an error.
package hyperpath
