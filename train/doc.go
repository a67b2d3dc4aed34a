// Package train computes conditional log-likelihood gradients over pairs of
// expectation-weighted hypergraphs. It is the one concurrent package of the
// module.
//
// What:
//
//	Each Pair holds a clamped hypergraph (derivations consistent with a
//	reference) and an unclamped one (all derivations). For a feature f the
//	gradient of -log p(reference) is E_clamped[f] - E_unclamped[f], where the
//	expectations come from the inside sum in the Expectation semiring.
//
// Concurrency:
//
//	Pairs are processed by a bounded errgroup of workers. Workers never share
//	a hypergraph: each pair is read by exactly one worker, and the module's
//	algorithms do no locking of their own. Workers send Update values into a
//	bounded channel drained by a single consumer that owns the gradient map.
//	Closing the channel signals that every producer is done. While the queue
//	is empty the consumer waits on the channel or a backoff timer, whichever
//	fires first.
//
// Observability:
//
//	Gradient opens one span named "train.Gradient" on the configured tracer
//	provider (the global one by default) and, when a prometheus.Registerer is
//	supplied, maintains counters for pairs, updates and idle waits plus a
//	duration histogram.
//
// Errors:
//
//	ErrNoFinal and ErrNoDerivation describe malformed pairs. Context
//	cancellation stops the workers and surfaces ctx.Err().
package train
