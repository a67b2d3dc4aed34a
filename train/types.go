package train

import (
	"errors"
	"log/slog"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/hyperpath/hypergraph"
	"github.com/katalvlaran/hyperpath/weight"
)

var (
	// ErrNoFinal indicates a hypergraph without a final state.
	ErrNoFinal = errors.New("train: hypergraph has no final state")

	// ErrNoDerivation indicates a clamped hypergraph whose final state is
	// underivable, so the reference has probability zero.
	ErrNoDerivation = errors.New("train: clamped hypergraph derives nothing")

	// ErrBadOption indicates an invalid option value.
	ErrBadOption = errors.New("train: invalid option")
)

// Pair is one training example.
type Pair struct {
	// Clamped holds only the derivations consistent with the reference.
	Clamped *hypergraph.Hypergraph[weight.Expectation]
	// Unclamped holds every derivation of the input.
	Unclamped *hypergraph.Hypergraph[weight.Expectation]
}

// Update is one gradient contribution sent from a worker to the consumer.
type Update struct {
	Feature weight.FeatureID
	Delta   float64
}

// Result is the outcome of Gradient.
type Result struct {
	// Grad maps each feature to the summed gradient over all pairs.
	Grad map[weight.FeatureID]float64
	// Loss is the summed negative log-likelihood of the references.
	Loss float64
	// Updates counts the Update values the consumer applied.
	Updates int
}

// Options configures Gradient.
//
// Workers        – concurrent pair workers. Default runtime.GOMAXPROCS(0).
// QueueSize      – capacity of the update channel. Default 64.
// Backoff        – how long the consumer waits on an empty queue before it
// records an idle wait and tries again. Default 1ms.
// Registerer     – receives the metric collectors; nil disables metrics.
// TracerProvider – source of the run span. Default otel.GetTracerProvider().
// Logger         – receives one summary record per run. Default discards.
type Options struct {
	Workers        int
	QueueSize      int
	Backoff        time.Duration
	Registerer     prometheus.Registerer
	TracerProvider trace.TracerProvider
	Logger         *slog.Logger
}

// Option configures Gradient.
type Option func(*Options)

// DefaultOptions returns the defaults documented on Options.
func DefaultOptions() Options {
	return Options{
		Workers:   runtime.GOMAXPROCS(0),
		QueueSize: 64,
		Backoff:   time.Millisecond,
		Logger:    slog.New(slog.DiscardHandler),
	}
}

// WithWorkers sets the worker count. Values below 1 are rejected by Gradient.
func WithWorkers(n int) Option { return func(o *Options) { o.Workers = n } }

// WithQueueSize sets the update channel capacity. Negative values are rejected.
func WithQueueSize(n int) Option { return func(o *Options) { o.QueueSize = n } }

// WithBackoff sets the consumer's idle wait. Non-positive values are rejected.
func WithBackoff(d time.Duration) Option { return func(o *Options) { o.Backoff = d } }

// WithRegisterer enables metrics on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *Options) { o.Registerer = reg }
}

// WithTracerProvider sets the span source. A nil provider has no effect.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) {
		if tp != nil {
			o.TracerProvider = tp
		}
	}
}

// WithLogger routes diagnostics to l. A nil logger has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
