package train

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "hyperpath"
	metricsSubsystem = "train"
)

// metrics holds the collectors of one run. A nil *metrics records nothing.
type metrics struct {
	pairs    prometheus.Counter
	updates  prometheus.Counter
	idle     prometheus.Counter
	duration prometheus.Histogram
}

// newMetrics registers the collectors on reg, reusing collectors a previous
// run already registered there. It returns nil when reg is nil.
func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	if reg == nil {
		return nil, nil
	}
	m := &metrics{}
	var err error
	if m.pairs, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubsystem,
		Name:      "pairs_total",
		Help:      "Training pairs processed.",
	})); err != nil {
		return nil, err
	}
	if m.updates, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubsystem,
		Name:      "updates_total",
		Help:      "Gradient updates applied by the consumer.",
	})); err != nil {
		return nil, err
	}
	if m.idle, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubsystem,
		Name:      "consumer_idle_total",
		Help:      "Backoff waits that expired on an empty update queue.",
	})); err != nil {
		return nil, err
	}
	if m.duration, err = register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubsystem,
		Name:      "gradient_duration_seconds",
		Help:      "Wall time of one gradient run.",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
	})); err != nil {
		return nil, err
	}

	return m, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}

	return c, nil
}

func (m *metrics) pair() {
	if m != nil {
		m.pairs.Inc()
	}
}

func (m *metrics) update() {
	if m != nil {
		m.updates.Inc()
	}
}

func (m *metrics) idleWait() {
	if m != nil {
		m.idle.Inc()
	}
}

func (m *metrics) observe(seconds float64) {
	if m != nil {
		m.duration.Observe(seconds)
	}
}
