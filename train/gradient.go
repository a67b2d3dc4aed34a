package train

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hyperpath/bestpath"
	"github.com/katalvlaran/hyperpath/hypergraph"
	"github.com/katalvlaran/hyperpath/weight"
)

const tracerName = "github.com/katalvlaran/hyperpath/train"

// Gradient sums the per-pair gradients and losses of pairs. Each pair's
// hypergraphs must not be touched by the caller until Gradient returns.
func Gradient(ctx context.Context, pairs []Pair, options ...Option) (*Result, error) {
	opts := DefaultOptions()
	for _, opt := range options {
		opt(&opts)
	}
	if err := validate(opts); err != nil {
		return nil, err
	}
	tp := opts.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	ctx, span := tp.Tracer(tracerName).Start(ctx, "train.Gradient",
		trace.WithAttributes(
			attribute.Int("pairs", len(pairs)),
			attribute.Int("workers", opts.Workers),
		),
	)
	defer span.End()

	m, err := newMetrics(opts.Registerer)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("train: register metrics: %w", err)
	}
	began := time.Now()

	res, err := run(ctx, pairs, opts, m)
	m.observe(time.Since(began).Seconds())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		opts.Logger.Debug("train: failed", "pairs", len(pairs), "err", err)
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("updates", res.Updates),
		attribute.Int("features", len(res.Grad)),
		attribute.Float64("loss", res.Loss),
	)
	span.SetStatus(codes.Ok, "")
	opts.Logger.Debug("train: done",
		"pairs", len(pairs), "updates", res.Updates, "features", len(res.Grad), "loss", res.Loss)

	return res, nil
}

func validate(opts Options) error {
	switch {
	case opts.Workers < 1:
		return fmt.Errorf("%w: workers %d", ErrBadOption, opts.Workers)
	case opts.QueueSize < 0:
		return fmt.Errorf("%w: queue size %d", ErrBadOption, opts.QueueSize)
	case opts.Backoff <= 0:
		return fmt.Errorf("%w: backoff %v", ErrBadOption, opts.Backoff)
	}

	return nil
}

// run fans pairs out to the workers and folds their updates in the calling
// goroutine.
func run(ctx context.Context, pairs []Pair, opts Options, m *metrics) (*Result, error) {
	updates := make(chan Update, opts.QueueSize)
	losses := make([]float64, len(pairs))

	// 1. Producers: one errgroup task per pair, at most Workers at a time
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	var waitErr error
	go func() {
		for i := range pairs {
			g.Go(func() error {
				return produce(gctx, i, pairs[i], updates, &losses[i], m)
			})
		}
		waitErr = g.Wait()
		close(updates)
	}()

	// 2. Single consumer owns the gradient map
	res := &Result{Grad: make(map[weight.FeatureID]float64)}
	apply := func(u Update) {
		res.Grad[u.Feature] += u.Delta
		res.Updates++
		m.update()
	}
	timer := time.NewTimer(opts.Backoff)
	defer timer.Stop()
loop:
	for {
		select {
		case u, ok := <-updates:
			if !ok {
				break loop
			}
			apply(u)
			continue
		default:
		}

		// 3. Queue momentarily empty: wait for an update or the backoff
		timer.Reset(opts.Backoff)
		select {
		case u, ok := <-updates:
			if !ok {
				break loop
			}
			apply(u)
		case <-timer.C:
			m.idleWait()
		}
	}

	// close(updates) happens after waitErr is written
	if waitErr != nil {
		return nil, waitErr
	}
	for _, l := range losses {
		res.Loss += l
	}

	return res, nil
}

// produce computes one pair and sends its updates in feature order.
func produce(ctx context.Context, i int, p Pair, out chan<- Update, loss *float64, m *metrics) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l, grad, err := PairGradient(p)
	if err != nil {
		return fmt.Errorf("pair %d: %w", i, err)
	}
	*loss = l
	m.pair()

	ids := make([]weight.FeatureID, 0, len(grad))
	for id := range grad {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		select {
		case out <- Update{Feature: id, Delta: grad[id]}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return nil
}

// PairGradient returns the loss -log p(reference) of one pair and, per
// feature, E_clamped[f] - E_unclamped[f]. Features absent from both sides
// are omitted.
func PairGradient(p Pair) (float64, map[weight.FeatureID]float64, error) {
	clamped, err := root(p.Clamped)
	if err != nil {
		return 0, nil, fmt.Errorf("clamped: %w", err)
	}
	if clamped.IsZero() {
		return 0, nil, ErrNoDerivation
	}
	all, err := root(p.Unclamped)
	if err != nil {
		return 0, nil, fmt.Errorf("unclamped: %w", err)
	}

	grad := clamped.Expectations()
	for id, v := range all.Expectations() {
		grad[id] -= v
	}

	return clamped.Value() - all.Value(), grad, nil
}

// root returns the inside sum of hg's final state.
func root(hg *hypergraph.Hypergraph[weight.Expectation]) (weight.Expectation, error) {
	if hg == nil || hg.Final() == hypergraph.NoState {
		return weight.Expectation{}, ErrNoFinal
	}
	inside, err := bestpath.InsideSum(hg)
	if err != nil {
		return weight.Expectation{}, err
	}

	return inside[hg.Final()], nil
}
