package compare

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/netroute/core"
	"github.com/katalvlaran/netroute/internal/ctxlog"
	"github.com/katalvlaran/netroute/routing"
)

// Compare runs every kind in kinds between src and dst on g and collects
// cost, hop count and wall-clock time for each.
//
// The query is rejected before any algorithm starts when an endpoint is
// missing (ErrInvalidEndpoints), when src == dst (ErrDegenerateQuery) or
// when kinds is empty (ErrNoAlgorithms). Repeated kinds run once.
//
// A failing algorithm never stops the others: its Result carries
// StatusFailed and the error. If ctx itself is cancelled, Compare returns
// ctx.Err().
//
// Compare works on a private Clone of g taken once on entry, so every
// algorithm sees the same graph even while g is being edited.
func Compare(ctx context.Context, g *core.Graph, src, dst string, kinds []routing.Kind, opts ...Option) (*Report, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.logger
	if log == nil {
		log = ctxlog.FromContext(ctx)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	g = g.Clone()
	if !g.HasVertex(src) || !g.HasVertex(dst) {
		return nil, fmt.Errorf("%w: %q→%q", ErrInvalidEndpoints, src, dst)
	}
	if src == dst {
		return nil, fmt.Errorf("%w: %q", ErrDegenerateQuery, src)
	}
	order, err := dedupe(kinds)
	if err != nil {
		return nil, err
	}

	stats := g.Stats()
	rep := &Report{
		ID:          uuid.New(),
		Source:      src,
		Destination: dst,
		StartedAt:   time.Now(),
		Order:       order,
		Results:     make(map[routing.Kind]*Result, len(order)),
		NodeCount:   stats.Vertices,
		EdgeCount:   stats.Edges,
		Density:     stats.Density,
		Connected:   stats.Connected,
	}
	log = log.With("report", rep.ID.String())
	log.Debug("Comparison started.", "source", src, "destination", dst,
		"algorithms", len(order), "parallel", cfg.parallel)

	results := make([]*Result, len(order))
	if cfg.parallel {
		var eg errgroup.Group
		eg.SetLimit(cfg.limit)
		for i, k := range order {
			i, k := i, k
			eg.Go(func() error {
				results[i] = runOne(ctx, cfg, g, k, src, dst)
				return nil
			})
		}
		_ = eg.Wait()
	} else {
		for i, k := range order {
			results[i] = runOne(ctx, cfg, g, k, src, dst)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, res := range results {
		rep.Results[res.Kind] = res
		log.Debug("Algorithm finished.", "algorithm", res.Kind.String(), "status", res.Status.String(),
			"cost", res.Cost, "hops", res.Hops, "elapsed", res.Elapsed)
		if res.Status == StatusFailed || res.Status == StatusTimedOut {
			log.Warn("Algorithm did not complete.", "algorithm", res.Kind.String(), "error", res.Err)
		}
	}
	rank(rep, results)
	rep.Elapsed = time.Since(rep.StartedAt)

	log.Info("Comparison complete.", "found", len(rep.Ranking), "of", len(order), "elapsed", rep.Elapsed)

	return rep, nil
}

// dedupe drops repeated kinds, keeping first occurrences, and rejects
// empty or invalid input.
func dedupe(kinds []routing.Kind) ([]routing.Kind, error) {
	if len(kinds) == 0 {
		return nil, ErrNoAlgorithms
	}
	seen := make(map[routing.Kind]bool, len(kinds))
	out := make([]routing.Kind, 0, len(kinds))
	for _, k := range kinds {
		if !k.Valid() {
			return nil, fmt.Errorf("compare: %w: %d", routing.ErrUnknownKind, int(k))
		}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}

	return out, nil
}

// runOne measures a single algorithm and classifies its outcome.
func runOne(ctx context.Context, cfg options, g *core.Graph, k routing.Kind, src, dst string) *Result {
	rctx := ctx
	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		rctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	res := &Result{Kind: k}
	start := time.Now()
	path, err := routing.Find(rctx, k, g, src, dst, routing.WithCoordinates(cfg.coordinates))
	res.Elapsed = time.Since(start)

	switch {
	case err == nil:
		cost, cerr := path.Cost(g)
		if cerr != nil {
			res.Status, res.Err = StatusFailed, cerr
			return res
		}
		res.Status = StatusFound
		res.Path, res.Cost, res.Hops = path, cost, path.Hops()
	case errors.Is(err, routing.ErrNoPath):
		res.Status = StatusNoPath
	case errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil:
		res.Status, res.Err = StatusTimedOut, err
	default:
		res.Status, res.Err = StatusFailed, err
	}

	return res
}

// rank fills Ranking and Efficiency from the results in requested order.
func rank(rep *Report, results []*Result) {
	var found []*Result
	for _, res := range results {
		if res.Status == StatusFound {
			found = append(found, res)
		}
	}
	slices.SortStableFunc(found, func(a, b *Result) int { return cmp.Compare(a.Cost, b.Cost) })

	rep.Ranking = make([]routing.Kind, len(found))
	for i, res := range found {
		rep.Ranking[i] = res.Kind
	}
	if len(found) == 0 {
		return
	}
	best := found[0].Cost
	for _, res := range found {
		switch {
		case res.Cost > 0:
			res.Efficiency = float64(best) / float64(res.Cost)
		case res.Cost == best:
			res.Efficiency = 1
		}
	}
}
