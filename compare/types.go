package compare

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/netroute/routing"
)

// Sentinel errors returned by Compare before any algorithm runs.
var (
	// ErrInvalidEndpoints is returned when the source or destination is not in the graph.
	ErrInvalidEndpoints = errors.New("compare: source or destination not in graph")

	// ErrDegenerateQuery is returned when source and destination are the same vertex.
	ErrDegenerateQuery = errors.New("compare: source equals destination")

	// ErrNoAlgorithms is returned for an empty kind set.
	ErrNoAlgorithms = errors.New("compare: no algorithms requested")

	// ErrNilGraph is returned for a nil graph.
	ErrNilGraph = errors.New("compare: graph is nil")
)

// Status is the outcome class of one algorithm run.
type Status int

const (
	StatusFound Status = iota
	StatusNoPath
	StatusFailed
	StatusTimedOut
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNoPath:
		return "no path"
	case StatusFailed:
		return "failed"
	case StatusTimedOut:
		return "timed out"
	default:
		return "unknown"
	}
}

// Result is the measurement of one algorithm. Path is nil and Cost, Hops
// and Efficiency are zero unless Status is StatusFound.
type Result struct {
	Kind    routing.Kind
	Status  Status
	Path    routing.Path
	Cost    int64
	Hops    int
	Elapsed time.Duration
	Err     error // set for StatusFailed and StatusTimedOut

	// Efficiency is the best cost in the report divided by Cost.
	Efficiency float64
}

// Report aggregates one comparison run.
type Report struct {
	ID          uuid.UUID
	Source      string
	Destination string
	StartedAt   time.Time
	Elapsed     time.Duration

	// Order is the requested kind order with duplicates removed.
	Order   []routing.Kind
	Results map[routing.Kind]*Result

	NodeCount int
	EdgeCount int
	Density   float64
	Connected bool

	// Ranking lists the kinds that found a path by ascending cost; ties
	// keep the requested order.
	Ranking []routing.Kind
}

// Result returns the result for k.
func (r *Report) Result(k routing.Kind) (*Result, bool) {
	res, ok := r.Results[k]

	return res, ok
}

// Best returns the cheapest found result.
func (r *Report) Best() (*Result, bool) {
	if len(r.Ranking) == 0 {
		return nil, false
	}

	return r.Results[r.Ranking[0]], true
}

// Option configures Compare.
type Option func(*options)

type options struct {
	parallel    bool
	limit       int
	timeout     time.Duration
	coordinates func(id string) (x, y float64, ok bool)
	logger      *slog.Logger
}

func defaultOptions() options {
	return options{parallel: true, limit: -1}
}

// WithParallel runs the algorithms concurrently when on (the default) and
// one after another in requested order when off.
func WithParallel(on bool) Option {
	return func(o *options) { o.parallel = on }
}

// WithConcurrencyLimit caps the number of algorithms running at once in
// parallel mode. n <= 0 means no cap.
func WithConcurrencyLimit(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = -1
		}
		o.limit = n
	}
}

// WithTimeout bounds each algorithm separately. An algorithm that runs out
// of time is reported as StatusTimedOut. d <= 0 disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithCoordinates supplies vertex positions for the A* heuristic.
func WithCoordinates(lookup func(id string) (x, y float64, ok bool)) Option {
	return func(o *options) { o.coordinates = lookup }
}

// WithLogger overrides the logger taken from the context.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}
