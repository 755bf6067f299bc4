package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Unset marks an unconfigured Source or Destination and an absent
// predecessor in the slices returned by Dijkstra.
const Unset = -1

// Inf is the distance reported for unreachable vertices. It is also the
// default wall: an edge of weight Inf is never traversed, and a walk whose
// total would reach Inf counts as no walk at all. The heaviest usable edge
// weight is therefore Inf-1.
const Inf int64 = math.MaxInt64

// Sentinel errors returned by Dijkstra and Errand.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or destination is unset
	// or outside the graph's vertex range.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNoPath indicates that no walk from source to destination visits a
	// first-set vertex and then a second-set vertex.
	ErrNoPath = errors.New("dijkstra: no walk satisfies the stop order")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or
	// a negative value, which would wall off every edge.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures Dijkstra and Errand.
//
// Source           – starting vertex (required).
// Destination      – target vertex (required by Errand, ignored by Dijkstra).
// FirstStops       – set A; the walk must visit one of these first.
// SecondStops      – set B; visited after A, before arriving.
// ReturnPath       – Dijkstra only: also return the predecessor slice.
// MaxDistance      – cap on explored distances. Default Inf.
// InfEdgeThreshold – edges with weight ≥ threshold are impassable. Default Inf.
// Ctx              – cancellation, checked once per heap extraction.
type Options struct {
	Source           int
	Destination      int
	FirstStops       []int
	SecondStops      []int
	ReturnPath       bool
	MaxDistance      int64
	InfEdgeThreshold int64
	Ctx              context.Context
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns Options with Source and Destination unset, no
// stops, no caps and a background context.
func DefaultOptions() Options {
	return Options{
		Source:           Unset,
		Destination:      Unset,
		ReturnPath:       false,
		MaxDistance:      Inf,
		InfEdgeThreshold: Inf,
		Ctx:              context.Background(),
	}
}

// Source sets the starting vertex.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// Destination sets the target vertex of an errand.
func Destination(v int) Option {
	return func(o *Options) {
		o.Destination = v
	}
}

// WithFirstStops sets the first stop set (A). The slice is copied.
func WithFirstStops(ids ...int) Option {
	return func(o *Options) {
		o.FirstStops = append([]int(nil), ids...)
	}
}

// WithSecondStops sets the second stop set (B). The slice is copied.
func WithSecondStops(ids ...int) Option {
	return func(o *Options) {
		o.SecondStops = append([]int(nil), ids...)
	}
}

// Via sets both stop sets at once.
func Via(first, second []int) Option {
	return func(o *Options) {
		WithFirstStops(first...)(o)
		WithSecondStops(second...)(o)
	}
}

// WithReturnPath makes Dijkstra return the predecessor slice.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance stops exploring once the nearest open vertex is farther
// than max. Panics with ErrBadMaxDistance on a negative value.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(fmt.Errorf("%w: got %d", ErrBadMaxDistance, max))
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats every edge with weight ≥ threshold as a
// wall. Without it the threshold is Inf, so only edges of weight
// math.MaxInt64 are walls. Transition arcs of an errand weigh zero and are
// never walled off.
// Panics with ErrBadInfThreshold when threshold ≤ 0.
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(fmt.Errorf("%w: got %d", ErrBadInfThreshold, threshold))
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// buildOptions applies opts over DefaultOptions.
func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	return cfg
}

// relaxed returns d+w, or Inf when the sum would overflow.
func relaxed(d, w int64) int64 {
	if w > Inf-d {
		return Inf
	}

	return d + w
}
