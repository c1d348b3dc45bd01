package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or Path.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrTargetVertexNotFound indicates the destination passed to Path is absent.
	ErrTargetVertexNotFound = errors.New("dfs: target vertex not found")

	// ErrNoPath is returned by Path when the destination is unreachable.
	ErrNoPath = errors.New("dfs: no path")
)

// Option configures DFS.
type Option func(*DFSOptions)

// DFSOptions holds the traversal parameters.
type DFSOptions struct {
	// Ctx is checked before every pop; defaults to context.Background().
	Ctx context.Context

	// StopAt, when non-empty, ends the walk as soon as that vertex is popped.
	StopAt string
}

// DefaultOptions returns a background context and no stop vertex.
func DefaultOptions() DFSOptions {
	return DFSOptions{Ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStopAt ends the walk when id is popped.
func WithStopAt(id string) Option {
	return func(o *DFSOptions) {
		o.StopAt = id
	}
}

// DFSResult is what a walk reached.
type DFSResult struct {
	// Order lists vertices in pop order.
	Order []string

	// Depth is the tree depth at which each vertex was pushed.
	Depth map[string]int

	// Parent maps a vertex to the vertex that pushed it. The start vertex
	// has no entry.
	Parent map[string]string

	// Visited holds every pushed vertex, popped or not.
	Visited map[string]bool

	// Found reports that StopAt was popped.
	Found bool
}
