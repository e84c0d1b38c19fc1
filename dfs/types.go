package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/arcgraph/core"
)

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures DFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when DFS is invoked.
type Option func(*DFSOptions)

// DFSOptions holds parameters and callbacks to customize DFS execution.
type DFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a node is visited, in pre-order.
	// Receives the node and its depth from the start. If it returns an
	// error, DFS aborts and propagates that error.
	OnVisit func(n *core.Node, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterArc can skip arcs by returning false.
	// Called for each outgoing arc of from.
	FilterArc func(from *core.Node, a *core.Arc) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a DFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all arcs followed)
//   - no-op OnVisit hook
//   - error channel clear.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:       context.Background(),
		OnVisit:   func(*core.Node, int) error { return nil },
		MaxDepth:  0,
		FilterArc: func(*core.Node, *core.Arc) bool { return true },
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on each visit; returning an
// error from this callback stops the DFS.
func WithOnVisit(fn func(n *core.Node, depth int) error) Option {
	return func(o *DFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the traversal at the given depth (exclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *DFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterArc skips arcs when fn returns false.
func WithFilterArc(fn func(from *core.Node, a *core.Arc) bool) Option {
	return func(o *DFSOptions) {
		if fn != nil {
			o.FilterArc = fn
		}
	}
}

// DFSResult holds the outcome of a DFS traversal:
//   - Order: nodes visited, in pre-order sequence.
//   - Depth: map from node to its distance (in arcs) from the start.
//   - Parent: map from node to its predecessor in the DFS tree.
type DFSResult struct {
	Order  []*core.Node
	Depth  map[*core.Node]int
	Parent map[*core.Node]*core.Node
}
