package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/arcgraph/core"
)

// frame is one pending visit on the traversal stack.
type frame struct {
	node   *core.Node
	parent *core.Node // nil for the root
	depth  int
}

// walker encapsulates mutable DFS state.
type walker struct {
	opts  DFSOptions
	ctx   context.Context
	stack []frame
	res   *DFSResult
}

// DFS runs depth-first traversal on g, applying any number of functional
// Options. The start argument resolves as follows:
//
//   - nil: traversal begins at the first node of g.
//   - *core.Node: that node is used directly.
//   - any other value: the first node whose payload equals start is used;
//     if none matches, the result is empty and the error nil.
//
// Every node mark in g is cleared before walking, and visited nodes stay
// marked afterwards. Returns ErrGraphNil for a nil graph,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func DFS(g *core.Graph, start any, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Size()
	res := &DFSResult{
		Order:  make([]*core.Node, 0, n),
		Depth:  make(map[*core.Node]int, n),
		Parent: make(map[*core.Node]*core.Node, n),
	}
	if n == 0 {
		return res, nil
	}

	// Resolve the start. A single-node graph always yields its only node.
	var root *core.Node
	if n == 1 {
		root = g.First()
	} else {
		root = resolveStart(g, start)
	}
	if root == nil {
		return res, nil
	}

	// Prepare walker over a freshly unmarked graph
	g.ClearMarks()
	w := &walker{
		opts:  o,
		ctx:   o.Ctx,
		stack: make([]frame, 0, n),
		res:   res,
	}

	// Main loop
	return w.res, w.run(root)
}

// resolveStart maps the start argument to a node of g, or nil on a miss.
func resolveStart(g *core.Graph, start any) *core.Node {
	switch s := start.(type) {
	case nil:
		return g.First()
	case *core.Node:
		if s == nil {
			return g.First()
		}
		return s
	default:
		return g.FindNode(start)
	}
}

// run drains the stack until empty, error, or cancellation.
func (w *walker) run(root *core.Node) error {
	w.stack = append(w.stack, frame{node: root})
	for len(w.stack) > 0 {
		// cancellation check (once per frame)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		f := w.pop()
		if f.node.Marked() {
			// the node was reached through an earlier branch
			continue
		}
		if err := w.visit(f); err != nil {
			return err
		}
		if err := w.pushTargets(f); err != nil {
			return err
		}
	}
	return nil
}

// pop removes and returns the newest frame.
func (w *walker) pop() frame {
	f := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	return f
}

// visit marks the node, records depth, parent, and order, and calls OnVisit.
// Marks are the only node state touched; depth and parent live in the result.
func (w *walker) visit(f frame) error {
	n := f.node
	n.SetMarked(true)

	w.res.Depth[n] = f.depth
	if f.parent != nil {
		w.res.Parent[n] = f.parent
	}
	w.res.Order = append(w.res.Order, n)

	if err := w.opts.OnVisit(n, f.depth); err != nil {
		return fmt.Errorf("dfs: OnVisit error at %v: %w", n.Value(), err)
	}
	return nil
}

// pushTargets stacks the unmarked arc targets of f.node, applying
// filtering and MaxDepth. The pushed run is reversed in place so that the
// first arc in insertion order is explored first.
func (w *walker) pushTargets(f frame) error {
	mark := len(w.stack)
	nextDepth := f.depth + 1

	var a *core.Arc
	for a = f.node.ArcHead(); a != nil; a = a.Next() {
		// cancellation check inside arc iteration
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		t := a.Target()
		if t == nil {
			continue
		}
		if !w.opts.FilterArc(f.node, a) {
			continue
		}
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}

		// not yet visited?
		if !t.Marked() {
			w.stack = append(w.stack, frame{node: t, parent: f.node, depth: nextDepth})
		}
	}

	// reverse the run pushed above, so the stack pops it in arc order
	for i, j := mark, len(w.stack)-1; i < j; i, j = i+1, j-1 {
		w.stack[i], w.stack[j] = w.stack[j], w.stack[i]
	}
	return nil
}
