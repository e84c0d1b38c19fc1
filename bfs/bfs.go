package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/arcgraph/core"
)

// queueItem pairs a node with its BFS depth and its parent.
type queueItem struct {
	node   *core.Node
	depth  int
	parent *core.Node // nil for the root
}

// walker encapsulates mutable BFS state.
type walker struct {
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first traversal on g, applying any number of
// functional Options. The start argument resolves as follows:
//
//   - nil: traversal begins at the first node of g.
//   - *core.Node: that node is used directly.
//   - any other value: the first node whose payload equals start is used;
//     if none matches, the result is empty and the error nil.
//
// Every node mark in g is cleared before walking, and visited nodes stay
// marked afterwards. Returns ErrGraphNil for a nil graph,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(g *core.Graph, start any, opts ...Option) (*BFSResult, error) {
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
	res := &BFSResult{
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
		queue: make([]queueItem, 0, n),
		res:   res,
	}

	// Seed queue with the root (no parent)
	w.enqueue(root, 0, nil)
	// Main loop
	return w.res, w.loop()
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

// enqueue marks n visited at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue. Marks are the only node state touched; depth
// and parent live in the result.
func (w *walker) enqueue(n *core.Node, d int, parent *core.Node) {
	n.SetMarked(true)
	w.res.Depth[n] = d
	if parent != nil {
		w.res.Parent[n] = parent
	}
	w.opts.OnEnqueue(n, d)
	w.queue = append(w.queue, queueItem{node: n, depth: d, parent: parent})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueTargets(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.node, item.depth)
	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.node)
	if err := w.opts.OnVisit(item.node, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.node.Value(), err)
	}
	return nil
}

// enqueueTargets walks the arc list of item.node in insertion order,
// applies filtering and MaxDepth, and enqueues each unmarked target.
func (w *walker) enqueueTargets(item queueItem) error {
	nextDepth := item.depth + 1
	var a *core.Arc
	for a = item.node.ArcHead(); a != nil; a = a.Next() {
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
		if !w.opts.FilterArc(item.node, a) {
			continue
		}
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}

		// first time seen?
		if !t.Marked() {
			w.enqueue(t, nextDepth, item.node)
		}
	}
	return nil
}
