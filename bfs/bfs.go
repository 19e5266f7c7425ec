// Package bfs provides multi-source breadth-first search over dense integer
// graphs, returning unweighted shortest-path distances, parent links and
// visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/regraph/container"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph Graph
	opts  Options
	ctx   context.Context
	queue *container.Queue[int]
	res   *Result
}

// BFS runs breadth-first search on g from every vertex in sources at once,
// applying any number of functional Options.
// Returns ErrGraphNil, ErrSourceOutOfRange, ErrOptionViolation, a context
// error, or any user-supplied hook error.
func BFS(g Graph, sources []int, opts ...Option) (*Result, error) {
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

	// Validate sources
	n := g.V()
	for _, s := range sources {
		if s < 0 || s >= n {
			return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, s, n)
		}
	}

	// Prepare walker
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: container.NewQueue(container.WithCapacity[int](max(len(sources), 1))),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	defer w.queue.Release()
	for v := range n {
		w.res.Depth[v], w.res.Parent[v] = -1, -1
	}

	// Seed queue with every source (no parent)
	for _, s := range sources {
		if w.res.Depth[s] < 0 {
			if err := w.enqueue(s, 0, -1); err != nil {
				return w.res, err
			}
		}
	}

	return w.res, w.loop()
}

// enqueue records v at depth d under parent and queues it.
func (w *walker) enqueue(v, d, parent int) error {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.opts.OnEnqueue(v, d)
	if err := w.queue.Enqueue(v); err != nil {
		return fmt.Errorf("bfs: enqueue %d: %w", v, err)
	}

	return nil
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.queue.Len() > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		v, err := w.queue.Dequeue()
		if err != nil {
			return err
		}
		if err = w.visit(v); err != nil {
			return err
		}
		if err = w.enqueueNeighbors(v); err != nil {
			return err
		}
	}

	return nil
}

// visit records v in Order and calls OnVisit.
func (w *walker) visit(v int) error {
	w.res.Order = append(w.res.Order, v)
	if err := w.opts.OnVisit(v, w.res.Depth[v]); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues each
// unseen neighbour.
func (w *walker) enqueueNeighbors(v int) error {
	next := w.res.Depth[v] + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, x := range w.graph.Adj(v) {
		if x < 0 || x >= len(w.res.Depth) || w.res.Depth[x] >= 0 {
			continue
		}
		if !w.opts.FilterNeighbor(v, x) {
			continue
		}
		if err := w.enqueue(x, next, v); err != nil {
			return err
		}
	}

	return nil
}
