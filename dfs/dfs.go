// Package dfs implements depth-first search (single-source and forest) on
// any Graph. It supports cancellation, pre- and post-order hooks, a depth
// limit and full-graph traversal.
//
// Complexity:
//
//   - Time:   O(V + E), plus the cost of hooks.
//   - Memory: O(V) for the recursion stack and result slices.
//
// Errors:
//
//   - ErrGraphNil          if g is nil.
//   - ErrSourceOutOfRange  if source is not in [0, V) (single-source mode).
//   - context.Canceled     if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import "fmt"

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph Graph
	opts  Options
	res   *Result
}

// DFS performs depth-first search on g starting at source. With
// WithFullTraversal it continues from every unvisited vertex.
func DFS(g Graph, source int, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if isNil(g) {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: verify source
	n := g.V()
	if !dopts.FullTraversal && (source < 0 || source >= n) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, source, n)
	}

	// 4. Initialize result
	res := &Result{
		Order:   make([]int, 0, n),
		Depth:   make([]int, n),
		Parent:  make([]int, n),
		Visited: make([]bool, n),
	}
	for v := range n {
		res.Depth[v], res.Parent[v] = -1, -1
	}

	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	// 5. Traverse: source first, then the rest of the forest if requested
	if source >= 0 && source < n {
		if err := walker.traverse(source, 0); err != nil {
			return res, err
		}
	}
	if dopts.FullTraversal {
		for v := range n {
			if !res.Visited[v] {
				if err := walker.traverse(v, 0); err != nil {
					return res, err
				}
			}
		}
	}

	return res, nil
}

// traverse visits v at the given depth and recurses into unvisited neighbours.
func (w *dfsWalker) traverse(v, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Mark visited and record depth
	w.res.Visited[v] = true
	w.res.Depth[v] = depth

	// 3. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	// 4. Explore neighbours, stopping at the depth limit
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		for _, x := range w.graph.Adj(v) {
			if x < 0 || x >= len(w.res.Visited) || w.res.Visited[x] {
				continue
			}
			w.res.Parent[x] = v
			if err := w.traverse(x, depth+1); err != nil {
				return err
			}
		}
	}

	// 5. Post-order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %d: %w", v, err)
		}
	}

	// 6. Record finish order
	w.res.Order = append(w.res.Order, v)

	return nil
}
