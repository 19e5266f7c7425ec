package dfs

// OrderResult holds the three classic depth-first vertex orders of a graph.
type OrderResult struct {
	Pre         []int // discovery order
	Post        []int // finish order
	ReversePost []int // Post reversed; a topological order when the graph is a DAG
}

// Order runs a full depth-first traversal, roots taken in ascending vertex
// order and neighbours in Adj order, recording pre-, post- and reverse
// post-order.
func Order(g Graph) (*OrderResult, error) {
	if isNil(g) {
		return nil, ErrGraphNil
	}

	n := g.V()
	res := &OrderResult{
		Pre:  make([]int, 0, n),
		Post: make([]int, 0, n),
	}
	marked := make([]bool, n)

	var visit func(v int)
	visit = func(v int) {
		marked[v] = true
		res.Pre = append(res.Pre, v)
		for _, w := range g.Adj(v) {
			if w >= 0 && w < n && !marked[w] {
				visit(w)
			}
		}
		res.Post = append(res.Post, v)
	}
	for v := range n {
		if !marked[v] {
			visit(v)
		}
	}

	res.ReversePost = make([]int, n)
	for i, v := range res.Post {
		res.ReversePost[n-1-i] = v
	}

	return res, nil
}
