package dfs

// FindCycle returns one directed cycle of g, if any. The cycle is reported
// as a closed walk whose first and last vertex coincide, e.g. [3 4 5 3].
// A self-loop on v is reported as [v v].
//
// Complexity: O(V + E) time, O(V) memory.
func FindCycle(g Graph) ([]int, bool) {
	if isNil(g) {
		return nil, false
	}

	n := g.V()
	state := make([]int, n)
	edgeTo := make([]int, n)
	var cycle []int

	var visit func(v int) bool
	visit = func(v int) bool {
		state[v] = Gray
		for _, w := range g.Adj(v) {
			if w < 0 || w >= n {
				continue
			}
			switch state[w] {
			case White:
				edgeTo[w] = v
				if visit(w) {
					return true
				}
			case Gray:
				// back edge v->w closes a cycle through the current path
				for x := v; x != w; x = edgeTo[x] {
					cycle = append(cycle, x)
				}
				cycle = append(cycle, w)
				reverse(cycle)
				cycle = append(cycle, w)

				return true
			}
		}
		state[v] = Black

		return false
	}

	for v := range n {
		if state[v] == White && visit(v) {
			return cycle, true
		}
	}

	return nil, false
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
