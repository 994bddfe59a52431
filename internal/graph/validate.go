package graph

// Validate runs explicit cycle detection over the active-edge set,
// ignoring the rank invariant that makes cycles impossible by
// construction. It returns true when the graph is acyclic.
//
// Generation never calls this; it exists so tests can verify the
// invariant independently of the mechanism that enforces it.
func (t *Topology) Validate() bool {
	adj := make([][]int, NumNodes)
	indeg := make([]int, NumNodes)
	for _, e := range t.edges {
		if !e.Active {
			continue
		}
		adj[e.From] = append(adj[e.From], e.To)
		indeg[e.To]++
	}

	// Kahn's algorithm: all nodes drain iff there is no cycle.
	queue := make([]int, 0, NumNodes)
	for id := 0; id < NumNodes; id++ {
		if indeg[id] == 0 {
			queue = append(queue, id)
		}
	}
	seen := 0
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		seen++
		for _, v := range adj[u] {
			indeg[v]--
			if indeg[v] == 0 {
				queue = append(queue, v)
			}
		}
	}
	return seen == NumNodes
}
