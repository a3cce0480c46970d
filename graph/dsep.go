package graph

// DSeparated reports whether X and Y are d-separated given Z. It
// implements the Bayes-ball / active-trail algorithm: a BFS over states
// (vertex, direction), where direction tracks whether the trail most
// recently moved against an edge (up, i.e. through a parent) or with one
// (down, through a child).
func (d *DAG) DSeparated(x, y, z []string) bool {
	return !d.activeTrailReaches(x, y, z)
}

type trailState struct {
	vertex int
	up     bool
}

func (d *DAG) activeTrailReaches(x, y, z []string) bool {
	zSet := d.indexSet(z)
	ySet := d.indexSet(y)
	ancestralZ := d.ancestralSet(zSet)

	visited := make(map[trailState]bool)
	var queue []trailState
	for _, name := range x {
		i := d.labels.IndexOf(name)
		if i < 0 {
			continue
		}
		s := trailState{vertex: i, up: true}
		if !visited[s] {
			visited[s] = true
			queue = append(queue, s)
		}
	}

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]

		if ySet[s.vertex] {
			return true
		}

		inZ := zSet[s.vertex]
		if s.up {
			if !inZ {
				for _, p := range d.parentIndices(s.vertex) {
					queue = enqueue(queue, visited, trailState{vertex: p, up: true})
				}
				for _, c := range d.childIndices(s.vertex) {
					queue = enqueue(queue, visited, trailState{vertex: c, up: false})
				}
			}
			continue
		}

		// down state
		if !inZ {
			for _, c := range d.childIndices(s.vertex) {
				queue = enqueue(queue, visited, trailState{vertex: c, up: false})
			}
		}
		if ancestralZ[s.vertex] {
			for _, p := range d.parentIndices(s.vertex) {
				queue = enqueue(queue, visited, trailState{vertex: p, up: true})
			}
		}
	}
	return false
}

func enqueue(queue []trailState, visited map[trailState]bool, s trailState) []trailState {
	if visited[s] {
		return queue
	}
	visited[s] = true
	return append(queue, s)
}

func (d *DAG) indexSet(names []string) map[int]bool {
	out := make(map[int]bool, len(names))
	for _, name := range names {
		if i := d.labels.IndexOf(name); i >= 0 {
			out[i] = true
		}
	}
	return out
}

// ancestralSet returns the vertex indices in seed union the ancestors of
// every vertex in seed.
func (d *DAG) ancestralSet(seed map[int]bool) map[int]bool {
	out := make(map[int]bool, len(seed))
	visited := make([]bool, len(d.adj))
	for i := range seed {
		out[i] = true
		if !visited[i] {
			d.visitParents(i, visited)
		}
	}
	for i, v := range visited {
		if v {
			out[i] = true
		}
	}
	return out
}

func (d *DAG) parentIndices(x int) []int {
	var out []int
	for i := range d.adj {
		if d.adj[i][x] {
			out = append(out, i)
		}
	}
	return out
}

func (d *DAG) childIndices(x int) []int {
	var out []int
	for j, has := range d.adj[x] {
		if has {
			out = append(out, j)
		}
	}
	return out
}
