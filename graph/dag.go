// Package graph implements the directed graph model used throughout the
// estimation and structure-learning layers: a dense boolean adjacency
// matrix over a sorted label set, topological order via Kahn's algorithm,
// d-separation and the backdoor criterion. Edges are added through the
// cycle-checked AddEdge and removed through DelEdge, over a dense
// adjacency matrix rather than a
// map-of-maps representation, so repeated separation and backdoor
// queries over a fixed vertex set get O(1) edge lookups.
package graph

import (
	"sort"

	"github.com/johnpierman/pgmgo/containers"
)

// DAG is a directed graph over a fixed, sorted label set, represented as
// a |V|x|V| adjacency matrix.
type DAG struct {
	labels containers.Labels
	adj    [][]bool
}

// Empty builds a DAG with no edges over the given labels.
func Empty(labels containers.Labels) *DAG {
	n := labels.Len()
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	return &DAG{labels: labels, adj: adj}
}

// Complete builds a DAG with an edge i->j for every i<j in label order —
// already acyclic by construction, and the conventional starting point
// for CTPC structure learning.
func Complete(labels containers.Labels) *DAG {
	d := Empty(labels)
	n := labels.Len()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d.adj[i][j] = true
		}
	}
	return d
}

// FromAdjacencyMatrix builds a DAG from a pre-built adjacency matrix,
// validating shape and acyclicity.
func FromAdjacencyMatrix(labels containers.Labels, adj [][]bool) (*DAG, error) {
	n := labels.Len()
	if len(adj) != n {
		return nil, containers.ErrShape("adjacency matrix has %d rows, expected %d", len(adj), n)
	}
	out := make([][]bool, n)
	for i, row := range adj {
		if len(row) != n {
			return nil, containers.ErrShape("adjacency matrix row %d has %d columns, expected %d", i, len(row), n)
		}
		out[i] = append([]bool(nil), row...)
	}
	d := &DAG{labels: labels, adj: out}
	if _, ok := d.TopologicalOrder(); !ok {
		return nil, containers.ErrCycle("adjacency matrix contains a cycle")
	}
	return d, nil
}

// ToAdjacencyMatrix returns a copy of the adjacency matrix.
func (d *DAG) ToAdjacencyMatrix() [][]bool {
	out := make([][]bool, len(d.adj))
	for i, row := range d.adj {
		out[i] = append([]bool(nil), row...)
	}
	return out
}

// Labels returns the sorted label set backing this graph.
func (d *DAG) Labels() containers.Labels { return d.labels }

// Vertices returns the sorted vertex names.
func (d *DAG) Vertices() []string { return d.labels.Names() }

// HasEdge reports whether there is an edge from -> to.
func (d *DAG) HasEdge(from, to string) bool {
	i, j := d.labels.IndexOf(from), d.labels.IndexOf(to)
	if i < 0 || j < 0 {
		return false
	}
	return d.adj[i][j]
}

// AddEdge adds the edge from -> to, returning whether the graph changed
// and an error if the edge would close a cycle or reference an unknown
// vertex.
func (d *DAG) AddEdge(from, to string) (bool, error) {
	i, j, err := d.indices(from, to)
	if err != nil {
		return false, err
	}
	if d.adj[i][j] {
		return false, nil
	}
	if d.reaches(j, i) {
		return false, containers.ErrCycle("adding edge %s -> %s would create a cycle", from, to)
	}
	d.adj[i][j] = true
	return true, nil
}

// DelEdge removes the edge from -> to, returning whether the graph
// changed.
func (d *DAG) DelEdge(from, to string) (bool, error) {
	i, j, err := d.indices(from, to)
	if err != nil {
		return false, err
	}
	if !d.adj[i][j] {
		return false, nil
	}
	d.adj[i][j] = false
	return true, nil
}

func (d *DAG) indices(from, to string) (int, int, error) {
	i, j := d.labels.IndexOf(from), d.labels.IndexOf(to)
	if i < 0 {
		return 0, 0, containers.ErrInvalidArgument("unknown vertex %q", from)
	}
	if j < 0 {
		return 0, 0, containers.ErrInvalidArgument("unknown vertex %q", to)
	}
	return i, j, nil
}

// reaches reports whether there is a directed path from -> to in the
// current graph (used to detect would-be cycles before AddEdge commits).
func (d *DAG) reaches(from, to int) bool {
	if from == to {
		return true
	}
	visited := make([]bool, len(d.adj))
	stack := []int{from}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[v] {
			continue
		}
		visited[v] = true
		if v == to {
			return true
		}
		for w := range d.adj[v] {
			if d.adj[v][w] && !visited[w] {
				stack = append(stack, w)
			}
		}
	}
	return false
}

// Parents returns the sorted parents of x.
func (d *DAG) Parents(x string) []string {
	j := d.labels.IndexOf(x)
	if j < 0 {
		return nil
	}
	var out []string
	names := d.labels.Names()
	for i := range d.adj {
		if d.adj[i][j] {
			out = append(out, names[i])
		}
	}
	return out
}

// Children returns the sorted children of x.
func (d *DAG) Children(x string) []string {
	i := d.labels.IndexOf(x)
	if i < 0 {
		return nil
	}
	var out []string
	names := d.labels.Names()
	for j, has := range d.adj[i] {
		if has {
			out = append(out, names[j])
		}
	}
	return out
}

// Ancestors returns the sorted set of strict ancestors of x.
func (d *DAG) Ancestors(x string) []string {
	i := d.labels.IndexOf(x)
	if i < 0 {
		return nil
	}
	visited := make([]bool, len(d.adj))
	d.visitParents(i, visited)
	return d.namesWhere(visited, i)
}

// Descendants returns the sorted set of strict descendants of x.
func (d *DAG) Descendants(x string) []string {
	i := d.labels.IndexOf(x)
	if i < 0 {
		return nil
	}
	visited := make([]bool, len(d.adj))
	d.visitChildren(i, visited)
	return d.namesWhere(visited, i)
}

func (d *DAG) visitParents(v int, visited []bool) {
	for p := range d.adj {
		if d.adj[p][v] && !visited[p] {
			visited[p] = true
			d.visitParents(p, visited)
		}
	}
}

func (d *DAG) visitChildren(v int, visited []bool) {
	for c, has := range d.adj[v] {
		if has && !visited[c] {
			visited[c] = true
			d.visitChildren(c, visited)
		}
	}
}

func (d *DAG) namesWhere(visited []bool, exclude int) []string {
	names := d.labels.Names()
	var out []string
	for i, v := range visited {
		if v && i != exclude {
			out = append(out, names[i])
		}
	}
	return out
}

// Edges returns every edge as a (from, to) pair, in row-major order.
func (d *DAG) Edges() [][2]string {
	names := d.labels.Names()
	var out [][2]string
	for i, row := range d.adj {
		for j, has := range row {
			if has {
				out = append(out, [2]string{names[i], names[j]})
			}
		}
	}
	return out
}

// TopologicalOrder computes a topological order via Kahn's algorithm over
// the in-degree vector with a FIFO queue, returning ok=false if the graph
// has a cycle.
func (d *DAG) TopologicalOrder() ([]string, bool) {
	n := len(d.adj)
	inDegree := make([]int, n)
	for _, row := range d.adj {
		for j, has := range row {
			if has {
				inDegree[j]++
			}
		}
	}

	queue := make([]int, 0, n)
	for i, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, i)
		}
	}
	sort.Ints(queue)

	names := d.labels.Names()
	order := make([]string, 0, n)
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		order = append(order, names[v])

		var newlyZero []int
		for j, has := range d.adj[v] {
			if !has {
				continue
			}
			inDegree[j]--
			if inDegree[j] == 0 {
				newlyZero = append(newlyZero, j)
			}
		}
		sort.Ints(newlyZero)
		queue = append(queue, newlyZero...)
	}

	if len(order) != n {
		return nil, false
	}
	return order, true
}
