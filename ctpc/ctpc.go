// Package ctpc implements Continuous-Time Peter-Clark structure learning:
// starting from an initial directed graph, it prunes each vertex's parent
// set by testing, for growing conditioning-set sizes, whether both a
// time-to-transition and a state-to-state conditional-independence test
// certify the candidate parent removable.
package ctpc

import (
	"sync"

	"github.com/johnpierman/pgmgo/graph"
)

// Test certifies x ⊥⊥ y | z for a fixed target vertex x (the F-test or
// chi-squared test in package citest both satisfy it).
type Test interface {
	Independent(x string, z []string, y string) (bool, error)
}

// CTPC learns a DAG's edge set from an initial graph and a pair of CI
// tests, combined conjunctively.
type CTPC struct {
	initial   *graph.DAG
	timeTest  Test
	stateTest Test
}

// New builds a CTPC learner.
func New(initial *graph.DAG, timeTest, stateTest Test) *CTPC {
	return &CTPC{initial: initial, timeTest: timeTest, stateTest: stateTest}
}

// Fit runs the per-vertex parent-pruning loop serially and returns the
// learned graph.
func (c *CTPC) Fit() (*graph.DAG, error) {
	out := cloneDAG(c.initial)

	for _, v := range c.initial.Vertices() {
		if err := c.pruneVertex(out, v); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ParFit prunes every vertex's parent set concurrently; each vertex only
// deletes its own incoming edges, so no two goroutines contend for the
// same adjacency-matrix column.
func (c *CTPC) ParFit() (*graph.DAG, error) {
	out := cloneDAG(c.initial)
	vertices := c.initial.Vertices()
	errs := make([]error, len(vertices))

	var wg sync.WaitGroup
	for i, v := range vertices {
		wg.Add(1)
		go func(i int, v string) {
			defer wg.Done()
			errs[i] = c.pruneVertex(out, v)
		}(i, v)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// pruneVertex runs the per-vertex pruning loop: for
// growing conditioning-set size k, test every remaining candidate parent
// against size-k subsets of the other candidates, collect the vertices
// certified removable, then delete them all atomically before moving to
// k+1.
func (c *CTPC) pruneVertex(g *graph.DAG, x string) error {
	parents := g.Parents(x)

	for k := 0; k < len(parents); {
		var toRemove []string

		for _, y := range parents {
			others := without(parents, y)
			for _, subset := range combinations(others, k) {
				timeIndep, err := c.timeTest.Independent(x, subset, y)
				if err != nil {
					return err
				}
				if !timeIndep {
					continue
				}
				stateIndep, err := c.stateTest.Independent(x, subset, y)
				if err != nil {
					return err
				}
				if stateIndep {
					toRemove = append(toRemove, y)
					break
				}
			}
		}

		for _, y := range toRemove {
			if _, err := g.DelEdge(y, x); err != nil {
				return err
			}
		}
		parents = without(parents, toRemove...)
		k++
	}
	return nil
}

func without(all []string, remove ...string) []string {
	skip := make(map[string]bool, len(remove))
	for _, r := range remove {
		skip[r] = true
	}
	out := make([]string, 0, len(all))
	for _, v := range all {
		if !skip[v] {
			out = append(out, v)
		}
	}
	return out
}

// combinations enumerates every size-k subset of elements, in input
// order.
func combinations(elements []string, k int) [][]string {
	if k == 0 {
		return [][]string{{}}
	}
	if len(elements) < k {
		return nil
	}

	var result [][]string
	withFirst := combinations(elements[1:], k-1)
	for _, combo := range withFirst {
		next := make([]string, 0, k)
		next = append(next, elements[0])
		next = append(next, combo...)
		result = append(result, next)
	}
	result = append(result, combinations(elements[1:], k)...)
	return result
}

func cloneDAG(g *graph.DAG) *graph.DAG {
	clone, err := graph.FromAdjacencyMatrix(g.Labels(), g.ToAdjacencyMatrix())
	if err != nil {
		// g was already validated acyclic at construction; cloning its
		// own adjacency matrix cannot fail.
		panic(err)
	}
	return clone
}
