package graph

import (
	"testing"

	"github.com/johnpierman/pgmgo/containers"
)

func mustLabels(t *testing.T, names ...string) containers.Labels {
	t.Helper()
	l, err := containers.NewLabels(names)
	if err != nil {
		t.Fatalf("NewLabels: %v", err)
	}
	return l
}

func TestDAGAddEdgeAndHasEdge(t *testing.T) {
	dag := Empty(mustLabels(t, "A", "B", "C"))
	changed, err := dag.AddEdge("A", "B")
	if err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if !changed {
		t.Fatal("expected changed = true")
	}
	if !dag.HasEdge("A", "B") {
		t.Error("edge A->B should exist")
	}
	if dag.HasEdge("B", "A") {
		t.Error("edge B->A should not exist")
	}

	changed, err = dag.AddEdge("A", "B")
	if err != nil {
		t.Fatalf("AddEdge (no-op): %v", err)
	}
	if changed {
		t.Error("re-adding an existing edge should report changed = false")
	}
}

func TestDAGAddEdgeRejectsCycle(t *testing.T) {
	dag := Empty(mustLabels(t, "A", "B", "C"))
	mustAddEdge(t, dag, "A", "B")
	mustAddEdge(t, dag, "B", "C")

	if _, err := dag.AddEdge("C", "A"); err == nil {
		t.Fatal("expected cycle error")
	}
}

func TestDAGParentsChildren(t *testing.T) {
	dag := Empty(mustLabels(t, "A", "B", "C"))
	mustAddEdge(t, dag, "A", "C")
	mustAddEdge(t, dag, "B", "C")

	parents := dag.Parents("C")
	if len(parents) != 2 {
		t.Fatalf("expected 2 parents, got %v", parents)
	}

	children := dag.Children("A")
	if len(children) != 1 || children[0] != "C" {
		t.Fatalf("expected child [C], got %v", children)
	}
}

func TestDAGTopologicalOrder(t *testing.T) {
	dag := Empty(mustLabels(t, "A", "B", "C", "D"))
	mustAddEdge(t, dag, "A", "C")
	mustAddEdge(t, dag, "B", "C")
	mustAddEdge(t, dag, "C", "D")

	order, ok := dag.TopologicalOrder()
	if !ok {
		t.Fatal("expected a valid topological order")
	}

	pos := make(map[string]int)
	for i, name := range order {
		pos[name] = i
	}
	if pos["A"] >= pos["C"] || pos["B"] >= pos["C"] || pos["C"] >= pos["D"] {
		t.Errorf("order violates edges: %v", order)
	}
}

func TestDAGAncestorsDescendants(t *testing.T) {
	dag := Empty(mustLabels(t, "A", "B", "C", "D"))
	mustAddEdge(t, dag, "A", "B")
	mustAddEdge(t, dag, "B", "C")
	mustAddEdge(t, dag, "C", "D")

	ancestors := dag.Ancestors("D")
	if len(ancestors) != 3 {
		t.Fatalf("expected 3 ancestors, got %v", ancestors)
	}

	descendants := dag.Descendants("A")
	if len(descendants) != 3 {
		t.Fatalf("expected 3 descendants, got %v", descendants)
	}
}

func TestCompleteIsAcyclic(t *testing.T) {
	dag := Complete(mustLabels(t, "A", "B", "C"))
	if _, ok := dag.TopologicalOrder(); !ok {
		t.Fatal("Complete graph must be acyclic")
	}
	if !dag.HasEdge("A", "B") || !dag.HasEdge("A", "C") || !dag.HasEdge("B", "C") {
		t.Fatal("Complete graph should have an edge i->j for every i<j")
	}
}

func mustAddEdge(t *testing.T, dag *DAG, from, to string) {
	t.Helper()
	if _, err := dag.AddEdge(from, to); err != nil {
		t.Fatalf("AddEdge(%s, %s): %v", from, to, err)
	}
}
