package model

import (
	"testing"

	"github.com/johnpierman/pgmgo/data"
	"github.com/johnpierman/pgmgo/estimate"
	"github.com/johnpierman/pgmgo/graph"
)

func TestFitCTBNBuildsModelMatchingGraph(t *testing.T) {
	traj, err := data.NewTrajectory(
		[]string{"X", "Y"},
		map[string][]string{"X": {"0", "1"}, "Y": {"0", "1"}},
		[][]byte{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}},
		[]float64{0, 1, 2, 3, 4},
	)
	if err != nil {
		t.Fatalf("NewTrajectory: %v", err)
	}
	coll, err := data.NewTrajectoryCollection([]*data.Trajectory{traj})
	if err != nil {
		t.Fatalf("NewTrajectoryCollection: %v", err)
	}

	dag := graph.Empty(mustLabels(t, "X", "Y"))
	if _, err := dag.AddEdge("Y", "X"); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	ctbn, err := FitCTBN(coll, dag, estimate.MLECIM)
	if err != nil {
		t.Fatalf("FitCTBN: %v", err)
	}

	if len(ctbn.Vertices()) != 2 {
		t.Fatalf("expected 2 vertices, got %v", ctbn.Vertices())
	}
	if _, ok := ctbn.CIM("X"); !ok {
		t.Fatal("expected a CIM for X")
	}
	if _, ok := ctbn.CIM("Y"); !ok {
		t.Fatal("expected a CIM for Y")
	}
	if ctbn.ParameterSize() == 0 {
		t.Fatal("expected a nonzero parameter count")
	}
}
