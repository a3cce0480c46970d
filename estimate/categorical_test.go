package estimate

import (
	"math"
	"testing"

	"github.com/johnpierman/pgmgo/containers"
	"github.com/johnpierman/pgmgo/data"
	"github.com/johnpierman/pgmgo/suffstat"
)

func mustLabels(t *testing.T, names ...string) containers.Labels {
	t.Helper()
	l, err := containers.NewLabels(names)
	if err != nil {
		t.Fatalf("NewLabels: %v", err)
	}
	return l
}

func suffstatFit(t *testing.T, table *data.CatTable, x, z containers.Labels) (*suffstat.CategoricalStats, error) {
	t.Helper()
	return suffstat.FitCategorical(table, x, z)
}

func TestMLECategoricalMatchesFrequencies(t *testing.T) {
	table, err := data.NewCatTable(
		[]string{"A", "B"},
		map[string][]string{"A": {"0", "1"}, "B": {"0", "1"}},
		[][]byte{{0, 0}, {0, 0}, {1, 0}, {1, 1}},
	)
	if err != nil {
		t.Fatalf("NewCatTable: %v", err)
	}
	x := mustLabels(t, "A")
	z := mustLabels(t, "B")

	stats, err := suffstatFit(t, table, x, z)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	cpd, err := MLECategorical(stats)
	if err != nil {
		t.Fatalf("MLECategorical: %v", err)
	}
	// z=0 rows: A={0,0,1} -> P(A=0|B=0)=2/3.
	if math.Abs(cpd.At(0, 0)-2.0/3.0) > 1e-9 {
		t.Fatalf("P(A=0|B=0) = %v, want 2/3", cpd.At(0, 0))
	}
}

func TestMLECategoricalRejectsZeroMarginal(t *testing.T) {
	table, _ := data.NewCatTable(
		[]string{"A", "B"},
		map[string][]string{"A": {"0", "1"}, "B": {"0", "1"}},
		[][]byte{{0, 0}},
	)
	x := mustLabels(t, "A")
	z := mustLabels(t, "B")
	stats, err := suffstatFit(t, table, x, z)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	if _, err := MLECategorical(stats); err == nil {
		t.Fatal("expected zero-marginal error")
	}
}

func TestBayesianCategoricalSmooths(t *testing.T) {
	table, _ := data.NewCatTable(
		[]string{"A"},
		map[string][]string{"A": {"0", "1"}},
		[][]byte{{0}},
	)
	x := mustLabels(t, "A")
	z := mustLabels(t)
	stats, err := suffstatFit(t, table, x, z)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	cpd, err := BayesianCategorical(stats, 1.0)
	if err != nil {
		t.Fatalf("BayesianCategorical: %v", err)
	}
	// N=(1,0)+1 = (2,1), sum 3 -> P(A=0)=2/3.
	if math.Abs(cpd.At(0, 0)-2.0/3.0) > 1e-9 {
		t.Fatalf("P(A=0) = %v, want 2/3", cpd.At(0, 0))
	}
}
