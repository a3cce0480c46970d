package data

import (
	"reflect"
	"testing"
)

// TestNormalisationScenario checks that labels given out of order, with
// per-variable state lists given out of order, are normalised consistently.
func TestNormalisationScenario(t *testing.T) {
	perVar := map[string][]string{
		"B": {"no", "yes"},
		"C": {"yes", "no"},
		"A": {"no", "yes"},
	}
	labels := []string{"B", "C", "A"}
	values := [][]byte{
		{0, 1, 0},
		{0, 0, 0},
		{1, 0, 0},
		{1, 0, 1},
	}

	tbl, err := NewCatTable(labels, perVar, values)
	if err != nil {
		t.Fatalf("NewCatTable: %v", err)
	}

	wantLabels := []string{"A", "B", "C"}
	if !reflect.DeepEqual(tbl.Labels().Names(), wantLabels) {
		t.Fatalf("labels = %v, want %v", tbl.Labels().Names(), wantLabels)
	}

	wantValues := [][]byte{
		{0, 0, 0},
		{0, 0, 1},
		{0, 1, 1},
		{1, 1, 1},
	}
	for i := range wantValues {
		if !reflect.DeepEqual(tbl.Row(i), wantValues[i]) {
			t.Fatalf("row %d = %v, want %v", i, tbl.Row(i), wantValues[i])
		}
	}
}

func TestNewCatTableRejectsShapeMismatch(t *testing.T) {
	_, err := NewCatTable([]string{"A", "B"}, map[string][]string{
		"A": {"0", "1"}, "B": {"0", "1"},
	}, [][]byte{{0}})
	if err == nil {
		t.Fatal("expected shape error")
	}
}

func TestNewCatTableRejectsOutOfRangeValue(t *testing.T) {
	_, err := NewCatTable([]string{"A"}, map[string][]string{"A": {"0", "1"}}, [][]byte{{5}})
	if err == nil {
		t.Fatal("expected cardinality error")
	}
}

func TestNewCatIncTableAllowsMissingSentinel(t *testing.T) {
	tbl, err := NewCatIncTable([]string{"A", "B"}, map[string][]string{
		"A": {"0", "1"}, "B": {"0", "1"},
	}, [][]byte{{0, 255}, {255, 1}})
	if err != nil {
		t.Fatalf("NewCatIncTable: %v", err)
	}
	if !tbl.IsMissing(0, 1) || !tbl.IsMissing(1, 0) {
		t.Fatal("expected missing entries to be detected")
	}
	if tbl.IsMissing(0, 0) {
		t.Fatal("did not expect (0,0) to be missing")
	}
}

func TestWeightedRejectsOutOfRangeWeight(t *testing.T) {
	tbl, _ := NewCatTable([]string{"A"}, map[string][]string{"A": {"0", "1"}}, [][]byte{{0}, {1}})
	if _, err := NewWeighted[*CatTable](tbl, []float64{0.5, 1.5}); err == nil {
		t.Fatal("expected weight range error")
	}
}

func TestWeightedEffectiveSampleSize(t *testing.T) {
	tbl, _ := NewCatTable([]string{"A"}, map[string][]string{"A": {"0", "1"}}, [][]byte{{0}, {1}, {0}})
	w, err := NewWeighted[*CatTable](tbl, []float64{0.5, 1.0, 0.25})
	if err != nil {
		t.Fatalf("NewWeighted: %v", err)
	}
	if got := w.EffectiveSampleSize(); got != 1.75 {
		t.Fatalf("EffectiveSampleSize = %v, want 1.75", got)
	}
}

func TestFromColumnsToColumnsRoundTrip(t *testing.T) {
	cols := []Column{
		{Name: "B", Categorical: []string{"yes", "no", "no"}},
		{Name: "A", Categorical: []string{"x", "y", "x"}},
	}
	tbl, err := FromColumns(cols)
	if err != nil {
		t.Fatalf("FromColumns: %v", err)
	}
	back := tbl.ToColumns()
	byName := map[string]Column{}
	for _, c := range back {
		byName[c.Name] = c
	}
	if !reflect.DeepEqual(byName["B"].Categorical, []string{"yes", "no", "no"}) {
		t.Fatalf("B roundtrip = %v", byName["B"].Categorical)
	}
	if !reflect.DeepEqual(byName["A"].Categorical, []string{"x", "y", "x"}) {
		t.Fatalf("A roundtrip = %v", byName["A"].Categorical)
	}
}
