package data

import "testing"

func TestNewGaussTableRejectsNaN(t *testing.T) {
	nan := 0.0
	nan /= nan
	_, err := NewGaussTable([]string{"X"}, [][]float64{{nan}})
	if err == nil {
		t.Fatal("expected non-finite error for NaN in complete table")
	}
}

func TestNewGaussIncTableAllowsNaN(t *testing.T) {
	nan := 0.0
	nan /= nan
	tbl, err := NewGaussIncTable([]string{"X", "Y"}, [][]float64{{1.0, nan}})
	if err != nil {
		t.Fatalf("NewGaussIncTable: %v", err)
	}
	if !tbl.IsMissing(0, 1) {
		t.Fatal("expected (0,1) to be missing")
	}
}

func TestGaussTableSortsLabels(t *testing.T) {
	tbl, err := NewGaussTable([]string{"Y", "X"}, [][]float64{{1.0, 2.0}})
	if err != nil {
		t.Fatalf("NewGaussTable: %v", err)
	}
	if tbl.Labels().Names()[0] != "X" {
		t.Fatalf("labels = %v", tbl.Labels().Names())
	}
	if tbl.Value(0, 0) != 2.0 || tbl.Value(0, 1) != 1.0 {
		t.Fatalf("values not permuted correctly: %v", tbl.Row(0))
	}
}
