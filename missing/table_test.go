package missing

import (
	"testing"

	"github.com/johnpierman/pgmgo/containers"
)

func TestTableCounts(t *testing.T) {
	labels, _ := containers.NewLabels([]string{"X", "Y"})
	mask := [][]bool{
		{true, false},
		{false, false},
		{true, true},
	}
	tbl, err := New(labels, mask)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if tbl.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", tbl.Count())
	}
	if got := tbl.CountByCol(); got[0] != 2 || got[1] != 1 {
		t.Fatalf("CountByCol() = %v", got)
	}
	if got := tbl.CountByRow(); got[0] != 1 || got[1] != 0 || got[2] != 2 {
		t.Fatalf("CountByRow() = %v", got)
	}
	if tbl.Rate() != 0.5 {
		t.Fatalf("Rate() = %v, want 0.5", tbl.Rate())
	}
}

func TestTableFullyPartiallyObserved(t *testing.T) {
	labels, _ := containers.NewLabels([]string{"X", "Y"})
	mask := [][]bool{
		{false, true},
		{false, false},
	}
	tbl, err := New(labels, mask)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if fo := tbl.FullyObserved(); len(fo) != 1 || fo[0] != 0 {
		t.Fatalf("FullyObserved() = %v", fo)
	}
	if po := tbl.PartiallyObserved(); len(po) != 1 || po[0] != 1 {
		t.Fatalf("PartiallyObserved() = %v", po)
	}
}

func TestTableRejectsShapeMismatch(t *testing.T) {
	labels, _ := containers.NewLabels([]string{"X", "Y"})
	if _, err := New(labels, [][]bool{{true}}); err == nil {
		t.Fatal("expected shape error")
	}
}
