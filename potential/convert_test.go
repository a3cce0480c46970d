package potential

import (
	"math"
	"testing"

	"github.com/johnpierman/pgmgo/containers"
	"github.com/johnpierman/pgmgo/dist"
)

func TestFromCPDIntoCPDRoundTrip(t *testing.T) {
	x := states(map[string][]string{"A": {"0", "1"}})
	z := states(map[string][]string{"B": {"0", "1"}})
	cpd, err := dist.NewCPD(x, z, [][]float64{{0.9, 0.1}, {0.2, 0.8}})
	if err != nil {
		t.Fatalf("NewCPD: %v", err)
	}

	p, err := FromCPD(cpd)
	if err != nil {
		t.Fatalf("FromCPD: %v", err)
	}
	if p.Labels().Len() != 2 {
		t.Fatalf("expected scope of size 2, got %d", p.Labels().Len())
	}

	aLabel, _ := containers.NewLabels([]string{"A"})
	bLabel, _ := containers.NewLabels([]string{"B"})
	back, err := IntoCPD(p, aLabel, bLabel)
	if err != nil {
		t.Fatalf("IntoCPD: %v", err)
	}

	for zi := 0; zi < 2; zi++ {
		row := back.Row(zi)
		want := cpd.Row(zi)
		for xi := range row {
			if math.Abs(row[xi]-want[xi]) > 1e-9 {
				t.Fatalf("row %d: got %v, want %v", zi, row, want)
			}
		}
	}
}

func TestIntoCPDRejectsZeroMarginal(t *testing.T) {
	a := states(map[string][]string{"A": {"0", "1"}})
	p, _ := NewDiscrete(a, []float64{0, 0})
	aLabel, _ := containers.NewLabels([]string{"A"})
	empty, _ := containers.NewLabels(nil)
	if _, err := IntoCPD(p, aLabel, empty); err == nil {
		t.Fatal("expected zero-marginal error")
	}
}
