package suffstat

import (
	"math"
	"testing"

	"github.com/johnpierman/pgmgo/data"
)

func TestFitGaussianMeansAndScatter(t *testing.T) {
	table, err := data.NewGaussTable(
		[]string{"X", "Y"},
		[][]float64{{1, 2}, {3, 4}, {5, 6}},
	)
	if err != nil {
		t.Fatalf("NewGaussTable: %v", err)
	}

	stats, err := FitGaussian(table, labels(t, "X"), labels(t, "Y"))
	if err != nil {
		t.Fatalf("FitGaussian: %v", err)
	}
	if math.Abs(stats.MuX[0]-3) > 1e-9 {
		t.Fatalf("MuX = %v, want 3", stats.MuX[0])
	}
	if math.Abs(stats.MuZ[0]-4) > 1e-9 {
		t.Fatalf("MuZ = %v, want 4", stats.MuZ[0])
	}
	// Sxx = sum((x-3)^2) = 4+0+4 = 8.
	if math.Abs(stats.Sxx.At(0, 0)-8) > 1e-9 {
		t.Fatalf("Sxx = %v, want 8", stats.Sxx.At(0, 0))
	}
}
