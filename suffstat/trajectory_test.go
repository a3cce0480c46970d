package suffstat

import (
	"testing"

	"github.com/johnpierman/pgmgo/data"
)

func TestFitTrajectoryAccumulatesNxzAndTxz(t *testing.T) {
	traj, err := data.NewTrajectory(
		[]string{"X"},
		map[string][]string{"X": {"0", "1"}},
		[][]byte{{0}, {1}, {1}},
		[]float64{0, 1, 3},
	)
	if err != nil {
		t.Fatalf("NewTrajectory: %v", err)
	}

	stats, err := FitTrajectory(traj, labels(t, "X"), labels(t))
	if err != nil {
		t.Fatalf("FitTrajectory: %v", err)
	}
	if stats.Nxz[0].At(0, 1) != 1 {
		t.Fatalf("Nxz[z=0][0,1] = %v, want 1", stats.Nxz[0].At(0, 1))
	}
	if stats.Txz.At(0, 0) != 1 {
		t.Fatalf("Txz[z=0,x=0] = %v, want 1", stats.Txz.At(0, 0))
	}
	if stats.Txz.At(0, 1) != 2 {
		t.Fatalf("Txz[z=0,x=1] = %v, want 2", stats.Txz.At(0, 1))
	}
}
