package suffstat

import (
	"testing"

	"github.com/johnpierman/pgmgo/data"
)

func TestFitCategoricalIncompleteListwiseDrops(t *testing.T) {
	table, err := data.NewCatIncTable(
		[]string{"A", "B"},
		map[string][]string{"A": {"0", "1"}, "B": {"0", "1"}},
		[][]byte{{0, 0}, {0, 255}, {1, 1}},
	)
	if err != nil {
		t.Fatalf("NewCatIncTable: %v", err)
	}

	stats, err := FitCategoricalIncomplete(table, labels(t, "A"), labels(t, "B"), ListwiseDeletion, nil)
	if err != nil {
		t.Fatalf("FitCategoricalIncomplete: %v", err)
	}
	if stats.SampleSize != 2 {
		t.Fatalf("SampleSize = %v, want 2 (one row dropped)", stats.SampleSize)
	}
}

func TestFitCategoricalIncompleteIPWReweights(t *testing.T) {
	table, err := data.NewCatIncTable(
		[]string{"A", "B"},
		map[string][]string{"A": {"0", "1"}, "B": {"0", "1"}},
		[][]byte{{0, 0}, {0, 255}, {1, 1}, {1, 1}},
	)
	if err != nil {
		t.Fatalf("NewCatIncTable: %v", err)
	}

	stats, err := FitCategoricalIncomplete(table, labels(t, "A"), labels(t, "B"), InverseProbabilityWeighting, nil)
	if err != nil {
		t.Fatalf("FitCategoricalIncomplete: %v", err)
	}
	if stats.SampleSize <= 0 {
		t.Fatalf("SampleSize = %v, want > 0", stats.SampleSize)
	}
}
