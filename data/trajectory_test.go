package data

import "testing"

func perVarBinary(vars ...string) map[string][]string {
	m := make(map[string][]string, len(vars))
	for _, v := range vars {
		m[v] = []string{"0", "1"}
	}
	return m
}

func TestNewTrajectorySortsByTime(t *testing.T) {
	events := [][]byte{{1, 1}, {0, 0}, {1, 0}}
	times := []float64{2.0, 0.0, 1.0}
	tr, err := NewTrajectory([]string{"X", "Y"}, perVarBinary("X", "Y"), events, times)
	if err != nil {
		t.Fatalf("NewTrajectory: %v", err)
	}
	for i := 1; i < tr.Len(); i++ {
		if tr.Time(i) <= tr.Time(i-1) {
			t.Fatalf("times not sorted: %v <= %v", tr.Time(i), tr.Time(i-1))
		}
	}
}

func TestNewTrajectoryRejectsDuplicateTimes(t *testing.T) {
	events := [][]byte{{0, 0}, {1, 0}}
	times := []float64{1.0, 1.0}
	if _, err := NewTrajectory([]string{"X", "Y"}, perVarBinary("X", "Y"), events, times); err == nil {
		t.Fatal("expected TimeOrder error for duplicate times")
	}
}

func TestNewTrajectoryRejectsMultiVariableTransition(t *testing.T) {
	events := [][]byte{{0, 0}, {1, 1}}
	times := []float64{0.0, 1.0}
	if _, err := NewTrajectory([]string{"X", "Y"}, perVarBinary("X", "Y"), events, times); err == nil {
		t.Fatal("expected TransitionRate error for simultaneous transitions")
	}
}

func TestTrajectoryTransitionsIteration(t *testing.T) {
	events := [][]byte{{0, 0}, {1, 0}, {1, 1}}
	times := []float64{0.0, 1.0, 2.5}
	tr, err := NewTrajectory([]string{"X", "Y"}, perVarBinary("X", "Y"), events, times)
	if err != nil {
		t.Fatalf("NewTrajectory: %v", err)
	}

	count := 0
	tr.Transitions(func(tn Transition) bool {
		count++
		return true
	})
	if count != 2 {
		t.Fatalf("got %d transitions, want 2", count)
	}
}

func TestTrajectoryCollectionRejectsMismatchedStates(t *testing.T) {
	a, _ := NewTrajectory([]string{"X"}, perVarBinary("X"), [][]byte{{0}, {1}}, []float64{0, 1})
	b, _ := NewTrajectory([]string{"X"}, map[string][]string{"X": {"0", "1", "2"}}, [][]byte{{0}, {2}}, []float64{0, 1})
	if _, err := NewTrajectoryCollection([]*Trajectory{a, b}); err == nil {
		t.Fatal("expected error for mismatched states across trajectories")
	}
}
