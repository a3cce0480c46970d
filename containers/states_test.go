package containers

import "testing"

func TestNewStatesSortsPerVariable(t *testing.T) {
	s, err := NewStates(map[string][]string{
		"B": {"yes", "no"},
		"A": {"no", "yes"},
	})
	if err != nil {
		t.Fatalf("NewStates: %v", err)
	}
	if got := s.StateNames("B"); got[0] != "no" || got[1] != "yes" {
		t.Fatalf("B states = %v, want [no yes]", got)
	}
	if s.Shape()[0] != 2 || s.Shape()[1] != 2 {
		t.Fatalf("shape = %v", s.Shape())
	}
}

func TestNewStatesRejectsTooManyStates(t *testing.T) {
	names := make([]string, MaxCardinality+1)
	for i := range names {
		names[i] = string(rune('a' + i%26))
		names[i] += string(rune('0' + i/26))
	}
	if _, err := NewStates(map[string][]string{"X": names}); err == nil {
		t.Fatal("expected cardinality error")
	}
}

func TestStatesIndexOf(t *testing.T) {
	s, _ := NewStates(map[string][]string{"A": {"no", "yes"}})
	if s.IndexOf("A", "yes") != 1 {
		t.Fatalf("IndexOf(yes) = %d, want 1", s.IndexOf("A", "yes"))
	}
	if s.IndexOf("A", "maybe") != -1 {
		t.Fatal("expected -1 for unknown state")
	}
}
