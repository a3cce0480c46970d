package graph

import "testing"

// buildFigure28 builds the DAG from the d-separation worked example
//: T->Z, T->Y, X->Y, X->W, Z->W, W->U.
func buildFigure28(t *testing.T) *DAG {
	t.Helper()
	dag := Empty(mustLabels(t, "T", "U", "W", "X", "Y", "Z"))
	mustAddEdge(t, dag, "T", "Z")
	mustAddEdge(t, dag, "T", "Y")
	mustAddEdge(t, dag, "X", "Y")
	mustAddEdge(t, dag, "X", "W")
	mustAddEdge(t, dag, "Z", "W")
	mustAddEdge(t, dag, "W", "U")
	return dag
}

func TestDSeparationFigure28(t *testing.T) {
	dag := buildFigure28(t)

	cases := []struct {
		name string
		z    []string
		want bool
	}{
		{"empty conditioning set", nil, false},
		{"conditioned on T", []string{"T"}, true},
		{"conditioned on T,W", []string{"T", "W"}, false},
		{"conditioned on T,W,X", []string{"T", "W", "X"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := dag.DSeparated([]string{"Y"}, []string{"Z"}, tc.z)
			if got != tc.want {
				t.Errorf("DSeparated(Y,Z|%v) = %v, want %v", tc.z, got, tc.want)
			}
		})
	}
}
