package dist

import "testing"

func TestNewCIMRowSumsToZero(t *testing.T) {
	x := binaryStates("A")
	z := emptyStates()
	cim, err := NewCIM(x, z, [][][]float64{
		{{0, 2}, {3, 0}},
	})
	if err != nil {
		t.Fatalf("NewCIM: %v", err)
	}
	slice := cim.Slice(0)
	if slice.At(0, 0) != -2 || slice.At(1, 1) != -3 {
		t.Fatalf("diagonal not set correctly: %v, %v", slice.At(0, 0), slice.At(1, 1))
	}
	if cim.ExitRate(0, 0) != 2 {
		t.Fatalf("ExitRate(0,0) = %v, want 2", cim.ExitRate(0, 0))
	}
}

func TestNewCIMRejectsNegativeOffDiagonal(t *testing.T) {
	x := binaryStates("A")
	z := emptyStates()
	if _, err := NewCIM(x, z, [][][]float64{{{0, -1}, {1, 0}}}); err == nil {
		t.Fatal("expected negative off-diagonal error")
	}
}
