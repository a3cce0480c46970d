package potential

import (
	"math"
	"testing"

	"github.com/johnpierman/pgmgo/containers"
)

func states(perVar map[string][]string) containers.States {
	s, err := containers.NewStates(perVar)
	if err != nil {
		panic(err)
	}
	return s
}

func TestDiscreteMarginalize(t *testing.T) {
	s := states(map[string][]string{"A": {"0", "1"}, "B": {"0", "1"}})
	d, err := NewDiscrete(s, []float64{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("NewDiscrete: %v", err)
	}

	bLabel, _ := containers.NewLabels([]string{"B"})
	marg, err := d.Marginalize(bLabel)
	if err != nil {
		t.Fatalf("Marginalize: %v", err)
	}
	if marg.Labels().Len() != 1 || marg.Labels().At(0) != "A" {
		t.Fatalf("unexpected scope: %v", marg.Labels().Names())
	}
	if v, _ := marg.At([]int{0}); v != 3 {
		t.Fatalf("A=0 marginal = %v, want 3", v)
	}
	if v, _ := marg.At([]int{1}); v != 7 {
		t.Fatalf("A=1 marginal = %v, want 7", v)
	}
}

func TestDiscreteCondition(t *testing.T) {
	s := states(map[string][]string{"A": {"0", "1"}, "B": {"0", "1"}})
	d, _ := NewDiscrete(s, []float64{1, 2, 3, 4})

	cond, err := d.Condition(map[string]int{"B": 1})
	if err != nil {
		t.Fatalf("Condition: %v", err)
	}
	if cond.Labels().Len() != 1 || cond.Labels().At(0) != "A" {
		t.Fatalf("unexpected scope after condition: %v", cond.Labels().Names())
	}
	if v, _ := cond.At([]int{0}); v != 2 {
		t.Fatalf("A=0,B=1 = %v, want 2", v)
	}
	if v, _ := cond.At([]int{1}); v != 4 {
		t.Fatalf("A=1,B=1 = %v, want 4", v)
	}
}

func TestDiscreteNormalize(t *testing.T) {
	s := states(map[string][]string{"A": {"0", "1"}})
	d, _ := NewDiscrete(s, []float64{1, 3})
	if err := d.Normalize(); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if math.Abs(d.Sum()-1) > 1e-12 {
		t.Fatalf("sum after normalize = %v, want 1", d.Sum())
	}
}

func TestDiscreteMulUnionsScope(t *testing.T) {
	a := states(map[string][]string{"A": {"0", "1"}})
	b := states(map[string][]string{"B": {"0", "1"}})
	da, _ := NewDiscrete(a, []float64{2, 3})
	db, _ := NewDiscrete(b, []float64{5, 7})

	prod, err := da.Mul(db)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	if prod.Labels().Len() != 2 {
		t.Fatalf("expected union scope of size 2, got %d", prod.Labels().Len())
	}
	if v, _ := prod.At([]int{0, 0}); v != 10 {
		t.Fatalf("A=0,B=0 = %v, want 10", v)
	}
	if v, _ := prod.At([]int{1, 1}); v != 21 {
		t.Fatalf("A=1,B=1 = %v, want 21", v)
	}
}

func TestDiscreteDivZeroOverZeroIsZero(t *testing.T) {
	a := states(map[string][]string{"A": {"0", "1"}})
	da, _ := NewDiscrete(a, []float64{0, 4})
	db, _ := NewDiscrete(a, []float64{0, 2})

	q, err := da.Div(db)
	if err != nil {
		t.Fatalf("Div: %v", err)
	}
	if v, _ := q.At([]int{0}); v != 0 {
		t.Fatalf("0/0 = %v, want 0", v)
	}
	if v, _ := q.At([]int{1}); v != 2 {
		t.Fatalf("4/2 = %v, want 2", v)
	}
}
