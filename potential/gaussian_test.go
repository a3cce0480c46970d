package potential

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/johnpierman/pgmgo/containers"
	"github.com/johnpierman/pgmgo/dist"
)

func TestFromGaussianCPDNoParents(t *testing.T) {
	x, _ := containers.NewLabels([]string{"A"})
	z, _ := containers.NewLabels(nil)
	s := mat.NewSymDense(1, []float64{2})
	cpd, err := dist.NewGaussianCPD(x, z, nil, []float64{3}, s)
	if err != nil {
		t.Fatalf("NewGaussianCPD: %v", err)
	}

	p, err := FromGaussianCPD(cpd)
	if err != nil {
		t.Fatalf("FromGaussianCPD: %v", err)
	}
	if p.Scope().Len() != 1 {
		t.Fatalf("expected scope of size 1, got %d", p.Scope().Len())
	}
	if math.Abs(p.K().At(0, 0)-0.5) > 1e-9 {
		t.Fatalf("Kxx = %v, want 0.5", p.K().At(0, 0))
	}
	if math.Abs(p.H()[0]-1.5) > 1e-9 {
		t.Fatalf("hx = %v, want 1.5", p.H()[0])
	}
}

func TestFromGaussianCPDWithParent(t *testing.T) {
	x, _ := containers.NewLabels([]string{"A"})
	z, _ := containers.NewLabels([]string{"B"})
	a := mat.NewDense(1, 1, []float64{2})
	s := mat.NewSymDense(1, []float64{1})
	cpd, err := dist.NewGaussianCPD(x, z, a, []float64{0}, s)
	if err != nil {
		t.Fatalf("NewGaussianCPD: %v", err)
	}

	p, err := FromGaussianCPD(cpd)
	if err != nil {
		t.Fatalf("FromGaussianCPD: %v", err)
	}
	if p.Scope().Len() != 2 {
		t.Fatalf("expected scope of size 2, got %d", p.Scope().Len())
	}
}
