package potential

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/johnpierman/pgmgo/containers"
	"github.com/johnpierman/pgmgo/dist"
	"github.com/johnpierman/pgmgo/linalg"
)

// Gaussian is a potential in canonical form: phi(v) = exp(-1/2 v'Kv + h'v + g)
// over the joint scope X union Z.
type Gaussian struct {
	scope containers.Labels
	k     *mat.SymDense
	h     []float64
	g     float64
}

func (p *Gaussian) Scope() containers.Labels { return p.scope }
func (p *Gaussian) K() *mat.SymDense         { return p.k }
func (p *Gaussian) H() []float64             { return append([]float64(nil), p.h...) }
func (p *Gaussian) G() float64               { return p.g }

// FromGaussianCPD converts P(X|Z) = N(A*Z + b, S) into canonical form over
// scope X union Z, by the block construction:
//
//	Kxx = S^+        Kxz = -Kxx*A        Kzz = A'*Kxx*A
//	hx  = Kxx*b       hz  = -A'*hx
//	g   = -1/2*(b'*hx + ln|2*pi*S|)
//
// S^+ is the Moore-Penrose pseudo-inverse, computed via SVD so that a
// singular (deterministic) S still yields a valid canonical form.
func FromGaussianCPD(cpd *dist.GaussianCPD) (*Gaussian, error) {
	x, z := cpd.X(), cpd.Z()
	px, pz := x.Len(), z.Len()

	kxx, err := linalg.PseudoInverse(cpd.S())
	if err != nil {
		return nil, err
	}

	b := mat.NewVecDense(px, cpd.B())
	hx := mat.NewVecDense(px, nil)
	hx.MulVec(kxx, b)

	scope := containers.Union(x, z)
	k := mat.NewSymDense(px+pz, nil)
	h := make([]float64, px+pz)

	xPos := positions(scope.Names(), x.Names())
	zPos := positions(scope.Names(), z.Names())

	for i := 0; i < px; i++ {
		h[xPos[i]] = hx.AtVec(i)
		for j := 0; j < px; j++ {
			k.SetSym(xPos[i], xPos[j], kxx.At(i, j))
		}
	}

	logDet2piS := log2PiDet(cpd.S())
	bhx := 0.0
	for i := 0; i < px; i++ {
		bhx += b.AtVec(i) * hx.AtVec(i)
	}
	g := -0.5 * (bhx + logDet2piS)

	if pz > 0 {
		a := cpd.A()
		kxxA := mat.NewDense(px, pz, nil)
		kxxA.Mul(kxx, a)

		kxz := mat.NewDense(px, pz, nil)
		kxz.Scale(-1, kxxA)

		kzz := mat.NewDense(pz, pz, nil)
		kzz.Mul(a.T(), kxxA)

		hz := mat.NewVecDense(pz, nil)
		hz.MulVec(a.T(), hx)
		hz.ScaleVec(-1, hz)

		for i := 0; i < px; i++ {
			for j := 0; j < pz; j++ {
				k.SetSym(xPos[i], zPos[j], kxz.At(i, j))
			}
		}
		for i := 0; i < pz; i++ {
			h[zPos[i]] = hz.AtVec(i)
			for j := 0; j < pz; j++ {
				k.SetSym(zPos[i], zPos[j], kzz.At(i, j))
			}
		}
	}

	return &Gaussian{scope: scope, k: k, h: h, g: g}, nil
}

// log2PiDet returns ln|2*pi*S| for a positive semi-definite S, by scaling S before delegating to linalg.LogDet.
func log2PiDet(s *mat.SymDense) float64 {
	n := s.SymmetricDim()
	scaled := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			scaled.SetSym(i, j, 2*math.Pi*s.At(i, j))
		}
	}
	return linalg.LogDet(scaled)
}
