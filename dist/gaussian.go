package dist

import (
	"gonum.org/v1/gonum/mat"

	"github.com/johnpierman/pgmgo/containers"
)

// GaussianCPD is P(X | Z) = N(A*Z + b, S): coefficients A (|X|x|Z|),
// intercept b (|X|) and covariance S (|X|x|X|, symmetric positive
// semi-definite).
type GaussianCPD struct {
	x, z containers.Labels

	a *mat.Dense    // |X| x |Z|
	b []float64     // |X|
	s *mat.SymDense // |X| x |X|

	stats  *SampleStatistics
	logLik *float64

	name        string
	description string
}

// NewGaussianCPD validates dimensions and symmetry of S (positive
// semi-definiteness is the estimator's responsibility, not re-verified on
// every construction to keep this a cheap value constructor).
func NewGaussianCPD(x, z containers.Labels, a *mat.Dense, b []float64, s *mat.SymDense) (*GaussianCPD, error) {
	if !containers.Disjoint(x, z) {
		return nil, containers.ErrInvalidArgument("X and Z must be disjoint")
	}
	px, pz := x.Len(), z.Len()
	if len(b) != px {
		return nil, containers.ErrShape("intercept has %d entries, expected %d", len(b), px)
	}
	if s.SymmetricDim() != px {
		return nil, containers.ErrShape("covariance is %dx%d, expected %dx%d", s.SymmetricDim(), s.SymmetricDim(), px, px)
	}
	if pz == 0 {
		if a != nil {
			if r, c := a.Dims(); r != 0 || c != 0 {
				return nil, containers.ErrShape("coefficients must be empty when Z is empty")
			}
		}
	} else {
		if a == nil {
			return nil, containers.ErrShape("coefficients required when Z is non-empty")
		}
		r, c := a.Dims()
		if r != px || c != pz {
			return nil, containers.ErrShape("coefficients are %dx%d, expected %dx%d", r, c, px, pz)
		}
	}

	bCopy := make([]float64, len(b))
	copy(bCopy, b)

	return &GaussianCPD{x: x, z: z, a: a, b: bCopy, s: s}, nil
}

func (g *GaussianCPD) X() containers.Labels { return g.x }
func (g *GaussianCPD) Z() containers.Labels { return g.z }
func (g *GaussianCPD) A() *mat.Dense        { return g.a }
func (g *GaussianCPD) B() []float64         { return append([]float64(nil), g.b...) }
func (g *GaussianCPD) S() *mat.SymDense     { return g.s }

// Mean returns A*z + b for a given assignment of Z (in label order).
func (g *GaussianCPD) Mean(z []float64) []float64 {
	mean := make([]float64, len(g.b))
	copy(mean, g.b)
	if g.z.Len() == 0 {
		return mean
	}
	zv := mat.NewVecDense(len(z), z)
	out := mat.NewVecDense(len(mean), nil)
	out.MulVec(g.a, zv)
	for i := range mean {
		mean[i] += out.AtVec(i)
	}
	return mean
}

func (g *GaussianCPD) Stats() *SampleStatistics { return g.stats }
func (g *GaussianCPD) LogLikelihood() (float64, bool) {
	if g.logLik == nil {
		return 0, false
	}
	return *g.logLik, true
}
func (g *GaussianCPD) Name() string        { return g.name }
func (g *GaussianCPD) Description() string { return g.description }

func (g *GaussianCPD) WithStats(s *SampleStatistics) *GaussianCPD {
	g.stats = s
	return g
}

func (g *GaussianCPD) WithLogLikelihood(ll float64) *GaussianCPD {
	g.logLik = &ll
	return g
}

func (g *GaussianCPD) WithOptionals(name, description string) *GaussianCPD {
	g.name = name
	g.description = description
	return g
}
