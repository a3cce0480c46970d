package estimate

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/johnpierman/pgmgo/containers"
	"github.com/johnpierman/pgmgo/dist"
	"github.com/johnpierman/pgmgo/linalg"
	"github.com/johnpierman/pgmgo/suffstat"
)

// MLEGaussian is the nu=0 limit of BayesianGaussian.
func MLEGaussian(stats *suffstat.GaussianStats) (*dist.GaussianCPD, error) {
	return BayesianGaussian(stats, 0)
}

// BayesianGaussian computes the Bayesian Gaussian CPD with prior weight
// nu >= 0.
func BayesianGaussian(stats *suffstat.GaussianStats, nu float64) (*dist.GaussianCPD, error) {
	if nu < 0 {
		return nil, containers.ErrInvalidArgument("nu must be non-negative, got %v", nu)
	}

	px, pz := len(stats.MuX), len(stats.MuZ)
	n := stats.N
	nPrime := n + nu
	rank1Coeff := n * nu / nPrime

	muX := scale(stats.MuX, n/nPrime)
	muZ := scale(stats.MuZ, n/nPrime)

	sxx := addIdentityAndRank1(stats.Sxx, nu, rank1Coeff, stats.MuX, stats.MuX)
	szz := addIdentityAndRank1(stats.Szz, nu, rank1Coeff, stats.MuZ, stats.MuZ)
	sxz := addRank1(stats.Sxz, rank1Coeff, stats.MuX, stats.MuZ)

	var a *mat.Dense
	var b []float64
	var s *mat.SymDense

	if pz == 0 {
		b = muX
		s = scaleToSym(sxx, 1/nPrime)
	} else {
		szzInv, err := linalg.PseudoInverse(toSym(szz))
		if err != nil {
			return nil, err
		}
		a = mat.NewDense(px, pz, nil)
		a.Mul(sxz, szzInv)

		aMuZ := mat.NewVecDense(px, nil)
		aMuZ.MulVec(a, mat.NewVecDense(pz, muZ))
		b = make([]float64, px)
		for i := range b {
			b[i] = muX[i] - aMuZ.AtVec(i)
		}

		aSxzT := mat.NewDense(px, px, nil)
		aSxzT.Mul(a, sxz.T())
		resid := mat.NewDense(px, px, nil)
		resid.Sub(sxx, aSxzT)
		s = scaleToSym(resid, 1/nPrime)
	}

	cpd, err := dist.NewGaussianCPD(stats.X, stats.Z, a, b, s)
	if err != nil {
		return nil, err
	}

	logDet := linalg.LogDet(s)
	logLik := -0.5 * nPrime * (float64(px)*math.Log(2*math.Pi) + logDet + float64(px))
	return cpd.WithStats(stats.Bundle()).WithLogLikelihood(logLik), nil
}

func scale(v []float64, factor float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x * factor
	}
	return out
}

// addIdentityAndRank1 adds nu*I and rank1Coeff*muA*muB' to a centred
// scatter matrix.
func addIdentityAndRank1(s *mat.Dense, nu, rank1Coeff float64, muA, muB []float64) *mat.Dense {
	r, c := s.Dims()
	out := mat.NewDense(r, c, nil)
	out.Add(out, s)
	for i := 0; i < r; i++ {
		if i < c {
			out.Set(i, i, out.At(i, i)+nu)
		}
		for j := 0; j < c; j++ {
			out.Set(i, j, out.At(i, j)+rank1Coeff*muA[i]*muB[j])
		}
	}
	return out
}

// addRank1 updates S_XZ analogously, without the identity term.
func addRank1(s *mat.Dense, rank1Coeff float64, muA, muB []float64) *mat.Dense {
	r, c := s.Dims()
	out := mat.NewDense(r, c, nil)
	out.Add(out, s)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, out.At(i, j)+rank1Coeff*muA[i]*muB[j])
		}
	}
	return out
}

func toSym(d *mat.Dense) *mat.SymDense {
	r, _ := d.Dims()
	sym := mat.NewSymDense(r, nil)
	for i := 0; i < r; i++ {
		for j := i; j < r; j++ {
			sym.SetSym(i, j, (d.At(i, j)+d.At(j, i))/2)
		}
	}
	return sym
}

func scaleToSym(d *mat.Dense, factor float64) *mat.SymDense {
	r, _ := d.Dims()
	sym := mat.NewSymDense(r, nil)
	for i := 0; i < r; i++ {
		for j := i; j < r; j++ {
			sym.SetSym(i, j, factor*(d.At(i, j)+d.At(j, i))/2)
		}
	}
	return sym
}
