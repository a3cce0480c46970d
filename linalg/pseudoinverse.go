// Package linalg collects the small set of numerical-linear-algebra
// helpers shared by the potential and estimate packages: the
// Moore-Penrose pseudo-inverse and a tolerant log-determinant, both built
// on gonum's SVD and Cholesky factorizations rather than hand-rolled.
package linalg

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/johnpierman/pgmgo/containers"
)

// PseudoInverse computes the Moore-Penrose pseudo-inverse of a symmetric
// matrix via SVD, discarding singular values indistinguishable from zero.
// Used wherever a prior or posterior scatter matrix may be singular.
func PseudoInverse(s *mat.SymDense) (*mat.SymDense, error) {
	n := s.SymmetricDim()
	var svd mat.SVD
	if ok := svd.Factorize(s, mat.SVDFull); !ok {
		return nil, containers.ErrInvalidArgument("SVD factorization failed")
	}
	values := svd.Values(nil)

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	tol := Tolerance(values)
	sInv := mat.NewDense(n, n, nil)
	for i, sv := range values {
		if sv <= tol {
			continue
		}
		sInv.Set(i, i, 1/sv)
	}

	tmp := mat.NewDense(n, n, nil)
	tmp.Mul(&v, sInv)
	out := mat.NewDense(n, n, nil)
	out.Mul(tmp, u.T())

	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, (out.At(i, j)+out.At(j, i))/2)
		}
	}
	return sym, nil
}

// Tolerance returns the cutoff below which a singular value is treated as
// numerically zero, scaled by the largest singular value and matrix size.
func Tolerance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	max := values[0]
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	return max * float64(len(values)) * 1e-12
}

// LogDet returns ln|S| for a positive semi-definite symmetric matrix,
// via Cholesky when S is strictly positive definite and falling back to
// the SVD singular values (ignoring numerically zero ones) otherwise.
func LogDet(s *mat.SymDense) float64 {
	var chol mat.Cholesky
	if ok := chol.Factorize(s); ok {
		return chol.LogDet()
	}

	var svd mat.SVD
	svd.Factorize(s, mat.SVDNone)
	values := svd.Values(nil)
	tol := Tolerance(values)
	logDet := 0.0
	for _, v := range values {
		if v <= tol {
			continue
		}
		logDet += math.Log(v)
	}
	return logDet
}
