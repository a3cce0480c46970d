package citest

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/johnpierman/pgmgo/containers"
)

// FTest compares state-residence-time-derived exit rates between a
// candidate parent set Z and its extension S=Z∪{y} under the
// Fisher-Snedecor distribution.
type FTest struct {
	estimator Estimator
	alpha     float64
}

// NewFTest builds an F-test at significance level alpha ∈ [0,1].
func NewFTest(estimator Estimator, alpha float64) (*FTest, error) {
	if alpha < 0 || alpha > 1 {
		return nil, containers.ErrInvalidArgument("alpha must be in [0,1], got %v", alpha)
	}
	return &FTest{estimator: estimator, alpha: alpha}, nil
}

// Independent reports whether x is conditionally independent of candidate
// parent y given z: every per-state p-value must fall in
// [alpha/2, 1-alpha/2].
func (t *FTest) Independent(xVar string, z []string, y string) (bool, error) {
	f, err := runPair(t.estimator, xVar, z, y)
	if err != nil {
		return false, err
	}

	for j, i := range f.sToZ {
		for x := 0; x < f.xCard; x++ {
			qZ := f.cimZ.ExitRate(i, x)
			qS := f.cimS.ExitRate(j, x)
			if qS == 0 {
				continue
			}
			ratio := qZ / qS

			d1 := rowSum(f.statsZ.Nxz[i], x, f.xCard)
			d2 := rowSum(f.statsS.Nxz[j], x, f.xCard)
			if d1 <= 0 || d2 <= 0 {
				continue
			}

			pValue := distuv.F{D1: d1, D2: d2, Src: nil}.CDF(ratio)
			if pValue < t.alpha/2 || pValue > 1-t.alpha/2 {
				return false, nil
			}
		}
	}
	return true, nil
}
