package citest

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/johnpierman/pgmgo/containers"
)

// ChiSquaredTest compares transition-count distributions between a
// candidate parent set Z and its extension S=Z∪{y} via a symmetrised
// chi-squared statistic over transition probabilities.
type ChiSquaredTest struct {
	estimator Estimator
	alpha     float64
}

// NewChiSquaredTest builds a chi-squared test at significance level
// alpha ∈ [0,1].
func NewChiSquaredTest(estimator Estimator, alpha float64) (*ChiSquaredTest, error) {
	if alpha < 0 || alpha > 1 {
		return nil, containers.ErrInvalidArgument("alpha must be in [0,1], got %v", alpha)
	}
	return &ChiSquaredTest{estimator: estimator, alpha: alpha}, nil
}

// Independent reports whether x is conditionally independent of candidate
// parent y given z: every per-state p-value must lie below 1-alpha.
func (t *ChiSquaredTest) Independent(xVar string, z []string, y string) (bool, error) {
	f, err := runPair(t.estimator, xVar, z, y)
	if err != nil {
		return false, err
	}

	df := float64(f.xCard - 1)
	if df <= 0 {
		return true, nil
	}

	for j, i := range f.sToZ {
		for x := 0; x < f.xCard; x++ {
			kZTotal := rowSum(f.statsZ.Nxz[i], x, f.xCard)
			kSTotal := rowSum(f.statsS.Nxz[j], x, f.xCard)
			if kZTotal <= 0 || kSTotal <= 0 {
				continue
			}
			k := math.Sqrt(kZTotal / kSTotal)
			l := 1 / k

			stat := 0.0
			for xp := 0; xp < f.xCard; xp++ {
				if xp == x {
					continue
				}
				kZ := f.statsZ.Nxz[i].At(x, xp)
				kS := f.statsS.Nxz[j].At(x, xp)
				denom := kZ + kS
				if denom == 0 {
					continue
				}
				num := k*kS - l*kZ
				stat += num * num / denom
			}

			pValue := distuv.ChiSquared{K: df, Src: nil}.CDF(stat)
			if pValue >= 1-t.alpha {
				return false, nil
			}
		}
	}
	return true, nil
}
