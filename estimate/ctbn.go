package estimate

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/johnpierman/pgmgo/containers"
	"github.com/johnpierman/pgmgo/dist"
	"github.com/johnpierman/pgmgo/suffstat"
)

// MLECIM computes the maximum-likelihood conditional intensity matrix
// from (N_xz, T_xz).
func MLECIM(stats *suffstat.TrajectoryStats) (*dist.CIM, error) {
	return fitCIM(stats, 0, 0)
}

// BayesianCIM computes the Bayesian (Gamma-prior) CIM with pseudo-count
// alpha and pseudo-time tau, scaled by the conditioning cardinality.
func BayesianCIM(stats *suffstat.TrajectoryStats, alpha int, tau float64) (*dist.CIM, error) {
	if alpha <= 0 || tau <= 0 {
		return nil, containers.ErrInvalidArgument("alpha and tau must be positive")
	}
	return fitCIM(stats, float64(alpha), tau)
}

func fitCIM(stats *suffstat.TrajectoryStats, alphaPrior, tauPrior float64) (*dist.CIM, error) {
	sZ := len(stats.Nxz)
	if sZ == 0 {
		return nil, containers.ErrInvalidArgument("empty Z configuration space")
	}
	cx, _ := stats.Nxz[0].Dims()

	alpha := alphaPrior / float64(sZ)
	tau := tauPrior / float64(sZ)

	slices := make([][][]float64, sZ)
	logLikQ, logLikP := 0.0, 0.0

	for zi := 0; zi < sZ; zi++ {
		n := mat.NewDense(cx, cx, nil)
		n.Add(n, stats.Nxz[zi])
		if alphaPrior != 0 {
			for i := 0; i < cx; i++ {
				for j := 0; j < cx; j++ {
					if i == j {
						continue
					}
					n.Set(i, j, n.At(i, j)+alpha)
				}
			}
		}

		slice := make([][]float64, cx)
		for i := 0; i < cx; i++ {
			tVal := stats.Txz.At(zi, i) + tau
			if tVal <= 0 {
				return nil, containers.ErrTransitionRate("residence time for z=%d x=%d is non-positive", zi, i)
			}

			nRow := 0.0
			for j := 0; j < cx; j++ {
				if i == j {
					continue
				}
				nRow += n.At(i, j)
			}
			q := nRow / tVal

			row := make([]float64, cx)
			for j := 0; j < cx; j++ {
				if i != j {
					row[j] = n.At(i, j) / tVal
				}
			}
			slice[i] = row

			if alphaPrior == 0 {
				logLikQ += nRow*math.Log(q+smallestPositive) - q*tVal
			} else {
				logLikQ += posteriorLogLikelihoodCIM(alpha, tau, nRow, tVal)
			}

			if nRow > 0 {
				for j := 0; j < cx; j++ {
					if i == j {
						continue
					}
					p := n.At(i, j) / nRow
					logLikP += n.At(i, j) * math.Log(p+smallestPositive)
				}
			}
		}
		slices[zi] = slice
	}

	cim, err := dist.NewCIM(stats.X, stats.Z, slices)
	if err != nil {
		return nil, err
	}
	return cim.WithLogLikelihood(logLikQ + logLikP), nil
}

// posteriorLogLikelihoodCIM computes the Bayesian CTBN log-likelihood:
// ln tau'*(alpha'+1) - lnGamma(alpha'+1) +
// lnGamma(Nz+1) - (Nz+1)*ln(Tz). gonum's own distuv distributions (Gamma,
// Beta, StudentsT) all reach for math.Lgamma internally rather than
// exporting their own, so this does the same instead of hand-rolling a
// series expansion.
func posteriorLogLikelihoodCIM(alphaPrime, tauPrime, nZ, tZ float64) float64 {
	lgAlpha, _ := math.Lgamma(alphaPrime + 1)
	lgN, _ := math.Lgamma(nZ + 1)
	return math.Log(tauPrime)*(alphaPrime+1) - lgAlpha + lgN - (nZ+1)*math.Log(tZ)
}
