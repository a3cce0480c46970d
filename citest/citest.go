// Package citest implements the conditional-independence tests that
// drive Continuous-Time Peter-Clark structure learning:
// an F-test over state-residence times and a chi-squared test over
// transition probabilities, both comparing a CIM fitted on a candidate
// parent set against one fitted on that set plus one extra parent.
package citest

import (
	"github.com/johnpierman/pgmgo/containers"
	"github.com/johnpierman/pgmgo/dist"
	"github.com/johnpierman/pgmgo/suffstat"
)

// Estimator fits the sufficient statistics and CIM for target variable x
// conditioned on parent set z; CTPC calls it once per candidate parent
// set under test.
type Estimator func(x, z containers.Labels) (*suffstat.TrajectoryStats, *dist.CIM, error)

// fits bundles the paired (smaller Z, extended S=Z∪{y}) estimator output
// that both tests in this package consume.
type fits struct {
	xCard int

	statsZ *suffstat.TrajectoryStats
	cimZ   *dist.CIM

	statsS *suffstat.TrajectoryStats
	cimS   *dist.CIM

	// sToZ[j] is the flat Z-configuration matching flat S-configuration
	// j, obtained by dropping y's coordinate from S's index tuple.
	sToZ []int
}

func runPair(estimator Estimator, xVar string, z []string, y string) (*fits, error) {
	x, err := containers.NewLabels([]string{xVar})
	if err != nil {
		return nil, err
	}
	zLabels, err := containers.NewLabels(z)
	if err != nil {
		return nil, err
	}
	sLabels, err := containers.NewLabels(append(append([]string(nil), z...), y))
	if err != nil {
		return nil, err
	}

	statsZ, cimZ, err := estimator(x, zLabels)
	if err != nil {
		return nil, err
	}
	statsS, cimS, err := estimator(x, sLabels)
	if err != nil {
		return nil, err
	}

	sToZ, err := mapSToZ(statsS.Z, statsZ.Z, y)
	if err != nil {
		return nil, err
	}

	return &fits{
		xCard:  statsZ.X.Shape()[0],
		statsZ: statsZ,
		cimZ:   cimZ,
		statsS: statsS,
		cimS:   cimS,
		sToZ:   sToZ,
	}, nil
}

// mapSToZ builds, for every flat index over sStates, the flat index over
// zStates obtained by dropping y's coordinate.
func mapSToZ(sStates, zStates containers.States, y string) ([]int, error) {
	sLabels := sStates.Labels()
	sPos := sLabels.IndexOf(y)
	if sPos < 0 {
		return nil, containers.ErrInvalidArgument("candidate parent %q not found in extended set", y)
	}

	sRMI := containers.NewRMI(sStates.Shape())
	zRMI := containers.NewRMI(zStates.Shape())
	zNames := zStates.Labels().Names()
	sNames := sLabels.Names()

	out := make([]int, sRMI.Size())
	for j := 0; j < sRMI.Size(); j++ {
		coord, err := sRMI.Unravel(j)
		if err != nil {
			return nil, err
		}
		zCoord := make([]int, len(zNames))
		zi := 0
		for si, name := range sNames {
			if name == y {
				continue
			}
			if zi < len(zNames) && zNames[zi] == name {
				zCoord[zi] = coord[si]
				zi++
			}
		}
		i, err := zRMI.Ravel(zCoord)
		if err != nil {
			return nil, err
		}
		out[j] = i
	}
	return out, nil
}

func rowSum(m rowAt, row, n int) float64 {
	total := 0.0
	for j := 0; j < n; j++ {
		total += m.At(row, j)
	}
	return total
}

type rowAt interface {
	At(i, j int) float64
}
