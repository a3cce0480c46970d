package suffstat

import (
	"gonum.org/v1/gonum/mat"

	"github.com/johnpierman/pgmgo/containers"
	"github.com/johnpierman/pgmgo/data"
)

// TrajectoryStats is the sufficient statistics bundle for a CIM fit: a
// per-Z-configuration transition-count slice N_xz and a matching
// state-residence-time matrix T_xz.
type TrajectoryStats struct {
	X, Z       containers.States
	Nxz        []*mat.Dense // one |X|x|X| slice per flat Z configuration
	Txz        *mat.Dense   // zFlat x xFlat
	SampleSize float64
}

// FitTrajectory computes (N_xz, T_xz) over a single trajectory.
func FitTrajectory(traj *data.Trajectory, x, z containers.Labels) (*TrajectoryStats, error) {
	return fitTrajectories([]*data.Trajectory{traj}, nil, x, z)
}

// FitTrajectoryCollection computes (N_xz, T_xz) over every trajectory in
// a collection, summing contributions.
func FitTrajectoryCollection(coll *data.TrajectoryCollection, x, z containers.Labels) (*TrajectoryStats, error) {
	return fitTrajectories(coll.Trajectories(), nil, x, z)
}

// FitWeightedTrajectorySet computes (N_xz, T_xz) over a weighted set of
// trajectories, scaling each trajectory's contribution by its weight.
func FitWeightedTrajectorySet(wt *data.WeightedTrajectorySet, x, z containers.Labels) (*TrajectoryStats, error) {
	return fitTrajectories(wt.Table.Trajectories(), wt.Weights, x, z)
}

func fitTrajectories(trajs []*data.Trajectory, weights []float64, x, z containers.Labels) (*TrajectoryStats, error) {
	if len(trajs) == 0 {
		return nil, containers.ErrInvalidArgument("at least one trajectory is required")
	}

	states := trajs[0].States()
	xStates := states.Restrict(x)
	zStates := states.Restrict(z)
	xRMI := containers.NewRMI(xStates.Shape())
	zRMI := containers.NewRMI(zStates.Shape())

	nxz := make([]*mat.Dense, zRMI.Size())
	for i := range nxz {
		nxz[i] = mat.NewDense(xRMI.Size(), xRMI.Size(), nil)
	}
	txz := mat.NewDense(zRMI.Size(), xRMI.Size(), nil)
	sampleSize := 0.0

	xNames, zNames := x.Names(), z.Names()

	for ti, traj := range trajs {
		w := 1.0
		if weights != nil {
			w = weights[ti]
		}

		var rangeErr error
		traj.Transitions(func(tr data.Transition) bool {
			xi := coordinatesFromEvent(tr.EventBefore, xNames, traj)
			zi := coordinatesFromEvent(tr.EventBefore, zNames, traj)
			xOff, err := xRMI.Ravel(xi)
			if err != nil {
				rangeErr = err
				return false
			}
			zOff, err := zRMI.Ravel(zi)
			if err != nil {
				rangeErr = err
				return false
			}

			xNext := coordinatesFromEvent(tr.EventAfter, xNames, traj)
			xNextOff, err := xRMI.Ravel(xNext)
			if err != nil {
				rangeErr = err
				return false
			}

			if xNextOff != xOff {
				nxz[zOff].Set(xOff, xNextOff, nxz[zOff].At(xOff, xNextOff)+w)
			}
			dt := tr.TimeAfter - tr.TimeBefore
			txz.Set(zOff, xOff, txz.At(zOff, xOff)+w*dt)
			sampleSize += w * dt
			return true
		})
		if rangeErr != nil {
			return nil, rangeErr
		}
	}

	return &TrajectoryStats{X: xStates, Z: zStates, Nxz: nxz, Txz: txz, SampleSize: sampleSize}, nil
}

func coordinatesFromEvent(event []byte, names []string, traj *data.Trajectory) []int {
	idx := make([]int, len(names))
	labels := traj.Labels()
	for i, n := range names {
		idx[i] = int(event[labels.IndexOf(n)])
	}
	return idx
}
