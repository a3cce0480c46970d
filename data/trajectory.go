package data

import (
	"math"
	"sort"

	"github.com/johnpierman/pgmgo/containers"
)

// Trajectory is a single continuous-time realisation: an L x p byte event
// matrix and an L-vector of non-negative, strictly increasing times, with
// successive rows differing in at most one variable.
type Trajectory struct {
	states containers.States
	events [][]byte
	times  []float64
}

// NewTrajectory builds a normalised trajectory: rows are sorted by time,
// then strict time monotonicity and the single-event-transition invariant
// are checked.
func NewTrajectory(labels []string, perVarStates map[string][]string, events [][]byte, times []float64) (*Trajectory, error) {
	if len(events) != len(times) {
		return nil, containers.ErrShape("events has %d rows, times has %d entries", len(events), len(times))
	}
	if len(events) == 0 {
		return nil, containers.ErrInvalidArgument("trajectory must have at least one event")
	}
	for _, tm := range times {
		if math.IsNaN(tm) || math.IsInf(tm, 0) {
			return nil, containers.ErrTimeOrder("time %v is not finite", tm)
		}
		if tm < 0 {
			return nil, containers.ErrTimeOrder("time %v is negative", tm)
		}
	}

	order := make([]int, len(times))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return times[order[i]] < times[order[j]] })

	sortedEvents := make([][]byte, len(events))
	sortedTimes := make([]float64, len(times))
	for newIdx, oldIdx := range order {
		sortedEvents[newIdx] = events[oldIdx]
		sortedTimes[newIdx] = times[oldIdx]
	}

	for i := 1; i < len(sortedTimes); i++ {
		if sortedTimes[i] <= sortedTimes[i-1] {
			return nil, containers.ErrTimeOrder("times are not strictly increasing at position %d", i)
		}
	}

	states, remapped, err := normalizeCategorical(labels, perVarStates, sortedEvents, false)
	if err != nil {
		return nil, err
	}

	for i := 1; i < len(remapped); i++ {
		changed := 0
		for j := range remapped[i] {
			if remapped[i][j] != remapped[i-1][j] {
				changed++
			}
		}
		if changed > 1 {
			return nil, containers.ErrTransitionRate("event at position %d changes %d variables simultaneously", i, changed)
		}
	}

	return &Trajectory{states: states, events: remapped, times: sortedTimes}, nil
}

func (t *Trajectory) States() containers.States { return t.states }
func (t *Trajectory) Labels() containers.Labels { return t.states.Labels() }
func (t *Trajectory) Len() int                  { return len(t.times) }
func (t *Trajectory) Time(i int) float64        { return t.times[i] }
func (t *Trajectory) Event(i int) []byte {
	out := make([]byte, len(t.events[i]))
	copy(out, t.events[i])
	return out
}

// Transition is one consumed ((e_i, t_i), (e_{i+1}, t_{i+1})) pair.
type Transition struct {
	EventBefore []byte
	TimeBefore  float64
	EventAfter  []byte
	TimeAfter   float64
}

// Transitions returns a lazy, restartable sequence of consecutive event
// pairs via a yield callback, so the sufficient-statistics engine never
// needs to materialise the whole sequence.
func (t *Trajectory) Transitions(yield func(Transition) bool) {
	for i := 0; i+1 < len(t.times); i++ {
		tr := Transition{
			EventBefore: t.events[i],
			TimeBefore:  t.times[i],
			EventAfter:  t.events[i+1],
			TimeAfter:   t.times[i+1],
		}
		if !yield(tr) {
			return
		}
	}
}

// TrajectoryCollection is a sequence of trajectories sharing identical
// labels, states and shape.
type TrajectoryCollection struct {
	states       containers.States
	trajectories []*Trajectory
}

// NewTrajectoryCollection validates that every trajectory shares the same
// States before grouping them.
func NewTrajectoryCollection(trajectories []*Trajectory) (*TrajectoryCollection, error) {
	if len(trajectories) == 0 {
		return nil, containers.ErrInvalidArgument("a trajectory collection needs at least one trajectory")
	}
	ref := trajectories[0].States()
	for i, tr := range trajectories {
		if !statesEqual(ref, tr.States()) {
			return nil, containers.ErrShape("trajectory %d has different labels/states from trajectory 0", i)
		}
	}
	out := make([]*Trajectory, len(trajectories))
	copy(out, trajectories)
	return &TrajectoryCollection{states: ref, trajectories: out}, nil
}

func (c *TrajectoryCollection) States() containers.States   { return c.states }
func (c *TrajectoryCollection) NRows() int                  { return len(c.trajectories) }
func (c *TrajectoryCollection) Trajectories() []*Trajectory { return c.trajectories }

// WeightedTrajectorySet is a trajectory collection with a per-trajectory
// weight, the representation EM's E-step produces and the M-step
// consumes.
type WeightedTrajectorySet = Weighted[*TrajectoryCollection]

func statesEqual(a, b containers.States) bool {
	la, lb := a.Labels(), b.Labels()
	if !la.Equal(lb) {
		return false
	}
	for _, n := range la.Names() {
		as, bs := a.StateNames(n), b.StateNames(n)
		if len(as) != len(bs) {
			return false
		}
		for i := range as {
			if as[i] != bs[i] {
				return false
			}
		}
	}
	return true
}
