// Package potential implements factor algebra over categorical and
// Gaussian CPDs: categorical potentials as dense tensors over an ordered
// state map, Gaussian potentials in canonical form (K, h, g). Categorical
// factors are flat tensors indexed through containers.RMI rather than a
// map-of-assignments, matching the indexing convention the rest of this
// module standardises on.
package potential

import (
	"github.com/johnpierman/pgmgo/containers"
)

// Discrete is a factor (potential function) phi(V): an ordered state map
// plus a real-valued tensor of matching shape, stored flat in row-major
// order.
type Discrete struct {
	states containers.States
	rmi    containers.RMI
	values []float64
}

// NewDiscrete validates that values has exactly states.Shape()'s product
// entries.
func NewDiscrete(states containers.States, values []float64) (*Discrete, error) {
	rmi := containers.NewRMI(states.Shape())
	if len(values) != rmi.Size() {
		return nil, containers.ErrShape("values has %d entries, expected %d", len(values), rmi.Size())
	}
	out := make([]float64, len(values))
	copy(out, values)
	return &Discrete{states: states, rmi: rmi, values: out}, nil
}

func (d *Discrete) States() containers.States { return d.states }
func (d *Discrete) Labels() containers.Labels { return d.states.Labels() }
func (d *Discrete) Values() []float64         { return append([]float64(nil), d.values...) }

// At returns the value at the given per-label coordinate tuple (in
// d.Labels() order).
func (d *Discrete) At(idx []int) (float64, error) {
	off, err := d.rmi.Ravel(idx)
	if err != nil {
		return 0, err
	}
	return d.values[off], nil
}

// Sum returns the total sum of all entries.
func (d *Discrete) Sum() float64 {
	sum := 0.0
	for _, v := range d.values {
		sum += v
	}
	return sum
}

// Normalize divides every entry by the total sum, in place.
func (d *Discrete) Normalize() error {
	sum := d.Sum()
	if sum == 0 {
		return containers.ErrInvalidArgument("cannot normalize a potential with sum 0")
	}
	for i := range d.values {
		d.values[i] /= sum
	}
	return nil
}

// Marginalize sums the tensor along the given labels and returns a new
// potential over the remaining labels.
func (d *Discrete) Marginalize(vars containers.Labels) (*Discrete, error) {
	remove := make(map[string]bool, vars.Len())
	for _, n := range vars.Names() {
		remove[n] = true
	}

	var keep []string
	for _, n := range d.Labels().Names() {
		if !remove[n] {
			keep = append(keep, n)
		}
	}

	newStates := d.states.Restrict(mustLabels(keep))
	newRMI := containers.NewRMI(newStates.Shape())
	newValues := make([]float64, newRMI.Size())

	shape := d.rmi.Cardinalities()
	keepPos := make([]int, 0, len(keep))
	for i, n := range d.Labels().Names() {
		if !remove[n] {
			keepPos = append(keepPos, i)
		}
	}

	idx := make([]int, len(shape))
	d.forEach(idx, 0, func(idx []int, off int) {
		newIdx := make([]int, len(keepPos))
		for i, p := range keepPos {
			newIdx[i] = idx[p]
		}
		newOff, _ := newRMI.Ravel(newIdx)
		newValues[newOff] += d.values[off]
	})

	return &Discrete{states: newStates, rmi: newRMI, values: newValues}, nil
}

// Condition slices the tensor at fixed coordinates for the variables in
// evidence.
func (d *Discrete) Condition(evidence map[string]int) (*Discrete, error) {
	var keep []string
	for _, n := range d.Labels().Names() {
		if _, ok := evidence[n]; !ok {
			keep = append(keep, n)
		}
	}

	newStates := d.states.Restrict(mustLabels(keep))
	newRMI := containers.NewRMI(newStates.Shape())
	newValues := make([]float64, newRMI.Size())

	labels := d.Labels().Names()
	keepPos := make(map[int]bool)
	for i, n := range labels {
		if _, ok := evidence[n]; !ok {
			keepPos[i] = true
		}
	}

	shape := d.rmi.Cardinalities()
	idx := make([]int, len(shape))
	var outerErr error
	d.forEach(idx, 0, func(idx []int, off int) {
		for i, n := range labels {
			if v, ok := evidence[n]; ok && idx[i] != v {
				return
			}
		}
		newIdx := make([]int, 0, len(keep))
		for i := range labels {
			if keepPos[i] {
				newIdx = append(newIdx, idx[i])
			}
		}
		newOff, err := newRMI.Ravel(newIdx)
		if err != nil {
			outerErr = err
			return
		}
		newValues[newOff] = d.values[off]
	})
	if outerErr != nil {
		return nil, outerErr
	}

	return &Discrete{states: newStates, rmi: newRMI, values: newValues}, nil
}

// Mul computes the pointwise product over the union of both potentials'
// variables.
func (d *Discrete) Mul(other *Discrete) (*Discrete, error) {
	return combine(d, other, func(a, b float64) float64 { return a * b })
}

// Div computes the pointwise quotient over the union of both potentials'
// variables, with the convention 0/0 = 0.
func (d *Discrete) Div(other *Discrete) (*Discrete, error) {
	return combine(d, other, func(a, b float64) float64 {
		if a == 0 && b == 0 {
			return 0
		}
		return a / b
	})
}

func combine(a, b *Discrete, op func(x, y float64) float64) (*Discrete, error) {
	union := containers.Union(a.Labels(), b.Labels())
	perVar := map[string][]string{}
	for _, n := range union.Names() {
		if a.Labels().Contains(n) {
			perVar[n] = a.states.StateNames(n)
		} else {
			perVar[n] = b.states.StateNames(n)
		}
	}
	newStates, err := containers.NewStates(perVar)
	if err != nil {
		return nil, err
	}
	newRMI := containers.NewRMI(newStates.Shape())
	newValues := make([]float64, newRMI.Size())

	names := newStates.Labels().Names()
	idx := make([]int, len(names))
	fillAndRecurse(names, newStates, idx, 0, func(idx []int) {
		av, _ := a.atSubset(names, idx)
		bv, _ := b.atSubset(names, idx)
		off, _ := newRMI.Ravel(idx)
		newValues[off] = op(av, bv)
	})

	return &Discrete{states: newStates, rmi: newRMI, values: newValues}, nil
}

// atSubset evaluates the potential at the projection of a full coordinate
// tuple (given in names order) onto this potential's own labels.
func (d *Discrete) atSubset(names []string, idx []int) (float64, error) {
	sub := make([]int, d.Labels().Len())
	myNames := d.Labels().Names()
	pos := make(map[string]int, len(names))
	for i, n := range names {
		pos[n] = idx[i]
	}
	for i, n := range myNames {
		sub[i] = pos[n]
	}
	return d.At(sub)
}

func fillAndRecurse(names []string, states containers.States, idx []int, depth int, yield func([]int)) {
	if depth == len(names) {
		cp := make([]int, len(idx))
		copy(cp, idx)
		yield(cp)
		return
	}
	card := states.Cardinality(names[depth])
	for v := 0; v < card; v++ {
		idx[depth] = v
		fillAndRecurse(names, states, idx, depth+1, yield)
	}
}

// forEach visits every coordinate tuple of d in row-major order.
func (d *Discrete) forEach(idx []int, depth int, yield func(idx []int, off int)) {
	shape := d.rmi.Cardinalities()
	if depth == len(shape) {
		off, _ := d.rmi.Ravel(idx)
		yield(idx, off)
		return
	}
	for v := 0; v < shape[depth]; v++ {
		idx[depth] = v
		d.forEach(idx, depth+1, yield)
	}
}

func mustLabels(names []string) containers.Labels {
	l, err := containers.NewLabels(names)
	if err != nil {
		// keep will only ever contain already-validated, already-unique
		// label names drawn from an existing Labels value.
		panic(err)
	}
	return l
}
