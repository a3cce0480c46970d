package potential

import (
	"github.com/johnpierman/pgmgo/containers"
	"github.com/johnpierman/pgmgo/dist"
)

// FromCPD views a categorical CPD P(X|Z) as a potential over X union Z
//. The product over xz equals cpd.At(z, x).
func FromCPD(cpd *dist.CPD) (*Discrete, error) {
	x, z := cpd.X(), cpd.Z()
	perVar := map[string][]string{}
	for _, n := range x.Labels().Names() {
		perVar[n] = x.StateNames(n)
	}
	for _, n := range z.Labels().Names() {
		perVar[n] = z.StateNames(n)
	}
	states, err := containers.NewStates(perVar)
	if err != nil {
		return nil, err
	}

	rmi := containers.NewRMI(states.Shape())
	values := make([]float64, rmi.Size())

	xRMI := containers.NewRMI(x.Shape())
	zRMI := containers.NewRMI(z.Shape())

	names := states.Labels().Names()
	xPos, zPos := positions(names, x.Labels().Names()), positions(names, z.Labels().Names())

	idx := make([]int, len(names))
	fillAndRecurse(names, states, idx, 0, func(idx []int) {
		xIdx := project(idx, xPos)
		zIdx := project(idx, zPos)
		xOff, _ := xRMI.Ravel(xIdx)
		zOff, _ := zRMI.Ravel(zIdx)
		off, _ := rmi.Ravel(idx)
		values[off] = cpd.At(zOff, xOff)
	})

	return &Discrete{states: states, rmi: rmi, values: values}, nil
}

// IntoCPD reads off a CPD P(x|z) from a potential over x union z, dividing
// each Z-configuration's row by its sum over X. The
// potential must factor exactly as a CPD: every Z-slice must have a
// non-zero X-marginal.
func IntoCPD(p *Discrete, x, z containers.Labels) (*dist.CPD, error) {
	xStates := p.states.Restrict(x)
	zStates := p.states.Restrict(z)
	xRMI := containers.NewRMI(xStates.Shape())
	zRMI := containers.NewRMI(zStates.Shape())

	rows := make([][]float64, zRMI.Size())
	for i := range rows {
		rows[i] = make([]float64, xRMI.Size())
	}

	names := p.Labels().Names()
	xPos, zPos := positions(names, x.Names()), positions(names, z.Names())

	idx := make([]int, len(names))
	p.forEach(idx, 0, func(idx []int, off int) {
		xIdx := project(idx, xPos)
		zIdx := project(idx, zPos)
		xOff, _ := xRMI.Ravel(xIdx)
		zOff, _ := zRMI.Ravel(zIdx)
		rows[zOff][xOff] += p.values[off]
	})

	for zi, row := range rows {
		sum := 0.0
		for _, v := range row {
			sum += v
		}
		if sum == 0 {
			return nil, containers.ErrZeroMarginal("z configuration %d has zero X-marginal", zi)
		}
		for xi := range row {
			row[xi] /= sum
		}
	}

	return dist.NewCPD(xStates, zStates, rows)
}

func positions(universe, subset []string) []int {
	pos := make(map[string]int, len(universe))
	for i, n := range universe {
		pos[n] = i
	}
	out := make([]int, len(subset))
	for i, n := range subset {
		out[i] = pos[n]
	}
	return out
}

func project(idx []int, pos []int) []int {
	out := make([]int, len(pos))
	for i, p := range pos {
		out[i] = idx[p]
	}
	return out
}
