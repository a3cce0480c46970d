package suffstat

import (
	"gonum.org/v1/gonum/mat"

	"github.com/johnpierman/pgmgo/containers"
	"github.com/johnpierman/pgmgo/data"
)

// MissingMethod selects how FitCategoricalIncomplete handles rows with
// missing coordinates.
type MissingMethod int

const (
	// ListwiseDeletion drops any row that is missing in any column of the
	// table, not just the X/Z columns being fit.
	ListwiseDeletion MissingMethod = iota
	// PairwiseDeletion drops a row only if it is missing within the X/Z
	// columns being fit, keeping rows missing elsewhere.
	PairwiseDeletion
	// InverseProbabilityWeighting reweights fully-observed-on-X/Z rows by
	// the inverse of their estimated probability of being observed.
	InverseProbabilityWeighting
	// AugmentedIPW adds a plug-in augmentation term for rows missing a
	// coordinate of X/Z, on top of the IPW weight.
	AugmentedIPW
)

// Mechanism maps a variable name to the set of fully-observed "predictor
// of missingness" variables used to estimate P(R_v=1 | Pa_R(v)).
type Mechanism map[string][]string

// FitCategoricalIncomplete computes N_xz over an incomplete categorical
// table under the given missing-data method.
func FitCategoricalIncomplete(table *data.CatIncTable, x, z containers.Labels, method MissingMethod, mechanism Mechanism) (*CategoricalStats, error) {
	switch method {
	case ListwiseDeletion:
		return fitDeletion(table, x, z, true)
	case PairwiseDeletion:
		return fitDeletion(table, x, z, false)
	case InverseProbabilityWeighting:
		return fitIPW(table, x, z, mechanism, false)
	case AugmentedIPW:
		return fitIPW(table, x, z, mechanism, true)
	default:
		return nil, containers.ErrInvalidArgument("unknown missing-data method %d", method)
	}
}

// fitDeletion implements LW (wholeRow=true: any column missing drops the
// row) and PW (wholeRow=false: only X/Z columns are checked).
func fitDeletion(table *data.CatIncTable, x, z containers.Labels, wholeRow bool) (*CategoricalStats, error) {
	xz := containers.Union(x, z)
	labels := table.Labels()

	var keep []int
	for row := 0; row < table.NRows(); row++ {
		missing := false
		if wholeRow {
			for col := 0; col < table.NCols(); col++ {
				if table.IsMissing(row, col) {
					missing = true
					break
				}
			}
		} else {
			for _, n := range xz.Names() {
				if table.IsMissing(row, labels.IndexOf(n)) {
					missing = true
					break
				}
			}
		}
		if !missing {
			keep = append(keep, row)
		}
	}

	return accumulate(table.States(), x, z, len(keep), func(row int, name string) byte {
		return table.Value(keep[row], labels.IndexOf(name))
	}, nil)
}

// fitIPW implements IPW and, when augment is true, AIPW.
//
// The missingness model P(R_v=1 | Pa_R(v)) is a plug-in estimator: rows
// are grouped by the flat configuration of Pa_R(v), and within each group
// the fraction of rows observed in v estimates the probability.
func fitIPW(table *data.CatIncTable, x, z containers.Labels, mechanism Mechanism, augment bool) (*CategoricalStats, error) {
	xz := containers.Union(x, z)
	labels := table.Labels()
	states := table.States()

	models := make(map[string]*missingnessModel, xz.Len())
	for _, v := range xz.Names() {
		predictors := mechanism[v]
		model, err := fitMissingnessModel(table, v, predictors)
		if err != nil {
			return nil, err
		}
		models[v] = model
	}

	xStates := states.Restrict(x)
	zStates := states.Restrict(z)
	xRMI := containers.NewRMI(xStates.Shape())
	zRMI := containers.NewRMI(zStates.Shape())
	nxz := mat.NewDense(zRMI.Size(), xRMI.Size(), nil)
	sampleSize := 0.0

	xNames, zNames := x.Names(), z.Names()

	for row := 0; row < table.NRows(); row++ {
		fullyObserved := true
		for _, n := range xz.Names() {
			if table.IsMissing(row, labels.IndexOf(n)) {
				fullyObserved = false
				break
			}
		}

		if fullyObserved {
			prob := 1.0
			for _, n := range xz.Names() {
				prob *= models[n].probObserved(table, row, labels)
			}
			if prob <= 0 {
				continue
			}
			w := 1 / prob

			xIdx := coordinates(table, row, xNames, labels)
			zIdx := coordinates(table, row, zNames, labels)
			xOff, err := xRMI.Ravel(xIdx)
			if err != nil {
				return nil, err
			}
			zOff, err := zRMI.Ravel(zIdx)
			if err != nil {
				return nil, err
			}
			nxz.Set(zOff, xOff, nxz.At(zOff, xOff)+w)
			sampleSize += w
			continue
		}

		if !augment {
			continue
		}

		// AIPW augmentation: for each cell consistent with the row's
		// observed X/Z coordinates, add (1 - 1/P_v)*P(cell|observed).
		for _, v := range xz.Names() {
			col := labels.IndexOf(v)
			if !table.IsMissing(row, col) {
				continue
			}
			model := models[v]
			pObs := model.probObserved(table, row, labels)
			if pObs <= 0 {
				continue
			}
			condProbs := conditionalDistribution(table, v, xz.Names(), row, labels, states)
			coeff := 1 - 1/pObs
			for state, p := range condProbs {
				xIdx := coordinatesWithOverride(table, row, xNames, labels, v, state)
				zIdx := coordinatesWithOverride(table, row, zNames, labels, v, state)
				xOff, err := xRMI.Ravel(xIdx)
				if err != nil {
					continue
				}
				zOff, err := zRMI.Ravel(zIdx)
				if err != nil {
					continue
				}
				contribution := coeff * p
				nxz.Set(zOff, xOff, nxz.At(zOff, xOff)+contribution)
				sampleSize += contribution
			}
		}
	}

	return &CategoricalStats{X: xStates, Z: zStates, Nxz: nxz, SampleSize: sampleSize}, nil
}

func coordinates(table *data.CatIncTable, row int, names []string, labels containers.Labels) []int {
	idx := make([]int, len(names))
	for i, n := range names {
		idx[i] = int(table.Value(row, labels.IndexOf(n)))
	}
	return idx
}

func coordinatesWithOverride(table *data.CatIncTable, row int, names []string, labels containers.Labels, overrideVar string, overrideVal int) []int {
	idx := make([]int, len(names))
	for i, n := range names {
		if n == overrideVar {
			idx[i] = overrideVal
			continue
		}
		idx[i] = int(table.Value(row, labels.IndexOf(n)))
	}
	return idx
}

// missingnessModel is the plug-in estimator of P(R_v=1 | Pa_R(v)),
// grouped by the flat configuration of the predictor variables.
type missingnessModel struct {
	variable   string
	predictors []string
	rmi        containers.RMI
	observed   []float64
	total      []float64
}

func fitMissingnessModel(table *data.CatIncTable, variable string, predictors []string) (*missingnessModel, error) {
	states := table.States()
	labels := table.Labels()

	var perVar []string
	cards := make([]int, len(predictors))
	for i, p := range predictors {
		cards[i] = states.Cardinality(p)
	}
	perVar = predictors
	rmi := containers.NewRMI(cards)

	observed := make([]float64, rmi.Size())
	total := make([]float64, rmi.Size())

	for row := 0; row < table.NRows(); row++ {
		idx := make([]int, len(perVar))
		ok := true
		for i, p := range perVar {
			col := labels.IndexOf(p)
			if table.IsMissing(row, col) {
				ok = false
				break
			}
			idx[i] = int(table.Value(row, col))
		}
		if !ok {
			continue
		}
		off, err := rmi.Ravel(idx)
		if err != nil {
			return nil, err
		}
		total[off]++
		if !table.IsMissing(row, labels.IndexOf(variable)) {
			observed[off]++
		}
	}

	return &missingnessModel{variable: variable, predictors: predictors, rmi: rmi, observed: observed, total: total}, nil
}

func (m *missingnessModel) probObserved(table *data.CatIncTable, row int, labels containers.Labels) float64 {
	if len(m.predictors) == 0 {
		sum, n := 0.0, 0.0
		for i := range m.total {
			sum += m.observed[i]
			n += m.total[i]
		}
		if n == 0 {
			return 1
		}
		return sum / n
	}

	idx := make([]int, len(m.predictors))
	for i, p := range m.predictors {
		idx[i] = int(table.Value(row, labels.IndexOf(p)))
	}
	off, err := m.rmi.Ravel(idx)
	if err != nil || m.total[off] == 0 {
		return 1
	}
	return m.observed[off] / m.total[off]
}

// conditionalDistribution estimates P(v=state | observed coordinates of
// row over scope) from the rows where v is observed and which agree with
// row on every scope variable observed in both, as a map of state -> prob.
func conditionalDistribution(table *data.CatIncTable, v string, scope []string, row int, labels containers.Labels, states containers.States) map[int]float64 {
	card := states.Cardinality(v)
	counts := make([]float64, card)
	total := 0.0

	for r := 0; r < table.NRows(); r++ {
		col := labels.IndexOf(v)
		if table.IsMissing(r, col) {
			continue
		}
		match := true
		for _, n := range scope {
			if n == v {
				continue
			}
			c := labels.IndexOf(n)
			if table.IsMissing(r, c) || table.IsMissing(row, c) {
				continue
			}
			if table.Value(r, c) != table.Value(row, c) {
				match = false
				break
			}
		}
		if !match {
			continue
		}
		counts[table.Value(r, col)]++
		total++
	}

	out := make(map[int]float64, card)
	if total == 0 {
		for s := 0; s < card; s++ {
			out[s] = 1.0 / float64(card)
		}
		return out
	}
	for s, c := range counts {
		if c > 0 {
			out[s] = c / total
		}
	}
	return out
}
