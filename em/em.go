// Package em implements the (Structural) Expectation-Maximisation driver
// for partially observed trajectory evidence: a do-while loop alternating
// an E-step (imputation) and an M-step (re-estimation) until a
// caller-supplied stop predicate fires.
package em

// EStep consumes the current model and the evidence set and returns a
// weighted trajectory set (or any E-step output type E the caller
// chooses, typically *data.WeightedTrajectorySet).
type EStep[Model, Evidence, Expectation any] func(model Model, evidence Evidence) (Expectation, error)

// MStep re-estimates a model from an E-step's output. The structural
// variant runs CTPC internally before re-fitting parameters.
type MStep[Model, Expectation any] func(model Model, expectation Expectation) (Model, error)

// StopPredicate decides whether the driver should halt after observing
// the previous and current model and the iteration count.
type StopPredicate[Model any] func(prev, next Model, iter int) bool

// Result bundles everything the driver recorded over its run: every
// intermediate model, every E-step expectation, the final model, and the
// iteration count.
type Result[Model, Expectation any] struct {
	Models       []Model
	Expectations []Expectation
	LastModel    Model
	Iterations   int
}

// Driver runs the EM loop to convergence.
type Driver[Model, Evidence, Expectation any] struct {
	initial  Model
	evidence Evidence
	eStep    EStep[Model, Evidence, Expectation]
	mStep    MStep[Model, Expectation]
	stop     StopPredicate[Model]
}

// NewDriver builds an EM driver from its three callbacks (E-step, M-step,
// stop predicate). It does not check them for nil; Builder.Build does.
func NewDriver[Model, Evidence, Expectation any](
	initial Model,
	evidence Evidence,
	eStep EStep[Model, Evidence, Expectation],
	mStep MStep[Model, Expectation],
	stop StopPredicate[Model],
) *Driver[Model, Evidence, Expectation] {
	return &Driver[Model, Evidence, Expectation]{
		initial:  initial,
		evidence: evidence,
		eStep:    eStep,
		mStep:    mStep,
		stop:     stop,
	}
}

// Fit runs the do-while EM loop: prev <- curr; run E; run M -> curr;
// increment counter; evaluate stop.
func (d *Driver[Model, Evidence, Expectation]) Fit() (Result[Model, Expectation], error) {
	var result Result[Model, Expectation]

	curr := d.initial
	result.Models = append(result.Models, curr)

	iter := 0
	for {
		prev := curr

		expectation, err := d.eStep(prev, d.evidence)
		if err != nil {
			return result, err
		}
		result.Expectations = append(result.Expectations, expectation)

		curr, err = d.mStep(prev, expectation)
		if err != nil {
			return result, err
		}
		result.Models = append(result.Models, curr)

		iter++
		if d.stop(prev, curr, iter) {
			break
		}
	}

	result.LastModel = curr
	result.Iterations = iter
	return result, nil
}
