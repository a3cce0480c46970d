package em

import "github.com/johnpierman/pgmgo/containers"

// Builder assembles a Driver through chained With* calls:
// NewBuilder(initial, evidence).WithEStep(f).WithMStep(g).WithStop(p).Build().
type Builder[Model, Evidence, Expectation any] struct {
	initial  Model
	evidence Evidence
	eStep    EStep[Model, Evidence, Expectation]
	mStep    MStep[Model, Expectation]
	stop     StopPredicate[Model]
}

// NewBuilder starts a Builder from the initial model and the evidence
// set.
func NewBuilder[Model, Evidence, Expectation any](initial Model, evidence Evidence) *Builder[Model, Evidence, Expectation] {
	return &Builder[Model, Evidence, Expectation]{initial: initial, evidence: evidence}
}

// WithEStep sets the E-step callback.
func (b *Builder[Model, Evidence, Expectation]) WithEStep(f EStep[Model, Evidence, Expectation]) *Builder[Model, Evidence, Expectation] {
	b.eStep = f
	return b
}

// WithMStep sets the M-step callback.
func (b *Builder[Model, Evidence, Expectation]) WithMStep(f MStep[Model, Expectation]) *Builder[Model, Evidence, Expectation] {
	b.mStep = f
	return b
}

// WithStop sets the stop predicate.
func (b *Builder[Model, Evidence, Expectation]) WithStop(p StopPredicate[Model]) *Builder[Model, Evidence, Expectation] {
	b.stop = p
	return b
}

// Build validates the assembled callbacks and returns a ready Driver.
func (b *Builder[Model, Evidence, Expectation]) Build() (*Driver[Model, Evidence, Expectation], error) {
	if b.eStep == nil {
		return nil, containers.ErrInvalidArgument("em: missing e-step callback")
	}
	if b.mStep == nil {
		return nil, containers.ErrInvalidArgument("em: missing m-step callback")
	}
	if b.stop == nil {
		return nil, containers.ErrInvalidArgument("em: missing stop predicate")
	}
	return NewDriver(b.initial, b.evidence, b.eStep, b.mStep, b.stop), nil
}
