// Package containers provides the semantic building blocks shared by every
// dataset, CPD and CIM in this module: ordered label sets, ordered
// label-to-state-set mappings, shape vectors and the ravel multi-index.
package containers

import "fmt"

// Kind tags the category of a validation failure, mirroring the error
// taxonomy every fallible constructor in this module draws from.
type Kind string

const (
	KindInvalidArgument Kind = "invalid_argument"
	KindOutOfBounds     Kind = "out_of_bounds"
	KindShape           Kind = "shape"
	KindCardinality     Kind = "cardinality"
	KindNonFinite       Kind = "non_finite"
	KindTimeOrder       Kind = "time_order"
	KindTransitionRate  Kind = "transition_rate"
	KindZeroMarginal    Kind = "zero_marginal"
	KindCycle           Kind = "cycle"
	KindUnimplemented   Kind = "unimplemented"
)

// Error is the single typed error value returned by constructors and
// estimators across this module.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Is allows errors.Is(err, &Error{Kind: ...}) to match on Kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func newErr(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func ErrInvalidArgument(format string, args ...any) *Error { return newErr(KindInvalidArgument, format, args...) }
func ErrOutOfBounds(format string, args ...any) *Error     { return newErr(KindOutOfBounds, format, args...) }
func ErrShape(format string, args ...any) *Error           { return newErr(KindShape, format, args...) }
func ErrCardinality(format string, args ...any) *Error     { return newErr(KindCardinality, format, args...) }
func ErrNonFinite(format string, args ...any) *Error       { return newErr(KindNonFinite, format, args...) }
func ErrTimeOrder(format string, args ...any) *Error       { return newErr(KindTimeOrder, format, args...) }
func ErrTransitionRate(format string, args ...any) *Error  { return newErr(KindTransitionRate, format, args...) }
func ErrZeroMarginal(format string, args ...any) *Error    { return newErr(KindZeroMarginal, format, args...) }
func ErrCycle(format string, args ...any) *Error           { return newErr(KindCycle, format, args...) }
func ErrUnimplemented(format string, args ...any) *Error   { return newErr(KindUnimplemented, format, args...) }
