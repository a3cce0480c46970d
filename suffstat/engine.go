package suffstat

import (
	"github.com/johnpierman/pgmgo/containers"
	"github.com/johnpierman/pgmgo/data"
)

// Engine wraps an incomplete categorical table with a configured missing
// data method, built through a chained with_missing_method(method,
// mechanism) call.
type Engine struct {
	table     *data.CatIncTable
	method    MissingMethod
	mechanism Mechanism
}

// NewEngine wraps an incomplete categorical table, defaulting to listwise
// deletion.
func NewEngine(table *data.CatIncTable) *Engine {
	return &Engine{table: table, method: ListwiseDeletion}
}

// WithMissingMethod configures the missing-data method and, for IPW/AIPW,
// the missingness mechanism.
func (e *Engine) WithMissingMethod(method MissingMethod, mechanism Mechanism) *Engine {
	e.method = method
	e.mechanism = mechanism
	return e
}

// Fit computes N_xz for (X, Z) under the configured method.
func (e *Engine) Fit(x, z containers.Labels) (*CategoricalStats, error) {
	return FitCategoricalIncomplete(e.table, x, z, e.method, e.mechanism)
}
