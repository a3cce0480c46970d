package data

import "github.com/johnpierman/pgmgo/containers"

// Column is the foreign tabular representation this module converts
// to/from: a column name plus a per-column categorical or numeric array.
type Column struct {
	Name        string
	Categorical []string  // state name per row; nil if Numeric is set
	Numeric     []float64 // value per row; nil if Categorical is set
}

// FromColumns builds a CatTable from a set of categorical foreign
// columns. The mapping is bijective modulo label sorting: ToColumns
// recovers the same (name, per-row state name) data, just reordered.
func FromColumns(cols []Column) (*CatTable, error) {
	if len(cols) == 0 {
		return nil, containers.ErrInvalidArgument("at least one column is required")
	}
	nRows := len(cols[0].Categorical)
	labels := make([]string, len(cols))
	perVarStates := make(map[string][]string, len(cols))
	stateIndex := make(map[string]map[string]int, len(cols))

	for j, c := range cols {
		if c.Categorical == nil {
			return nil, containers.ErrInvalidArgument("column %q is not categorical", c.Name)
		}
		if len(c.Categorical) != nRows {
			return nil, containers.ErrShape("column %q has %d rows, expected %d", c.Name, len(c.Categorical), nRows)
		}
		labels[j] = c.Name

		seen := make(map[string]struct{})
		var uniq []string
		for _, s := range c.Categorical {
			if _, ok := seen[s]; !ok {
				seen[s] = struct{}{}
				uniq = append(uniq, s)
			}
		}
		perVarStates[c.Name] = uniq
		idx := make(map[string]int, len(uniq))
		for i, s := range uniq {
			idx[s] = i
		}
		stateIndex[c.Name] = idx
	}

	values := make([][]byte, nRows)
	for i := range values {
		values[i] = make([]byte, len(cols))
		for j, c := range cols {
			values[i][j] = byte(stateIndex[c.Name][c.Categorical[i]])
		}
	}

	return NewCatTable(labels, perVarStates, values)
}

// ToColumns converts a CatTable back to the foreign column representation.
func (t *CatTable) ToColumns() []Column {
	labels := t.Labels().Names()
	cols := make([]Column, len(labels))
	for j, name := range labels {
		names := t.states.StateNames(name)
		col := make([]string, t.NRows())
		for i := 0; i < t.NRows(); i++ {
			col[i] = names[t.values[i][j]]
		}
		cols[j] = Column{Name: name, Categorical: col}
	}
	return cols
}

// FromNumericColumns builds a GaussTable from a set of foreign numeric
// columns.
func FromNumericColumns(cols []Column) (*GaussTable, error) {
	if len(cols) == 0 {
		return nil, containers.ErrInvalidArgument("at least one column is required")
	}
	nRows := len(cols[0].Numeric)
	labels := make([]string, len(cols))
	values := make([][]float64, nRows)
	for i := range values {
		values[i] = make([]float64, len(cols))
	}
	for j, c := range cols {
		if c.Numeric == nil {
			return nil, containers.ErrInvalidArgument("column %q is not numeric", c.Name)
		}
		if len(c.Numeric) != nRows {
			return nil, containers.ErrShape("column %q has %d rows, expected %d", c.Name, len(c.Numeric), nRows)
		}
		labels[j] = c.Name
		for i, v := range c.Numeric {
			values[i][j] = v
		}
	}
	return NewGaussTable(labels, values)
}

// ToColumns converts a GaussTable back to the foreign column
// representation.
func (t *GaussTable) ToColumns() []Column {
	labels := t.Labels().Names()
	cols := make([]Column, len(labels))
	for j, name := range labels {
		col := make([]float64, t.NRows())
		for i := 0; i < t.NRows(); i++ {
			col[i] = t.values[i][j]
		}
		cols[j] = Column{Name: name, Numeric: col}
	}
	return cols
}
