// Package data implements the tabular and trajectory dataset variants:
// complete, incomplete and weighted categorical and Gaussian tables, plus
// trajectories and their collections. Every constructor applies the same
// normalisation: labels are sorted ascending, each variable's state set is
// sorted independently, and the value matrix's columns (and, for
// categorical variables, each column's byte codes) are permuted to match.
package data

import "github.com/johnpierman/pgmgo/containers"

const missingByte = 255

// CatTable is a complete categorical values matrix: n_samples x n_variables
// bytes, column j in [0, shape[j]).
type CatTable struct {
	states containers.States
	values [][]byte
}

// NewCatTable builds a normalised complete categorical table. labels and
// perVarStates may be given in any order; values columns correspond
// positionally to labels (not to the post-sort order) and byte codes index
// positionally into perVarStates[labels[j]] (not the post-sort state
// order) — the constructor performs both remaps.
func NewCatTable(labels []string, perVarStates map[string][]string, values [][]byte) (*CatTable, error) {
	states, remapped, err := normalizeCategorical(labels, perVarStates, values, false)
	if err != nil {
		return nil, err
	}
	return &CatTable{states: states, values: remapped}, nil
}

// States returns the ordered states backing this table.
func (t *CatTable) States() containers.States { return t.states }

// Labels returns the sorted labels.
func (t *CatTable) Labels() containers.Labels { return t.states.Labels() }

// NRows returns the number of samples.
func (t *CatTable) NRows() int { return len(t.values) }

// NCols returns the number of variables.
func (t *CatTable) NCols() int { return t.states.Labels().Len() }

// Row returns a copy of row i.
func (t *CatTable) Row(i int) []byte {
	out := make([]byte, len(t.values[i]))
	copy(out, t.values[i])
	return out
}

// Column returns a copy of the column for label name.
func (t *CatTable) Column(name string) []byte {
	j := t.states.Labels().IndexOf(name)
	out := make([]byte, t.NRows())
	for i := range out {
		out[i] = t.values[i][j]
	}
	return out
}

// Value returns the byte code at (row, variable index).
func (t *CatTable) Value(row, col int) byte { return t.values[row][col] }

// normalizeCategorical is shared by the complete and incomplete
// constructors. allowMissing permits the sentinel byte 255 in values.
func normalizeCategorical(labels []string, perVarStates map[string][]string, values [][]byte, allowMissing bool) (containers.States, [][]byte, error) {
	if len(labels) == 0 {
		return containers.States{}, nil, containers.ErrInvalidArgument("at least one label is required")
	}
	for i, row := range values {
		if len(row) != len(labels) {
			return containers.States{}, nil, containers.ErrShape("row %d has %d columns, expected %d", i, len(row), len(labels))
		}
	}

	// Per-variable remap: old byte code (index into perVarStates[label] as
	// given) -> new byte code (index into the sorted state set).
	remapPerCol := make([][]byte, len(labels))
	for j, name := range labels {
		raw, ok := perVarStates[name]
		if !ok {
			return containers.States{}, nil, containers.ErrInvalidArgument("no states given for label %q", name)
		}
		_, toSorted, _, err := containers.SortIndex(raw)
		if err != nil {
			return containers.States{}, nil, err
		}
		if len(raw) > containers.MaxCardinality {
			return containers.States{}, nil, containers.ErrCardinality("variable %q has %d states, maximum is %d", name, len(raw), containers.MaxCardinality)
		}
		remap := make([]byte, len(raw))
		for oldIdx, newIdx := range toSorted {
			remap[oldIdx] = byte(newIdx)
		}
		remapPerCol[j] = remap
	}

	states, err := containers.NewStates(perVarStates)
	if err != nil {
		return containers.States{}, nil, err
	}

	labelPerm, sortedLabels, err := containers.SortPermutation(labels)
	if err != nil {
		return containers.States{}, nil, err
	}
	_ = sortedLabels

	out := make([][]byte, len(values))
	for i, row := range values {
		newRow := make([]byte, len(row))
		for newCol, origCol := range labelPerm {
			v := row[origCol]
			if v == missingByte {
				if !allowMissing {
					return containers.States{}, nil, containers.ErrCardinality("row %d column %q has missing sentinel in a complete table", i, labels[origCol])
				}
				newRow[newCol] = missingByte
				continue
			}
			card := len(perVarStates[labels[origCol]])
			if int(v) >= card {
				return containers.States{}, nil, containers.ErrCardinality("row %d column %q has value %d >= cardinality %d", i, labels[origCol], v, card)
			}
			newRow[newCol] = remapPerCol[origCol][v]
		}
		out[i] = newRow
	}

	return states, out, nil
}
