package data

import "github.com/johnpierman/pgmgo/containers"

// CatIncTable is an incomplete categorical values matrix: like CatTable,
// but a column's byte value may be the reserved sentinel 255 to denote
// "missing".
type CatIncTable struct {
	states containers.States
	values [][]byte
}

// NewCatIncTable builds a normalised incomplete categorical table,
// following the same column/state remap contract as NewCatTable.
func NewCatIncTable(labels []string, perVarStates map[string][]string, values [][]byte) (*CatIncTable, error) {
	states, remapped, err := normalizeCategorical(labels, perVarStates, values, true)
	if err != nil {
		return nil, err
	}
	return &CatIncTable{states: states, values: remapped}, nil
}

func (t *CatIncTable) States() containers.States { return t.states }
func (t *CatIncTable) Labels() containers.Labels { return t.states.Labels() }
func (t *CatIncTable) NRows() int                { return len(t.values) }
func (t *CatIncTable) NCols() int                { return t.states.Labels().Len() }

func (t *CatIncTable) Value(row, col int) byte { return t.values[row][col] }

// IsMissing reports whether (row, col) carries the missing sentinel.
func (t *CatIncTable) IsMissing(row, col int) bool { return t.values[row][col] == missingByte }

// Mask returns the boolean missingness mask M[i][j].
func (t *CatIncTable) Mask() [][]bool {
	mask := make([][]bool, t.NRows())
	for i, row := range t.values {
		mask[i] = make([]bool, len(row))
		for j, v := range row {
			mask[i][j] = v == missingByte
		}
	}
	return mask
}

// Column returns a copy of the column for label name, with 255 marking
// missing entries.
func (t *CatIncTable) Column(name string) []byte {
	j := t.states.Labels().IndexOf(name)
	out := make([]byte, t.NRows())
	for i := range out {
		out[i] = t.values[i][j]
	}
	return out
}
