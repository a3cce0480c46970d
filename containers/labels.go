package containers

import "sort"

// Labels is an ordered, deduplicated set of non-empty variable names. After
// construction the names are always in ascending lexicographic order; no
// operation on a Labels value ever reintroduces a duplicate.
type Labels struct {
	names []string
}

// NewLabels builds a Labels from an arbitrary (possibly unsorted) slice of
// names. It rejects empty names and duplicates.
func NewLabels(names []string) (Labels, error) {
	out := make([]string, len(names))
	copy(out, names)
	sort.Strings(out)

	for i, n := range out {
		if n == "" {
			return Labels{}, ErrInvalidArgument("label at position %d is empty", i)
		}
		if i > 0 && out[i-1] == n {
			return Labels{}, ErrInvalidArgument("duplicate label %q", n)
		}
	}

	return Labels{names: out}, nil
}

// Len returns the number of labels.
func (l Labels) Len() int { return len(l.names) }

// Names returns the sorted label names. The returned slice is a copy and
// safe to mutate.
func (l Labels) Names() []string {
	out := make([]string, len(l.names))
	copy(out, l.names)
	return out
}

// At returns the label at sorted position i.
func (l Labels) At(i int) string { return l.names[i] }

// IndexOf returns the sorted position of name, or -1 if absent.
func (l Labels) IndexOf(name string) int {
	i := sort.SearchStrings(l.names, name)
	if i < len(l.names) && l.names[i] == name {
		return i
	}
	return -1
}

// Contains reports whether name is one of the labels.
func (l Labels) Contains(name string) bool { return l.IndexOf(name) >= 0 }

// Equal reports element-wise equality at matching positions.
func (l Labels) Equal(other Labels) bool {
	if len(l.names) != len(other.names) {
		return false
	}
	for i := range l.names {
		if l.names[i] != other.names[i] {
			return false
		}
	}
	return true
}

// SortPermutation returns the permutation p such that sorting names by
// ascending lexicographic order places names[p[i]] at sorted position i,
// together with the resulting sorted Labels. It is the normalisation
// primitive every dataset constructor applies to both its label list and
// its value columns.
func SortPermutation(names []string) ([]int, Labels, error) {
	toOriginal, _, sorted, err := SortIndex(names)
	if err != nil {
		return nil, Labels{}, err
	}
	lbl, err := NewLabels(sorted)
	if err != nil {
		return nil, Labels{}, err
	}
	return toOriginal, lbl, nil
}

// Union returns the sorted union of two label sets.
func Union(a, b Labels) Labels {
	set := make(map[string]struct{}, a.Len()+b.Len())
	for _, n := range a.names {
		set[n] = struct{}{}
	}
	for _, n := range b.names {
		set[n] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	lbl, _ := NewLabels(out)
	return lbl
}

// Disjoint reports whether a and b share no label.
func Disjoint(a, b Labels) bool {
	for _, n := range a.names {
		if b.Contains(n) {
			return false
		}
	}
	return true
}
