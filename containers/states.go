package containers

import "sort"

// MaxCardinality is the largest number of states a categorical variable may
// have: a single byte must be able to encode a category, and 255 is
// reserved as the missing sentinel in incomplete tables.
const MaxCardinality = 255

// States is an ordered mapping from label to an ordered, deduplicated set
// of state names. Its keys always equal a Labels set; for every key the
// values are sorted ascending and number at most MaxCardinality.
type States struct {
	labels Labels
	states map[string][]string
}

// NewStates builds a States value. Each variable's state names are sorted
// independently; duplicate state names or more than MaxCardinality states
// for one variable are rejected.
func NewStates(perVariable map[string][]string) (States, error) {
	names := make([]string, 0, len(perVariable))
	for n := range perVariable {
		names = append(names, n)
	}
	labels, err := NewLabels(names)
	if err != nil {
		return States{}, err
	}

	out := make(map[string][]string, len(perVariable))
	for _, n := range labels.Names() {
		src := perVariable[n]
		sorted := make([]string, len(src))
		copy(sorted, src)
		sort.Strings(sorted)

		if len(sorted) > MaxCardinality {
			return States{}, ErrCardinality("variable %q has %d states, maximum is %d", n, len(sorted), MaxCardinality)
		}
		for i, s := range sorted {
			if s == "" {
				return States{}, ErrInvalidArgument("variable %q has an empty state name", n)
			}
			if i > 0 && sorted[i-1] == s {
				return States{}, ErrInvalidArgument("variable %q has duplicate state %q", n, s)
			}
		}
		out[n] = sorted
	}

	return States{labels: labels, states: out}, nil
}

// Labels returns the ordered label set backing this States value.
func (s States) Labels() Labels { return s.labels }

// Cardinality returns the number of states of variable name.
func (s States) Cardinality(name string) int { return len(s.states[name]) }

// StateNames returns the sorted state names of variable name.
func (s States) StateNames(name string) []string {
	src := s.states[name]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// IndexOf returns the sorted position of stateName within variable name, or
// -1 if absent.
func (s States) IndexOf(name, stateName string) int {
	names := s.states[name]
	i := sort.SearchStrings(names, stateName)
	if i < len(names) && names[i] == stateName {
		return i
	}
	return -1
}

// Shape returns the cardinality vector for the labels in order.
func (s States) Shape() []int {
	out := make([]int, s.labels.Len())
	for i, n := range s.labels.Names() {
		out[i] = len(s.states[n])
	}
	return out
}

// Restrict returns the States restricted to the given subset of labels,
// preserving ascending order.
func (s States) Restrict(subset Labels) States {
	out := make(map[string][]string, subset.Len())
	for _, n := range subset.Names() {
		out[n] = s.states[n]
	}
	res, _ := NewStates(out)
	return res
}
