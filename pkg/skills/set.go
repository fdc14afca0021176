package skills

import (
	"encoding/json"
	"sort"
)

// Set is an unordered collection of skill identifiers.
type Set map[string]struct{}

// NewSet returns a set holding the given identifiers.
func NewSet(skills ...string) Set {
	s := make(Set, len(skills))
	s.Add(skills...)
	return s
}

// Add inserts identifiers, ignoring duplicates.
func (s Set) Add(skills ...string) {
	for _, skill := range skills {
		s[skill] = struct{}{}
	}
}

// Has reports whether skill is in the set.
func (s Set) Has(skill string) bool {
	_, ok := s[skill]
	return ok
}

// Union adds every member of other to s.
func (s Set) Union(other Set) {
	for skill := range other {
		s[skill] = struct{}{}
	}
}

// Len returns the number of identifiers.
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the members in lexicographic order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for skill := range s {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}

// MarshalJSON encodes the set as a sorted array.
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// MarshalYAML encodes the set as a sorted sequence.
func (s Set) MarshalYAML() (any, error) {
	return s.Sorted(), nil
}
