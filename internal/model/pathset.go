package model

import "strings"

// PathSet is an insertion-ordered set of PathValues.
// The first insertion of a value fixes its position; later equal values
// are dropped. The zero value is not usable, use NewPathSet. Read methods
// accept a nil receiver and treat it as empty.
type PathSet struct {
	values []PathValue
	index  map[string]int // PathValue key -> position in values
}

// NewPathSet builds a set from raw strings, keeping the first of any duplicates.
func NewPathSet(values ...string) *PathSet {
	s := &PathSet{index: make(map[string]int, len(values))}
	for _, v := range values {
		s.Add(NewPathValue(v))
	}
	return s
}

// Add inserts v unless an equal value is already present.
// It reports whether the set changed.
func (s *PathSet) Add(v PathValue) bool {
	if _, ok := s.index[v.key]; ok {
		return false
	}
	s.index[v.key] = len(s.values)
	s.values = append(s.values, v)
	return true
}

// AddAll inserts every value of o, in o's order.
func (s *PathSet) AddAll(o *PathSet) {
	for _, v := range o.Values() {
		s.Add(v)
	}
}

// Contains reports whether a value equal to v is present.
func (s *PathSet) Contains(v PathValue) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[v.key]
	return ok
}

// Len returns the number of values.
func (s *PathSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

// Values returns a copy of the values in order.
func (s *PathSet) Values() []PathValue {
	if s == nil {
		return nil
	}
	out := make([]PathValue, len(s.values))
	copy(out, s.values)
	return out
}

// Strings returns the original spelling of every value in order.
func (s *PathSet) Strings() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.values))
	for i, v := range s.values {
		out[i] = v.raw
	}
	return out
}

// Clone returns an independent copy. Cloning nil yields an empty set.
func (s *PathSet) Clone() *PathSet {
	c := &PathSet{index: make(map[string]int, s.Len())}
	c.AddAll(s)
	return c
}

// Without returns a new set holding the values of s that are not in r,
// in the order of s.
func (s *PathSet) Without(r *PathSet) *PathSet {
	out := &PathSet{index: make(map[string]int, s.Len())}
	for _, v := range s.Values() {
		if !r.Contains(v) {
			out.Add(v)
		}
	}
	return out
}

// SameMembers reports whether s and o hold equal values, ignoring order.
func (s *PathSet) SameMembers(o *PathSet) bool {
	if s.Len() != o.Len() {
		return false
	}
	for _, v := range s.Values() {
		if !o.Contains(v) {
			return false
		}
	}
	return true
}

// Join concatenates the values with sep, ready to be stored in a variable.
func (s *PathSet) Join(sep string) string {
	return strings.Join(s.Strings(), sep)
}
