package model

import "sort"

// EnvMap maps case-insensitive variable names to ordered path sets.
// The spelling of the first insertion of a name is kept for display.
// Read methods accept a nil receiver and treat it as empty.
type EnvMap struct {
	entries map[string]*envEntry // FoldKey(name) -> entry
}

type envEntry struct {
	name string
	set  *PathSet
}

// NewEnvMap returns an empty map.
func NewEnvMap() *EnvMap {
	return &EnvMap{entries: make(map[string]*envEntry)}
}

// Insert adds v to the set of name, creating the set if needed.
func (m *EnvMap) Insert(name string, v PathValue) {
	m.entry(name).set.Add(v)
}

// InsertSet adds every value of set to name. An unknown name receives a
// copy of set wholesale.
func (m *EnvMap) InsertSet(name string, set *PathSet) {
	m.entry(name).set.AddAll(set)
}

// Put replaces the set of name with set.
func (m *EnvMap) Put(name string, set *PathSet) {
	key := FoldKey(name)
	if e, ok := m.entries[key]; ok {
		e.set = set
		return
	}
	m.entries[key] = &envEntry{name: name, set: set}
}

// Union inserts every variable of src into m.
func (m *EnvMap) Union(src *EnvMap) {
	for _, key := range src.keys() {
		e := src.entries[key]
		m.InsertSet(e.name, e.set)
	}
}

// Lookup returns the set stored under name.
func (m *EnvMap) Lookup(name string) (*PathSet, bool) {
	if m == nil {
		return nil, false
	}
	e, ok := m.entries[FoldKey(name)]
	if !ok {
		return nil, false
	}
	return e.set, true
}

// Has reports whether name is present.
func (m *EnvMap) Has(name string) bool {
	_, ok := m.Lookup(name)
	return ok
}

// DisplayName returns the stored spelling of name, or "" when absent.
func (m *EnvMap) DisplayName(name string) string {
	if m == nil {
		return ""
	}
	if e, ok := m.entries[FoldKey(name)]; ok {
		return e.name
	}
	return ""
}

// Names returns the stored spelling of every name, sorted case-insensitively.
func (m *EnvMap) Names() []string {
	keys := m.keys()
	names := make([]string, len(keys))
	for i, key := range keys {
		names[i] = m.entries[key].name
	}
	return names
}

// Len returns the number of variables.
func (m *EnvMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Clone returns a deep copy.
func (m *EnvMap) Clone() *EnvMap {
	c := NewEnvMap()
	c.Union(m)
	return c
}

// Equal reports whether m and o hold the same variables with the same
// values in the same order.
func (m *EnvMap) Equal(o *EnvMap) bool {
	if m.Len() != o.Len() {
		return false
	}
	for _, key := range m.keys() {
		other, ok := o.Lookup(key)
		if !ok {
			return false
		}
		mine := m.entries[key].set.Values()
		theirs := other.Values()
		if len(mine) != len(theirs) {
			return false
		}
		for i := range mine {
			if !mine[i].Equal(theirs[i]) {
				return false
			}
		}
	}
	return true
}

func (m *EnvMap) entry(name string) *envEntry {
	key := FoldKey(name)
	e, ok := m.entries[key]
	if !ok {
		e = &envEntry{name: name, set: NewPathSet()}
		m.entries[key] = e
	}
	return e
}

func (m *EnvMap) keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, 0, len(m.entries))
	for key := range m.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
