package profile

import (
	"fmt"
	"sort"

	"envprof/internal/model"
)

const profileKey = "profile"

// Warning is a non-fatal remark about the document, such as an unused key.
type Warning struct {
	Key     string // Location of the key, e.g. "profile[0].colour"
	Profile string // Name of the enclosing profile when known
}

func (w Warning) String() string {
	return fmt.Sprintf("key %s is unused", w.Key)
}

// Table is the validated set of profiles of one document.
// It is never modified after NewTable returns, so it may be shared.
type Table struct {
	profiles []*Profile
	byName   map[string]int
	warnings []Warning
}

// NewTable validates doc and builds the profile table. Only the top-level
// key "profile" is read; other keys and unknown profile fields produce
// warnings. The first structural problem aborts with a ConfigStructureError.
func NewTable(doc map[string]any) (*Table, error) {
	t := &Table{byName: make(map[string]int)}

	for _, key := range sortedKeys(doc) {
		if key != profileKey {
			t.warnings = append(t.warnings, Warning{Key: key})
			continue
		}

		entries, ok := asArray(doc[key])
		if !ok {
			return nil, &ConfigStructureError{Index: -1, Field: key, Reason: "must be an array"}
		}

		for i, entry := range entries {
			p, err := t.parseProfile(entry, i)
			if err != nil {
				return nil, err
			}
			if prev, dup := t.byName[p.Name]; dup {
				return nil, &ConfigStructureError{
					Index:  i,
					Field:  "name",
					Reason: fmt.Sprintf("%q is already used by %s[%d]", p.Name, profileKey, t.profiles[prev].Pos),
				}
			}
			t.byName[p.Name] = len(t.profiles)
			t.profiles = append(t.profiles, p)
		}
	}

	return t, nil
}

// Lookup finds a profile by exact name.
func (t *Table) Lookup(name string) (*Profile, bool) {
	i, ok := t.byName[name]
	if !ok {
		return nil, false
	}
	return t.profiles[i], true
}

// Profiles returns the profiles in document order.
func (t *Table) Profiles() []*Profile {
	out := make([]*Profile, len(t.profiles))
	copy(out, t.profiles)
	return out
}

// Sorted returns the profiles ordered by index, then document order.
func (t *Table) Sorted() []*Profile {
	out := t.Profiles()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Index < out[j].Index
	})
	return out
}

// Names returns the profile names in document order.
func (t *Table) Names() []string {
	names := make([]string, len(t.profiles))
	for i, p := range t.profiles {
		names[i] = p.Name
	}
	return names
}

// Len returns the number of profiles.
func (t *Table) Len() int {
	return len(t.profiles)
}

// Warnings returns the non-fatal remarks collected while parsing.
func (t *Table) Warnings() []Warning {
	out := make([]Warning, len(t.warnings))
	copy(out, t.warnings)
	return out
}

func (t *Table) parseProfile(entry any, i int) (*Profile, error) {
	fields, ok := entry.(map[string]any)
	if !ok {
		return nil, &ConfigStructureError{Index: i, Reason: "must be a table"}
	}

	p := &Profile{Env: model.NewEnvMap(), Pos: i}
	var unused []string

	for _, k := range sortedKeys(fields) {
		v := fields[k]
		switch k {
		case "name":
			s, ok := v.(string)
			if !ok {
				return nil, &ConfigStructureError{Index: i, Field: k, Reason: "is not a string"}
			}
			p.Name = s

		case "index":
			n, ok := asInteger(v)
			if !ok {
				return nil, &ConfigStructureError{Index: i, Field: k, Reason: "is not an integer"}
			}
			p.Index = n

		case "add", "remove":
			names, err := parseNames(v, i, k)
			if err != nil {
				return nil, err
			}
			if k == "add" {
				p.Add = names
			} else {
				p.Remove = names
			}

		case "env":
			if err := parseEnv(p.Env, v, i); err != nil {
				return nil, err
			}

		default:
			unused = append(unused, k)
		}
	}

	if p.Name == "" {
		return nil, &ConfigStructureError{Index: i, Field: "name", Reason: "is missing"}
	}

	for _, k := range unused {
		t.warnings = append(t.warnings, Warning{
			Key:     fmt.Sprintf("%s[%d].%s", profileKey, i, k),
			Profile: p.Name,
		})
	}

	return p, nil
}

func parseNames(v any, i int, field string) ([]string, error) {
	items, ok := asArray(v)
	if !ok {
		return nil, &ConfigStructureError{Index: i, Field: field, Reason: "is not an array"}
	}
	names := make([]string, 0, len(items))
	for ii, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, &ConfigStructureError{Index: i, Field: fmt.Sprintf("%s[%d]", field, ii), Reason: "is not a string"}
		}
		names = append(names, s)
	}
	return names, nil
}

// parseEnv reads `env = { NAME = "value" }` or `env = { NAME = ["a", "b"] }`.
func parseEnv(env *model.EnvMap, v any, i int) error {
	vars, ok := v.(map[string]any)
	if !ok {
		return &ConfigStructureError{Index: i, Field: "env", Reason: "is not a table"}
	}

	for _, name := range sortedKeys(vars) {
		if !model.ValidName(name) {
			return &ConfigStructureError{Index: i, Field: "env." + name, Reason: "is not a valid variable name"}
		}
		switch value := vars[name].(type) {
		case string:
			env.Insert(name, model.NewPathValue(value))
		default:
			items, ok := asArray(value)
			if !ok {
				return &ConfigStructureError{Index: i, Field: "env." + name, Reason: "is not an array or a string"}
			}
			for ii, item := range items {
				s, ok := item.(string)
				if !ok {
					return &ConfigStructureError{Index: i, Field: fmt.Sprintf("env.%s[%d]", name, ii), Reason: "is not a string"}
				}
				env.Insert(name, model.NewPathValue(s))
			}
		}
	}
	return nil
}

// asArray accepts the slice shapes a TOML decoder or a Go literal produce.
func asArray(v any) ([]any, bool) {
	switch a := v.(type) {
	case []any:
		return a, true
	case []map[string]any:
		out := make([]any, len(a))
		for i := range a {
			out[i] = a[i]
		}
		return out, true
	case []string:
		out := make([]any, len(a))
		for i := range a {
			out[i] = a[i]
		}
		return out, true
	default:
		return nil, false
	}
}

func asInteger(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case uint64:
		return int64(n), true
	default:
		return 0, false
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
