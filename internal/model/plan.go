package model

import "strings"

// PlanEntry is the final value of one variable.
type PlanEntry struct {
	Name   string      // Variable name as it should be set
	Values []PathValue // Ordered segments, empty means "clear the variable"
}

// Join renders the entry's values with the path-list separator sep.
func (e PlanEntry) Join(sep string) string {
	parts := make([]string, len(e.Values))
	for i, v := range e.Values {
		parts[i] = v.String()
	}
	return strings.Join(parts, sep)
}

// UpdatePlan holds the final value of every variable the caller must set.
// Variables that are not in the plan are left untouched.
type UpdatePlan struct {
	vars *EnvMap
}

// NewUpdatePlan returns an empty plan.
func NewUpdatePlan() *UpdatePlan {
	return &UpdatePlan{vars: NewEnvMap()}
}

// Set records the final value of name, replacing any earlier one.
func (p *UpdatePlan) Set(name string, values *PathSet) {
	p.vars.Put(name, values)
}

// Lookup returns the planned value of name.
func (p *UpdatePlan) Lookup(name string) (*PathSet, bool) {
	return p.vars.Lookup(name)
}

// Len returns the number of planned variables.
func (p *UpdatePlan) Len() int {
	return p.vars.Len()
}

// Entries returns every planned variable sorted by name.
func (p *UpdatePlan) Entries() []PlanEntry {
	names := p.vars.Names()
	out := make([]PlanEntry, len(names))
	for i, name := range names {
		set, _ := p.vars.Lookup(name)
		out[i] = PlanEntry{Name: name, Values: set.Values()}
	}
	return out
}

// Strings returns the plan as plain strings, the shape used for JSON output.
func (p *UpdatePlan) Strings() map[string][]string {
	out := make(map[string][]string, p.vars.Len())
	for _, name := range p.vars.Names() {
		set, _ := p.vars.Lookup(name)
		values := set.Strings()
		if values == nil {
			values = []string{}
		}
		out[name] = values
	}
	return out
}
