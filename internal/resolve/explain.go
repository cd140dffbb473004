package resolve

import "envprof/internal/model"

// ChangeKind classifies one value of a planned variable.
type ChangeKind int

const (
	Kept    ChangeKind = iota // Already in the environment
	Added                     // Introduced by the profiles
	Removed                   // In the environment, dropped by the plan
)

func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return "kept"
	}
}

// ValueChange is one value of a variable with its classification.
type ValueChange struct {
	Value model.PathValue
	Kind  ChangeKind
}

// VariableChange describes what applying the plan does to one variable.
type VariableChange struct {
	Name    string
	Values  []ValueChange // Final values in order, then removed values
	Changed bool          // False when the variable keeps its exact current value
	Cleared bool          // True when the variable ends up empty
}

// Explain compares every planned variable with its current value.
func Explain(plan *model.UpdatePlan, system *model.EnvMap) []VariableChange {
	entries := plan.Entries()
	out := make([]VariableChange, 0, len(entries))

	for _, e := range entries {
		current, _ := system.Lookup(e.Name)
		change := VariableChange{Name: e.Name, Cleared: len(e.Values) == 0}

		final := model.NewPathSet()
		for _, v := range e.Values {
			final.Add(v)
			kind := Kept
			if !current.Contains(v) {
				kind = Added
			}
			change.Values = append(change.Values, ValueChange{Value: v, Kind: kind})
		}
		for _, v := range current.Values() {
			if !final.Contains(v) {
				change.Values = append(change.Values, ValueChange{Value: v, Kind: Removed})
			}
		}

		change.Changed = !sameSequence(e.Values, current.Values())
		out = append(out, change)
	}

	return out
}

func sameSequence(a, b []model.PathValue) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
