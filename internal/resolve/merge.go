package resolve

import (
	"envprof/internal/model"
	"envprof/internal/profile"
)

// Merge combines a resolved block with the live environment.
//
// For every variable named by the block the final value is the additions,
// then the system values not already present, minus the removals. A
// variable with nothing to add and no current value is left out, as is any
// variable the block does not name.
func Merge(block model.EnvBlock, system *model.EnvMap) *model.UpdatePlan {
	plan := model.NewUpdatePlan()

	names := model.NewEnvMap()
	names.Union(block.Add)
	names.Union(block.Remove)

	for _, name := range names.Names() {
		add, _ := block.Add.Lookup(name)
		remove, _ := block.Remove.Lookup(name)
		current, _ := system.Lookup(name)

		if add.Len() == 0 && current.Len() == 0 {
			continue
		}

		final := add.Clone()
		final.AddAll(current)
		plan.Set(planName(name, block, system), final.Without(remove))
	}

	return plan
}

// Plan resolves the requested profiles and merges them with system.
func Plan(table *profile.Table, names []string, system *model.EnvMap) (*model.UpdatePlan, error) {
	block, err := NewResolver(table).Resolve(names)
	if err != nil {
		return nil, err
	}
	return Merge(block, system), nil
}

// planName prefers the spelling the environment already uses, so the
// injector overwrites the existing variable.
func planName(name string, block model.EnvBlock, system *model.EnvMap) string {
	if n := system.DisplayName(name); n != "" {
		return n
	}
	if n := block.Add.DisplayName(name); n != "" {
		return n
	}
	return name
}
