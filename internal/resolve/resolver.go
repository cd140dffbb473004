// Package resolve expands profiles into env blocks and merges them with the
// live environment into an update plan.
package resolve

import (
	"slices"

	"envprof/internal/model"
	"envprof/internal/profile"

	"github.com/pkg/errors"
)

// Resolver expands profile references against one table.
// The table is only read, so a Resolver may be used from several goroutines.
type Resolver struct {
	table *profile.Table
}

// NewResolver returns a resolver over table.
func NewResolver(table *profile.Table) *Resolver {
	return &Resolver{table: table}
}

// ResolveBlock expands the profile called name and everything it inherits.
//
// The profile's own env seeds the additions. Each profile in its add list
// contributes its additions and removals unchanged. Each profile in its
// remove list contributes both its additions and its removals as removals.
func (r *Resolver) ResolveBlock(name string) (model.EnvBlock, error) {
	return r.resolve(name, "", nil)
}

// Resolve expands every requested profile and unions the results in
// request order.
func (r *Resolver) Resolve(names []string) (model.EnvBlock, error) {
	combined := model.NewEnvBlock()
	for _, name := range names {
		block, err := r.ResolveBlock(name)
		if err != nil {
			return model.EnvBlock{}, errors.Wrapf(err, "failed to resolve profile %q", name)
		}
		combined.Union(block)
	}
	return combined, nil
}

// stack holds the profiles currently being expanded, outermost first.
func (r *Resolver) resolve(name, referencedBy string, stack []string) (model.EnvBlock, error) {
	if i := slices.Index(stack, name); i >= 0 {
		chain := append(slices.Clone(stack[i:]), name)
		return model.EnvBlock{}, &CyclicReferenceError{Chain: chain}
	}

	p, ok := r.table.Lookup(name)
	if !ok {
		return model.EnvBlock{}, &UnknownProfileError{Name: name, ReferencedBy: referencedBy}
	}

	stack = append(stack, name)
	block := model.NewEnvBlock()
	block.Add.Union(p.Env)

	for _, a := range p.Add {
		inherited, err := r.resolve(a, name, stack)
		if err != nil {
			return model.EnvBlock{}, err
		}
		block.Add.Union(inherited.Add)
		block.Remove.Union(inherited.Remove)
	}

	for _, rm := range p.Remove {
		inherited, err := r.resolve(rm, name, stack)
		if err != nil {
			return model.EnvBlock{}, err
		}
		block.Remove.Union(inherited.Add)
		block.Remove.Union(inherited.Remove)
	}

	return block, nil
}
