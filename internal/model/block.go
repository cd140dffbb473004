package model

// EnvBlock is the result of resolving one or more profiles: the values to
// add and the values to remove, per variable.
type EnvBlock struct {
	Add    *EnvMap
	Remove *EnvMap
}

// NewEnvBlock returns a block with two empty maps.
func NewEnvBlock() EnvBlock {
	return EnvBlock{Add: NewEnvMap(), Remove: NewEnvMap()}
}

// Union folds o into b, additions into additions and removals into removals.
func (b EnvBlock) Union(o EnvBlock) {
	b.Add.Union(o.Add)
	b.Remove.Union(o.Remove)
}
