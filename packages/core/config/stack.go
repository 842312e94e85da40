package config

import (
	"fmt"

	"github.com/abdul-hamid-achik/rolespec/packages/conftree"
)

// Layer is one named configuration source in a Stack. The name appears in
// conflict errors and debug output.
type Layer struct {
	Name string
	Tree conftree.Tree
}

// Stack accumulates configuration layers in precedence order, lowest
// first, and folds them into an Effective configuration.
type Stack struct {
	base   conftree.Tree
	layers []Layer
}

type StackOption func(*Stack)

// WithBase installs a defaults layer that fills gaps but never conflicts:
// explicit layer values win over it silently under either policy.
func WithBase(base conftree.Tree) StackOption {
	return func(s *Stack) {
		s.base = base
	}
}

func NewStack(opts ...StackOption) *Stack {
	s := &Stack{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Push appends a layer. Later layers take precedence under Overwrite and
// collide under Raise.
func (s *Stack) Push(name string, tree conftree.Tree) {
	s.layers = append(s.layers, Layer{Name: name, Tree: tree})
}

// PushFile loads a YAML layer from path and appends it under the path's
// name.
func (s *Stack) PushFile(path string) error {
	tree, err := LoadFile(path)
	if err != nil {
		return err
	}
	s.Push(path, tree)
	return nil
}

// Layers returns the explicit layers in fold order.
func (s *Stack) Layers() []Layer {
	return s.layers
}

// Effective folds the explicit layers in push order under policy, then
// lays the result over the base defaults. Under Raise the first leaf
// collision between explicit layers aborts the fold, with the offending
// layer named in the error.
func (s *Stack) Effective(policy conftree.Policy) (*Effective, error) {
	merged := conftree.Tree{}
	for _, layer := range s.layers {
		if _, err := conftree.Merge(merged, layer.Tree, policy); err != nil {
			return nil, fmt.Errorf("merging layer %s: %w", layer.Name, err)
		}
	}

	result := conftree.Clone(s.base)
	if result == nil {
		result = conftree.Tree{}
	}
	if _, err := conftree.Merge(result, merged, conftree.Overwrite); err != nil {
		return nil, err
	}
	return &Effective{Tree: result}, nil
}
