package tree

import (
	"fmt"
	"maps"
	"slices"
)

// View addresses the subtree under a base node as a flat map. Lookups that miss in the
// base fall back to same-name values on the base's ancestors, nearest first.
type View struct {
	root *Node
	base *Node
	// nearest ancestor first
	ancestors []*Node
}

// NewView returns a View of root based at base. A nil base means root. base must be
// reachable from root, otherwise ErrPathNotFound is returned.
func NewView(root, base *Node) (*View, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: nil root", ErrInvalidArgument)
	}

	if base == nil {
		base = root
	}

	var ancestors []*Node

	if base != root {
		ancestors = FindAncestors(root, base)
		if len(ancestors) == 0 {
			return nil, fmt.Errorf("%w: base node is not reachable from root", ErrPathNotFound)
		}

		slices.Reverse(ancestors)
	}

	return &View{
		root:      root,
		base:      base,
		ancestors: ancestors,
	}, nil
}

// OpenView returns a View of root based at the node designated by path.
func OpenView(root *Node, path string) (*View, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: nil root", ErrInvalidArgument)
	}

	base, err := ResolvePath(root, path)
	if err != nil {
		return nil, err
	}

	return NewView(root, base)
}

// Root returns the root node of the view.
func (v *View) Root() *Node {
	return v.root
}

// Base returns the node the view is based at.
func (v *View) Base() *Node {
	return v.base
}

// Ancestors returns the base node's ancestors, nearest first.
func (v *View) Ancestors() []*Node {
	return slices.Clone(v.ancestors)
}

// Get returns the value or child node at key, or nil when nothing is found. key may hold
// several segments and is resolved against the base node. On a miss, the leading segment
// is looked up among the ancestors' values; child nodes are never inherited.
func (v *View) Get(key string) any {
	value, _ := v.Lookup(key)

	return value
}

// Lookup is Get with a flag reporting whether key was found, which tells a stored nil
// apart from a missing key.
func (v *View) Lookup(key string) (any, bool) {
	parsed := ParseKey(key)

	if value, ok := v.base.Read(parsed); ok {
		return value, true
	}

	head, err := parsed.Head()
	if err != nil {
		return nil, false
	}

	for _, ancestor := range v.ancestors {
		if value, ok := ancestor.values[head]; ok {
			return value, true
		}
	}

	return nil, false
}

// Sub returns a View based at the child node that key designates in the base node. The
// returned View keeps the same root, so inheritance spans the whole chain.
func (v *View) Sub(key string) (*View, error) {
	node, ok := v.base.Read(ParseKey(key))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPathNotFound, key)
	}

	child, isNode := node.(*Node)
	if !isNode {
		return nil, fmt.Errorf("%w: %q is a value", ErrPathNotFound, key)
	}

	return NewView(v.root, child)
}

// Set stores value under the leading segment of key in the base node, overwriting an
// existing entry of the same kind.
func (v *View) Set(key string, value any) error {
	head, err := ParseKey(key).Head()
	if err != nil {
		return err
	}

	return v.base.Assign(head, value)
}

// Update stores value under the leading segment of key only if the base node has nothing
// under that name yet. Ancestors are not consulted and a nil value is stored like any other.
func (v *View) Update(key string, value any) error {
	head, err := ParseKey(key).Head()
	if err != nil {
		return err
	}

	if v.base.has(head) {
		return nil
	}

	return v.base.Assign(head, value)
}

// UpdateDefault is Update, named for call sites that seed defaults.
func (v *View) UpdateDefault(key string, def any) error {
	return v.Update(key, def)
}

// UpdateValueAndDefault is Update with value, or with def when value is nil.
func (v *View) UpdateValueAndDefault(key string, value, def any) error {
	if value == nil {
		value = def
	}

	return v.Update(key, value)
}

// Keys returns the names visible through the view: everything in the base node plus the
// values inherited from ancestors, sorted.
func (v *View) Keys() []string {
	seen := make(map[string]struct{}, v.base.Len())

	for _, name := range v.base.Keys() {
		seen[name] = struct{}{}
	}

	for _, ancestor := range v.ancestors {
		for name := range ancestor.values {
			seen[name] = struct{}{}
		}
	}

	return slices.Sorted(maps.Keys(seen))
}

// Map returns the effective contents of the view as a nested mapping: inherited values
// first, overridden by the base node's own values and children. Children are rendered
// as nested mappings without inheritance of their own.
func (v *View) Map() map[string]any {
	result := make(map[string]any)

	for _, ancestor := range slices.Backward(v.ancestors) {
		maps.Copy(result, ancestor.values)
	}

	maps.Copy(result, toMap(v.base))

	return result
}

// BaseMap returns the base node's own contents as a nested mapping, without inherited values.
func (v *View) BaseMap() map[string]any {
	return toMap(v.base)
}

func toMap(node *Node) map[string]any {
	result := maps.Clone(node.values)
	if result == nil {
		result = make(map[string]any, len(node.children))
	}

	for name, child := range node.children {
		result[name] = toMap(child)
	}

	return result
}
