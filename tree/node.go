package tree

import (
	"fmt"
	"maps"
	"slices"
)

// Node is a configuration tree node. It holds scalar values and child nodes in two maps
// whose key sets never overlap. The zero value is an empty node ready to use.
type Node struct {
	values   map[string]any
	children map[string]*Node
}

// New returns an empty Node.
func New() *Node {
	return &Node{
		values:   make(map[string]any),
		children: make(map[string]*Node),
	}
}

// NewFrom returns a Node populated from initial. Entries holding a *Node become children,
// everything else becomes a value. The caller must not hand the same child to two parents.
func NewFrom(initial map[string]any) (*Node, error) {
	node := New()

	for name, v := range initial {
		err := node.Assign(name, v)
		if err != nil {
			return nil, err
		}
	}

	return node, nil
}

// Read resolves key against the node. A single-segment key is looked up in the values
// first, then in the children; a longer key descends through the child named by its head.
// The bool result reports whether anything was found.
func (n *Node) Read(key Key) (any, bool) {
	head, err := key.Head()
	if err != nil {
		return nil, false
	}

	if key.Len() == 1 {
		if v, ok := n.values[head]; ok {
			return v, true
		}

		if child, ok := n.children[head]; ok {
			return child, true
		}

		return nil, false
	}

	child, ok := n.children[head]
	if !ok {
		return nil, false
	}

	return child.Read(key.Tail())
}

// Assign stores v under name, overwriting an entry of the same kind. A *Node goes to the
// children, anything else to the values. It fails with ErrDuplicateKey when name is
// already taken by an entry of the other kind.
func (n *Node) Assign(name string, v any) error {
	return n.assign(name, v, true)
}

// AssignStrict is Assign that also fails with ErrDuplicateKey when name already exists.
func (n *Node) AssignStrict(name string, v any) error {
	return n.assign(name, v, false)
}

func (n *Node) assign(name string, v any, allowExisting bool) error {
	if name == "" {
		return ErrEmptyKey
	}

	n.init()

	if child, isNode := v.(*Node); isNode {
		if child == nil {
			return fmt.Errorf("%w: nil child %q", ErrInvalidArgument, name)
		}

		// the tree must stay acyclic
		if child == n || child.IsAncestorOf(n) {
			return fmt.Errorf("%w: child %q would contain its parent", ErrInvalidArgument, name)
		}

		if _, exists := n.children[name]; exists && !allowExisting {
			return fmt.Errorf("%w: child %q already exists", ErrDuplicateKey, name)
		}

		if _, exists := n.values[name]; exists {
			return fmt.Errorf("%w: %q is already a value", ErrDuplicateKey, name)
		}

		n.children[name] = child

		return nil
	}

	if _, exists := n.values[name]; exists && !allowExisting {
		return fmt.Errorf("%w: value %q already exists", ErrDuplicateKey, name)
	}

	if _, exists := n.children[name]; exists {
		return fmt.Errorf("%w: %q is already a child", ErrDuplicateKey, name)
	}

	n.values[name] = v

	return nil
}

// Create adds v at key, building intermediate children as needed. It never overwrites:
// the head of a multi-segment key must not exist yet, and a single-segment key is
// assigned strictly.
func (n *Node) Create(key Key, v any) error {
	head, err := key.Head()
	if err != nil {
		return err
	}

	if key.Len() == 1 {
		return n.AssignStrict(head, v)
	}

	if n.has(head) {
		return fmt.Errorf("%w: %q already exists", ErrDuplicateKey, head)
	}

	// the fresh child is not attached yet, so assign cannot see a cycle through n
	if node, isNode := v.(*Node); isNode && node != nil && (node == n || node.IsAncestorOf(n)) {
		return fmt.Errorf("%w: %q would contain its parent", ErrInvalidArgument, key)
	}

	child := New()

	err = child.Create(key.Tail(), v)
	if err != nil {
		return fmt.Errorf("creating %q: %w", head, err)
	}

	n.init()
	n.children[head] = child

	return nil
}

// IsAncestorOf reports whether candidate is reachable from n through one or more child
// edges. A node is not its own ancestor.
func (n *Node) IsAncestorOf(candidate *Node) bool {
	for _, child := range n.children {
		if child == candidate || child.IsAncestorOf(candidate) {
			return true
		}
	}

	return false
}

// Keys returns the names of all children and values, sorted.
func (n *Node) Keys() []string {
	keys := make([]string, 0, n.Len())
	keys = slices.AppendSeq(keys, maps.Keys(n.children))
	keys = slices.AppendSeq(keys, maps.Keys(n.values))
	slices.Sort(keys)

	return keys
}

// Len returns the number of children and values.
func (n *Node) Len() int {
	return len(n.children) + len(n.values)
}

// Child returns the child named name.
func (n *Node) Child(name string) (*Node, bool) {
	child, ok := n.children[name]

	return child, ok
}

// Value returns the value named name.
func (n *Node) Value(name string) (any, bool) {
	v, ok := n.values[name]

	return v, ok
}

// Lookup returns the child or value named name, children first.
func (n *Node) Lookup(name string) (any, error) {
	if child, ok := n.children[name]; ok {
		return child, nil
	}

	if v, ok := n.values[name]; ok {
		return v, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, name)
}

// Values returns a shallow copy of the node's values.
func (n *Node) Values() map[string]any {
	return maps.Clone(n.values)
}

// Children returns a shallow copy of the node's children.
func (n *Node) Children() map[string]*Node {
	return maps.Clone(n.children)
}

// init allocates the maps of a zero-value Node.
func (n *Node) init() {
	if n.values == nil {
		n.values = make(map[string]any)
	}

	if n.children == nil {
		n.children = make(map[string]*Node)
	}
}

func (n *Node) has(name string) bool {
	_, isValue := n.values[name]
	_, isChild := n.children[name]

	return isValue || isChild
}

// childNames returns the child names in a stable order.
func (n *Node) childNames() []string {
	return slices.Sorted(maps.Keys(n.children))
}
