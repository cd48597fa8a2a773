package tree

import "fmt"

// ResolvePath returns the node designated by path relative to root. An empty path or
// Delimiter alone designates root itself. Every segment must name a child node; a missing
// segment or one naming a value fails with ErrPathNotFound.
func ResolvePath(root *Node, path string) (*Node, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: nil root", ErrInvalidArgument)
	}

	node := root
	key := ParseKey(path)

	for key.Len() > 0 {
		head, _ := key.Head()

		child, ok := node.Child(head)
		if !ok {
			return nil, fmt.Errorf("%w: %q (missing %q)", ErrPathNotFound, path, head)
		}

		node = child
		key = key.Tail()
	}

	return node, nil
}

// FindAncestors returns the nodes on the way from root down to target, root first and
// target's parent last. The result is empty when target is root or not reachable from it.
// Children are searched in sorted name order.
func FindAncestors(root, target *Node) []*Node {
	path, found := findAncestors(root, target)
	if !found {
		return nil
	}

	return path
}

func findAncestors(node, target *Node) ([]*Node, bool) {
	for _, name := range node.childNames() {
		child := node.children[name]
		if child == target {
			return []*Node{node}, true
		}

		path, found := findAncestors(child, target)
		if found {
			return append([]*Node{node}, path...), true
		}
	}

	return nil, false
}
