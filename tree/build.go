package tree

import (
	"fmt"
	"maps"
)

// ExpandKeyword is the reserved mapping key that controls whether FromMap expands a nested
// mapping into a child node. Setting it to false keeps the mapping as an opaque value.
const ExpandKeyword = "__expand__"

// FromMap builds a tree from a nested mapping. Nested mappings become child nodes unless
// they carry ExpandKeyword set to false, in which case they are stored as values. The
// keyword itself is removed from the result in both cases, including at the top level.
// The input is not modified.
func FromMap(mapping map[string]any) (*Node, error) {
	return fromMap(withoutKeyword(mapping))
}

func fromMap(mapping map[string]any) (*Node, error) {
	node := New()

	for name, v := range mapping {
		nested, isMapping := asMapping(v)
		if !isMapping {
			err := node.Assign(name, v)
			if err != nil {
				return nil, err
			}

			continue
		}

		expand, err := needExpand(nested)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", name, err)
		}

		if !expand {
			opaque := maps.Clone(nested)
			delete(opaque, ExpandKeyword)

			err = node.Assign(name, opaque)
			if err != nil {
				return nil, err
			}

			continue
		}

		child, err := fromMap(withoutKeyword(nested))
		if err != nil {
			return nil, fmt.Errorf("%q: %w", name, err)
		}

		err = node.Assign(name, child)
		if err != nil {
			return nil, err
		}
	}

	return node, nil
}

func needExpand(mapping map[string]any) (bool, error) {
	marker, ok := mapping[ExpandKeyword]
	if !ok {
		return true, nil
	}

	expand, isBool := marker.(bool)
	if !isBool {
		return false, fmt.Errorf("%w: %s must be a boolean, got %T", ErrInvalidArgument, ExpandKeyword, marker)
	}

	return expand, nil
}

func withoutKeyword(mapping map[string]any) map[string]any {
	if _, ok := mapping[ExpandKeyword]; !ok {
		return mapping
	}

	stripped := maps.Clone(mapping)
	delete(stripped, ExpandKeyword)

	return stripped
}

// asMapping normalises the mapping shapes decoders produce to map[string]any.
func asMapping(v any) (map[string]any, bool) {
	switch mapping := v.(type) {
	case map[string]any:
		return mapping, true
	case map[string]string:
		converted := make(map[string]any, len(mapping))
		for k, s := range mapping {
			converted[k] = s
		}

		return converted, true
	case map[any]any:
		converted := make(map[string]any, len(mapping))
		for k, item := range mapping {
			converted[fmt.Sprint(k)] = item
		}

		return converted, true
	default:
		return nil, false
	}
}
