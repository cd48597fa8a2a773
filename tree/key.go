package tree

import (
	"fmt"
	"slices"
	"strings"
)

// Delimiter separates segments in a path string.
const Delimiter = "/"

// Key is an immutable, ordered sequence of path segments.
// A zero-length Key designates the node it is applied to.
type Key struct {
	segments []string
}

// NewKey builds a Key from explicit segments.
func NewKey(segments ...string) Key {
	return Key{segments: slices.Clone(segments)}
}

// ParseKey splits path on Delimiter. Empty segments are dropped, so "" and "/" both
// yield a zero-length Key.
func ParseKey(path string) Key {
	parts := strings.Split(path, Delimiter)
	segments := make([]string, 0, len(parts))

	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}

	return Key{segments: segments}
}

// KeyOf converts v into a Key. Accepted inputs are Key, []string and string (parsed
// with ParseKey).
func KeyOf(v any) (Key, error) {
	switch key := v.(type) {
	case Key:
		return key, nil
	case []string:
		return NewKey(key...), nil
	case string:
		return ParseKey(key), nil
	default:
		return Key{}, fmt.Errorf("%w: expected key, []string or string, got %T", ErrInvalidArgument, v)
	}
}

// Len returns the number of segments.
func (k Key) Len() int {
	return len(k.segments)
}

// Head returns the first segment.
func (k Key) Head() (string, error) {
	if len(k.segments) == 0 {
		return "", ErrEmptyKey
	}

	return k.segments[0], nil
}

// Tail returns the Key without its first segment. The tail of a zero-length Key is
// zero-length.
func (k Key) Tail() Key {
	if len(k.segments) == 0 {
		return Key{}
	}

	return Key{segments: k.segments[1:]}
}

// Last returns the final segment.
func (k Key) Last() (string, error) {
	if len(k.segments) == 0 {
		return "", ErrEmptyKey
	}

	return k.segments[len(k.segments)-1], nil
}

// Segments returns a copy of the segments.
func (k Key) Segments() []string {
	return slices.Clone(k.segments)
}

func (k Key) String() string {
	return strings.Join(k.segments, Delimiter)
}
