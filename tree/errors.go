package tree

import "errors"

// ErrEmptyKey is returned when an operation needs at least one key segment but got none.
var ErrEmptyKey = errors.New("empty key")

// ErrDuplicateKey is returned when a write would put a value and a child under the same name,
// or when a strict create finds an existing entry.
var ErrDuplicateKey = errors.New("duplicate key")

// ErrPathNotFound is returned when a path does not designate a node reachable from the root.
var ErrPathNotFound = errors.New("path not found")

// ErrInvalidArgument is returned when a key cannot be built from the given input.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrKeyNotFound is returned by Node.Lookup when a name is neither a value nor a child.
var ErrKeyNotFound = errors.New("key not found")
