// Package tree implements a hierarchical configuration store.
//
// A Node holds scalar values and named child nodes. The two never share a name, so a
// path like "db/primary/host" always resolves unambiguously: every segment but the last
// names a child, and the last names a value (or a child).
//
// Trees are usually built from a decoded document with FromMap:
//
//	root, err := tree.FromMap(map[string]any{
//	    "timeout": 30,
//	    "db": map[string]any{
//	        "primary": map[string]any{"host": "db1"},
//	    },
//	})
//
// A View scopes lookups to one node while inheriting from its ancestors. Looking up
// "timeout" through a view based at "db/primary" finds the root's value because neither
// "db/primary" nor "db" defines one:
//
//	view, err := tree.OpenView(root, "db/primary")
//	view.Get("host")    // "db1"
//	view.Get("timeout") // 30
//
// Inheritance is shallow and value-only: only a same-name value on an ancestor is
// inherited, never a child node or a deeper path.
//
// Nodes carry no parent pointers. Ancestry is recomputed from a declared root when a
// View is created and cached for the lifetime of the View.
//
// # Concurrency
//
// Nodes and Views are not safe for concurrent mutation. Concurrent readers are fine as
// long as nothing writes to the tree; callers that mutate a shared tree must serialize
// access themselves.
package tree
