// Package file provides a file-based DataFetcher implementation for the config package.
//
// The file is read at construction time and cached, so every Fetch returns the same data
// for the lifetime of the application.
//
// Usage:
//
//	base, err := file.NewFetcher("/etc/app/config.yaml")()
//	local, err := file.NewFetcher("config.local.yaml", file.WithOptional())()
//	root, err := config.Load(yamlparser.NewParser(), base, local)
//
// Error Handling:
//   - Construction returns error if file cannot be read or path is a directory
//   - A missing file is not an error when WithOptional is given; it fetches as "{}"
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors
package file
