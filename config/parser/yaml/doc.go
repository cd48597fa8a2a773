// Package yaml provides a YAML parser and decoder for the config package.
//
// This package uses github.com/goccy/go-yaml. Parse turns a document into the nested
// mapping tree.FromMap consumes; Decode turns a mapping (typically tree.View.Map) back
// into a config struct through its `yaml:"..."` tags.
//
// Usage:
//
//	parser := yaml.NewParser()
//	mapping, err := parser.Parse(data)
//
//	var cfg Config
//	err = parser.Decode(view.Map(), &cfg)
//
// WithStrict makes Decode fail on keys that have no matching struct field. DecodeView,
// which config.Provider uses, applies that check to the section's own keys only, so a
// root-level log_level does not break strict decoding of a nested section.
package yaml
