// Package config loads configuration trees and decodes parts of them into structs.
//
// The package uses an interface-based design with these extension points:
//   - DataFetcher: retrieves raw config data (file, env, etc.)
//   - Parser: turns raw data into a nested mapping
//   - Decoder: turns a nested mapping into a config struct
//   - ViewDefaulter: seeds defaults into the tree before decoding
//   - Defaulter: applies default values to the decoded struct
//   - Validator: validates the struct after defaults
//
// # Loading
//
// Load reads every source in order and deep-merges them, so a later source (for example
// environment overrides) wins over an earlier one (a config file):
//
//	root, err := config.Load(yamlparser.NewParser(), fileFetcher, envFetcher)
//
// # Path Navigation
//
// Provider opens a tree.View at a slash-separated path, so the decoded struct sees its own
// section plus every value inherited from enclosing sections:
//
//	"services/api"  -> root["services"]["api"], inheriting from "services" and the root
//	""              -> entire tree
//
// # Example
//
//	type APIConfig struct {
//	    Timeout int    `yaml:"timeout"`
//	    BaseURL string `yaml:"base_url"`
//	}
//
//	provider := config.Provider(&APIConfig{}, "services/api")
//	cfg, err := provider(yamlparser.NewParser(), root)
package config
