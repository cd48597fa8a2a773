package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-cfg/tree"
)

// ErrNoSources is returned by Load when it is called without any DataFetcher.
var ErrNoSources = errors.New("no configuration sources")

// Parser defines an interface for turning raw configuration data into a nested mapping
// suitable for tree.FromMap.
type Parser interface {
	Parse(data []byte) (map[string]any, error)
}

// Decoder defines an interface for decoding a nested mapping into a target structure.
type Decoder interface {
	Decode(values map[string]any, target any) error
}

// ViewDecoder is a Decoder that decodes a view directly, so it can treat the section's own
// keys apart from the ones inherited from enclosing sections. Provider prefers it over Decode.
type ViewDecoder interface {
	DecodeView(view *tree.View, target any) error
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// ViewDefaulter defines an interface for seeding defaults into the configuration tree
// itself, before the target is decoded. Defaults written with View.UpdateDefault are
// visible to every other consumer of the tree.
type ViewDefaulter interface {
	SetViewDefaults(view *tree.View) error
}

// Load fetches and parses every source in order, merges the resulting mappings so that
// later sources override earlier ones, and builds a configuration tree from the result.
func Load(parser Parser, fetchers ...DataFetcher) (*tree.Node, error) {
	if len(fetchers) == 0 {
		return nil, ErrNoSources
	}

	merged := make(map[string]any)

	for i, fetcher := range fetchers {
		data, err := fetcher.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading data error (source %d): %w", i, err)
		}

		parsed, err := parser.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parsing error (source %d): %w", i, err)
		}

		Merge(merged, parsed)
	}

	root, err := tree.FromMap(merged)
	if err != nil {
		return nil, fmt.Errorf("building tree: %w", err)
	}

	slog.Debug("configuration loaded", slog.Int("sources", len(fetchers)), slog.Int("keys", root.Len()))

	return root, nil
}

// Merge deep-merges src into dst. Nested mappings present on both sides are merged
// recursively; any other value in src replaces the one in dst.
func Merge(dst, src map[string]any) {
	for name, value := range src {
		srcMap, srcIsMap := value.(map[string]any)
		dstMap, dstIsMap := dst[name].(map[string]any)

		if srcIsMap && dstIsMap {
			Merge(dstMap, srcMap)

			continue
		}

		if srcIsMap {
			copied := make(map[string]any, len(srcMap))
			Merge(copied, srcMap)
			value = copied
		}

		dst[name] = value
	}
}

func decode(decoder Decoder, view *tree.View, target any) error {
	if viewDecoder, ok := decoder.(ViewDecoder); ok {
		return viewDecoder.DecodeView(view, target)
	}

	return decoder.Decode(view.Map(), target)
}

// Provider returns a function that opens a view of the configuration tree at path,
// seeds tree defaults, decodes the view into target, sets struct defaults, and validates.
// An empty path views the whole tree.
func Provider[T any](target *T, path string) func(Decoder, *tree.Node) (*T, error) {
	return func(decoder Decoder, root *tree.Node) (*T, error) {
		view, err := tree.OpenView(root, path)
		if err != nil {
			return nil, fmt.Errorf("opening view %q: %w", path, err)
		}

		targetViewDefaulter, isViewDefaulter := any(target).(ViewDefaulter)
		if isViewDefaulter {
			err := targetViewDefaulter.SetViewDefaults(view)
			if err != nil {
				return nil, fmt.Errorf("seeding defaults error: %w", err)
			}
		}

		err = decode(decoder, view, target)
		if err != nil {
			return nil, fmt.Errorf("decoding error: %w", err)
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				slog.Info("defaults applied", slog.String("path", path))
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}
