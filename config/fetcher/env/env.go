package env

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
)

// LevelSeparator separates nesting levels in a variable name: APP_DB__HOST is db/host.
const LevelSeparator = "__"

// ErrEmptyPrefix is returned when the fetcher is created without a prefix.
var ErrEmptyPrefix = errors.New("prefix must not be empty")

// ErrConflict is returned when one variable names a section another variable sets a value in.
var ErrConflict = errors.New("conflicting environment variables")

// Fetcher implements config.DataFetcher over environment variables sharing a prefix. The
// variables are rendered as a YAML document at construction time and cached.
type Fetcher struct {
	prefix  string
	environ []string
	data    []byte
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithEnviron replaces os.Environ as the source of variables, in "KEY=value" form.
func WithEnviron(environ []string) Option {
	return func(f *Fetcher) {
		f.environ = environ
	}
}

// NewFetcher returns an Fx-friendly constructor for a Fetcher reading variables named
// "<prefix>_...". Names are lower-cased and split into levels on LevelSeparator. Values
// are read as YAML scalars, so "8080" becomes a number and "true" a boolean; anything
// that does not read as a scalar stays a string.
func NewFetcher(prefix string, opts ...Option) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		if prefix == "" {
			return nil, ErrEmptyPrefix
		}

		fetcher := &Fetcher{
			prefix:  strings.TrimSuffix(prefix, "_") + "_",
			environ: nil,
			data:    nil,
		}

		for _, apply := range opts {
			apply(fetcher)
		}

		if fetcher.environ == nil {
			fetcher.environ = os.Environ()
		}

		mapping, err := fetcher.mapping()
		if err != nil {
			return nil, err
		}

		data, err := yaml.Marshal(mapping)
		if err != nil {
			return nil, fmt.Errorf("rendering environment: %w", err)
		}

		fetcher.data = data

		return fetcher, nil
	}
}

// Fetch returns a copy of the rendered document.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}

func (f *Fetcher) mapping() (map[string]any, error) {
	result := make(map[string]any)

	environ := slices.Clone(f.environ)
	slices.Sort(environ)

	for _, entry := range environ {
		name, value, found := strings.Cut(entry, "=")
		if !found || !strings.HasPrefix(name, f.prefix) {
			continue
		}

		segments := strings.Split(strings.ToLower(strings.TrimPrefix(name, f.prefix)), LevelSeparator)
		if slices.Contains(segments, "") {
			continue
		}

		err := insert(result, segments, scalar(value))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}

	return result, nil
}

func insert(mapping map[string]any, segments []string, value any) error {
	name := segments[0]

	if len(segments) == 1 {
		if _, isSection := mapping[name].(map[string]any); isSection {
			return fmt.Errorf("%w: %q is already a section", ErrConflict, name)
		}

		mapping[name] = value

		return nil
	}

	existing, ok := mapping[name]
	if !ok {
		section := make(map[string]any)
		mapping[name] = section

		return insert(section, segments[1:], value)
	}

	section, isSection := existing.(map[string]any)
	if !isSection {
		return fmt.Errorf("%w: %q is already a value", ErrConflict, name)
	}

	return insert(section, segments[1:], value)
}

func scalar(raw string) any {
	var value any

	err := yaml.Unmarshal([]byte(raw), &value)
	if err != nil {
		return raw
	}

	switch value.(type) {
	case nil, map[string]any, []any:
		return raw
	default:
		return value
	}
}
