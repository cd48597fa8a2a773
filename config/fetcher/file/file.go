package file

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// emptyDocument stands in for an optional file that does not exist.
var emptyDocument = []byte("{}\n")

// Fetcher implements config.DataFetcher interface for file-based configuration.
// It reads configuration data from a file at construction time and caches the contents.
type Fetcher struct {
	filepath string
	optional bool
	data     []byte
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithOptional makes a missing file fetch as an empty mapping instead of failing
// construction. Use it for override layers such as a local config next to a shared one.
func WithOptional() Option {
	return func(f *Fetcher) {
		f.optional = true
	}
}

// NewFetcher returns a constructor function that creates a new file-based Fetcher
// with the specified filepath. The file is read at construction time and cached.
// This pattern is Fx-friendly, allowing the DI container to control when instantiation happens.
// Returns an error if the file cannot be read or if the path points to a directory.
func NewFetcher(fpath string, opts ...Option) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		fetcher := &Fetcher{
			filepath: filepath.Clean(fpath),
			optional: false,
			data:     nil,
		}

		for _, apply := range opts {
			apply(fetcher)
		}

		err := fetcher.load()
		if err != nil {
			return nil, err
		}

		return fetcher, nil
	}
}

func (f *Fetcher) load() error {
	stat, err := os.Stat(f.filepath)
	if err != nil {
		if f.optional && errors.Is(err, fs.ErrNotExist) {
			slog.Debug("optional config file not found", slog.String("path", f.filepath))

			f.data = emptyDocument

			return nil
		}

		return fmt.Errorf("stat file %q: %w", f.filepath, err)
	}

	if stat.IsDir() {
		return fmt.Errorf("path %q: %w", f.filepath, ErrPathIsDirectory)
	}

	data, err := os.ReadFile(f.filepath) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return fmt.Errorf("reading file %q: %w", f.filepath, err)
	}

	f.data = data

	return nil
}

// Path returns the cleaned path of the file.
func (f *Fetcher) Path() string {
	return f.filepath
}

// Fetch returns a copy of the cached configuration data that was read at construction time.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
