package cfg

import (
	"go.uber.org/fx"
)

type fileSource struct {
	path     string
	optional bool
}

type viewSource struct {
	name string
	path string
}

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	EnvPrefix string
	files     []fileSource
	data      [][]byte
	views     []viewSource
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// NewOptions applies opts to a zero Options.
func NewOptions(opts ...Option) *Options {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	return &options
}

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set, the root log_level of the loaded configuration is used, then "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithConfigFile adds a YAML file as a configuration source. Sources are merged in the
// order they are added, later ones overriding earlier ones.
func WithConfigFile(path string) Option {
	return func(opts *Options) {
		opts.files = append(opts.files, fileSource{path: path, optional: false})
	}
}

// WithOptionalConfigFile is WithConfigFile for a file that may not exist.
func WithOptionalConfigFile(path string) Option {
	return func(opts *Options) {
		opts.files = append(opts.files, fileSource{path: path, optional: true})
	}
}

// WithConfigData adds an in-memory YAML document as a configuration source. Data sources
// are merged after files.
func WithConfigData(data []byte) Option {
	return func(opts *Options) {
		opts.data = append(opts.data, data)
	}
}

// WithEnvPrefix layers environment variables named "<prefix>_..." over every other source.
func WithEnvPrefix(prefix string) Option {
	return func(opts *Options) {
		opts.EnvPrefix = prefix
	}
}

// WithView supplies a *tree.View of the section at path to DI, tagged `name:"<name>"`.
// Call multiple times with different names to expose several sections.
func WithView(name, path string) Option {
	return func(opts *Options) {
		opts.views = append(opts.views, viewSource{name: name, path: path})
	}
}
