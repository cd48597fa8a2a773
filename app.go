package cfg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/0xalexb/hjarta-cfg/config"
	envfetcher "github.com/0xalexb/hjarta-cfg/config/fetcher/env"
	filefetcher "github.com/0xalexb/hjarta-cfg/config/fetcher/file"
	yamlparser "github.com/0xalexb/hjarta-cfg/config/parser/yaml"
	"github.com/0xalexb/hjarta-cfg/logging"
	"github.com/0xalexb/hjarta-cfg/tree"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var errAppNotInitialized = errors.New("app not initialized")

// ErrEmptyViewName is returned when WithView is given an empty name.
var ErrEmptyViewName = errors.New("view name must not be empty")

// App is a configured starting point for an application using Fx, with its
// configuration tree loaded and available for injection.
type App struct {
	app *fx.App
}

// NewApp creates a new instance of App with Fx configured.
func NewApp(opts ...Option) *App {
	return &App{
		app: configure(NewOptions(opts...)),
	}
}

func configure(options *Options) *fx.App {
	root, loadErr := LoadTree(options)

	logConfig := logging.LoggerConfig{Level: options.LogLevel, Format: ""}
	if loadErr == nil {
		logConfig = loggerConfig(root, options.LogLevel)
	}

	logger := logging.SetDefault(logConfig, os.Stderr)

	fxOptions := []fx.Option{
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Supply(logConfig),
		fx.Supply(logger),
	}

	if loadErr != nil {
		fxOptions = append(fxOptions, fx.Error(fmt.Errorf("loading configuration: %w", loadErr)))

		return fx.New(fxOptions...)
	}

	fxOptions = append(fxOptions,
		fx.Supply(root),
		fx.Provide(
			fx.Annotate(
				func() *yamlparser.Parser { return yamlparser.NewParser() },
				fx.As(new(config.Decoder)),
			),
		),
	)

	for _, view := range options.views {
		fxOptions = append(fxOptions, viewModule(view))
	}

	fxOptions = append(fxOptions, fx.Options(options.Modules...))

	return fx.New(fxOptions...)
}

// LoadTree loads the configuration tree described by options: files first, then
// in-memory documents, then environment variables. Without any source the tree is empty.
func LoadTree(options *Options) (*tree.Node, error) {
	var fetchers []config.DataFetcher

	for _, source := range options.files {
		var fileOpts []filefetcher.Option
		if source.optional {
			fileOpts = append(fileOpts, filefetcher.WithOptional())
		}

		fetcher, err := filefetcher.NewFetcher(source.path, fileOpts...)()
		if err != nil {
			return nil, err
		}

		fetchers = append(fetchers, fetcher)
	}

	for _, data := range options.data {
		fetchers = append(fetchers, staticFetcher(data))
	}

	if options.EnvPrefix != "" {
		fetcher, err := envfetcher.NewFetcher(options.EnvPrefix)()
		if err != nil {
			return nil, err
		}

		fetchers = append(fetchers, fetcher)
	}

	if len(fetchers) == 0 {
		return tree.New(), nil
	}

	return config.Load(yamlparser.NewParser(), fetchers...)
}

// loggerConfig reads the root logger settings from the tree; an explicit level wins.
func loggerConfig(root *tree.Node, level string) logging.LoggerConfig {
	view, err := tree.NewView(root, nil)
	if err != nil {
		return logging.LoggerConfig{Level: level, Format: ""}
	}

	logConfig := logging.ConfigFromView(view)
	if level != "" {
		logConfig.Level = level
	}

	return logConfig
}

//nolint:ireturn // fx.Option is the standard return type for Fx modules
func viewModule(view viewSource) fx.Option {
	if view.name == "" {
		return fx.Error(ErrEmptyViewName)
	}

	return fx.Provide(
		fx.Annotate(
			func(root *tree.Node) (*tree.View, error) {
				opened, err := tree.OpenView(root, view.path)
				if err != nil {
					return nil, fmt.Errorf("view %q: %w", view.name, err)
				}

				return opened, nil
			},
			fx.ResultTags(fmt.Sprintf(`name:"%s"`, view.name)),
		),
	)
}

type staticFetcher []byte

func (s staticFetcher) Fetch() ([]byte, error) {
	return s, nil
}

// Start starts the Fx application.
func (app *App) Start() error {
	if app != nil && app.app != nil {
		err := app.app.Start(context.Background())
		if err != nil {
			return fmt.Errorf("failed to start app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}

// Run starts the application and blocks until an OS signal is received, then shuts down gracefully.
func (app *App) Run() {
	if app == nil || app.app == nil {
		slog.Error("attempted to run an uninitialized app")

		return
	}

	app.app.Run()
}

// Stop stops the Fx application gracefully.
func (app *App) Stop() error {
	if app != nil && app.app != nil {
		err := app.app.Stop(context.Background())
		if err != nil {
			return fmt.Errorf("failed to stop app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}

// Err returns the error Fx recorded while building the application, if any.
func (app *App) Err() error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	return app.app.Err()
}
