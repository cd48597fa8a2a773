package main

import (
	"fmt"
	"io"
	"os"

	cfg "github.com/0xalexb/hjarta-cfg"
	"github.com/0xalexb/hjarta-cfg/logging"
	"github.com/0xalexb/hjarta-cfg/printer"
	"github.com/0xalexb/hjarta-cfg/tree"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose   bool
	quiet     bool
	jsonOut   bool
	noColor   bool
	envPrefix string
)

var rootCmd = &cobra.Command{
	Use:   "cfgctl",
	Short: "Inspect hierarchical configuration files",
	Long: `cfgctl loads a YAML configuration file as a tree of sections and shows
what a section sees: its own values plus the values it inherits from the
sections that enclose it.`,
	Version:       cfg.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(os.Stderr)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().
		StringVar(&envPrefix, "env-prefix", "", "Layer environment variables named <prefix>_... over the file")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setupLogging routes library logs to w at a level chosen by --verbose and --quiet.
func setupLogging(w io.Writer) {
	level := "warn"

	switch {
	case quiet:
		level = "error"
	case verbose:
		level = "debug"
	}

	logging.SetDefault(logging.LoggerConfig{Level: level, Format: logging.FormatText}, w)
}

// loadTree reads file, with environment overrides when --env-prefix is set.
func loadTree(file string) (*tree.Node, error) {
	options := cfg.NewOptions(cfg.WithConfigFile(file), cfg.WithEnvPrefix(envPrefix))

	root, err := cfg.LoadTree(options)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", file, err)
	}

	return root, nil
}

// printOptions builds printer options from the global flags. Color is only used on a terminal.
func printOptions(w io.Writer) printer.Options {
	opts := printer.DefaultOptions()

	if jsonOut {
		opts.Format = printer.FormatJSON
	}

	opts.Color = !noColor && isTerminal(w)

	return opts
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

// optionalPath returns args[i] or the empty path.
func optionalPath(args []string, i int) string {
	if len(args) > i {
		return args[i]
	}

	return ""
}
