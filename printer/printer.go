package printer

import (
	"errors"
	"fmt"
	"io"

	"github.com/0xalexb/hjarta-cfg/tree"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
)

// Defaults used by DefaultOptions.
const (
	DefaultIndentSize = 2
	DefaultMaxDepth   = 0
)

// ErrUnknownFormat is returned when Options.Format names no supported format.
var ErrUnknownFormat = errors.New("unknown output format")

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs an indented, human-readable tree.
	FormatText Format = "text"

	// FormatYAML outputs a YAML document.
	FormatYAML Format = "yaml"

	// FormatJSON outputs a JSON document.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, yaml, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text format only).
	// Default: 2
	IndentSize int

	// MaxDepth limits how many levels of sections are expanded (text format only,
	// 0 = unlimited).
	MaxDepth int

	// Color highlights section names, keys and inherited values (text format only).
	// Default: false
	Color bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:     FormatText,
		IndentSize: DefaultIndentSize,
		MaxDepth:   DefaultMaxDepth,
		Color:      false,
	}
}

// PrintNode writes node and everything below it.
func PrintNode(w io.Writer, node *tree.Node, opts Options) error {
	view, err := tree.NewView(node, nil)
	if err != nil {
		return err
	}

	return PrintView(w, view, opts)
}

// PrintView writes what view sees: the base node's subtree plus the values it inherits.
// In text format inherited values are marked as such.
func PrintView(w io.Writer, view *tree.View, opts Options) error {
	switch opts.Format {
	case FormatText, "":
		return newTextPrinter(w, opts).printView(view)
	case FormatYAML, FormatJSON:
		return encode(w, view.Map(), opts.Format)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}
}

// PrintValue writes a single value as returned by tree.View.Get. Nodes are printed with
// PrintNode.
func PrintValue(w io.Writer, value any, opts Options) error {
	if node, isNode := value.(*tree.Node); isNode {
		return PrintNode(w, node, opts)
	}

	switch opts.Format {
	case FormatText, "":
		_, err := fmt.Fprintln(w, formatScalar(value))

		return err
	case FormatYAML, FormatJSON:
		return encode(w, value, opts.Format)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}
}

func encode(w io.Writer, value any, format Format) error {
	var encodeOpts []yaml.EncodeOption
	if format == FormatJSON {
		encodeOpts = append(encodeOpts, yaml.JSON())
	}

	data, err := yaml.MarshalWithOptions(value, encodeOpts...)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", format, err)
	}

	_, err = w.Write(data)

	return err
}

// colors returns the text colors, enabled or disabled regardless of the terminal.
func colors(enabled bool) (section, key, inherited *color.Color) {
	section = color.New(color.FgBlue, color.Bold)
	key = color.New(color.FgCyan)
	inherited = color.New(color.FgHiBlack)

	for _, c := range []*color.Color{section, key, inherited} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return section, key, inherited
}
