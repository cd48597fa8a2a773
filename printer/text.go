package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/0xalexb/hjarta-cfg/tree"

	"github.com/fatih/color"
)

type textPrinter struct {
	writer    io.Writer
	opts      Options
	section   *color.Color
	key       *color.Color
	inherited *color.Color
}

func newTextPrinter(w io.Writer, opts Options) *textPrinter {
	if opts.IndentSize <= 0 {
		opts.IndentSize = DefaultIndentSize
	}

	section, key, inherited := colors(opts.Color)

	return &textPrinter{
		writer:    w,
		opts:      opts,
		section:   section,
		key:       key,
		inherited: inherited,
	}
}

func (p *textPrinter) printView(view *tree.View) error {
	base := view.Base()

	for _, name := range view.Keys() {
		if _, own := base.Value(name); own {
			continue
		}

		if _, own := base.Child(name); own {
			continue
		}

		value, _ := view.Lookup(name)

		_, err := fmt.Fprintf(p.writer, "%s = %s %s\n",
			p.key.Sprint(name), formatScalar(value), p.inherited.Sprint("(inherited)"))
		if err != nil {
			return err
		}
	}

	return p.printNode(base, 0)
}

func (p *textPrinter) printNode(node *tree.Node, depth int) error {
	indent := strings.Repeat(" ", depth*p.opts.IndentSize)

	for _, name := range node.Keys() {
		child, isChild := node.Child(name)
		if !isChild {
			value, _ := node.Value(name)

			_, err := fmt.Fprintf(p.writer, "%s%s = %s\n", indent, p.key.Sprint(name), formatScalar(value))
			if err != nil {
				return err
			}

			continue
		}

		if p.opts.MaxDepth > 0 && depth+1 >= p.opts.MaxDepth && child.Len() > 0 {
			_, err := fmt.Fprintf(p.writer, "%s%s ...\n", indent, p.section.Sprint(name+tree.Delimiter))
			if err != nil {
				return err
			}

			continue
		}

		_, err := fmt.Fprintf(p.writer, "%s%s\n", indent, p.section.Sprint(name+tree.Delimiter))
		if err != nil {
			return err
		}

		err = p.printNode(child, depth+1)
		if err != nil {
			return err
		}
	}

	return nil
}

func formatScalar(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
