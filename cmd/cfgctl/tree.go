package main

import (
	"fmt"
	"io"
	"os"

	"github.com/0xalexb/hjarta-cfg/printer"
	"github.com/0xalexb/hjarta-cfg/tree"
	"github.com/spf13/cobra"
)

var treeDepth int

func init() {
	cmd := newTreeCmd()
	cmd.Flags().IntVar(&treeDepth, "depth", 0, "Maximum section depth to expand (0 = unlimited)")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <file> [section]",
		Short: "Display a section and everything below it",
		Long: `The tree command prints a section, its subsections and the values it
inherits from enclosing sections. Inherited values are marked in text output.

Example:
  cfgctl tree app.yaml
  cfgctl tree app.yaml services/api
  cfgctl tree app.yaml --depth 1`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(os.Stdout, args)
		},
	}

	return cmd
}

func runTree(w io.Writer, args []string) error {
	root, err := loadTree(args[0])
	if err != nil {
		return err
	}

	view, err := tree.OpenView(root, optionalPath(args, 1))
	if err != nil {
		return fmt.Errorf("failed to open section: %w", err)
	}

	opts := printOptions(w)
	opts.MaxDepth = treeDepth

	if err := printer.PrintView(w, view, opts); err != nil {
		return fmt.Errorf("failed to print tree: %w", err)
	}

	return nil
}
