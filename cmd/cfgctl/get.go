package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/0xalexb/hjarta-cfg/printer"
	"github.com/0xalexb/hjarta-cfg/tree"
	"github.com/spf13/cobra"
)

var errKeyNotFound = errors.New("key not found")

var getBase string

func init() {
	cmd := newGetCmd()
	cmd.Flags().StringVar(&getBase, "base", "", "Section to resolve the key from")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <key>",
		Short: "Get a value as seen from a section",
		Long: `The get command resolves a key from a section and prints its value. A key the
section does not hold itself is looked up in the enclosing sections, nearest first.

Example:
  cfgctl get app.yaml services/api/port
  cfgctl get app.yaml timeout --base services/api
  cfgctl get app.yaml services --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(os.Stdout, args)
		},
	}

	return cmd
}

func runGet(w io.Writer, args []string) error {
	file := args[0]
	key := args[1]

	root, err := loadTree(file)
	if err != nil {
		return err
	}

	view, err := tree.OpenView(root, getBase)
	if err != nil {
		return fmt.Errorf("failed to open section: %w", err)
	}

	value, ok := view.Lookup(key)
	if !ok {
		return fmt.Errorf("%w: %q", errKeyNotFound, key)
	}

	if err := printer.PrintValue(w, value, printOptions(w)); err != nil {
		return fmt.Errorf("failed to print value: %w", err)
	}

	return nil
}
