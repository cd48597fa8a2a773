package main

import (
	"fmt"
	"io"
	"os"

	"github.com/0xalexb/hjarta-cfg/printer"
	"github.com/0xalexb/hjarta-cfg/tree"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newKeysCmd())
}

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys <file> [section]",
		Short: "List the names visible from a section",
		Long: `The keys command lists the values and subsections of a section together with
the names it inherits, sorted.

Example:
  cfgctl keys app.yaml
  cfgctl keys app.yaml services/api --json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(os.Stdout, args)
		},
	}

	return cmd
}

func runKeys(w io.Writer, args []string) error {
	root, err := loadTree(args[0])
	if err != nil {
		return err
	}

	view, err := tree.OpenView(root, optionalPath(args, 1))
	if err != nil {
		return fmt.Errorf("failed to open section: %w", err)
	}

	keys := view.Keys()

	if jsonOut {
		return printer.PrintValue(w, keys, printOptions(w))
	}

	for _, name := range keys {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}

	return nil
}
