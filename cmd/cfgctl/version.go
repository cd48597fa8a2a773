package main

import (
	"fmt"

	cfg "github.com/0xalexb/hjarta-cfg"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "cfgctl %s\n", cfg.Version)
		fmt.Fprintf(cmd.OutOrStdout(), "  built: %s\n", cfg.CompiledAt)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
