package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"yamlguard/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), "yamlguard "+version.Version)
		if version.GitCommit != "" {
			fmt.Fprintln(cmd.OutOrStdout(), "commit: "+version.GitCommit)
		}
		if version.BuildDate != "" {
			fmt.Fprintln(cmd.OutOrStdout(), "built: "+version.BuildDate)
		}
		return nil
	},
}
