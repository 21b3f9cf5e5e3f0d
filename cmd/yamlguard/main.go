package main

import (
	"os"

	"github.com/spf13/cobra"

	"yamlguard/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "yamlguard",
	Short: "A configurable YAML style linter",
	Long:  "yamlguard lints YAML documents against a configurable rule catalog and can auto-fix a subset of violations.",
}

// main registers every subcommand and global flag, then executes the root
// command. Subcommands exit 1 themselves when an error-level diagnostic
// remains; every error returned here is a config, I/O or usage failure
// and exits with status 2.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("config", "", "path to a yamlguard/yamllint config file")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("format", "parsable", "output format (parsable|json)")
	rootCmd.PersistentFlags().Int("jobs", 0, "number of worker goroutines (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().String("profile", "", "named profile from a yamlguard.toml workspace manifest")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}
