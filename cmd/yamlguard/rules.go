package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"yamlguard/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List every rule in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := rules.NewCatalog()
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "RULE\tENABLED\tLEVEL\tFIXABLE")
		for _, r := range catalog.All() {
			enabled := "no"
			if r.DefaultEnabled() {
				enabled = "yes"
			}
			fixable := "no"
			if r.Fixable() {
				fixable = "yes"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.ID(), enabled, r.DefaultSeverity(), fixable)
		}
		return w.Flush()
	},
}
