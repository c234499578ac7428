package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/duersjefen/deploy-kit/internal/catalog"
	"github.com/duersjefen/deploy-kit/internal/diag"
	"github.com/duersjefen/deploy-kit/internal/rules"
	"github.com/duersjefen/deploy-kit/internal/ui"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the shipped rules and their violation codes",
	Args:  cobra.NoArgs,
	RunE:  runRules,
}

func runRules(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	r := ui.NewRenderer(out, useColor(cmd))

	byCategory := map[diag.Category][]catalog.Entry{}
	for _, e := range catalog.All() {
		cat := diag.CategoryOf(e.Code)
		byCategory[cat] = append(byCategory[cat], e)
	}

	for _, rule := range rules.Registry() {
		fmt.Fprintf(out, "%s (%s)\n", rule.ID(), rule.Category())
		var rows [][2]string
		for _, e := range byCategory[rule.Category()] {
			rows = append(rows, [2]string{string(e.Code), e.Title})
		}
		r.RuleTable(rows)
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, "disable rules via [validate] disabled_rules in deploykit.toml")
	return nil
}
