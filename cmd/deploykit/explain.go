package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/duersjefen/deploy-kit/internal/catalog"
	"github.com/duersjefen/deploy-kit/internal/diag"
	"github.com/duersjefen/deploy-kit/internal/ui"
)

var explainCmd = &cobra.Command{
	Use:   "explain <code>",
	Short: "Describe a violation code in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runExplain,
}

func runExplain(cmd *cobra.Command, args []string) error {
	code := diag.Code(strings.ToUpper(args[0]))
	entry, ok := catalog.Lookup(code)
	if !ok {
		known := make([]string, 0, len(catalog.All()))
		for _, e := range catalog.All() {
			known = append(known, string(e.Code))
		}
		return fmt.Errorf("unknown code %q; known codes: %s", args[0], strings.Join(known, ", "))
	}
	ui.NewRenderer(cmd.OutOrStdout(), useColor(cmd)).Explain(entry)
	return nil
}
