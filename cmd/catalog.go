package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/memoriaviva/memoria/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:       "catalog [events|concepts]",
	Short:     "Print the built-in timeline and glossary",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"events", "concepts"},
	Run: func(cmd *cobra.Command, args []string) {
		which := ""
		if len(args) == 1 {
			which = args[0]
		}
		printCatalog(cmd, catalog.Default(), which)
	},
}

func printCatalog(cmd *cobra.Command, cat *catalog.Catalog, which string) {
	out := cmd.OutOrStdout()

	if which == "" || which == "events" {
		fmt.Fprintln(out, "Línea de Tiempo")
		fmt.Fprintln(out, strings.Repeat("─", 72))
		for _, e := range cat.Events() {
			fmt.Fprintf(out, "%d %-11s  %s\n", e.Year, e.Month, e.Title)
			fmt.Fprintf(out, "%18s%s\n", "", e.Description)
		}
	}
	if which == "" {
		fmt.Fprintln(out)
	}
	if which == "" || which == "concepts" {
		fmt.Fprintln(out, "Conceptos Clave")
		fmt.Fprintln(out, strings.Repeat("─", 72))
		for _, c := range cat.Concepts() {
			fmt.Fprintf(out, "%-28s  %s\n", c.Term, c.Definition)
		}
	}
}
