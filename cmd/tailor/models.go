package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/airesume/tailor/internal/llm"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the selectable generation models",
	RunE:  runModels,
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

func runModels(_ *cobra.Command, _ []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCOST\tDESCRIPTION")
	for _, m := range llm.Catalog() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.ID, m.Name, m.CostHint, m.Description)
	}
	return w.Flush()
}
