package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/efreport/efreport/internal/categories"
	"github.com/efreport/efreport/internal/render"
)

func newCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the statutory report categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCategories(cmd.OutOrStdout(), categories.Default())
		},
	}
}

func runCategories(out io.Writer, catalog *categories.Catalog) error {
	t := render.NewTable("")
	for _, e := range catalog.All() {
		t.Row(e.Name, string(e.Kind), e.Description)
	}
	_, err := t.WriteTo(out)
	return err
}
