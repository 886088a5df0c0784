package commands

import (
	"github.com/spf13/cobra"

	"github.com/efreport/efreport/internal/buildinfo"
	"github.com/efreport/efreport/internal/config"
)

type rootOptions struct {
	configPath string
	verbose    bool
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "efreport",
		Short:   "Campaign finance disclosure reports",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", config.FileName, "path to "+config.FileName)
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug diagnostics to stderr")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newReportCommand(opts))
	rootCmd.AddCommand(newSummaryCommand(opts))
	rootCmd.AddCommand(newClassifyCommand(opts))
	rootCmd.AddCommand(newCategoriesCommand())

	return rootCmd
}
