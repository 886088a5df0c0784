package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/efreport/efreport/internal/model"
	"github.com/efreport/efreport/internal/render"
	"github.com/efreport/efreport/internal/report"
)

func newSummaryCommand(root *rootOptions) *cobra.Command {
	var kind string
	var byTotal bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print per-category totals and counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runSummary(cmd.OutOrStdout(), p, kind, byTotal)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "only show income or expense categories")
	cmd.Flags().BoolVar(&byTotal, "by-total", false, "order by total, largest first")

	return cmd
}

func runSummary(out io.Writer, p *project, kind string, byTotal bool) error {
	switch model.Kind(kind) {
	case "", model.KindIncome, model.KindExpense:
	default:
		return fmt.Errorf("invalid --kind %q: must be %s or %s", kind, model.KindIncome, model.KindExpense)
	}

	txns, err := p.loadTransactions()
	if err != nil {
		return err
	}

	summaries := p.cfg.Classifier().Summarize(txns)
	if kind != "" {
		summaries = report.FilterKind(summaries, model.Kind(kind))
	}
	if byTotal {
		summaries = report.SortByTotalDescending(summaries)
	}

	return render.Summaries(out, summaries)
}
