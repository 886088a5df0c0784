package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/efreport/efreport/internal/log"
	"github.com/efreport/efreport/internal/render"
	"github.com/efreport/efreport/internal/report"
	"github.com/efreport/efreport/internal/runlog"
)

type reportOptions struct {
	format string
	out    string
	record bool
}

func newReportCommand(root *rootOptions) *cobra.Command {
	var opts reportOptions

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Build the disclosure report from the project dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runReport(cmd.OutOrStdout(), p, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: text, json or csv (default from config)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&opts.record, "record", false, "append this run to logs/report-log.csv")

	return cmd
}

func runReport(stdout io.Writer, p *project, opts reportOptions) error {
	format := opts.format
	if format == "" {
		format = p.cfg.Output.Format
	}
	renderFn, err := render.ForFormat(format)
	if err != nil {
		return err
	}

	txns, err := p.loadTransactions()
	if err != nil {
		return err
	}

	classifier := p.cfg.Classifier()
	view := report.Build(txns, report.Options{
		Title:      p.cfg.Report.Title,
		Classifier: &classifier,
	})

	l := log.Component(p.logger, "report")
	l.Debug().
		Int(log.FieldTransactions, len(txns)).
		Int(log.FieldCategories, len(view.Summaries)).
		Str(log.FieldFormat, format).
		Msg("report built")

	if err := writeOutput(stdout, opts.out, func(w io.Writer) error { return renderFn(w, view) }); err != nil {
		return err
	}
	if opts.out != "" {
		l.Info().Str("out", opts.out).Msg("report written")
	}

	if opts.record {
		entry := runlog.Entry{
			Timestamp:    time.Now().UTC(),
			Command:      "report",
			Dataset:      p.cfg.Report.Dataset,
			Transactions: len(txns),
			Income:       view.TotalIncome,
			Expense:      view.TotalExpense,
		}
		if err := runlog.Append(p.dir, []runlog.Entry{entry}); err != nil {
			l.Warn().Err(err).Msg("failed to write report log")
		}
	}

	return nil
}

// writeOutput runs write against stdout, or against a new file when path is set.
func writeOutput(stdout io.Writer, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}
	return nil
}
