package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/efreport/efreport/internal/report"
)

func newClassifyCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <category>...",
		Short: "Show whether categories count as income or expense",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			classifier, err := projectClassifier(root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runClassify(cmd.OutOrStdout(), classifier, args)
		},
	}
}

// projectClassifier uses the project's income categories when a config file
// exists and the statutory default otherwise.
func projectClassifier(root *rootOptions, stderr io.Writer) (report.Classifier, error) {
	p, err := loadProject(root, stderr)
	if errors.Is(err, fs.ErrNotExist) {
		return report.DefaultClassifier(), nil
	}
	if err != nil {
		return report.Classifier{}, err
	}
	return p.cfg.Classifier(), nil
}

func runClassify(out io.Writer, classifier report.Classifier, names []string) error {
	for _, name := range names {
		if _, err := fmt.Fprintf(out, "%s\t%s\n", name, classifier.Classify(name)); err != nil {
			return err
		}
	}
	return nil
}
