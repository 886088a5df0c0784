package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/efreport/efreport/internal/config"
	"github.com/efreport/efreport/internal/dataset"
	"github.com/efreport/efreport/internal/model"
)

func newInitCommand() *cobra.Command {
	var title string
	var sample bool
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new report project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd.OutOrStdout(), absDir, title, sample, force)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "report title")
	cmd.Flags().BoolVar(&sample, "sample", false, "write a sample dataset instead of an empty one")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing "+config.FileName)

	return cmd
}

func runInit(out io.Writer, dir, title string, sample, force bool) error {
	cfgPath := filepath.Join(dir, config.FileName)
	if !force {
		if _, err := os.Stat(cfgPath); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", cfgPath)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("checking config: %w", err)
		}
	}

	// Create directory structure.
	for _, d := range []string{"data", "logs"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write efreport.yaml.
	cfg := config.Default(title)
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write the dataset unless one is already there.
	dataPath := filepath.Join(dir, cfg.Report.Dataset)
	if _, err := os.Stat(dataPath); errors.Is(err, fs.ErrNotExist) {
		var txns []model.Transaction
		if sample {
			txns = sampleTransactions()
		}
		if err := writeDataset(dataPath, txns); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "Initialized report project at %s\n", dir)
	return nil
}

func writeDataset(path string, txns []model.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating dataset: %w", err)
	}
	defer f.Close()

	if err := dataset.WriteJSON(f, txns); err != nil {
		return fmt.Errorf("writing dataset: %w", err)
	}
	return nil
}

func sampleTransactions() []model.Transaction {
	date := func(s string) *time.Time {
		d, _ := model.ParseDate(s)
		return d
	}
	return []model.Transaction{
		{Date: date("2024-10-01"), Price: decimal.NewFromInt(500000), Category: "寄附", Purpose: "候補者からの寄附"},
		{Date: date("2024-10-03"), Price: decimal.NewFromInt(86400), Category: "印刷費", Purpose: "選挙運動用ビラ印刷"},
		{Date: date("2024-10-05"), Price: decimal.NewFromInt(15000), Category: "交通費", Purpose: "選挙カー燃料"},
		{Price: decimal.NewFromInt(12000), Category: "その他の収入", Purpose: "利息等"},
		{Date: date("2024-10-05"), Price: decimal.NewFromInt(120000), Category: "人件費", Purpose: "車上運動員報酬"},
	}
}
