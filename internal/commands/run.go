package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/achrecon-dev/achrecon/internal/config"
	"github.com/achrecon-dev/achrecon/internal/importer"
	"github.com/achrecon-dev/achrecon/internal/model"
	"github.com/achrecon-dev/achrecon/internal/recon"
	"github.com/achrecon-dev/achrecon/internal/report"
)

func newRunCommand() *cobra.Command {
	var params runParams

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate an ACH reconciliation report from a supplier invoice file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReconcile(params)
		},
	}

	cmd.Flags().StringVar(&params.amount, "amount", "", "ACH amount in dollars")
	cmd.Flags().StringVar(&params.description, "description", "", "ACH description")
	cmd.Flags().StringVar(&params.date, "date", "", "ACH payment date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&params.file, "file", "", "supplier invoice file (.xlsx or .csv)")
	cmd.Flags().StringVar(&params.out, "out", "", "output report path (default from config)")
	cmd.Flags().StringVar(&params.configPath, "config", "achrecon.yaml", "config file path")

	return cmd
}

type runParams struct {
	amount      string
	description string
	date        string
	file        string
	out         string
	configPath  string
}

// runReconcile drives one reconciliation: input checks, import, engine,
// report, file write. All inputs are validated before any row is read.
func runReconcile(p runParams) error {
	if p.amount == "" || p.description == "" || p.date == "" || p.file == "" {
		return &recon.Error{
			Reason:  recon.ReasonMissingInput,
			Message: "amount, description, date and file are all required",
		}
	}

	date, err := time.Parse("2006-01-02", p.date)
	if err != nil {
		return &recon.Error{
			Reason:  recon.ReasonMissingInput,
			Message: fmt.Sprintf("ACH date %q is not a valid YYYY-MM-DD date", p.date),
		}
	}

	cfg, err := config.LoadOrDefault(p.configPath)
	if err != nil {
		return err
	}

	reader := importer.DefaultRegistry().ForFile(p.file)
	if reader == nil {
		return fmt.Errorf("unsupported invoice file type %q", filepath.Ext(p.file))
	}

	f, err := os.Open(p.file)
	if err != nil {
		return fmt.Errorf("opening invoice file: %w", err)
	}
	defer f.Close()

	rows, err := reader.Read(f)
	if err != nil {
		return &recon.Error{Reason: recon.ReasonUnexpected, Message: err.Error()}
	}

	result, err := recon.Reconcile(rows, model.AchPayment{
		Amount:      p.amount,
		Description: p.description,
		Date:        date,
	})
	if err != nil {
		return err
	}

	buf, err := report.Bytes(result, report.Options{
		SheetName:    cfg.Report.SheetName,
		MaxColWidth:  cfg.Report.MaxColWidth,
		WidthPadding: cfg.Report.WidthPadding,
	})
	if err != nil {
		return fmt.Errorf("building report: %w", err)
	}

	outPath := p.out
	if outPath == "" {
		outPath = cfg.Report.OutputFile
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	fmt.Printf("ACH matched: %d rows totaling $%s; report written to %s\n",
		len(result.Rows), result.Summary.Amount.StringFixed(2), outPath)
	return nil
}
