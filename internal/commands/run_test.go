package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/achrecon-dev/achrecon/internal/recon"
)

const invoiceCSV = `Payment Date,Line Item Description,Extended Amount,Quantity,Unit Cost,Invoice Amount,Due Date,CAI Invoice Number,Supplier's Invoice Number
2024-03-15,Jane Doe (S12345)[C]:2024-03-04:2024-03-10,500.00,40,12.50,500.00,2024-04-15,CAI-100,SUP-200
2024-03-15,John Smith (S67890)[C]:2024-03-11:2024-03-17,500.00,40,12.50,500.00,2024-04-15,CAI-101,SUP-201
`

func writeInvoice(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "invoices.csv")
	require.NoError(t, os.WriteFile(path, []byte(invoiceCSV), 0o644))
	return path
}

func baseParams(t *testing.T) runParams {
	t.Helper()
	dir := t.TempDir()
	return runParams{
		amount:      "1000.00",
		description: "March Payroll",
		date:        "2024-03-15",
		file:        writeInvoice(t),
		out:         filepath.Join(dir, "report.xlsx"),
		configPath:  filepath.Join(dir, "achrecon.yaml"),
	}
}

func TestRun_EndToEnd(t *testing.T) {
	p := baseParams(t)
	require.NoError(t, runReconcile(p))

	data, err := os.ReadFile(p.out)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "ACH Report", f.GetSheetName(0))
	rows, err := f.GetRows("ACH Report")
	require.NoError(t, err)
	assert.Equal(t, "ACH Summary", rows[0][0])
	assert.Equal(t, "March Payroll", rows[1][1])
}

func TestRun_MissingInput(t *testing.T) {
	p := baseParams(t)
	p.description = ""

	err := runReconcile(p)
	require.Error(t, err)
	assert.Equal(t, recon.ReasonMissingInput, recon.ReasonOf(err))
	assert.NoFileExists(t, p.out)
}

func TestRun_BadDate(t *testing.T) {
	p := baseParams(t)
	p.date = "03/15/2024"

	err := runReconcile(p)
	require.Error(t, err)
	assert.Equal(t, recon.ReasonMissingInput, recon.ReasonOf(err))
}

func TestRun_AmountMismatch(t *testing.T) {
	p := baseParams(t)
	p.amount = "999.99"

	err := runReconcile(p)
	require.Error(t, err)
	assert.Equal(t, recon.ReasonAmountMismatch, recon.ReasonOf(err))
	assert.Contains(t, err.Error(), "1000.00")
	assert.Contains(t, err.Error(), "999.99")
	assert.NoFileExists(t, p.out)
}

func TestRun_UnsupportedFileType(t *testing.T) {
	p := baseParams(t)
	p.file = "invoices.pdf"

	err := runReconcile(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported invoice file type")
}

func TestRun_MissingColumnIsUnexpectedError(t *testing.T) {
	p := baseParams(t)
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("Payment Date,Extended Amount\n2024-03-15,100.00\n"), 0o644))
	p.file = path

	err := runReconcile(p)
	require.Error(t, err)
	assert.Equal(t, recon.ReasonUnexpected, recon.ReasonOf(err))
	assert.Contains(t, err.Error(), "missing required column")
}

func TestRun_ConfigOverridesPresentation(t *testing.T) {
	p := baseParams(t)
	require.NoError(t, os.WriteFile(p.configPath, []byte("report:\n  sheet_name: Q1 Recon\n  output_file: custom.xlsx\n"), 0o644))
	p.out = ""

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(filepath.Dir(p.configPath)))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	require.NoError(t, runReconcile(p))

	data, err := os.ReadFile(filepath.Join(filepath.Dir(p.configPath), "custom.xlsx"))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, "Q1 Recon", f.GetSheetName(0))
}

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "achrecon", cmd.Use)

	names := make([]string, 0)
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "run")
}
