package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/de-tools/finreport/pkg/adapters"
	"github.com/de-tools/finreport/pkg/models/domain"
	"github.com/de-tools/finreport/pkg/models/export"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const SheetName = "Report"

var ErrUnsupportedExport = errors.New("unsupported export format")

// WriteFile writes the report rows, and the summary when present, to a .csv or .xlsx file
func WriteFile(path string, report *domain.Report) error {
	rows := make([]export.Row, 0, len(report.Rows))
	for _, r := range report.Rows {
		rows = append(rows, adapters.MapReportRowToExport(r))
	}
	summary := adapters.MapSummaryToExport(report.Summary)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return writeCSV(path, rows, summary)
	case ".xlsx":
		return writeXLSX(path, rows, summary)
	default:
		return fmt.Errorf("%w %q: use .csv or .xlsx", ErrUnsupportedExport, ext)
	}
}

func writeCSV(path string, rows []export.Row, summary []export.SummaryLine) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	records := [][]string{export.Header}
	for _, r := range rows {
		records = append(records, []string{formatNumber(r.Revenue), formatNumber(r.Profit), formatNumber(r.Percent)})
	}
	if len(summary) > 0 {
		records = append(records, []string{})
		for _, s := range summary {
			records = append(records, []string{s.Label, s.Value.String()})
		}
	}

	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write csv export: %w", err)
	}
	return f.Close()
}

func writeXLSX(path string, rows []export.Row, summary []export.SummaryLine) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	lines := make([][]any, 0, len(rows)+len(summary)+2)
	header := make([]any, len(export.Header))
	for i, h := range export.Header {
		header[i] = h
	}
	lines = append(lines, header)
	for _, r := range rows {
		lines = append(lines, []any{r.Revenue, r.Profit, r.Percent})
	}
	if len(summary) > 0 {
		lines = append(lines, nil)
		for _, s := range summary {
			lines = append(lines, []any{s.Label, summaryCell(s.Value)})
		}
	}

	for i, line := range lines {
		if line == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &line); err != nil {
			return fmt.Errorf("failed to write xlsx row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save xlsx export: %w", err)
	}
	return nil
}

// summaryCell keeps totals numeric unless they are beyond float64 range
func summaryCell(d decimal.Decimal) any {
	if f := d.InexactFloat64(); !math.IsInf(f, 0) {
		return f
	}
	return d.String()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
