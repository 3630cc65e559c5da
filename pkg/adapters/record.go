package adapters

import (
	"math/big"
	"strings"

	"github.com/de-tools/finreport/pkg/models/domain"
	"github.com/de-tools/finreport/pkg/models/export"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

func MapRecordToReportRow(rec domain.FinancialRecord) domain.ReportRow {
	margin := rec.MarginPercent()
	return domain.ReportRow{
		Record:        rec,
		MarginPercent: margin,
		Revenue:       FormatAmount(rec.Revenue),
		Profit:        FormatSigned(rec.Profit),
		Percent:       FormatPercent(margin),
	}
}

func MapReportRowToExport(row domain.ReportRow) export.Row {
	return export.Row{
		Revenue: round2(row.Record.Revenue),
		Profit:  round2(row.Record.Profit),
		Percent: round2(row.MarginPercent),
	}
}

func MapSummaryToExport(s *domain.Summary) []export.SummaryLine {
	if s == nil {
		return nil
	}

	return []export.SummaryLine{
		{Label: "Total Rows", Value: decimal.NewFromInt(int64(s.Count))},
		{Label: "Total Revenue", Value: s.TotalRevenue.Round(2)},
		{Label: "Total Profit", Value: s.TotalProfit.Round(2)},
		{Label: "Average Margin %", Value: s.AverageMargin.Round(2)},
	}
}

// FormatAmount formats with thousands separators and 2 decimals: 1,000.00
func FormatAmount(v float64) string {
	return FormatDecimalAmount(decimal.NewFromFloat(v))
}

// FormatDecimalAmount is FormatAmount for values of any magnitude
func FormatDecimalAmount(d decimal.Decimal) string {
	d = d.Round(2)
	whole, frac, _ := strings.Cut(d.Abs().StringFixed(2), ".")
	n, _ := new(big.Int).SetString(whole, 10)

	s := humanize.BigComma(n) + "." + frac
	if d.IsNegative() {
		return "-" + s
	}
	return s
}

// FormatSigned formats with an explicit sign and 2 decimals: +10.00, -170.00
func FormatSigned(v float64) string {
	return FormatDecimalSigned(decimal.NewFromFloat(v))
}

func FormatDecimalSigned(d decimal.Decimal) string {
	d = d.Round(2)
	if d.IsNegative() {
		return d.StringFixed(2)
	}
	return "+" + d.StringFixed(2)
}

// FormatPercent formats a percentage with 2 decimals: 1.00%
func FormatPercent(v float64) string {
	return FormatDecimalPercent(decimal.NewFromFloat(v))
}

func FormatDecimalPercent(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}

// round2 rounds half away from zero on the shortest decimal representation.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
