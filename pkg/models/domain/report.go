package domain

import "github.com/shopspring/decimal"

// Report represents a complete financial report ready for rendering
type Report struct {
	Title   string
	Source  string
	Rows    []ReportRow
	Summary *Summary
}

// ReportRow is a record with its derived margin and display values
type ReportRow struct {
	Record        FinancialRecord
	MarginPercent float64
	Revenue       string // 1,000.00
	Profit        string // +10.00
	Percent       string // 1.00%
}

// Summary aggregates the rows of a non-empty report. Totals stay exact, so they
// never overflow to infinity the way a float64 sum can.
type Summary struct {
	Count         int
	TotalRevenue  decimal.Decimal
	TotalProfit   decimal.Decimal
	AverageMargin decimal.Decimal // mean of per-row margins
}

func (r *Report) Empty() bool {
	return r == nil || len(r.Rows) == 0
}
