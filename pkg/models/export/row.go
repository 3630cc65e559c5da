package export

import "github.com/shopspring/decimal"

// Header is the column order used by file exports
var Header = []string{"revenue", "profit", "percent"}

// Row is a report row with numeric values rounded for export
type Row struct {
	Revenue float64
	Profit  float64
	Percent float64
}

// SummaryLine is a labelled aggregate written below the rows
type SummaryLine struct {
	Label string
	Value decimal.Decimal
}
