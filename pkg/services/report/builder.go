package report

import (
	"github.com/de-tools/finreport/pkg/adapters"
	"github.com/de-tools/finreport/pkg/models/domain"

	"github.com/shopspring/decimal"
)

const DefaultTitle = "Financial Report"

type Options struct {
	Title   string
	Summary bool
}

// Build turns validated records into a report. Rows keep the record order.
func Build(source string, records []domain.FinancialRecord, opts Options) *domain.Report {
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}

	rep := &domain.Report{
		Title:  title,
		Source: source,
		Rows:   make([]domain.ReportRow, 0, len(records)),
	}
	for _, rec := range records {
		rep.Rows = append(rep.Rows, adapters.MapRecordToReportRow(rec))
	}

	if opts.Summary {
		rep.Summary = Summarize(records)
	}
	return rep
}

// Summarize returns totals and the mean of per-record margins, or nil for no records.
func Summarize(records []domain.FinancialRecord) *domain.Summary {
	if len(records) == 0 {
		return nil
	}

	revenue, profit, margins := decimal.Zero, decimal.Zero, decimal.Zero
	for _, rec := range records {
		revenue = revenue.Add(decimal.NewFromFloat(rec.Revenue))
		profit = profit.Add(decimal.NewFromFloat(rec.Profit))
		margins = margins.Add(decimal.NewFromFloat(rec.MarginPercent()))
	}

	return &domain.Summary{
		Count:         len(records),
		TotalRevenue:  revenue,
		TotalProfit:   profit,
		AverageMargin: margins.Div(decimal.NewFromInt(int64(len(records)))),
	}
}
