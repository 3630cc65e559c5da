package export

import (
	"fmt"
	"html"
	"io"
	"os"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/de-tools/finreport/pkg/adapters"
	"github.com/de-tools/finreport/pkg/models/domain"
	"github.com/de-tools/finreport/pkg/runtime/terminal/status"
	"github.com/fatih/color"
)

const NoDataMessage = "No valid data to display."

var headers = []string{"REVENUE", "PROFIT", "PERCENT"}

type TableConfig struct {
	Style Style
	// Color paints negative profit red in text styles
	Color bool
}

func DefaultTableConfig() TableConfig {
	return TableConfig{Style: StyleSimple}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer, config TableConfig) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	if config.Style == "" {
		config.Style = DefaultTableConfig().Style
	}
	return &Reporter{
		writer: writer,
		config: config,
	}
}

const summaryTemplate = `
Total Rows: {{.Count}}
Total Revenue: {{amount .TotalRevenue}}
Total Profit: {{signed .TotalProfit}}
Average Margin: {{percent .AverageMargin}}
`

func (c *Reporter) Handle(report *domain.Report) error {
	if report.Empty() {
		_, err := fmt.Fprintln(c.writer, status.Line(status.Warning, NoDataMessage))
		return err
	}

	table, err := c.renderTable(report.Rows)
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s (%s)\n\n", report.Title, report.Source)
	b.WriteString(table)

	if report.Summary != nil {
		funcMap := template.FuncMap{
			"amount":  adapters.FormatDecimalAmount,
			"signed":  adapters.FormatDecimalSigned,
			"percent": adapters.FormatDecimalPercent,
		}
		t, err := template.New("summary").Funcs(funcMap).Parse(summaryTemplate)
		if err != nil {
			return fmt.Errorf("failed to parse template: %w", err)
		}
		if err := t.Execute(&b, report.Summary); err != nil {
			return fmt.Errorf("failed to render summary: %w", err)
		}
	}

	_, err = io.WriteString(c.writer, b.String())
	return err
}

func (c *Reporter) renderTable(rows []domain.ReportRow) (string, error) {
	cells := make([][]string, len(rows))
	negative := make([]bool, len(rows))
	for i, row := range rows {
		cells[i] = []string{row.Revenue, row.Profit, row.Percent}
		negative[i] = row.Record.Profit < 0
	}

	switch c.config.Style {
	case StyleMediawiki:
		return renderMediawiki(cells), nil
	case StyleHTML:
		return renderHTML(cells), nil
	case StyleLatex:
		return renderLatex(cells), nil
	}

	format, ok := lineFormats[c.config.Style]
	if !ok {
		return "", fmt.Errorf("unsupported table format %q", c.config.Style)
	}

	widths := columnWidths(cells)
	var lines []string
	if format.top != nil {
		lines = append(lines, format.drawRule(format.top, widths))
	}
	lines = append(lines, format.drawRow(padCells(headers, widths)))
	if format.belowHeader != nil {
		lines = append(lines, format.drawRule(format.belowHeader, widths))
	}
	for i, row := range cells {
		if i > 0 && format.betweenRows != nil {
			lines = append(lines, format.drawRule(format.betweenRows, widths))
		}
		padded := padCells(row, widths)
		if c.config.Color && negative[i] {
			padded[1] = red(padded[1])
		}
		lines = append(lines, format.drawRow(padded))
	}
	if format.bottom != nil {
		lines = append(lines, format.drawRule(format.bottom, widths))
	}

	return strings.Join(lines, "\n") + "\n", nil
}

func columnWidths(rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}
	return widths
}

// padCells right-aligns every cell to its column width.
func padCells(cells []string, widths []int) []string {
	out := make([]string, len(cells))
	for i, cell := range cells {
		out[i] = strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell)) + cell
	}
	return out
}

func red(s string) string {
	c := color.New(color.FgRed)
	c.EnableColor()
	return c.Sprint(s)
}

func renderMediawiki(rows [][]string) string {
	var b strings.Builder
	b.WriteString("{| class=\"wikitable\" style=\"text-align: left;\"\n")
	b.WriteString("|+ <!-- caption -->\n|-\n")

	heads := make([]string, len(headers))
	for i, h := range headers {
		heads[i] = `align="right"| ` + h
	}
	b.WriteString("! " + strings.Join(heads, " !! ") + "\n")

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = `align="right"| ` + cell
		}
		b.WriteString("|-\n| " + strings.Join(cells, " || ") + "\n")
	}
	b.WriteString("|}\n")
	return b.String()
}

func renderHTML(rows [][]string) string {
	var b strings.Builder
	b.WriteString("<table>\n<thead>\n<tr>")
	for _, h := range headers {
		fmt.Fprintf(&b, `<th style="text-align: right;">%s</th>`, html.EscapeString(h))
	}
	b.WriteString("</tr>\n</thead>\n<tbody>\n")
	for _, row := range rows {
		b.WriteString("<tr>")
		for _, cell := range row {
			fmt.Fprintf(&b, `<td style="text-align: right;">%s</td>`, html.EscapeString(cell))
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody>\n</table>\n")
	return b.String()
}

var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`%`, `\%`,
	`&`, `\&`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
)

func renderLatex(rows [][]string) string {
	escaped := make([][]string, len(rows))
	for i, row := range rows {
		escaped[i] = make([]string, len(row))
		for j, cell := range row {
			escaped[i][j] = latexEscaper.Replace(cell)
		}
	}

	widths := columnWidths(escaped)
	line := func(cells []string) string {
		return " " + strings.Join(padCells(cells, widths), " & ") + ` \\`
	}

	var b strings.Builder
	b.WriteString(`\begin{tabular}{` + strings.Repeat("r", len(headers)) + "}\n")
	b.WriteString("\\hline\n")
	b.WriteString(line(headers) + "\n")
	b.WriteString("\\hline\n")
	for _, row := range escaped {
		b.WriteString(line(row) + "\n")
	}
	b.WriteString("\\hline\n")
	b.WriteString(`\end{tabular}` + "\n")
	return b.String()
}
