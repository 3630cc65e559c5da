package export

import (
	"strings"
	"testing"

	"github.com/de-tools/finreport/pkg/models/domain"
	"github.com/de-tools/finreport/pkg/services/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []domain.FinancialRecord{
	{Revenue: 1000, Profit: 10},
	{Revenue: 2000, Profit: 17},
	{Revenue: 2500, Profit: 170},
	{Revenue: 2500, Profit: -170},
}

func render(t *testing.T, cfg TableConfig, rep *domain.Report) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, NewReporter(&b, cfg).Handle(rep))
	return b.String()
}

func TestHandle_SimpleStyle(t *testing.T) {
	out := render(t, DefaultTableConfig(), report.Build("built-in sample", sample, report.Options{}))

	expected := `
Financial Report (built-in sample)

 REVENUE   PROFIT  PERCENT
--------  -------  -------
1,000.00   +10.00    1.00%
2,000.00   +17.00    0.85%
2,500.00  +170.00    6.80%
2,500.00  -170.00   -6.80%
`
	assert.Equal(t, expected, out)
}

func TestHandle_GridStyleWithSummary(t *testing.T) {
	rep := report.Build("data.csv", sample[:2], report.Options{Summary: true})
	out := render(t, TableConfig{Style: StyleGrid}, rep)

	expected := `
Financial Report (data.csv)

+----------+--------+---------+
|  REVENUE | PROFIT | PERCENT |
+==========+========+=========+
| 1,000.00 | +10.00 |   1.00% |
+----------+--------+---------+
| 2,000.00 | +17.00 |   0.85% |
+----------+--------+---------+

Total Rows: 2
Total Revenue: 3,000.00
Total Profit: +27.00
Average Margin: 0.93%
`
	assert.Equal(t, expected, out)
}

func TestHandle_EveryStyleRendersAllValues(t *testing.T) {
	rep := report.Build("x", sample, report.Options{})

	for _, style := range Styles() {
		t.Run(string(style), func(t *testing.T) {
			out := render(t, TableConfig{Style: style}, rep)
			for _, h := range headers {
				assert.Contains(t, out, h)
			}
			for _, row := range rep.Rows {
				assert.Contains(t, out, row.Revenue)
				assert.Contains(t, out, row.Profit)
				if style == StyleLatex {
					assert.Contains(t, out, strings.TrimSuffix(row.Percent, "%")+`\%`)
				} else {
					assert.Contains(t, out, row.Percent)
				}
			}
		})
	}
}

func TestHandle_MarkupStyles(t *testing.T) {
	rep := report.Build("x", sample[:1], report.Options{})

	pipe := render(t, TableConfig{Style: StylePipe}, rep)
	assert.Contains(t, pipe, "|---------:|")

	github := render(t, TableConfig{Style: StyleGithub}, rep)
	assert.Contains(t, github, "|  REVENUE | PROFIT | PERCENT |")
	assert.Contains(t, github, "|----------|--------|---------|")

	orgtbl := render(t, TableConfig{Style: StyleOrgtbl}, rep)
	assert.Contains(t, orgtbl, "|----------+--------+---------|")

	rst := render(t, TableConfig{Style: StyleRST}, rep)
	assert.Equal(t, 3, strings.Count(rst, "========  ======  ======="))

	fancy := render(t, TableConfig{Style: StyleFancyGrid}, rep)
	assert.Contains(t, fancy, "╒══════════╤════════╤═════════╕")
	assert.Contains(t, fancy, "│ 1,000.00 │ +10.00 │   1.00% │")

	html := render(t, TableConfig{Style: StyleHTML}, rep)
	assert.Contains(t, html, `<td style="text-align: right;">1,000.00</td>`)
	assert.Contains(t, html, "</table>")

	wiki := render(t, TableConfig{Style: StyleMediawiki}, rep)
	assert.Contains(t, wiki, `| align="right"| 1,000.00 || align="right"| +10.00 || align="right"| 1.00%`)

	latex := render(t, TableConfig{Style: StyleLatex}, rep)
	assert.Contains(t, latex, `\begin{tabular}{rrr}`)
	assert.Contains(t, latex, `1,000.00 & +10.00 &  1.00\% \\`)
}

func TestHandle_HTMLEscapes(t *testing.T) {
	assert.Equal(t, "<table>\n<thead>\n<tr><th style=\"text-align: right;\">REVENUE</th>"+
		"<th style=\"text-align: right;\">PROFIT</th><th style=\"text-align: right;\">PERCENT</th></tr>\n"+
		"</thead>\n<tbody>\n<tr><td style=\"text-align: right;\">&lt;b&gt;</td></tr>\n</tbody>\n</table>\n",
		renderHTML([][]string{{"<b>"}}))
}

func TestHandle_EmptyReport(t *testing.T) {
	for _, style := range Styles() {
		out := render(t, TableConfig{Style: style}, report.Build("x", nil, report.Options{Summary: true}))
		assert.Equal(t, "⚠️  "+NoDataMessage+"\n", out)
	}
	assert.Contains(t, render(t, DefaultTableConfig(), nil), NoDataMessage)
}

func TestHandle_ColorNegativeProfit(t *testing.T) {
	out := render(t, TableConfig{Style: StyleSimple, Color: true}, report.Build("x", sample, report.Options{}))
	assert.Contains(t, out, "\x1b[31m-170.00\x1b[0m")
	assert.NotContains(t, out, "\x1b[31m +170.00")

	// alignment is computed before colouring
	lines := strings.Split(out, "\n")
	assert.True(t, strings.HasPrefix(lines[len(lines)-2], "2,500.00  \x1b[31m"))
}

func TestParseStyle(t *testing.T) {
	s, err := ParseStyle(" Fancy_Grid ")
	require.NoError(t, err)
	assert.Equal(t, StyleFancyGrid, s)

	_, err = ParseStyle("unicode")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "simple")
	assert.Len(t, StyleNames(), 11)
}
