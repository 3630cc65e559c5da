package status

import (
	"errors"
	"strings"
	"testing"

	"github.com/de-tools/finreport/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestPrinter_Markers(t *testing.T) {
	var b strings.Builder
	p := NewPrinter(&b, false)

	p.Success("done %d", 1)
	p.Warn("careful")
	p.Error("broken")
	p.Info("fyi")

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"✅ done 1",
		"⚠️  careful",
		"❌ broken",
		"ℹ️  fyi",
	}, lines)
}

func TestPrinter_Color(t *testing.T) {
	var b strings.Builder
	NewPrinter(&b, true).Error("broken")
	assert.Contains(t, b.String(), "\x1b[31m")
	assert.Contains(t, b.String(), "❌ broken")
}

func TestListener(t *testing.T) {
	var b strings.Builder
	l := NewListener(NewPrinter(&b, false), true)

	l.Accepted(domain.FinancialRecord{Revenue: 1000, Profit: -10}, "entry 1")
	l.Rejected(&domain.Rejection{
		Kind: domain.RejectionZeroRevenue,
		Pair: domain.RawPair{Revenue: domain.Number(0), Profit: domain.Number(50), Origin: "entry 2"},
	})
	l.Rejected(&domain.Rejection{
		Kind: domain.RejectionNonNumeric,
		Pair: domain.RawPair{Revenue: domain.String("abc"), Profit: domain.String("1"), Origin: "entry 3"},
	})
	l.Advised(domain.Advisory{Code: domain.AdvisoryNegativeRevenue, Message: "negative revenue -5 accepted", Origin: "entry 4"})
	l.Failed(errors.New("file not found: x.csv"))

	out := b.String()
	assert.Contains(t, out, "✅ Added entry 1: revenue 1,000.00, profit -10.00")
	assert.Contains(t, out, "⚠️  Warning: entry 2: zero revenue")
	assert.Contains(t, out, `❌ Error: invalid data (revenue="abc" profit="1")`)
	assert.Contains(t, out, "⚠️  Warning: entry 4: negative revenue -5 accepted")
	assert.Contains(t, out, "❌ Error reading source: file not found: x.csv")
}

func TestListener_NoAckForFiles(t *testing.T) {
	var b strings.Builder
	NewListener(NewPrinter(&b, false), false).Accepted(domain.FinancialRecord{Revenue: 1, Profit: 1}, "line 1")
	assert.Empty(t, b.String())
}
