package status

import (
	"github.com/de-tools/finreport/pkg/adapters"
	"github.com/de-tools/finreport/pkg/models/domain"
)

// Listener reports load progress through a Printer. Accepted rows are
// acknowledged only when ack is set, as in interactive mode.
type Listener struct {
	printer *Printer
	ack     bool
}

func NewListener(printer *Printer, ack bool) *Listener {
	return &Listener{printer: printer, ack: ack}
}

func (l *Listener) Accepted(rec domain.FinancialRecord, origin string) {
	if !l.ack {
		return
	}
	l.printer.Success("Added %s: revenue %s, profit %s",
		origin, adapters.FormatAmount(rec.Revenue), adapters.FormatSigned(rec.Profit))
}

func (l *Listener) Rejected(rej *domain.Rejection) {
	if rej.Kind == domain.RejectionZeroRevenue {
		l.printer.Warn("Warning: %s", rej.Error())
		return
	}
	l.printer.Error("Error: invalid data (%s) - %s", rej.Pair, rej.Error())
}

func (l *Listener) Advised(adv domain.Advisory) {
	l.printer.Warn("Warning: %s", adv)
}

func (l *Listener) Failed(err error) {
	l.printer.Error("Error reading source: %v", err)
}
