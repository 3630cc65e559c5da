package loader

import (
	"context"
	"errors"
	"fmt"

	"github.com/de-tools/finreport/pkg/models/domain"
	"github.com/de-tools/finreport/pkg/services/source"
	"github.com/de-tools/finreport/pkg/services/validation"

	"github.com/rs/zerolog"
)

// Listener is notified as rows are loaded, in input order.
type Listener interface {
	Accepted(rec domain.FinancialRecord, origin string)
	Rejected(rej *domain.Rejection)
	Advised(adv domain.Advisory)
	Failed(err error)
}

type Options struct {
	// Dedupe drops exact (revenue, profit) repeats after validation
	Dedupe bool
}

// Result is the outcome of one load. Err holds a source-scoped failure; whatever
// was collected before it is kept.
type Result struct {
	Source     string
	Records    []domain.FinancialRecord
	Rejections []*domain.Rejection
	Advisories []domain.Advisory
	Duplicates int
	Err        error
}

type Loader struct {
	opts     Options
	listener Listener
}

func New(opts Options, listener Listener) *Loader {
	if listener == nil {
		listener = nopListener{}
	}
	return &Loader{opts: opts, listener: listener}
}

// Load drains src through the validator. It never returns an error: row problems
// become rejections and source problems end up in Result.Err.
func (l *Loader) Load(ctx context.Context, src source.Source) *Result {
	logger := zerolog.Ctx(ctx).With().Str("source", src.Name()).Logger()

	run := &run{
		loader: l,
		logger: logger,
		result: &Result{Source: src.Name()},
		seen:   make(map[domain.FinancialRecord]struct{}),
	}

	if err := src.Scan(ctx, run); err != nil {
		run.result.Err = err
		logger.Error().Err(err).Msg("failed to load source")
		l.listener.Failed(err)
	}

	logger.Debug().
		Int("records", len(run.result.Records)).
		Int("rejections", len(run.result.Rejections)).
		Int("duplicates", run.result.Duplicates).
		Msg("source loaded")

	return run.result
}

// run is the sink for a single Load call.
type run struct {
	loader *Loader
	logger zerolog.Logger
	result *Result
	seen   map[domain.FinancialRecord]struct{}
}

func (r *run) Pair(pair domain.RawPair) error {
	rec, err := validation.Validate(pair)
	if err != nil {
		var rej *domain.Rejection
		if !errors.As(err, &rej) {
			rej = &domain.Rejection{Kind: domain.RejectionNonNumeric, Pair: pair, Detail: err.Error()}
		}
		r.Reject(rej)
		return nil
	}

	if r.loader.opts.Dedupe {
		if _, dup := r.seen[rec]; dup {
			r.result.Duplicates++
			r.Advise(domain.Advisory{
				Code:    domain.AdvisoryDuplicateRecord,
				Message: fmt.Sprintf("duplicate record removed (%s)", pair),
				Origin:  pair.Origin,
			})
			return nil
		}
		r.seen[rec] = struct{}{}
	}

	if rec.NegativeRevenue() {
		r.Advise(domain.Advisory{
			Code:    domain.AdvisoryNegativeRevenue,
			Message: fmt.Sprintf("negative revenue %g accepted", rec.Revenue),
			Origin:  pair.Origin,
		})
	}

	r.result.Records = append(r.result.Records, rec)
	r.loader.listener.Accepted(rec, pair.Origin)
	return nil
}

func (r *run) Reject(rej *domain.Rejection) {
	r.result.Rejections = append(r.result.Rejections, rej)
	r.logger.Warn().
		Str("kind", string(rej.Kind)).
		Str("origin", rej.Pair.Origin).
		Str("revenue", rej.Pair.Revenue.String()).
		Str("profit", rej.Pair.Profit.String()).
		Msg("skipping invalid data row")
	r.loader.listener.Rejected(rej)
}

func (r *run) Advise(adv domain.Advisory) {
	r.result.Advisories = append(r.result.Advisories, adv)
	r.logger.Info().Str("code", string(adv.Code)).Str("origin", adv.Origin).Msg(adv.Message)
	r.loader.listener.Advised(adv)
}

type nopListener struct{}

func (nopListener) Accepted(domain.FinancialRecord, string) {}
func (nopListener) Rejected(*domain.Rejection)              {}
func (nopListener) Advised(domain.Advisory)                 {}
func (nopListener) Failed(error)                            {}
