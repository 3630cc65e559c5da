package source

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/de-tools/finreport/pkg/models/domain"
	"github.com/de-tools/finreport/pkg/services/validation"
)

type jsonSource struct {
	path       string
	revenueKey string
	profitKey  string
}

// JSONFactory creates a source reading either an array of objects keyed by the
// configured revenue/profit keys or an array of two-element arrays
func JSONFactory(path string, opts Options) (Source, error) {
	opts = opts.withDefaults()
	return &jsonSource{
		path:       path,
		revenueKey: opts.RevenueKey,
		profitKey:  opts.ProfitKey,
	}, nil
}

func (s *jsonSource) Name() string {
	return s.path
}

func (s *jsonSource) Scan(ctx context.Context, sink Sink) error {
	payload, err := readFile(s.path)
	if err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(bytes.TrimPrefix(payload, byteOrderMark)))
	dec.UseNumber()

	var document any
	if err := dec.Decode(&document); err != nil {
		return fmt.Errorf("failed to parse json %s: %w", s.path, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse json %s: unexpected data after the top-level value", s.path)
	}

	items, ok := document.([]any)
	if !ok {
		return fmt.Errorf("%w: %s: expected an array of objects or an array of pairs",
			domain.ErrUnsupportedFormat, s.path)
	}

	if len(items) > 0 {
		s.checkDrift(items[0], sink)
	}

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			return err
		}

		var err error
		origin := fmt.Sprintf("item %d", i+1)
		switch v := item.(type) {
		case map[string]any:
			err = sink.Pair(domain.RawPair{
				Revenue: validation.FromAny(v[s.revenueKey]),
				Profit:  validation.FromAny(v[s.profitKey]),
				Origin:  origin,
			})
		case []any:
			pair := domain.RawPair{Revenue: domain.Missing(), Profit: domain.Missing(), Origin: origin}
			if len(v) > 0 {
				pair.Revenue = validation.FromAny(v[0])
			}
			if len(v) > 1 {
				pair.Profit = validation.FromAny(v[1])
			}
			err = sink.Pair(pair)
		default:
			raw := validation.FromAny(v)
			sink.Reject(&domain.Rejection{
				Kind:   domain.RejectionUnsupportedFormat,
				Pair:   domain.RawPair{Revenue: raw, Profit: domain.Missing(), Origin: origin},
				Detail: "expected an object or an array",
			})
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// checkDrift raises an advisory when the first object does not carry the configured keys.
// Rows are still validated individually.
func (s *jsonSource) checkDrift(first any, sink Sink) {
	obj, ok := first.(map[string]any)
	if !ok {
		return
	}
	_, hasRevenue := obj[s.revenueKey]
	_, hasProfit := obj[s.profitKey]
	if hasRevenue && hasProfit {
		return
	}

	found := make([]string, 0, len(obj))
	for k := range obj {
		found = append(found, k)
	}
	sort.Strings(found)

	sink.Advise(domain.Advisory{
		Code: domain.AdvisoryFormatDrift,
		Message: fmt.Sprintf("keys %q/%q missing, found %v",
			s.revenueKey, s.profitKey, found),
		Origin: "item 1",
	})
}
