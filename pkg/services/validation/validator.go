package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/de-tools/finreport/pkg/models/domain"
)

// Validate converts a raw pair into a FinancialRecord. The returned error is always a
// *domain.Rejection. Negative revenue is accepted; callers check record.NegativeRevenue().
func Validate(pair domain.RawPair) (domain.FinancialRecord, error) {
	revenue, err := toFloat(pair, "revenue", pair.Revenue)
	if err != nil {
		return domain.FinancialRecord{}, err
	}
	profit, err := toFloat(pair, "profit", pair.Profit)
	if err != nil {
		return domain.FinancialRecord{}, err
	}

	if revenue == 0 {
		return domain.FinancialRecord{}, &domain.Rejection{
			Kind:   domain.RejectionZeroRevenue,
			Pair:   pair,
			Detail: fmt.Sprintf("skipping row (profit: %s)", strconv.FormatFloat(profit, 'f', -1, 64)),
		}
	}

	rec := domain.FinancialRecord{Revenue: revenue, Profit: profit}
	if margin := rec.MarginPercent(); math.IsNaN(margin) || math.IsInf(margin, 0) {
		return domain.FinancialRecord{}, &domain.Rejection{
			Kind:   domain.RejectionNonNumeric,
			Pair:   pair,
			Detail: "margin overflows",
		}
	}

	return rec, nil
}

// ValidateValues validates untyped Go values, e.g. decoded JSON or hardcoded literals.
func ValidateValues(revenue, profit any) (domain.FinancialRecord, error) {
	return Validate(domain.RawPair{Revenue: FromAny(revenue), Profit: FromAny(profit)})
}

// FromAny maps an arbitrary Go value onto the raw value union.
func FromAny(v any) domain.RawValue {
	switch t := v.(type) {
	case nil:
		return domain.Missing()
	case domain.RawValue:
		return t
	case float64:
		return domain.Number(t)
	case float32:
		return domain.Number(float64(t))
	case int:
		return domain.Number(float64(t))
	case int64:
		return domain.Number(float64(t))
	case int32:
		return domain.Number(float64(t))
	case json.Number:
		return domain.String(t.String())
	case string:
		return domain.String(t)
	default:
		// bools, objects and arrays are never numeric
		b, err := json.Marshal(t)
		if err != nil {
			return domain.String(fmt.Sprint(t))
		}
		return domain.String(string(b))
	}
}

func toFloat(pair domain.RawPair, field string, v domain.RawValue) (float64, error) {
	switch v.Kind {
	case domain.ValueNumber:
		if math.IsNaN(v.Number) || math.IsInf(v.Number, 0) {
			return 0, nonNumeric(pair, field, v)
		}
		return v.Number, nil
	case domain.ValueString:
		text := strings.TrimSpace(v.Text)
		if text == "" {
			return 0, missing(pair, field)
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, nonNumeric(pair, field, v)
		}
		return f, nil
	default:
		return 0, missing(pair, field)
	}
}

func nonNumeric(pair domain.RawPair, field string, v domain.RawValue) error {
	return &domain.Rejection{
		Kind:   domain.RejectionNonNumeric,
		Pair:   pair,
		Detail: fmt.Sprintf("%s %q is not a number", field, v.String()),
	}
}

func missing(pair domain.RawPair, field string) error {
	return &domain.Rejection{
		Kind:   domain.RejectionMissingField,
		Pair:   pair,
		Detail: fmt.Sprintf("%s is empty", field),
	}
}
