package domain

import (
	"fmt"
	"strconv"
)

type ValueKind int

const (
	ValueMissing ValueKind = iota
	ValueNumber
	ValueString
)

// RawValue is a single untyped field as it came out of a source.
type RawValue struct {
	Kind   ValueKind
	Number float64
	Text   string
}

func Missing() RawValue         { return RawValue{Kind: ValueMissing} }
func Number(v float64) RawValue { return RawValue{Kind: ValueNumber, Number: v} }
func String(s string) RawValue  { return RawValue{Kind: ValueString, Text: s} }

func (v RawValue) IsMissing() bool {
	return v.Kind == ValueMissing
}

func (v RawValue) String() string {
	switch v.Kind {
	case ValueNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case ValueString:
		return v.Text
	default:
		return "<missing>"
	}
}

// RawPair is an unvalidated (revenue, profit) candidate.
type RawPair struct {
	Revenue RawValue
	Profit  RawValue
	Origin  string // "line 3", "item 2", "entry 1"
}

func (p RawPair) String() string {
	return fmt.Sprintf("revenue=%q profit=%q", p.Revenue.String(), p.Profit.String())
}

// FinancialRecord is a validated pair. Revenue is never zero.
type FinancialRecord struct {
	Revenue float64
	Profit  float64
}

// MarginPercent returns profit/revenue expressed as a percentage.
func (r FinancialRecord) MarginPercent() float64 {
	return r.Profit / r.Revenue * 100
}

func (r FinancialRecord) NegativeRevenue() bool {
	return r.Revenue < 0
}
