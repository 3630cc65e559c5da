package domain

import (
	"errors"
	"fmt"
)

type RejectionKind string

const (
	RejectionNonNumeric        RejectionKind = "non-numeric"
	RejectionZeroRevenue       RejectionKind = "zero-revenue"
	RejectionMissingField      RejectionKind = "missing-field"
	RejectionUnsupportedFormat RejectionKind = "unsupported-format"
)

var (
	ErrNonNumeric        = errors.New("non-numeric input")
	ErrZeroRevenue       = errors.New("zero revenue")
	ErrMissingField      = errors.New("missing field")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

var rejectionSentinels = map[RejectionKind]error{
	RejectionNonNumeric:        ErrNonNumeric,
	RejectionZeroRevenue:       ErrZeroRevenue,
	RejectionMissingField:      ErrMissingField,
	RejectionUnsupportedFormat: ErrUnsupportedFormat,
}

// Rejection describes a row that failed validation. It is row-scoped and never fatal.
type Rejection struct {
	Kind   RejectionKind
	Pair   RawPair
	Detail string
}

func (r *Rejection) Error() string {
	msg := rejectionSentinels[r.Kind].Error()
	if r.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, r.Detail)
	}
	if r.Pair.Origin != "" {
		return fmt.Sprintf("%s: %s", r.Pair.Origin, msg)
	}
	return msg
}

func (r *Rejection) Unwrap() error {
	return rejectionSentinels[r.Kind]
}

type AdvisoryCode string

const (
	AdvisoryNegativeRevenue  AdvisoryCode = "negative-revenue"
	AdvisoryDuplicateRecord  AdvisoryCode = "duplicate-record"
	AdvisoryFormatDrift      AdvisoryCode = "format-drift"
	AdvisoryEncodingFallback AdvisoryCode = "encoding-fallback"
)

// Advisory represents a non-fatal notice raised while loading.
type Advisory struct {
	Code    AdvisoryCode
	Message string
	Origin  string
}

func (a Advisory) String() string {
	if a.Origin == "" {
		return a.Message
	}
	return fmt.Sprintf("%s: %s", a.Origin, a.Message)
}
