package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/de-tools/finreport/pkg/models/domain"
)

const (
	DefaultRevenueKey = "revenue"
	DefaultProfitKey  = "profit"
)

var (
	ErrFileNotFound         = errors.New("file not found")
	ErrUnsupportedExtension = errors.New("unsupported file extension")
)

// Source produces raw pairs in input order.
type Source interface {
	// Name identifies the source in status lines, e.g. the file path
	Name() string
	// Scan pushes every pair into sink. An error returned by the sink stops the scan.
	// Errors returned by Scan are source-scoped (unreadable file, malformed document).
	Scan(ctx context.Context, sink Sink) error
}

// Sink receives what a source produces.
type Sink interface {
	Pair(pair domain.RawPair) error
	Reject(rej *domain.Rejection)
	Advise(adv domain.Advisory)
}

// Options contain source settings shared by the file factories
type Options struct {
	RevenueKey string
	ProfitKey  string
}

func (o Options) withDefaults() Options {
	if o.RevenueKey == "" {
		o.RevenueKey = DefaultRevenueKey
	}
	if o.ProfitKey == "" {
		o.ProfitKey = DefaultProfitKey
	}
	return o
}

func readFile(path string) ([]byte, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return payload, nil
}
