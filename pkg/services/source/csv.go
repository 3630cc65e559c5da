package source

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/de-tools/finreport/pkg/models/domain"
)

type csvSource struct {
	path string
}

// CSVFactory creates a source reading a comma-separated file with an optional header row
func CSVFactory(path string, _ Options) (Source, error) {
	return &csvSource{path: path}, nil
}

func (s *csvSource) Name() string {
	return s.path
}

func (s *csvSource) Scan(ctx context.Context, sink Sink) error {
	payload, err := readFile(s.path)
	if err != nil {
		return err
	}

	text, fallback, err := decodeText(payload)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", s.path, err)
	}
	if fallback {
		sink.Advise(domain.Advisory{
			Code:    domain.AdvisoryEncodingFallback,
			Message: fmt.Sprintf("%s is not valid UTF-8, decoded as ISO-8859-1", s.path),
		})
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	first := true
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read csv %s: %w", s.path, err)
		}

		line, _ := reader.FieldPos(0)
		if first {
			first = false
			if isHeader(row) {
				continue
			}
		}
		if isBlank(row) {
			continue
		}

		if err := sink.Pair(pairFromFields(row, fmt.Sprintf("line %d", line))); err != nil {
			return err
		}
	}
}
