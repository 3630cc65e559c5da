package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

type xlsxSource struct {
	path string
}

// XLSXFactory creates a source reading the first sheet of a workbook
func XLSXFactory(path string, _ Options) (Source, error) {
	return &xlsxSource{path: path}, nil
}

func (s *xlsxSource) Name() string {
	return s.path
}

func (s *xlsxSource) Scan(ctx context.Context, sink Sink) error {
	payload, err := readFile(s.path)
	if err != nil {
		return err
	}

	rows, err := readFirstSheet(payload)
	if err != nil {
		return fmt.Errorf("failed to read xlsx %s: %w", s.path, err)
	}

	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i == 0 && isHeader(row) {
			continue
		}
		if isBlank(row) {
			continue
		}
		if err := sink.Pair(pairFromFields(row, fmt.Sprintf("row %d", i+1))); err != nil {
			return err
		}
	}
	return nil
}

func readFirstSheet(payload []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	return f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
}
