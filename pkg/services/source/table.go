package source

import (
	"strconv"
	"strings"

	"github.com/de-tools/finreport/pkg/models/domain"
)

// isHeader reports whether the first row of a table is a header: none of its
// fields is a number and at least one is non-empty.
func isHeader(row []string) bool {
	nonEmpty := false
	for _, field := range row {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		nonEmpty = true
		if _, err := strconv.ParseFloat(field, 64); err == nil {
			return false
		}
	}
	return nonEmpty
}

func isBlank(row []string) bool {
	for _, field := range row {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

func pairFromFields(fields []string, origin string) domain.RawPair {
	pair := domain.RawPair{
		Revenue: domain.Missing(),
		Profit:  domain.Missing(),
		Origin:  origin,
	}
	if len(fields) > 0 {
		pair.Revenue = domain.String(fields[0])
	}
	if len(fields) > 1 {
		pair.Profit = domain.String(fields[1])
	}
	return pair
}
