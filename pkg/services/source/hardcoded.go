package source

import (
	"context"
	"fmt"

	"github.com/de-tools/finreport/pkg/models/domain"
)

// HardcodedName is shown as the source name when no input is given
const HardcodedName = "built-in sample"

var samplePairs = [][2]float64{
	{1000, 10},
	{2000, 17},
	{2500, 170},
	{2500, -170},
}

type hardcodedSource struct {
	pairs [][2]float64
}

// NewHardcoded returns the built-in sample data set
func NewHardcoded() Source {
	return &hardcodedSource{pairs: samplePairs}
}

func (s *hardcodedSource) Name() string {
	return HardcodedName
}

func (s *hardcodedSource) Scan(ctx context.Context, sink Sink) error {
	for i, p := range s.pairs {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := sink.Pair(domain.RawPair{
			Revenue: domain.Number(p[0]),
			Profit:  domain.Number(p[1]),
			Origin:  fmt.Sprintf("record %d", i+1),
		})
		if err != nil {
			return err
		}
	}
	return nil
}
