package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

const (
	InteractiveName = "interactive input"
	DoneToken       = "done"
	Prompt          = "Enter revenue and profit (or 'done'): "
)

type interactiveSource struct {
	in     io.Reader
	prompt io.Writer
}

// NewInteractive prompts on w and reads one "revenue profit" entry per line from r
// until the done token or end of input.
func NewInteractive(r io.Reader, w io.Writer) Source {
	if w == nil {
		w = io.Discard
	}
	return &interactiveSource{in: r, prompt: w}
}

func (s *interactiveSource) Name() string {
	return InteractiveName
}

func (s *interactiveSource) Scan(ctx context.Context, sink Sink) error {
	scanner := bufio.NewScanner(s.in)
	entry := 0

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(s.prompt, Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(s.prompt)
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, DoneToken) {
			return nil
		}

		entry++
		if err := sink.Pair(pairFromFields(strings.Fields(line), fmt.Sprintf("entry %d", entry))); err != nil {
			return err
		}
	}
}
