package ipauk

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// maxLineSize bounds a single word-list line.
const maxLineSize = 1 << 20

// ReadLines reads a word list with one entry per line. Surrounding
// whitespace is trimmed; blank lines and lines starting with "!" are
// skipped.
func ReadLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}
	return lines, nil
}

// BatchOptions configures TranscribeAll.
type BatchOptions struct {
	CheckAccent bool
	// Workers caps the number of lines transcribed at once. Zero or less
	// means GOMAXPROCS.
	Workers int
}

func (o BatchOptions) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Result is the outcome for one input line.
type Result struct {
	Text string
	IPA  string
	Err  error
}

// TranscribeAll transcribes every line on its own. A line that fails does
// not stop the others. Results come back in input order. Once ctx is done,
// lines not yet started get ctx.Err().
func TranscribeAll(ctx context.Context, lines []string, opts BatchOptions) []Result {
	results := make([]Result, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())

	for i, line := range lines {
		results[i].Text = line
		if err := gctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			results[i].IPA, results[i].Err = Transcribe(line, opts.CheckAccent)
			return nil
		})
	}

	// Workers report per-line errors through results, never through g.
	_ = g.Wait()
	return results
}
