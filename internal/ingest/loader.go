package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/rshade/pagekit/internal/logging"
)

// StdinPath is the source name that reads from the loader's Stdin.
const StdinPath = "-"

// ErrDuplicateStdin is returned when "-" appears more than once in a source list.
var ErrDuplicateStdin = errors.New("stdin (-) may be given only once")

// maxConcurrentLoads bounds how many files are read at once.
const maxConcurrentLoads = 8

// Loader reads items from a list of sources.
type Loader struct {
	// Format forces a format for every source; FormatAuto detects per file.
	Format Format

	// Stdin is read for the "-" source. Nil means os.Stdin.
	Stdin io.Reader
}

// Load reads every source concurrently and concatenates the items in
// argument order. With no sources it reads Stdin.
func (l Loader) Load(ctx context.Context, sources []string) ([]string, error) {
	if len(sources) == 0 {
		sources = []string{StdinPath}
	}
	if err := checkSources(sources); err != nil {
		return nil, err
	}

	log := logging.FromContext(ctx)
	results := make([][]string, len(sources))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLoads)
	for i, src := range sources {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			items, err := l.loadOne(src)
			if err != nil {
				return err
			}
			results[i] = items
			log.Debug().
				Ctx(gCtx).
				Str("component", "ingest").
				Str("operation", "load").
				Str("source", src).
				Int("items", len(items)).
				Msg("source loaded")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	items := make([]string, 0, total)
	for _, r := range results {
		items = append(items, r...)
	}
	return items, nil
}

// checkSources rejects source lists that would read stdin more than once.
func checkSources(sources []string) error {
	seen := false
	for _, src := range sources {
		if src != StdinPath {
			continue
		}
		if seen {
			return ErrDuplicateStdin
		}
		seen = true
	}
	return nil
}

func (l Loader) loadOne(src string) ([]string, error) {
	format := l.Format
	if format == "" || format == FormatAuto {
		format = DetectFormat(src)
	}

	if src == StdinPath {
		in := l.Stdin
		if in == nil {
			in = os.Stdin
		}
		items, err := Decode(in, format)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return items, nil
	}

	f, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", src, err)
	}
	defer f.Close()

	items, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", src, err)
	}
	return items, nil
}
