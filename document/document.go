package document

import (
	"context"
	"strings"
	"sync"

	"github.com/Drolfothesgnir/tagfinder/finder"
	"golang.org/x/sync/errgroup"
)

// LineTags contains Tags found in a single line of a document.
type LineTags struct {
	// Line is the zero-based index of the line in the document.
	Line int          `json:"line"`
	Tags []finder.Tag `json:"tags"`
}

// NewFinderFunc creates a TagFinder which is used by a single goroutine at a time.
type NewFinderFunc func() finder.TagFinder

func newDefaultFinder() finder.TagFinder {
	return finder.New()
}

// Scanner scans documents line by line, keeping TagFinders between calls.
type Scanner struct {
	// finders keeps TagFinders between calls, every goroutine takes its own one.
	finders sync.Pool
}

// NewScanner creates a Scanner using newFinder to create TagFinders.
// If newFinder is nil, [finder.New] is used.
func NewScanner(newFinder NewFinderFunc) *Scanner {
	if newFinder == nil {
		newFinder = newDefaultFinder
	}

	return &Scanner{
		finders: sync.Pool{
			New: func() any {
				return newFinder()
			},
		},
	}
}

var defaultScanner = NewScanner(nil)

// SplitLines splits the text into lines. Both "\n" and "\r\n" line endings are accepted.
// A trailing line ending does not produce an extra empty line.
func SplitLines(text string) []string {
	if text == "" {
		return []string{}
	}

	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")

	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}

	return lines
}

// FindTags scans the lines with the default Scanner, see [Scanner.FindTags].
func FindTags(ctx context.Context, lines []string, workers int) ([]LineTags, error) {
	return defaultScanner.FindTags(ctx, lines, workers)
}

// FindTags scans every line independently using up to workers goroutines.
// The result is ordered by line index.
//
// Returns ctx.Err() if the context is cancelled before all lines are scanned.
func (s *Scanner) FindTags(ctx context.Context, lines []string, workers int) ([]LineTags, error) {
	if workers <= 0 {
		workers = 1
	}

	result := make([]LineTags, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, line := range lines {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			f := s.finders.Get().(finder.TagFinder)
			defer s.finders.Put(f)

			result[i] = LineTags{
				Line: i,
				Tags: f.FindTags(line),
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// the loop could stop early without any goroutine noticing the cancellation,
	// gctx can't be checked here since Wait always cancels it
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
