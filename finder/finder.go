package finder

import "strings"

// Line-wide prefixes, each one turns the whole line into a single Tag.
const (
	PrefixHeader         = "# "
	PrefixMarkedListItem = "* "
)

// Symbol is a special 1-byte ASCII character the Finder reacts to.
type Symbol rune

const (
	SymbolEscape     Symbol = '\\'
	SymbolUnderscore Symbol = '_'
)

// marker is an emphasis marker waiting for its closing pair.
type marker struct {
	kind Kind

	// pos is the offset of the marker's last underscore.
	pos int
}

// Finder locates markdown formatting markers in a single line.
//
// A Finder reuses its buffers between calls, so it must not be used by several goroutines at once.
// Use one Finder per goroutine instead.
type Finder struct {
	// line is the currently scanned line, decoded into runes so every offset is a character offset.
	line []rune

	// pending contains markers which were opened but not closed yet.
	pending stack[marker]

	// popped contains kinds of the markers removed from pending while searching for an opener.
	popped queue[Kind]

	// uncertain contains Bold tags formed while an Italic marker was still open.
	uncertain []Tag

	// found contains confirmed Tags in the order of confirmation.
	found []Tag
}

// New creates a ready-to-use Finder.
func New() *Finder {
	return &Finder{}
}

// FindTags scans the line with a fresh Finder.
func FindTags(line string) []Tag {
	return New().FindTags(line)
}

// FindTags returns all formatting Tags found in the line.
//
// Order of the result: line-prefix Tag (header or list item) if any, then Tags in the order
// they were confirmed, then Bold Tags whose validity was never resolved.
//
// Malformed or unbalanced markers never cause an error, they just don't produce Tags.
func (f *Finder) FindTags(line string) []Tag {
	f.reset(line)

	if t, ok := findPrefixTag(line, len(f.line)); ok {
		f.found = append(f.found, t)
	}

	n := len(f.line)

	for i := 0; i < n; {
		switch Symbol(f.line[i]) {
		case SymbolEscape:
			if t, ok := escapeTag(f.line, i); ok {
				f.found = append(f.found, t)
				// the escaped character is consumed as well
				i += 2
				continue
			}

		case SymbolUnderscore:
			kind, skip := classifyUnderscore(f.line, i)
			if kind != KindNone {
				f.handleMarker(kind, i+skip)
			}
			i += 1 + skip
			continue
		}

		i++
	}

	f.found = append(f.found, f.uncertain...)

	return f.found
}

// reset prepares the Finder to scan a new line.
func (f *Finder) reset(line string) {
	f.line = []rune(line)
	f.pending.reset()
	f.popped.reset()
	f.uncertain = f.uncertain[:0]

	// the result is handed over to the caller, so it can't be reused
	f.found = make([]Tag, 0, 4)
}

// findPrefixTag checks the line-wide prefixes. n is the line length in runes.
func findPrefixTag(line string, n int) (Tag, bool) {
	switch {
	case strings.HasPrefix(line, PrefixHeader):
		return NewTag(0, n-1, KindHeader), true
	case strings.HasPrefix(line, PrefixMarkedListItem):
		return NewTag(0, n-1, KindMarkedListItem), true
	default:
		return Tag{}, false
	}
}

// escapeTag returns [KindEscapedSymbol] Tag covering the escape symbol at i and the escaped character,
// but only if the escaped character is either an escape symbol or an underscore.
func escapeTag(line []rune, i int) (Tag, bool) {
	if i+1 >= len(line) {
		return Tag{}, false
	}

	switch Symbol(line[i+1]) {
	case SymbolEscape, SymbolUnderscore:
		return NewTag(i, i+1, KindEscapedSymbol), true
	default:
		return Tag{}, false
	}
}
