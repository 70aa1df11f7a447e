package finder

// Span defines bounds of a found Tag in the line.
//
// IMPORTANT: both Start and End are inclusive character (rune) offsets, not byte offsets.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Tag is a single formatting annotation over the scanned line.
type Tag struct {
	Span Span `json:"span"`
	Kind Kind `json:"kind"`
}

// NewTag creates a Tag of the given kind spanning [start, end].
func NewTag(start, end int, kind Kind) Tag {
	return Tag{
		Span: Span{Start: start, End: end},
		Kind: kind,
	}
}

// TagFinder is implemented by anything able to annotate a single line with Tags.
type TagFinder interface {
	FindTags(line string) []Tag
}
