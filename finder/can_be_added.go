package finder

import (
	"slices"
	"unicode"
)

// canBeAdded checks the candidate Tag formed by a closing marker against the emphasis rules.
//
// The Tag is rejected if any of these holds, checked in order:
//
//  1. The character before the closing marker is a digit and the closing marker is glued to more text.
//  2. The character before the closing marker is whitespace.
//  3. The front of the popped queue is the counterpart of the Tag's kind. The front is consumed
//     by this check.
//  4. The character after the opening marker is a digit and the opening marker is glued to
//     preceding text.
//  5. The closing marker is glued to more text and the Tag's content contains whitespace.
//
// A Bold Tag formed while an Italic marker is pending is not rejected, but is moved to the
// uncertain buffer instead of the result. canBeAdded returns false in this case as well.
func (f *Finder) canBeAdded(tag Tag) bool {
	line := f.line
	n := len(line)
	start, end := tag.Span.Start, tag.Span.End
	shift := tag.Kind.width()

	beforeClose := line[end-shift]
	gluedAfterClose := end+1 < n && !unicode.IsSpace(line[end+1])

	if unicode.IsDigit(beforeClose) && gluedAfterClose {
		return false
	}

	if unicode.IsSpace(beforeClose) {
		return false
	}

	if front, ok := f.popped.dequeue(); ok && front == tag.Kind.Counterpart() {
		return false
	}

	if start-shift > 0 && unicode.IsDigit(line[start+1]) && !unicode.IsSpace(line[start-shift]) {
		return false
	}

	if gluedAfterClose && slices.ContainsFunc(line[start+1:end], unicode.IsSpace) {
		return false
	}

	if tag.Kind == KindBold && f.hasPending(KindItalic) {
		f.uncertain = append(f.uncertain, tag)
		return false
	}

	return true
}
