package finder

import "unicode"

// handleMarker either registers the marker of kind k at offset i as an opener, or closes the pending
// marker of the same kind and decides what to do with the resulting Tag.
func (f *Finder) handleMarker(k Kind, i int) {
	opener, ok := f.findOpener(k)

	if !ok {
		// a marker followed by whitespace or the end of line can't open anything
		if i+1 < len(f.line) && !unicode.IsSpace(f.line[i+1]) {
			f.pending.push(marker{kind: k, pos: i})
		}
		return
	}

	tag := NewTag(opener, i, k)

	if f.canBeAdded(tag) {
		// confirmed italic resolves all the bold/italic ambiguity seen so far
		if k == KindItalic {
			f.uncertain = f.uncertain[:0]
		}

		f.found = append(f.found, tag)
		return
	}

	// the failed closer becomes a new opener if the first popped marker was of the same kind
	if front, ok := f.popped.peek(); ok && front == k {
		f.popped.dequeue()
		f.pending.push(marker{kind: k, pos: i})
	}
}

// findOpener pops pending markers until none of kind k is left and returns the offset
// of the last popped marker of kind k. Every popped kind is recorded in the popped queue.
//
// Returns ok = false if there was no pending marker of kind k.
func (f *Finder) findOpener(k Kind) (pos int, ok bool) {
	for f.hasPending(k) {
		m, _ := f.pending.pop()
		f.popped.enqueue(m.kind)

		if m.kind == k {
			pos = m.pos
			ok = true
		}
	}

	return
}

// hasPending reports whether a marker of kind k is waiting for its closer.
func (f *Finder) hasPending(k Kind) bool {
	return f.pending.containsFunc(func(m marker) bool {
		return m.kind == k
	})
}
