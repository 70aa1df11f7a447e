package finder

// classifyUnderscore decides what kind of marker the underscore run starting at i is.
//
// Behaviour:
//
// A single underscore is [KindItalic] and skip is 0.
//
// A double underscore is [KindBold] and skip is 1, meaning the marker's offset is the offset of its
// second underscore.
//
// Three or more underscores are plain text: kind is [KindNone] and skip covers the rest of the run.
//
// The caller must advance the scan by 1 + skip.
func classifyUnderscore(line []rune, i int) (kind Kind, skip int) {
	n := len(line)

	if i+1 >= n || Symbol(line[i+1]) != SymbolUnderscore {
		return KindItalic, 0
	}

	if i+2 >= n || Symbol(line[i+2]) != SymbolUnderscore {
		return KindBold, 1
	}

	end := i + 2
	for end+1 < n && Symbol(line[end+1]) == SymbolUnderscore {
		end++
	}

	return KindNone, end - i
}
