package finder

import "fmt"

// Kind defines the type of a found Tag, e.g. header, bold, italic, etc.
type Kind int

const (
	// KindNone means "no marker" and is never part of the FindTags result.
	KindNone Kind = iota
	KindHeader
	KindMarkedListItem
	KindBold
	KindItalic
	KindEscapedSymbol
)

var kindToString = map[Kind]string{
	KindNone:           "None",
	KindHeader:         "Header",
	KindMarkedListItem: "MarkedListItem",
	KindBold:           "Bold",
	KindItalic:         "Italic",
	KindEscapedSymbol:  "EscapedSymbol",
}

func (k Kind) String() string {
	if s, ok := kindToString[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Counterpart returns the conflicting emphasis kind: [KindItalic] for [KindBold] and vice versa.
// For every other kind it returns [KindNone].
func (k Kind) Counterpart() Kind {
	switch k {
	case KindBold:
		return KindItalic
	case KindItalic:
		return KindBold
	default:
		return KindNone
	}
}

// width is the number of underscores forming the emphasis marker.
func (k Kind) width() int {
	if k == KindBold {
		return 2
	}
	return 1
}

// MarshalText lets Kind be serialized by its name, e.g. "Bold".
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText is the reverse of MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	for kind, s := range kindToString {
		if s == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown tag kind %q", text)
}
