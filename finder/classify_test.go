package finder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyUnderscore(t *testing.T) {
	type tc struct {
		name     string
		input    string
		i        int
		wantKind Kind
		wantSkip int
	}

	tests := []tc{
		{name: "single_last", input: "ab_", i: 2, wantKind: KindItalic, wantSkip: 0},
		{name: "single_before_text", input: "_a", i: 0, wantKind: KindItalic, wantSkip: 0},
		{name: "double_last", input: "a__", i: 1, wantKind: KindBold, wantSkip: 1},
		{name: "double_before_text", input: "__a", i: 0, wantKind: KindBold, wantSkip: 1},
		{name: "triple", input: "___a", i: 0, wantKind: KindNone, wantSkip: 2},
		{name: "long_run_in_the_middle", input: "a_____b", i: 1, wantKind: KindNone, wantSkip: 4},
		{name: "run_till_the_end", input: "a____", i: 1, wantKind: KindNone, wantSkip: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, skip := classifyUnderscore([]rune(tt.input), tt.i)
			require.Equal(t, tt.wantKind, kind)
			require.Equal(t, tt.wantSkip, skip)
		})
	}
}
