package finder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindTags(t *testing.T) {
	type tc struct {
		name  string
		input string
		want  []Tag
	}

	tests := []tc{
		{
			name:  "empty_line",
			input: "",
			want:  []Tag{},
		},
		{
			name:  "plain_text",
			input: "just some text",
			want:  []Tag{},
		},
		{
			name:  "header",
			input: "# Title",
			want:  []Tag{NewTag(0, 6, KindHeader)},
		},
		{
			name:  "header_without_space_is_text",
			input: "#Title",
			want:  []Tag{},
		},
		{
			name:  "marked_list_item",
			input: "* item",
			want:  []Tag{NewTag(0, 5, KindMarkedListItem)},
		},
		{
			name:  "header_with_italic",
			input: "# a_b_c",
			want:  []Tag{NewTag(0, 6, KindHeader), NewTag(3, 5, KindItalic)},
		},
		{
			name:  "italic",
			input: "a_b_c",
			want:  []Tag{NewTag(1, 3, KindItalic)},
		},
		{
			name:  "bold_offsets_point_to_second_underscores",
			input: "a__b__c",
			want:  []Tag{NewTag(2, 5, KindBold)},
		},
		{
			name:  "whole_line_italic",
			input: "_text_",
			want:  []Tag{NewTag(0, 5, KindItalic)},
		},
		{
			name:  "triple_underscore_is_text",
			input: "a___b",
			want:  []Tag{},
		},
		{
			name:  "long_underscore_run_is_text",
			input: "_____",
			want:  []Tag{},
		},
		{
			name:  "escaped_underscores",
			input: `\_text\_`,
			want:  []Tag{NewTag(0, 1, KindEscapedSymbol), NewTag(6, 7, KindEscapedSymbol)},
		},
		{
			name:  "escaped_escape_before_italic",
			input: `\\_a_`,
			want:  []Tag{NewTag(0, 1, KindEscapedSymbol), NewTag(2, 4, KindItalic)},
		},
		{
			name:  "redundant_escape_is_inert",
			input: `\a \`,
			want:  []Tag{},
		},
		{
			name:  "opener_followed_by_space",
			input: "_ b_",
			want:  []Tag{},
		},
		{
			name:  "closer_after_space",
			input: "_a _",
			want:  []Tag{},
		},
		{
			name:  "digit_before_glued_closer",
			input: "_5_x",
			want:  []Tag{},
		},
		{
			name:  "digit_before_closer_at_eol",
			input: "_5_",
			want:  []Tag{NewTag(0, 2, KindItalic)},
		},
		{
			name:  "digit_after_glued_opener",
			input: "xy_1a_",
			want:  []Tag{},
		},
		{
			name:  "digit_after_opener_after_space",
			input: "x _1a_",
			want:  []Tag{NewTag(2, 5, KindItalic)},
		},
		{
			name:  "glued_closer_across_words",
			input: "_a b_c",
			want:  []Tag{},
		},
		{
			name:  "closer_followed_by_space_across_words",
			input: "_a b_ c",
			want:  []Tag{NewTag(0, 4, KindItalic)},
		},
		{
			name:  "intra_word_italic",
			input: "un_believ_able",
			want:  []Tag{NewTag(2, 9, KindItalic)},
		},
		{
			name:  "interleaved_bold_and_italic",
			input: "_a__b_",
			want:  []Tag{},
		},
		{
			name:  "rejected_closer_reopens",
			input: "_a__b_c_",
			want:  []Tag{NewTag(5, 7, KindItalic)},
		},
		{
			name:  "rejected_closer_after_space_reopens",
			input: "_a _b_",
			want:  []Tag{NewTag(3, 5, KindItalic)},
		},
		{
			name:  "bold_inside_confirmed_italic_is_dropped",
			input: "_a __b__ c_",
			want:  []Tag{NewTag(0, 10, KindItalic)},
		},
		{
			name:  "bold_inside_unclosed_italic_is_flushed",
			input: "_a __b__ c",
			want:  []Tag{NewTag(4, 7, KindBold)},
		},
		{
			name:  "uncertain_bold_goes_after_prefix",
			input: "# _a __b__ c",
			want:  []Tag{NewTag(0, 11, KindHeader), NewTag(6, 9, KindBold)},
		},
		{
			name:  "uncertain_bold_goes_after_confirmed_tags",
			input: `_a __b__ \_`,
			want:  []Tag{NewTag(9, 10, KindEscapedSymbol), NewTag(4, 7, KindBold)},
		},
		{
			name:  "italic_inside_bold",
			input: "__a _b_ c__",
			want:  []Tag{NewTag(4, 6, KindItalic), NewTag(1, 10, KindBold)},
		},
		{
			name:  "offsets_are_characters",
			input: "_привет_",
			want:  []Tag{NewTag(0, 7, KindItalic)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindTags(tt.input)
			require.Equal(t, tt.want, got, "input=%q", tt.input)
		})
	}
}

func TestFindTags_ReusedFinderIsIdempotent(t *testing.T) {
	f := New()

	lines := []string{
		"_a __b__ c",
		"# a_b_c",
		`\_text\_ __bold__`,
		"_a__b_",
	}

	for _, line := range lines {
		first := f.FindTags(line)
		second := f.FindTags(line)
		require.Equal(t, first, second, "line=%q", line)
		require.Equal(t, FindTags(line), second, "line=%q", line)
	}
}

func TestFindTags_ResultIsNotReused(t *testing.T) {
	f := New()

	first := f.FindTags("a_b_c")
	require.Equal(t, []Tag{NewTag(1, 3, KindItalic)}, first)

	f.FindTags("__x__")

	// the previous result must stay intact after the next call
	require.Equal(t, []Tag{NewTag(1, 3, KindItalic)}, first)
}

func TestFindTags_PrefixTags(t *testing.T) {
	for _, line := range []string{"# ", "# _a_", "# * not a list"} {
		tags := FindTags(line)
		n := len([]rune(line))

		require.NotEmpty(t, tags)
		require.Equal(t, NewTag(0, n-1, KindHeader), tags[0])

		for _, tag := range tags {
			require.NotEqual(t, KindMarkedListItem, tag.Kind)
		}
	}

	for _, line := range []string{"* ", "* _a_", "* # not a header"} {
		tags := FindTags(line)
		n := len([]rune(line))

		require.NotEmpty(t, tags)
		require.Equal(t, NewTag(0, n-1, KindMarkedListItem), tags[0])

		for _, tag := range tags {
			require.NotEqual(t, KindHeader, tag.Kind)
		}
	}
}

func TestFindTags_EmphasisSpansAreNotEmpty(t *testing.T) {
	inputs := []string{
		"a_b_c __d__ _e_",
		"_a __b__ c",
		"__a _b_ c__",
		strings.Repeat("_x", 20),
		strings.Repeat("__x", 20),
	}

	for _, in := range inputs {
		for _, tag := range FindTags(in) {
			if tag.Kind != KindBold && tag.Kind != KindItalic {
				continue
			}
			require.Less(t, tag.Span.Start, tag.Span.End, "input=%q tag=%+v", in, tag)
		}
	}
}
