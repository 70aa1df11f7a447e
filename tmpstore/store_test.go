package tmpstore

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Drolfothesgnir/tagfinder/finder"
	"github.com/stretchr/testify/require"
)

func TestTagsKey(t *testing.T) {
	key := TagsKey("a_b_c")

	require.True(t, strings.HasPrefix(key, TagsPrefix))
	// sha256 in hex
	require.Len(t, key, len(TagsPrefix)+64)
	require.Equal(t, key, TagsKey("a_b_c"))
	require.NotEqual(t, key, TagsKey("a__b__c"))
}

func TestNopStore(t *testing.T) {
	var s Store = NopStore{}

	err := s.SaveTags(context.Background(), "a_b_c", []finder.Tag{finder.NewTag(1, 3, finder.KindItalic)}, time.Minute)
	require.NoError(t, err)

	tags, err := s.GetTags(context.Background(), "a_b_c")
	require.ErrorIs(t, err, ErrCacheMiss)
	require.Nil(t, tags)
}
