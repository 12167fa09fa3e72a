package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint { return &v }

func TestPostKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		post Post
		want PostKind
	}{
		{"original", Post{Headliner: "hi"}, PostKindOriginal},
		{"reply", Post{Headliner: "hi", ParentPostID: uintPtr(1)}, PostKindReply},
		{"quote", Post{Headliner: "hi", QuotePostID: uintPtr(1)}, PostKindQuote},
		{"repost", Post{RepostPostID: uintPtr(1)}, PostKindRepost},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.post.Kind())
		})
	}
}

func TestPostValidate(t *testing.T) {
	t.Parallel()

	t.Run("single reference is valid", func(t *testing.T) {
		t.Parallel()
		p := Post{Headliner: "hi", ParentPostID: uintPtr(1)}
		assert.NoError(t, p.Validate())
	})

	t.Run("multiple references rejected", func(t *testing.T) {
		t.Parallel()
		p := Post{Headliner: "hi", ParentPostID: uintPtr(1), QuotePostID: uintPtr(2)}
		err := p.Validate()
		require.Error(t, err)
		var appErr *AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, CodeValidation, appErr.Code)
	})

	t.Run("repost with content rejected", func(t *testing.T) {
		t.Parallel()
		p := Post{Headliner: "hi", RepostPostID: uintPtr(1)}
		assert.Error(t, p.Validate())
	})

	t.Run("empty repost is valid", func(t *testing.T) {
		t.Parallel()
		p := Post{RepostPostID: uintPtr(1)}
		assert.NoError(t, p.Validate())
	})
}

func TestPostLikerAndRepostIDs(t *testing.T) {
	t.Parallel()

	p := Post{
		Likes: []Like{{UserID: 3}, {UserID: 7}},
		Reposts: []*Post{
			{AuthorID: 4, RepostPostID: uintPtr(1)},
			{AuthorID: 9, RepostPostID: uintPtr(1)},
		},
	}
	assert.Equal(t, []uint{3, 7}, p.LikerIDs())
	assert.Equal(t, []uint{4, 9}, p.RepostAuthorIDs())
}
