// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// PostKind identifies which of the self-reference roles a post plays.
// A post is exactly one of these, determined by which reference is set.
type PostKind string

const (
	// PostKindOriginal is a top-level post with no references.
	PostKindOriginal PostKind = "original"
	// PostKindReply is a comment on another post (ParentPostID set).
	PostKindReply PostKind = "reply"
	// PostKindQuote references another post while adding original content (QuotePostID set).
	PostKindQuote PostKind = "quote"
	// PostKindRepost is a content-free share of another post (RepostPostID set).
	PostKindRepost PostKind = "repost"
)

// Post represents a post in the Glimpse application. Comments, quotes and
// reposts are all Post rows that point at another post through exactly one of
// the three nullable reference columns.
type Post struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	Published bool `gorm:"not null;default:true" json:"published"`

	AuthorID uint  `gorm:"not null;index;uniqueIndex:idx_author_repost" json:"author_id"`
	Author   *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`

	// Headliner is the title-only representation, at most 50 characters.
	// Always present except on reposts, where it is forced empty.
	Headliner string `gorm:"size:50;not null" json:"headliner"`
	// ShortContent is the 50-280 character representation. Empty for
	// headliner-tier posts and reposts.
	ShortContent string `gorm:"size:280;not null" json:"short_content"`
	// FullContent is the >280 character representation, present only for
	// full-tier posts.
	FullContent *string `gorm:"type:text" json:"full_content"`

	ParentPostID *uint `gorm:"index" json:"parent_post_id"`
	QuotePostID  *uint `gorm:"index" json:"quote_post_id"`
	// RepostPostID carries a partial unique index with AuthorID so a user can
	// hold at most one live repost of a given post; the toggle relies on it.
	RepostPostID *uint `gorm:"index;uniqueIndex:idx_author_repost" json:"repost_post_id"`

	ParentPost *Post `gorm:"foreignKey:ParentPostID" json:"parent_post,omitempty"`
	QuotePost  *Post `gorm:"foreignKey:QuotePostID" json:"quote_post,omitempty"`
	RepostPost *Post `gorm:"foreignKey:RepostPostID" json:"repost_post,omitempty"`

	Likes    []Like  `gorm:"foreignKey:PostID" json:"likes,omitempty"`
	Comments []*Post `gorm:"foreignKey:ParentPostID" json:"comments,omitempty"`
	Quoted   []*Post `gorm:"foreignKey:QuotePostID" json:"quoted,omitempty"`
	Reposts  []*Post `gorm:"foreignKey:RepostPostID" json:"reposts,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for GORM.
func (Post) TableName() string {
	return "posts"
}

// Kind reports which role this post plays based on its reference columns.
func (p *Post) Kind() PostKind {
	switch {
	case p.RepostPostID != nil:
		return PostKindRepost
	case p.QuotePostID != nil:
		return PostKindQuote
	case p.ParentPostID != nil:
		return PostKindReply
	default:
		return PostKindOriginal
	}
}

// Validate enforces the tagged-union invariant: at most one of the three
// reference columns may be set, and a repost carries no content of its own.
func (p *Post) Validate() error {
	refs := 0
	if p.ParentPostID != nil {
		refs++
	}
	if p.QuotePostID != nil {
		refs++
	}
	if p.RepostPostID != nil {
		refs++
	}
	if refs > 1 {
		return NewValidationError("A post may be a reply, a quote, or a repost, not several at once")
	}
	if p.RepostPostID != nil && (p.Headliner != "" || p.ShortContent != "" || p.FullContent != nil) {
		return NewValidationError("A repost carries no content of its own")
	}
	return nil
}

// BeforeCreate rejects rows that violate the reference invariant before they
// reach the database.
func (p *Post) BeforeCreate(_ *gorm.DB) error {
	return p.Validate()
}

// LikerIDs returns the set of user ids that liked this post, for views that
// only need membership checks.
func (p *Post) LikerIDs() []uint {
	ids := make([]uint, 0, len(p.Likes))
	for _, l := range p.Likes {
		ids = append(ids, l.UserID)
	}
	return ids
}

// RepostAuthorIDs returns the ids of users that reposted this post.
func (p *Post) RepostAuthorIDs() []uint {
	ids := make([]uint, 0, len(p.Reposts))
	for _, r := range p.Reposts {
		ids = append(ids, r.AuthorID)
	}
	return ids
}
