// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"
	"time"

	"glimpse/internal/cache"
	"glimpse/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	Exists(ctx context.Context, id uint) (bool, error)
	ListFeed(ctx context.Context, authorIDs []uint, cursor uint, limit int) ([]*models.Post, error)
	ListRepliesByAuthor(ctx context.Context, authorID uint) ([]*models.Post, error)
	ListQuotesByAuthor(ctx context.Context, authorID uint) ([]*models.Post, error)
	ListRepostsByAuthor(ctx context.Context, authorID uint) ([]*models.Post, error)
	DeleteRepost(ctx context.Context, authorID, postID uint) (bool, error)
	InsertLike(ctx context.Context, userID, postID uint) (bool, error)
	DeleteLike(ctx context.Context, userID, postID uint) (bool, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return err
	}
	if post.ParentPostID == nil {
		cache.InvalidateLatestFeed(ctx)
	}
	if post.ParentPostID != nil {
		cache.InvalidatePost(ctx, *post.ParentPostID)
	}
	if post.QuotePostID != nil {
		cache.InvalidatePost(ctx, *post.QuotePostID)
	}
	if post.RepostPostID != nil {
		cache.InvalidatePost(ctx, *post.RepostPostID)
	}
	return nil
}

// publishedComments scopes a comments preload to moderated-visible rows.
func publishedComments(db *gorm.DB) *gorm.DB {
	return db.Where("published = ?", true).Order("created_at DESC")
}

// GetByID loads a post with the context a detail view needs: the author, the
// like and repost rows, comments two levels deep, the quoted post with its
// own engagement rows, and a reposted post carried transparently with its
// target's full context (including the target's own quote and parent
// authors). Deeper references are left as ids.
func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	key := cache.PostKey(id)

	err := cache.Aside(ctx, key, &post, cache.PostTTL, func() error {
		return r.db.WithContext(ctx).
			Preload("Author").
			Preload("Likes").
			Preload("Reposts").
			Preload("QuotePost").
			Preload("QuotePost.Author").
			Preload("QuotePost.Likes").
			Preload("QuotePost.Comments", publishedComments).
			Preload("QuotePost.Reposts").
			Preload("RepostPost").
			Preload("RepostPost.Author").
			Preload("RepostPost.Likes").
			Preload("RepostPost.Comments", publishedComments).
			Preload("RepostPost.Reposts").
			Preload("RepostPost.QuotePost").
			Preload("RepostPost.QuotePost.Author").
			Preload("RepostPost.ParentPost").
			Preload("RepostPost.ParentPost.Author").
			Preload("ParentPost").
			Preload("ParentPost.Author").
			Preload("Comments", publishedComments).
			Preload("Comments.Author").
			Preload("Comments.Likes").
			Preload("Comments.Reposts").
			Preload("Comments.Comments", publishedComments).
			First(&post, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *postRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// ListFeed returns one keyset page of top-level published posts, newest
// first. An empty authorIDs slice means no author filter (the public feed).
// A zero cursor starts from the newest post; otherwise the page begins
// strictly after the cursor row in (created_at, id) order, so the cursor row
// itself is never repeated.
func (r *postRepository) ListFeed(ctx context.Context, authorIDs []uint, cursor uint, limit int) ([]*models.Post, error) {
	q := r.db.WithContext(ctx).
		Where("published = ?", true).
		Where("parent_post_id IS NULL")

	if len(authorIDs) > 0 {
		q = q.Where("author_id IN ?", authorIDs)
	}

	if cursor != 0 {
		var anchor models.Post
		err := r.db.WithContext(ctx).
			Select("id", "created_at").
			First(&anchor, cursor).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.NewValidationError("Invalid cursor")
			}
			return nil, models.NewInternalError(err)
		}
		q = q.Where("(created_at < ?) OR (created_at = ? AND id < ?)",
			anchor.CreatedAt, anchor.CreatedAt, anchor.ID)
	}

	var posts []*models.Post
	err := q.
		Preload("Author").
		Preload("Likes").
		Preload("Reposts").
		Preload("Comments", publishedComments).
		Preload("QuotePost").
		Preload("QuotePost.Author").
		Preload("QuotePost.Likes").
		Preload("QuotePost.Comments", publishedComments).
		Preload("QuotePost.Reposts").
		Preload("RepostPost").
		Preload("RepostPost.Author").
		Preload("RepostPost.Likes").
		Preload("RepostPost.Comments", publishedComments).
		Preload("RepostPost.Reposts").
		Preload("RepostPost.QuotePost").
		Preload("RepostPost.QuotePost.Author").
		Preload("RepostPost.ParentPost").
		Preload("RepostPost.ParentPost.Author").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) ListRepliesByAuthor(ctx context.Context, authorID uint) ([]*models.Post, error) {
	return r.listByAuthor(ctx, authorID, "parent_post_id IS NOT NULL", "ParentPost")
}

func (r *postRepository) ListQuotesByAuthor(ctx context.Context, authorID uint) ([]*models.Post, error) {
	return r.listByAuthor(ctx, authorID, "quote_post_id IS NOT NULL", "QuotePost")
}

func (r *postRepository) ListRepostsByAuthor(ctx context.Context, authorID uint) ([]*models.Post, error) {
	return r.listByAuthor(ctx, authorID, "repost_post_id IS NOT NULL", "RepostPost")
}

func (r *postRepository) listByAuthor(ctx context.Context, authorID uint, refClause, refAssoc string) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Where(refClause).
		Preload("Author").
		Preload("Likes").
		Preload("Reposts").
		Preload(refAssoc).
		Preload(refAssoc + ".Author").
		Preload(refAssoc + ".Likes").
		Order("created_at DESC, id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// DeleteRepost hard-deletes the caller's repost row for the given post. The
// returned bool reports whether a row was actually removed, which is what the
// toggle uses to decide between the off and on arms.
func (r *postRepository) DeleteRepost(ctx context.Context, authorID, postID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Unscoped().
		Where("author_id = ? AND repost_post_id = ?", authorID, postID).
		Delete(&models.Post{})
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}
	if result.RowsAffected > 0 {
		cache.InvalidatePost(ctx, postID)
		return true, nil
	}
	return false, nil
}

// InsertLike atomically inserts a like row, ignoring the insert when the row
// already exists. Passing the timestamp as a parameter keeps the statement
// valid on both PostgreSQL and the sqlite test harness.
func (r *postRepository) InsertLike(ctx context.Context, userID, postID uint) (bool, error) {
	result := r.db.WithContext(ctx).Exec(
		`INSERT INTO likes (post_id, user_id, created_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT (post_id, user_id) DO NOTHING`,
		postID, userID, time.Now(),
	)
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}
	if result.RowsAffected > 0 {
		cache.InvalidatePost(ctx, postID)
		return true, nil
	}
	return false, nil
}

func (r *postRepository) DeleteLike(ctx context.Context, userID, postID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&models.Like{})
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}
	if result.RowsAffected > 0 {
		cache.InvalidatePost(ctx, postID)
		return true, nil
	}
	return false, nil
}
