// Package service implements the application's business logic on top of the
// repository layer.
package service

import (
	"context"

	"glimpse/internal/content"
	"glimpse/internal/models"
	"glimpse/internal/repository"
)

// PostService carries the posting, commenting, quoting, reposting and liking
// logic.
type PostService struct {
	postRepo repository.PostRepository
}

// CreatePostInput is the payload for a new top-level post.
type CreatePostInput struct {
	AuthorID     uint
	Content      string
	Headliner    string
	ShortContent string
}

// CreateCommentInput is the payload for a reply to an existing post.
type CreateCommentInput struct {
	AuthorID     uint
	ParentPostID uint
	Content      string
	Headliner    string
	ShortContent string
}

// CreateQuoteInput is the payload for a quote of an existing post.
type CreateQuoteInput struct {
	AuthorID     uint
	QuotePostID  uint
	Content      string
	Headliner    string
	ShortContent string
}

// ToggleResult reports the state a toggle landed in, alongside the refreshed
// post.
type ToggleResult struct {
	Post   *models.Post
	Active bool
}

// NewPostService creates a new post service.
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost classifies the submitted content into its tiers and persists a
// top-level post.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.AuthorID == 0 {
		return nil, models.NewUnauthorizedError("You must be logged in to post")
	}

	derived, err := content.Classify(in.Content, content.Overrides{
		Headliner:    in.Headliner,
		ShortContent: in.ShortContent,
	})
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Published:    true,
		AuthorID:     in.AuthorID,
		Headliner:    derived.Headliner,
		ShortContent: derived.ShortContent,
		FullContent:  derived.FullContent,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, models.NewInternalError(err)
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

// CreateComment classifies the submitted content exactly like a post and
// attaches it to its parent.
func (s *PostService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Post, error) {
	if in.AuthorID == 0 {
		return nil, models.NewUnauthorizedError("You must be logged in to comment")
	}

	exists, err := s.postRepo.Exists(ctx, in.ParentPostID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("Post", in.ParentPostID)
	}

	derived, err := content.Classify(in.Content, content.Overrides{
		Headliner:    in.Headliner,
		ShortContent: in.ShortContent,
	})
	if err != nil {
		return nil, err
	}

	comment := &models.Post{
		Published:    true,
		AuthorID:     in.AuthorID,
		Headliner:    derived.Headliner,
		ShortContent: derived.ShortContent,
		FullContent:  derived.FullContent,
		ParentPostID: &in.ParentPostID,
	}
	if err := s.postRepo.Create(ctx, comment); err != nil {
		return nil, models.NewInternalError(err)
	}
	return s.postRepo.GetByID(ctx, comment.ID)
}

// CreateQuote classifies the submitted content exactly like a post and links
// it to the quoted post.
func (s *PostService) CreateQuote(ctx context.Context, in CreateQuoteInput) (*models.Post, error) {
	if in.AuthorID == 0 {
		return nil, models.NewUnauthorizedError("You must be logged in to quote")
	}

	exists, err := s.postRepo.Exists(ctx, in.QuotePostID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("Post", in.QuotePostID)
	}

	derived, err := content.Classify(in.Content, content.Overrides{
		Headliner:    in.Headliner,
		ShortContent: in.ShortContent,
	})
	if err != nil {
		return nil, err
	}

	quote := &models.Post{
		Published:    true,
		AuthorID:     in.AuthorID,
		Headliner:    derived.Headliner,
		ShortContent: derived.ShortContent,
		FullContent:  derived.FullContent,
		QuotePostID:  &in.QuotePostID,
	}
	if err := s.postRepo.Create(ctx, quote); err != nil {
		return nil, models.NewInternalError(err)
	}
	return s.postRepo.GetByID(ctx, quote.ID)
}

// ToggleRepost removes the caller's existing repost of the post, or creates
// one when none exists. The repost row carries no content of its own. A
// duplicate-key failure on the create arm means another request won the race
// and the desired on state already holds, so it is absorbed.
func (s *PostService) ToggleRepost(ctx context.Context, actorID, postID uint) (*ToggleResult, error) {
	if actorID == 0 {
		return nil, models.NewUnauthorizedError("You must be logged in to repost")
	}

	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("Post", postID)
	}

	deleted, err := s.postRepo.DeleteRepost(ctx, actorID, postID)
	if err != nil {
		return nil, err
	}
	if deleted {
		post, err := s.postRepo.GetByID(ctx, postID)
		if err != nil {
			return nil, err
		}
		return &ToggleResult{Post: post, Active: false}, nil
	}

	repost := &models.Post{
		Published:    true,
		AuthorID:     actorID,
		RepostPostID: &postID,
	}
	if err := s.postRepo.Create(ctx, repost); err != nil {
		if !isDuplicateKey(err) {
			return nil, models.NewInternalError(err)
		}
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &ToggleResult{Post: post, Active: true}, nil
}

// ToggleLike removes the caller's like of the post, or inserts one when none
// exists. Both arms are single conditional statements so concurrent toggles
// settle into a consistent state without errors.
func (s *PostService) ToggleLike(ctx context.Context, actorID, postID uint) (*ToggleResult, error) {
	if actorID == 0 {
		return nil, models.NewUnauthorizedError("You must be logged in to like")
	}

	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("Post", postID)
	}

	deleted, err := s.postRepo.DeleteLike(ctx, actorID, postID)
	if err != nil {
		return nil, err
	}
	if deleted {
		post, err := s.postRepo.GetByID(ctx, postID)
		if err != nil {
			return nil, err
		}
		return &ToggleResult{Post: post, Active: false}, nil
	}

	if _, err := s.postRepo.InsertLike(ctx, actorID, postID); err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &ToggleResult{Post: post, Active: true}, nil
}

// GetPost returns a post with its author, references, likes and comment
// thread.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// GetUserReplies lists a user's replies, newest first.
func (s *PostService) GetUserReplies(ctx context.Context, userID uint) ([]*models.Post, error) {
	return s.postRepo.ListRepliesByAuthor(ctx, userID)
}

// GetUserQuotes lists a user's quotes, newest first.
func (s *PostService) GetUserQuotes(ctx context.Context, userID uint) ([]*models.Post, error) {
	return s.postRepo.ListQuotesByAuthor(ctx, userID)
}

// GetUserReposts lists a user's reposts, newest first.
func (s *PostService) GetUserReposts(ctx context.Context, userID uint) ([]*models.Post, error) {
	return s.postRepo.ListRepostsByAuthor(ctx, userID)
}
