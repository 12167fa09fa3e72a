package service

import (
	"context"

	"glimpse/internal/cache"
	"glimpse/internal/models"
	"glimpse/internal/repository"
)

// FeedService assembles the cursor-paginated latest and following feeds.
type FeedService struct {
	postRepo   repository.PostRepository
	followRepo repository.FollowRepository
	pageSize   int
}

// FeedPage is one page of a feed plus the cursor for the next one. A nil
// NextCursor means the feed is exhausted.
type FeedPage struct {
	Posts      []*models.Post `json:"posts"`
	NextCursor *uint          `json:"next_cursor"`
}

// NewFeedService creates a new feed service. pageSize is the default number
// of posts per page when the caller does not ask for a specific limit.
func NewFeedService(postRepo repository.PostRepository, followRepo repository.FollowRepository, pageSize int) *FeedService {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &FeedService{
		postRepo:   postRepo,
		followRepo: followRepo,
		pageSize:   pageSize,
	}
}

func (s *FeedService) clampLimit(limit int) int {
	if limit <= 0 {
		return s.pageSize
	}
	if limit > 100 {
		return 100
	}
	return limit
}

// Latest returns one page of the public feed: top-level published posts from
// every author, newest first. The anonymous default first page is served
// cache-aside; cursor pages, custom limits and logged-in views are always
// fresh.
func (s *FeedService) Latest(ctx context.Context, actorID, cursor uint, limit int) (*FeedPage, error) {
	limit = s.clampLimit(limit)

	if actorID == 0 && cursor == 0 && limit == s.pageSize {
		var page FeedPage
		err := cache.Aside(ctx, cache.LatestFeedFirstPage, &page, cache.FeedTTL, func() error {
			fresh, fetchErr := s.fetchPage(ctx, nil, 0, limit)
			if fetchErr != nil {
				return fetchErr
			}
			page = *fresh
			return nil
		})
		if err != nil {
			return nil, err
		}
		return &page, nil
	}
	return s.fetchPage(ctx, nil, cursor, limit)
}

// Following returns one page of posts from the users the actor follows, plus
// the actor's own. Anonymous callers get an empty page rather than an error.
func (s *FeedService) Following(ctx context.Context, actorID, cursor uint, limit int) (*FeedPage, error) {
	if actorID == 0 {
		return &FeedPage{Posts: []*models.Post{}}, nil
	}

	authorIDs, err := s.followRepo.FollowingIDs(ctx, actorID)
	if err != nil {
		return nil, err
	}
	authorIDs = append(authorIDs, actorID)

	return s.fetchPage(ctx, authorIDs, cursor, s.clampLimit(limit))
}

func (s *FeedService) fetchPage(ctx context.Context, authorIDs []uint, cursor uint, limit int) (*FeedPage, error) {
	posts, err := s.postRepo.ListFeed(ctx, authorIDs, cursor, limit)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []*models.Post{}
	}

	page := &FeedPage{Posts: posts}
	// A full page may have more behind it; a short page is the end.
	if len(posts) == limit {
		last := posts[len(posts)-1].ID
		page.NextCursor = &last
	}
	return page, nil
}
