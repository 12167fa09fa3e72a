package service

import (
	"context"

	"glimpse/internal/models"
	"glimpse/internal/repository"
)

// FollowListPageSize is the fixed page size for follower/following listings.
const FollowListPageSize = 50

// FollowService manages follow edges and follower/following listings.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// FollowToggleResult reports the state the follow toggle landed in.
type FollowToggleResult struct {
	Following bool `json:"following"`
}

// UserPage is one page of users plus pagination metadata.
type UserPage struct {
	Users       []models.User `json:"users"`
	Total       int64         `json:"total"`
	Pages       int           `json:"pages"`
	CurrentPage int           `json:"current_page"`
}

// NewFollowService creates a new follow service.
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{followRepo: followRepo, userRepo: userRepo}
}

// Toggle follows the target when no edge exists, unfollows otherwise. Both
// arms are conditional writes so concurrent toggles cannot error or double
// an edge.
func (s *FollowService) Toggle(ctx context.Context, actorID, targetID uint) (*FollowToggleResult, error) {
	if actorID == 0 {
		return nil, models.NewUnauthorizedError("You must be logged in to follow")
	}
	if actorID == targetID {
		return nil, models.NewSelfFollowError()
	}

	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return nil, err
	}

	deleted, err := s.followRepo.DeleteEdge(ctx, actorID, targetID)
	if err != nil {
		return nil, err
	}
	if deleted {
		return &FollowToggleResult{Following: false}, nil
	}

	if _, err := s.followRepo.InsertEdge(ctx, actorID, targetID); err != nil {
		return nil, err
	}
	return &FollowToggleResult{Following: true}, nil
}

// IsFollowing reports whether the actor follows the target. Anonymous actors
// never follow anyone.
func (s *FollowService) IsFollowing(ctx context.Context, actorID, targetID uint) (bool, error) {
	if actorID == 0 {
		return false, nil
	}
	return s.followRepo.IsFollowing(ctx, actorID, targetID)
}

// Followers lists one page of the users following userID, with each entry's
// IsFollowing set from the viewer's perspective.
func (s *FollowService) Followers(ctx context.Context, userID, viewerID uint, page int) (*UserPage, error) {
	return s.listPage(ctx, viewerID, page, func(limit, offset int) ([]models.User, int64, error) {
		return s.followRepo.ListFollowers(ctx, userID, limit, offset)
	})
}

// Following lists one page of the users userID follows, with each entry's
// IsFollowing set from the viewer's perspective.
func (s *FollowService) Following(ctx context.Context, userID, viewerID uint, page int) (*UserPage, error) {
	return s.listPage(ctx, viewerID, page, func(limit, offset int) ([]models.User, int64, error) {
		return s.followRepo.ListFollowing(ctx, userID, limit, offset)
	})
}

func (s *FollowService) listPage(ctx context.Context, viewerID uint, page int, list func(limit, offset int) ([]models.User, int64, error)) (*UserPage, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * FollowListPageSize

	users, total, err := list(FollowListPageSize, offset)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}

	if viewerID != 0 && len(users) > 0 {
		ids := make([]uint, len(users))
		for i, u := range users {
			ids[i] = u.ID
		}
		set, err := s.followRepo.FollowingSet(ctx, viewerID, ids)
		if err != nil {
			return nil, err
		}
		for i := range users {
			users[i].IsFollowing = set[users[i].ID]
		}
	}

	pages := int((total + FollowListPageSize - 1) / FollowListPageSize)
	return &UserPage{
		Users:       users,
		Total:       total,
		Pages:       pages,
		CurrentPage: page,
	}, nil
}
