package service

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"glimpse/internal/models"
	"glimpse/internal/repository"
)

// handlePattern constrains handles to alphanumerics and underscores.
var handlePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

const maxHandleLen = 30

// UserService carries profile reads and updates.
type UserService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

// UpdateProfileInput is the payload for a profile update. Empty fields are
// left unchanged; the social link fields are always written so they can be
// cleared.
type UpdateProfileInput struct {
	UserID         uint
	Name           string
	Username       string
	Handle         string
	Image          string
	XUsername      string
	MediumUsername string
	LinkedinURL    string
	GithubUsername string
	WebsiteURL     string
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository, followRepo repository.FollowRepository) *UserService {
	return &UserService{userRepo: userRepo, followRepo: followRepo}
}

// GetProfile returns the user with profile counts and, for a logged-in
// viewer, whether the viewer follows them.
func (s *UserService) GetProfile(ctx context.Context, id, viewerID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	followers, following, posts, err := s.userRepo.CountsFor(ctx, id)
	if err != nil {
		return nil, err
	}
	user.FollowersCount = int(followers)
	user.FollowingCount = int(following)
	user.PostsCount = int(posts)

	if viewerID != 0 && viewerID != id {
		isFollowing, err := s.followRepo.IsFollowing(ctx, viewerID, id)
		if err != nil {
			return nil, err
		}
		user.IsFollowing = isFollowing
	}
	return user, nil
}

// GetByHandle resolves a profile by its public handle.
func (s *UserService) GetByHandle(ctx context.Context, handle string, viewerID uint) (*models.User, error) {
	user, err := s.userRepo.GetByHandle(ctx, handle)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User", handle)
	}
	return s.GetProfile(ctx, user.ID, viewerID)
}

// UpdateProfile applies a partial profile update after checking handle shape
// and username/handle uniqueness.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	if in.UserID == 0 {
		return nil, models.NewUnauthorizedError("You must be logged in to update your profile")
	}

	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Username != "" && in.Username != user.Username {
		existing, err := s.userRepo.GetByUsername(ctx, in.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, models.NewValidationError("Username already taken")
		}
		user.Username = in.Username
	}

	if in.Handle != "" && in.Handle != user.Handle {
		if len(in.Handle) > maxHandleLen {
			return nil, models.NewValidationError("Handle must be at most 30 characters")
		}
		if !handlePattern.MatchString(in.Handle) {
			return nil, models.NewValidationError("Handle may only contain letters, numbers and underscores")
		}
		existing, err := s.userRepo.GetByHandle(ctx, in.Handle)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, models.NewValidationError("Handle already taken")
		}
		user.Handle = in.Handle
	}

	if in.LinkedinURL != "" && !isValidURL(in.LinkedinURL) {
		return nil, models.NewValidationError("linkedin_url must be a valid URL")
	}
	if in.WebsiteURL != "" && !isValidURL(in.WebsiteURL) {
		return nil, models.NewValidationError("website_url must be a valid URL")
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Image != "" {
		user.Image = in.Image
	}
	user.XUsername = in.XUsername
	user.MediumUsername = in.MediumUsername
	user.LinkedinURL = in.LinkedinURL
	user.GithubUsername = in.GithubUsername
	user.WebsiteURL = in.WebsiteURL

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// isValidURL accepts absolute http or https URLs only.
func isValidURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(parsed.Scheme)
	return (scheme == "http" || scheme == "https") && parsed.Host != ""
}
