package service

import (
	"context"
	"errors"
	"testing"

	"glimpse/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn              func(context.Context, *models.Post) error
	getByIDFn             func(context.Context, uint) (*models.Post, error)
	existsFn              func(context.Context, uint) (bool, error)
	listFeedFn            func(context.Context, []uint, uint, int) ([]*models.Post, error)
	listRepliesByAuthorFn func(context.Context, uint) ([]*models.Post, error)
	listQuotesByAuthorFn  func(context.Context, uint) ([]*models.Post, error)
	listRepostsByAuthorFn func(context.Context, uint) ([]*models.Post, error)
	deleteRepostFn        func(context.Context, uint, uint) (bool, error)
	insertLikeFn          func(context.Context, uint, uint) (bool, error)
	deleteLikeFn          func(context.Context, uint, uint) (bool, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) Exists(ctx context.Context, id uint) (bool, error) {
	return s.existsFn(ctx, id)
}
func (s *postRepoStub) ListFeed(ctx context.Context, authorIDs []uint, cursor uint, limit int) ([]*models.Post, error) {
	return s.listFeedFn(ctx, authorIDs, cursor, limit)
}
func (s *postRepoStub) ListRepliesByAuthor(ctx context.Context, authorID uint) ([]*models.Post, error) {
	return s.listRepliesByAuthorFn(ctx, authorID)
}
func (s *postRepoStub) ListQuotesByAuthor(ctx context.Context, authorID uint) ([]*models.Post, error) {
	return s.listQuotesByAuthorFn(ctx, authorID)
}
func (s *postRepoStub) ListRepostsByAuthor(ctx context.Context, authorID uint) ([]*models.Post, error) {
	return s.listRepostsByAuthorFn(ctx, authorID)
}
func (s *postRepoStub) DeleteRepost(ctx context.Context, authorID, postID uint) (bool, error) {
	return s.deleteRepostFn(ctx, authorID, postID)
}
func (s *postRepoStub) InsertLike(ctx context.Context, userID, postID uint) (bool, error) {
	return s.insertLikeFn(ctx, userID, postID)
}
func (s *postRepoStub) DeleteLike(ctx context.Context, userID, postID uint) (bool, error) {
	return s.deleteLikeFn(ctx, userID, postID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:              func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn:             func(_ context.Context, id uint) (*models.Post, error) { return &models.Post{ID: id}, nil },
		existsFn:              func(_ context.Context, _ uint) (bool, error) { return true, nil },
		listFeedFn:            func(_ context.Context, _ []uint, _ uint, _ int) ([]*models.Post, error) { return nil, nil },
		listRepliesByAuthorFn: func(_ context.Context, _ uint) ([]*models.Post, error) { return nil, nil },
		listQuotesByAuthorFn:  func(_ context.Context, _ uint) ([]*models.Post, error) { return nil, nil },
		listRepostsByAuthorFn: func(_ context.Context, _ uint) ([]*models.Post, error) { return nil, nil },
		deleteRepostFn:        func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		insertLikeFn:          func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		deleteLikeFn:          func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
	}
}

// followRepoStub is a stub for repository.FollowRepository.
type followRepoStub struct {
	insertEdgeFn    func(context.Context, uint, uint) (bool, error)
	deleteEdgeFn    func(context.Context, uint, uint) (bool, error)
	isFollowingFn   func(context.Context, uint, uint) (bool, error)
	followingIDsFn  func(context.Context, uint) ([]uint, error)
	followingSetFn  func(context.Context, uint, []uint) (map[uint]bool, error)
	listFollowersFn func(context.Context, uint, int, int) ([]models.User, int64, error)
	listFollowingFn func(context.Context, uint, int, int) ([]models.User, int64, error)
}

func (s *followRepoStub) InsertEdge(ctx context.Context, followerID, followingID uint) (bool, error) {
	return s.insertEdgeFn(ctx, followerID, followingID)
}
func (s *followRepoStub) DeleteEdge(ctx context.Context, followerID, followingID uint) (bool, error) {
	return s.deleteEdgeFn(ctx, followerID, followingID)
}
func (s *followRepoStub) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	return s.isFollowingFn(ctx, followerID, followingID)
}
func (s *followRepoStub) FollowingIDs(ctx context.Context, followerID uint) ([]uint, error) {
	return s.followingIDsFn(ctx, followerID)
}
func (s *followRepoStub) FollowingSet(ctx context.Context, viewerID uint, candidateIDs []uint) (map[uint]bool, error) {
	return s.followingSetFn(ctx, viewerID, candidateIDs)
}
func (s *followRepoStub) ListFollowers(ctx context.Context, userID uint, limit, offset int) ([]models.User, int64, error) {
	return s.listFollowersFn(ctx, userID, limit, offset)
}
func (s *followRepoStub) ListFollowing(ctx context.Context, userID uint, limit, offset int) ([]models.User, int64, error) {
	return s.listFollowingFn(ctx, userID, limit, offset)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		insertEdgeFn:   func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		deleteEdgeFn:   func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		isFollowingFn:  func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		followingIDsFn: func(_ context.Context, _ uint) ([]uint, error) { return nil, nil },
		followingSetFn: func(_ context.Context, _ uint, _ []uint) (map[uint]bool, error) {
			return map[uint]bool{}, nil
		},
		listFollowersFn: func(_ context.Context, _ uint, _, _ int) ([]models.User, int64, error) {
			return nil, 0, nil
		},
		listFollowingFn: func(_ context.Context, _ uint, _, _ int) ([]models.User, int64, error) {
			return nil, 0, nil
		},
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	getByHandleFn   func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	countsForFn     func(context.Context, uint) (int64, int64, int64, error)
	listFn          func(context.Context, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) GetByHandle(ctx context.Context, handle string) (*models.User, error) {
	return s.getByHandleFn(ctx, handle)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) CountsFor(ctx context.Context, id uint) (int64, int64, int64, error) {
	return s.countsForFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByHandleFn:   func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		updateFn:        func(_ context.Context, _ *models.User) error { return nil },
		countsForFn:     func(_ context.Context, _ uint) (int64, int64, int64, error) { return 0, 0, 0, nil },
		listFn:          func(_ context.Context, _, _ int) ([]models.User, error) { return nil, nil },
	}
}

// assertValidationError asserts that err is an AppError with code VALIDATION_ERROR.
func assertValidationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, models.CodeValidation, appErr.Code)
}

// assertUnauthorizedError asserts that err is an AppError with code UNAUTHORIZED.
func assertUnauthorizedError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, models.CodeUnauthorized, appErr.Code)
}

// assertNotFoundError asserts that err is an AppError with code NOT_FOUND.
func assertNotFoundError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}
