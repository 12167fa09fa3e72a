package service

import (
	"context"
	"errors"
	"testing"

	"glimpse/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowToggle_SelfFollowRejected(t *testing.T) {
	svc := NewFollowService(noopFollowRepo(), noopUserRepo())

	_, err := svc.Toggle(context.Background(), 1, 1)
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeSelfFollow, appErr.Code)
}

func TestFollowToggle_RequiresLogin(t *testing.T) {
	svc := NewFollowService(noopFollowRepo(), noopUserRepo())
	_, err := svc.Toggle(context.Background(), 0, 2)
	assertUnauthorizedError(t, err)
}

func TestFollowToggle_MissingTargetIsNotFound(t *testing.T) {
	users := noopUserRepo()
	users.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return nil, models.NewNotFoundError("User", id)
	}
	svc := NewFollowService(noopFollowRepo(), users)

	_, err := svc.Toggle(context.Background(), 1, 99)
	assertNotFoundError(t, err)
}

func TestFollowToggle_OffWhenEdgeExists(t *testing.T) {
	follows := noopFollowRepo()
	follows.deleteEdgeFn = func(_ context.Context, _, _ uint) (bool, error) { return true, nil }
	var insertCalled bool
	follows.insertEdgeFn = func(_ context.Context, _, _ uint) (bool, error) {
		insertCalled = true
		return true, nil
	}
	svc := NewFollowService(follows, noopUserRepo())

	res, err := svc.Toggle(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.False(t, res.Following)
	assert.False(t, insertCalled)
}

func TestFollowToggle_OnWhenNoEdge(t *testing.T) {
	follows := noopFollowRepo()
	var gotFollower, gotFollowing uint
	follows.insertEdgeFn = func(_ context.Context, followerID, followingID uint) (bool, error) {
		gotFollower, gotFollowing = followerID, followingID
		return true, nil
	}
	svc := NewFollowService(follows, noopUserRepo())

	res, err := svc.Toggle(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.True(t, res.Following)
	assert.Equal(t, uint(1), gotFollower)
	assert.Equal(t, uint(2), gotFollowing)
}

func TestFollowers_EnrichesWithViewerPerspective(t *testing.T) {
	follows := noopFollowRepo()
	follows.listFollowersFn = func(_ context.Context, _ uint, limit, offset int) ([]models.User, int64, error) {
		assert.Equal(t, FollowListPageSize, limit)
		assert.Equal(t, 0, offset)
		return []models.User{{ID: 2}, {ID: 3}}, 2, nil
	}
	follows.followingSetFn = func(_ context.Context, viewerID uint, ids []uint) (map[uint]bool, error) {
		assert.Equal(t, uint(9), viewerID)
		return map[uint]bool{3: true}, nil
	}
	svc := NewFollowService(follows, noopUserRepo())

	page, err := svc.Followers(context.Background(), 1, 9, 1)
	require.NoError(t, err)
	require.Len(t, page.Users, 2)
	assert.False(t, page.Users[0].IsFollowing)
	assert.True(t, page.Users[1].IsFollowing)
	assert.Equal(t, int64(2), page.Total)
	assert.Equal(t, 1, page.Pages)
	assert.Equal(t, 1, page.CurrentPage)
}

func TestFollowing_PaginationMeta(t *testing.T) {
	follows := noopFollowRepo()
	follows.listFollowingFn = func(_ context.Context, _ uint, limit, offset int) ([]models.User, int64, error) {
		assert.Equal(t, FollowListPageSize, offset, "page 2 starts after one full page")
		return []models.User{{ID: 4}}, 51, nil
	}
	svc := NewFollowService(follows, noopUserRepo())

	page, err := svc.Following(context.Background(), 1, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(51), page.Total)
	assert.Equal(t, 2, page.Pages)
	assert.Equal(t, 2, page.CurrentPage)
}

func TestFollowers_PageBelowOneClampsToFirst(t *testing.T) {
	follows := noopFollowRepo()
	follows.listFollowersFn = func(_ context.Context, _ uint, _, offset int) ([]models.User, int64, error) {
		assert.Equal(t, 0, offset)
		return nil, 0, nil
	}
	svc := NewFollowService(follows, noopUserRepo())

	page, err := svc.Followers(context.Background(), 1, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.CurrentPage)
	assert.NotNil(t, page.Users)
}
