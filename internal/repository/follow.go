// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"time"

	"glimpse/internal/cache"
	"glimpse/internal/models"

	"gorm.io/gorm"
)

// FollowRepository defines persistence operations for follow edges.
type FollowRepository interface {
	InsertEdge(ctx context.Context, followerID, followingID uint) (bool, error)
	DeleteEdge(ctx context.Context, followerID, followingID uint) (bool, error)
	IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error)
	FollowingIDs(ctx context.Context, followerID uint) ([]uint, error)
	FollowingSet(ctx context.Context, viewerID uint, candidateIDs []uint) (map[uint]bool, error)
	ListFollowers(ctx context.Context, userID uint, limit, offset int) ([]models.User, int64, error)
	ListFollowing(ctx context.Context, userID uint, limit, offset int) ([]models.User, int64, error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository returns a new FollowRepository implementation.
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// InsertEdge atomically creates the follow edge, ignoring the insert when the
// edge already exists. The returned bool reports whether a row was written.
func (r *followRepository) InsertEdge(ctx context.Context, followerID, followingID uint) (bool, error) {
	result := r.db.WithContext(ctx).Exec(
		`INSERT INTO follows (follower_id, following_id, created_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT (follower_id, following_id) DO NOTHING`,
		followerID, followingID, time.Now(),
	)
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}
	if result.RowsAffected > 0 {
		cache.InvalidateUser(ctx, followerID)
		cache.InvalidateUser(ctx, followingID)
		return true, nil
	}
	return false, nil
}

func (r *followRepository) DeleteEdge(ctx context.Context, followerID, followingID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follow{})
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}
	if result.RowsAffected > 0 {
		cache.InvalidateUser(ctx, followerID)
		cache.InvalidateUser(ctx, followingID)
		return true, nil
	}
	return false, nil
}

func (r *followRepository) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// FollowingIDs returns the ids of every user the given user follows.
func (r *followRepository) FollowingIDs(ctx context.Context, followerID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ?", followerID).
		Pluck("following_id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

// FollowingSet reports which of the candidate ids the viewer follows, as a
// membership map. A zero viewer (anonymous) yields an empty map.
func (r *followRepository) FollowingSet(ctx context.Context, viewerID uint, candidateIDs []uint) (map[uint]bool, error) {
	set := make(map[uint]bool, len(candidateIDs))
	if viewerID == 0 || len(candidateIDs) == 0 {
		return set, nil
	}
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND following_id IN ?", viewerID, candidateIDs).
		Pluck("following_id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

func (r *followRepository) ListFollowers(ctx context.Context, userID uint, limit, offset int) ([]models.User, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("following_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var users []models.User
	if err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN follows f ON f.follower_id = users.id").
		Where("f.following_id = ?", userID).
		Order("f.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return users, total, nil
}

func (r *followRepository) ListFollowing(ctx context.Context, userID uint, limit, offset int) ([]models.User, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var users []models.User
	if err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN follows f ON f.following_id = users.id").
		Where("f.follower_id = ?", userID).
		Order("f.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return users, total, nil
}
