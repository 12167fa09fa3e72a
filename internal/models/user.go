// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a user in the Glimpse application.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Username string `gorm:"unique;not null" json:"username"`
	// Handle is the short public identifier shown as @handle. Alphanumeric
	// plus underscore, at most 30 characters; uniqueness enforced by the DB.
	Handle   string `gorm:"unique;not null" json:"handle"`
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Image    string `json:"image"`

	// Optional social profile links.
	XUsername      string `json:"x_username,omitempty"`
	MediumUsername string `json:"medium_username,omitempty"`
	LinkedinURL    string `json:"linkedin_url,omitempty"`
	GithubUsername string `json:"github_username,omitempty"`
	WebsiteURL     string `json:"website_url,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Posts []Post `gorm:"foreignKey:AuthorID" json:"posts,omitempty"`

	// IsFollowing indicates whether the current requesting user follows this
	// user (computed at query time, never persisted).
	IsFollowing bool `gorm:"-" json:"is_following"`

	// Counts are computed at query time for profile views.
	FollowersCount int `gorm:"-" json:"followers_count"`
	FollowingCount int `gorm:"-" json:"following_count"`
	PostsCount     int `gorm:"-" json:"posts_count"`
}
