package models

import "time"

// Follow represents a directed follow edge between two users. The
// (FollowerID, FollowingID) pair is unique; self-follows are rejected at the
// service layer before a row is ever written.
type Follow struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	FollowerID  uint      `gorm:"not null;uniqueIndex:idx_follower_following" json:"follower_id"`
	FollowingID uint      `gorm:"not null;uniqueIndex:idx_follower_following" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`

	Follower  *User `gorm:"foreignKey:FollowerID" json:"follower,omitempty"`
	Following *User `gorm:"foreignKey:FollowingID" json:"following,omitempty"`
}

// TableName specifies the table name for GORM.
func (Follow) TableName() string {
	return "follows"
}
