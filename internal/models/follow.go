package models

import "time"

// Follow is a directed edge in the social graph: follower observes following.
// The composite unique index is what makes a concurrent duplicate insert a
// no-op instead of a second row.
type Follow struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	FollowerID  uint      `json:"follower_id" gorm:"index;uniqueIndex:idx_follower_following"`
	FollowingID uint      `json:"following_id" gorm:"index;uniqueIndex:idx_follower_following"`
	Follower    User      `json:"-" gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE"`
	Following   User      `json:"-" gorm:"foreignKey:FollowingID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time `json:"created_at"`
}
