package models

import "time"

// Like marks that a user has liked a tweet. At most one row per
// (user, tweet) pair; deleting the tweet cascades to its likes.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_tweet"`
	TweetID   uint      `json:"tweet_id" gorm:"index;uniqueIndex:idx_user_tweet"`
	User      User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Tweet     Tweet     `json:"-" gorm:"foreignKey:TweetID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created_at"`
}

// LikeState is the payload the like/unlike endpoints return; the client
// re-renders its like widget from this instead of reloading the page.
type LikeState struct {
	LikeCount uint   `json:"like_count"`
	TweetID   uint   `json:"tweet_id"`
	IsLiked   bool   `json:"is_liked"`
	LikeURL   string `json:"like_url"`
	UnlikeURL string `json:"unlike_url"`
}
