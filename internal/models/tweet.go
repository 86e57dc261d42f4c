package models

import "time"

// Tweet is a short text post. Immutable after insert except for deletion
// by its author.
type Tweet struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	User      User      `json:"user" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Content   string    `json:"content" gorm:"size:200;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateTweetRequest defines the request body for posting a tweet.
type CreateTweetRequest struct {
	Content string `json:"content" validate:"required,min=1,max=200"`
}
