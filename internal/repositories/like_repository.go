package repositories

import (
	"github.com/nanotweet/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	CreateLike(like *models.Like) (created bool, err error)
	DeleteLike(userID, tweetID uint) (deleted bool, err error)
	HasUserLikedTweet(userID, tweetID uint) (bool, error)
	GetLikesCountByTweetID(tweetID uint) (int64, error)
	GetLikedTweetIDs(userID uint) ([]uint, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// CreateLike ensures exactly one (user, tweet) row exists. Repeat calls
// and racing concurrent inserts resolve to created=false via the
// idx_user_tweet unique index.
func (r *PostgresLikeRepository) CreateLike(like *models.Like) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "tweet_id"}},
		DoNothing: true,
	}).Create(like)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// DeleteLike removes the like if present; unliking a not-liked tweet is
// a silent no-op.
func (r *PostgresLikeRepository) DeleteLike(userID, tweetID uint) (bool, error) {
	res := r.db.Where("user_id = ? AND tweet_id = ?", userID, tweetID).Delete(&models.Like{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// HasUserLikedTweet checks if a user has liked a specific tweet
func (r *PostgresLikeRepository) HasUserLikedTweet(userID, tweetID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("user_id = ? AND tweet_id = ?", userID, tweetID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetLikesCountByTweetID retrieves the count of likes for a specific tweet
func (r *PostgresLikeRepository) GetLikesCountByTweetID(tweetID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("tweet_id = ?", tweetID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetLikedTweetIDs lists the tweet IDs a user has liked, for the home view
func (r *PostgresLikeRepository) GetLikedTweetIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Like{}).Where("user_id = ?", userID).Pluck("tweet_id", &ids).Error
	return ids, err
}
