package repositories

import (
	"github.com/nanotweet/backend/internal/models"
	"gorm.io/gorm"
)

// TweetRepository defines the interface for tweet data operations
type TweetRepository interface {
	CreateTweet(tweet *models.Tweet) error
	GetTweetByID(id uint) (*models.Tweet, error)
	GetTweets() ([]models.Tweet, error)
	GetTweetsByUserID(userID uint) ([]models.Tweet, error)
	DeleteTweet(id uint) error
}

// PostgresTweetRepository implements TweetRepository for PostgreSQL
type PostgresTweetRepository struct {
	db *gorm.DB
}

// NewPostgresTweetRepository creates a new PostgresTweetRepository
func NewPostgresTweetRepository(db *gorm.DB) *PostgresTweetRepository {
	return &PostgresTweetRepository{db: db}
}

// CreateTweet persists a new tweet; CreatedAt is assigned at insert time
func (r *PostgresTweetRepository) CreateTweet(tweet *models.Tweet) error {
	return r.db.Create(tweet).Error
}

// GetTweetByID retrieves a tweet with its author preloaded
func (r *PostgresTweetRepository) GetTweetByID(id uint) (*models.Tweet, error) {
	var tweet models.Tweet
	if err := r.db.Preload("User").First(&tweet, id).Error; err != nil {
		return nil, err
	}
	return &tweet, nil
}

// GetTweets retrieves all tweets, newest first
func (r *PostgresTweetRepository) GetTweets() ([]models.Tweet, error) {
	var tweets []models.Tweet
	if err := r.db.Preload("User").Order("created_at DESC").Find(&tweets).Error; err != nil {
		return nil, err
	}
	return tweets, nil
}

// GetTweetsByUserID retrieves one user's tweets, newest first
func (r *PostgresTweetRepository) GetTweetsByUserID(userID uint) ([]models.Tweet, error) {
	var tweets []models.Tweet
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&tweets).Error; err != nil {
		return nil, err
	}
	return tweets, nil
}

// DeleteTweet deletes a tweet by ID; its like rows go with it via the
// ON DELETE CASCADE constraint
func (r *PostgresTweetRepository) DeleteTweet(id uint) error {
	return r.db.Delete(&models.Tweet{}, id).Error
}
