package handlers

import (
	"github.com/stretchr/testify/mock"

	"github.com/nanotweet/backend/internal/models"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UsernameExists(username string) (bool, error) {
	args := m.Called(username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) EmailExists(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) CreateFollow(follow *models.Follow) (bool, error) {
	args := m.Called(follow)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) DeleteFollow(followerID, followingID uint) (bool, error) {
	args := m.Called(followerID, followingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) IsFollowing(followerID, followingID uint) (bool, error) {
	args := m.Called(followerID, followingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) GetFollowers(userID uint) ([]models.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockFollowRepository) GetFollowing(userID uint) ([]models.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockFollowRepository) GetFollowersCount(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFollowRepository) GetFollowingCount(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

type MockTweetRepository struct {
	mock.Mock
}

func (m *MockTweetRepository) CreateTweet(tweet *models.Tweet) error {
	args := m.Called(tweet)
	return args.Error(0)
}

func (m *MockTweetRepository) GetTweetByID(id uint) (*models.Tweet, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tweet), args.Error(1)
}

func (m *MockTweetRepository) GetTweets() ([]models.Tweet, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tweet), args.Error(1)
}

func (m *MockTweetRepository) GetTweetsByUserID(userID uint) ([]models.Tweet, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tweet), args.Error(1)
}

func (m *MockTweetRepository) DeleteTweet(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) CreateLike(like *models.Like) (bool, error) {
	args := m.Called(like)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) DeleteLike(userID, tweetID uint) (bool, error) {
	args := m.Called(userID, tweetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) HasUserLikedTweet(userID, tweetID uint) (bool, error) {
	args := m.Called(userID, tweetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) GetLikesCountByTweetID(tweetID uint) (int64, error) {
	args := m.Called(tweetID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLikeRepository) GetLikedTweetIDs(userID uint) ([]uint, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}
