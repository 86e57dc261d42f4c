package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/nanotweet/backend/internal/models"
	"github.com/nanotweet/backend/internal/repositories"
)

// TweetHandler handles tweet lifecycle HTTP requests
type TweetHandler struct {
	tweetRepository repositories.TweetRepository
	likeRepository  repositories.LikeRepository
}

// NewTweetHandler creates a new TweetHandler
func NewTweetHandler(tweetRepo repositories.TweetRepository, likeRepo repositories.LikeRepository) *TweetHandler {
	return &TweetHandler{
		tweetRepository: tweetRepo,
		likeRepository:  likeRepo,
	}
}

// RegisterTweetRoutes registers tweet-related routes
func (h *TweetHandler) RegisterTweetRoutes(g *echo.Group) {
	g.GET("/tweets", h.ListTweets)
	g.POST("/tweets", h.CreateTweet)
	g.GET("/tweets/:id", h.GetTweet)
	g.POST("/tweets/:id/delete", h.DeleteTweet)
}

// ListTweets returns every tweet newest-first, plus the IDs of tweets the
// viewer has liked so the client can render filled hearts without another
// round trip.
func (h *TweetHandler) ListTweets(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	tweets, err := h.tweetRepository.GetTweets()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	likedIDs, err := h.likeRepository.GetLikedTweetIDs(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"tweets":          tweets,
		"liked_tweet_ids": likedIDs,
	})
}

// CreateTweet persists a new tweet for the authenticated user
func (h *TweetHandler) CreateTweet(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateTweetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tweet := &models.Tweet{
		UserID:  currentUserID,
		Content: req.Content,
	}

	if err := h.tweetRepository.CreateTweet(tweet); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, tweet)
}

// GetTweet returns a single tweet with its like count and whether the
// viewer has liked it
func (h *TweetHandler) GetTweet(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	tweetID, err := parseTweetID(c)
	if err != nil {
		return err
	}

	tweet, err := h.tweetRepository.GetTweetByID(tweetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Tweet not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	likeCount, err := h.likeRepository.GetLikesCountByTweetID(tweet.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	isLiked, err := h.likeRepository.HasUserLikedTweet(currentUserID, tweet.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"tweet":      tweet,
		"like_count": likeCount,
		"is_liked":   isLiked,
	})
}

// DeleteTweet deletes a tweet; only its author may do so. The tweet's
// like rows cascade away with it.
func (h *TweetHandler) DeleteTweet(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	tweetID, err := parseTweetID(c)
	if err != nil {
		return err
	}

	tweet, err := h.tweetRepository.GetTweetByID(tweetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Tweet not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if tweet.UserID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "You can only delete your own tweets")
	}

	if err := h.tweetRepository.DeleteTweet(tweet.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func parseTweetID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid tweet ID")
	}
	return uint(id), nil
}
