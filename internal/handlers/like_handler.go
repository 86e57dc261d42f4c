package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/nanotweet/backend/internal/models"
	"github.com/nanotweet/backend/internal/repositories"
)

// LikeHandler handles like/unlike HTTP requests. Both endpoints return the
// full LikeState so the client can re-render its like widget in place.
type LikeHandler struct {
	likeRepository  repositories.LikeRepository
	tweetRepository repositories.TweetRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository, tweetRepo repositories.TweetRepository) *LikeHandler {
	return &LikeHandler{
		likeRepository:  likeRepo,
		tweetRepository: tweetRepo,
	}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/tweets/:id/like", h.LikeTweet)
	g.POST("/tweets/:id/unlike", h.UnlikeTweet)
}

// LikeTweet ensures exactly one like edge exists for (user, tweet).
// Liking an already-liked tweet changes nothing and still succeeds.
func (h *LikeHandler) LikeTweet(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	tweetID, err := parseTweetID(c)
	if err != nil {
		return err
	}

	if err := h.ensureTweetExists(tweetID); err != nil {
		return err
	}

	like := &models.Like{
		UserID:  currentUserID,
		TweetID: tweetID,
	}
	if _, err := h.likeRepository.CreateLike(like); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return h.respondLikeState(c, tweetID, true)
}

// UnlikeTweet removes the like edge if present; unliking a tweet that was
// never liked is a silent no-op.
func (h *LikeHandler) UnlikeTweet(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	tweetID, err := parseTweetID(c)
	if err != nil {
		return err
	}

	if err := h.ensureTweetExists(tweetID); err != nil {
		return err
	}

	if _, err := h.likeRepository.DeleteLike(currentUserID, tweetID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return h.respondLikeState(c, tweetID, false)
}

func (h *LikeHandler) ensureTweetExists(tweetID uint) error {
	if _, err := h.tweetRepository.GetTweetByID(tweetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Tweet not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return nil
}

func (h *LikeHandler) respondLikeState(c echo.Context, tweetID uint, isLiked bool) error {
	likeCount, err := h.likeRepository.GetLikesCountByTweetID(tweetID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, models.LikeState{
		LikeCount: uint(likeCount),
		TweetID:   tweetID,
		IsLiked:   isLiked,
		LikeURL:   fmt.Sprintf("/api/v1/tweets/%d/like", tweetID),
		UnlikeURL: fmt.Sprintf("/api/v1/tweets/%d/unlike", tweetID),
	})
}
