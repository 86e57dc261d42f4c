package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/nanotweet/backend/internal/repositories"
)

// UserHandler handles HTTP requests related to user profiles
type UserHandler struct {
	userRepository   repositories.UserRepository
	tweetRepository  repositories.TweetRepository
	followRepository repositories.FollowRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, tweetRepo repositories.TweetRepository, followRepo repositories.FollowRepository) *UserHandler {
	return &UserHandler{
		userRepository:   userRepo,
		tweetRepository:  tweetRepo,
		followRepository: followRepo,
	}
}

// RegisterProfileRoutes registers user profile-related routes
func (h *UserHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/profile", h.GetCurrentUser)
	g.GET("/users/:username", h.GetProfile)
}

// GetCurrentUser returns the authenticated user's own record, resolved
// fresh from storage rather than echoed back from token claims.
func (h *UserHandler) GetCurrentUser(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	user, err := h.userRepository.GetUserByID(currentUserID)
	if err != nil {
		// A valid token for a since-deleted account gets a 404, not a 500.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User profile not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"user": user})
}

// GetProfile aggregates a user's profile page: their tweets newest-first,
// both edge counts, and whether the viewer follows them. Counts are
// computed on read; there are no denormalized counters to drift.
func (h *UserHandler) GetProfile(c echo.Context) error {
	user, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User profile not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	tweets, err := h.tweetRepository.GetTweetsByUserID(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	followingCount, err := h.followRepository.GetFollowingCount(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	followerCount, err := h.followRepository.GetFollowersCount(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	isFollowing := false
	if viewerID := getUserIDFromContext(c); viewerID != 0 && viewerID != user.ID {
		isFollowing, err = h.followRepository.IsFollowing(viewerID, user.ID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"user":            user,
		"tweets":          tweets,
		"following_count": followingCount,
		"follower_count":  followerCount,
		"is_following":    isFollowing,
	})
}
