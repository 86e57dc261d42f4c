package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/nanotweet/backend/internal/models"
	"github.com/nanotweet/backend/internal/repositories"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	followRepository repositories.FollowRepository
	userRepository   repositories.UserRepository
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followRepo repositories.FollowRepository, userRepo repositories.UserRepository) *FollowHandler {
	return &FollowHandler{
		followRepository: followRepo,
		userRepository:   userRepo,
	}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/users/:username/follow", h.FollowUser)
	g.POST("/users/:username/unfollow", h.UnfollowUser)
	g.GET("/users/:username/following", h.ListFollowing)
	g.GET("/users/:username/followers", h.ListFollowers)
}

// FollowUser follows a user by username. Following someone twice is a
// success, not an error: the edge count stays at one either way.
func (h *FollowHandler) FollowUser(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	targetUsername := c.Param("username")
	target, err := h.userRepository.GetUserByUsername(targetUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if currentUserID == target.ID {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot follow yourself")
	}

	follow := &models.Follow{
		FollowerID:  currentUserID,
		FollowingID: target.ID,
	}

	created, err := h.followRepository.CreateFollow(follow)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !created {
		log.Printf("[WARN] user %d already follows %q", currentUserID, targetUsername)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"following": true, "already_following": !created},
	})
}

// UnfollowUser unfollows a user by username. Removing an absent edge is
// a silent no-op.
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	targetUsername := c.Param("username")
	target, err := h.userRepository.GetUserByUsername(targetUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if currentUserID == target.ID {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot unfollow yourself")
	}

	if _, err := h.followRepository.DeleteFollow(currentUserID, target.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"following": false},
	})
}

// ListFollowing lists the users that :username follows
func (h *FollowHandler) ListFollowing(c echo.Context) error {
	user, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	users, err := h.followRepository.GetFollowing(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"username": user.Username, "following": users})
}

// ListFollowers lists the users following :username
func (h *FollowHandler) ListFollowers(c echo.Context) error {
	user, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	users, err := h.followRepository.GetFollowers(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"username": user.Username, "followers": users})
}
