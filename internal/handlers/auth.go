package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nanotweet/backend/internal/models"
	"github.com/nanotweet/backend/internal/repositories"
)

const tokenLifetime = 72 * time.Hour

// SessionRevoker terminates sessions by denylisting token IDs.
// Satisfied by session.Store.
type SessionRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	userRepository repositories.UserRepository
	sessions       SessionRevoker
	jwtSecret      string
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository, sessions SessionRevoker, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		userRepository: userRepo,
		sessions:       sessions,
		jwtSecret:      jwtSecret,
	}
}

// RegisterAuthRoutes registers the unauthenticated auth routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/signup", h.Signup)
	g.POST("/login", h.Login)
}

// RegisterSessionRoutes registers auth routes that need a valid token
func (h *AuthHandler) RegisterSessionRoutes(g *echo.Group) {
	g.POST("/auth/logout", h.Logout)
}

// Signup handles user registration with username, email and password.
// Validation failures return a field -> message map and persist nothing.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req models.SignupRequest

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	// Uniqueness checks before any insert; no partial user on failure.
	taken, err := h.userRepository.UsernameExists(req.Username)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if taken {
		return echo.NewHTTPError(http.StatusBadRequest, echo.Map{
			"error":  "validation failed",
			"fields": echo.Map{"Username": "this username is already taken"},
		})
	}

	registered, err := h.userRepository.EmailExists(req.Email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if registered {
		return echo.NewHTTPError(http.StatusBadRequest, echo.Map{
			"error":  "validation failed",
			"fields": echo.Map{"Email": "this email is already registered"},
		})
	}

	// Hash the password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to hash password")
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
	}

	if err := h.userRepository.CreateUser(user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Establish the session right away, like a signup-then-login flow
	token, err := h.generateJWT(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token after signup")
	}

	return c.JSON(http.StatusCreated, echo.Map{"token": token, "user": user})
}

// Login handles authentication with username and password. Unknown
// username and wrong password are indistinguishable to the caller.
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userRepository.GetUserByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}

	token, err := h.generateJWT(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token")
	}

	return c.JSON(http.StatusOK, echo.Map{"token": token, "user": user})
}

// Logout revokes the presented token for its remaining lifetime
func (h *AuthHandler) Logout(c echo.Context) error {
	claims := getClaimsFromContext(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	ttl := time.Duration(0)
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if err := h.sessions.Revoke(c.Request().Context(), claims.ID, ttl); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to terminate session")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// generateJWT generates a JWT token for a given user
func (h *AuthHandler) generateJWT(user *models.User) (string, error) {
	claims := &models.JwtCustomClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(), // jti, so logout can revoke this token
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		return "", err
	}
	return t, nil
}
