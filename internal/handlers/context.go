package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/nanotweet/backend/internal/models"
)

// getClaimsFromContext returns the JWT claims set by the auth middleware,
// or nil when the request is unauthenticated.
func getClaimsFromContext(c echo.Context) *models.JwtCustomClaims {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return nil
	}
	return claims
}

// getUserIDFromContext returns the authenticated user's ID, or 0.
func getUserIDFromContext(c echo.Context) uint {
	claims := getClaimsFromContext(c)
	if claims == nil {
		return 0
	}
	return claims.UserID
}
