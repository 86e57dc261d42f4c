package router

import (
	"log"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/nanotweet/backend/internal/handlers"
	"github.com/nanotweet/backend/internal/middleware"
	"github.com/nanotweet/backend/internal/models"
	"github.com/nanotweet/backend/internal/repositories"
	"github.com/nanotweet/backend/internal/session"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, redisClient *redis.Client, jwtSecret string) {
	// AutoMigrate models; the unique indexes here are what back the
	// duplicate-edge invariants.
	err := db.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Tweet{},
		&models.Like{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	tweetRepo := repositories.NewPostgresTweetRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)

	sessions := session.NewStore(redisClient)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, sessions, jwtSecret)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(jwtSecret, sessions))
	log.Println("JWT authentication middleware applied to /api/v1 group.")

	authHandler.RegisterSessionRoutes(api)

	// User profile routes
	userHandler := handlers.NewUserHandler(userRepo, tweetRepo, followRepo)
	userHandler.RegisterProfileRoutes(api)
	log.Println("User profile routes configured.")

	// Follow routes
	followHandler := handlers.NewFollowHandler(followRepo, userRepo)
	followHandler.RegisterFollowRoutes(api)
	log.Println("Follow routes configured.")

	// Tweet routes
	tweetHandler := handlers.NewTweetHandler(tweetRepo, likeRepo)
	tweetHandler.RegisterTweetRoutes(api)
	log.Println("Tweet routes configured.")

	// Like routes
	likeHandler := handlers.NewLikeHandler(likeRepo, tweetRepo)
	likeHandler.RegisterLikeRoutes(api)
	log.Println("Like routes configured.")

	log.Println("All routes configured.")
}
