package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/herdsourcing/backend/config"
	"github.com/herdsourcing/backend/internal/auth"
	"github.com/herdsourcing/backend/internal/handlers"
	"github.com/herdsourcing/backend/internal/middleware"
	"github.com/herdsourcing/backend/internal/service"
	"github.com/herdsourcing/backend/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Server.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	// Initialize stores. All state is in memory; each store serializes
	// its own access.
	users := store.NewUserDirectory(cfg.Directory.EmailDomain)
	projects := store.NewProjectStore()
	conversations := store.NewConversationStore(users)
	blocks := store.NewBlockList()

	if cfg.Seed.Enabled {
		if err := store.LoadSeed(users, projects, conversations); err != nil {
			logger.Fatal("failed to load seed data", zap.Error(err))
		}
		logger.Info("seed data loaded")
	}

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpiryHours)
	messaging := service.NewMessagingService(conversations, blocks, logger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(users, jwtService)
	userHandler := handlers.NewUserHandler(users, projects)
	projectHandler := handlers.NewProjectHandler(projects, users)
	convHandler := handlers.NewConversationHandler(conversations, blocks, messaging, logger)
	msgHandler := handlers.NewMessageHandler(messaging)
	blockHandler := handlers.NewBlockHandler(blocks)
	activityHandler := handlers.NewActivityHandler(projects, conversations)

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter(cfg.API.RateLimitMessagesPerSec, cfg.API.RateLimitBurst)
	rateLimiter.Cleanup()

	// Setup Gin router
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public routes
	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
	}

	// Protected routes
	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(jwtService))
	{
		// User routes
		api.GET("/me", authHandler.GetMe)
		api.PUT("/me", authHandler.UpdateMe)
		api.GET("/users/:id", userHandler.GetUser)
		api.GET("/users/:id/projects", userHandler.GetUserProjects)

		// Project routes
		api.GET("/projects", projectHandler.GetProjects)
		api.POST("/projects", projectHandler.CreateProject)
		api.GET("/projects/:id", projectHandler.GetProject)
		api.PUT("/projects/:id", projectHandler.UpdateProject)
		api.DELETE("/projects/:id", projectHandler.DeleteProject)
		api.POST("/projects/:id/report", projectHandler.ReportProject)
		api.PUT("/projects/:id/roles/:role_id/assign", projectHandler.AssignRole)

		// Conversation routes
		api.GET("/conversations", convHandler.GetConversations)
		api.POST("/conversations", convHandler.CreateConversation)
		api.GET("/conversations/:id", convHandler.GetConversation)
		api.PUT("/conversations/:id/name", convHandler.Rename)
		api.POST("/conversations/:id/participants", convHandler.AddParticipants)
		api.PUT("/conversations/:id/read", convHandler.MarkRead)
		api.DELETE("/conversations/:id", convHandler.DeleteConversation)

		// Message routes
		api.POST("/messages", middleware.RateLimitMiddleware(rateLimiter), msgHandler.SendMessage)
		api.POST("/messages/join-request", middleware.RateLimitMiddleware(rateLimiter), msgHandler.SendJoinRequest)

		// Block routes
		api.GET("/blocks", blockHandler.GetBlocked)
		api.POST("/blocks/:user_id", blockHandler.BlockUser)
		api.DELETE("/blocks/:user_id", blockHandler.UnblockUser)

		// Activity feed
		api.GET("/activity", activityHandler.GetActivity)
	}

	// Start server
	addr := ":" + cfg.Server.Port
	logger.Info("starting herdsourcing server", zap.String("addr", addr), zap.String("env", cfg.Server.Env))
	if err := router.Run(addr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
