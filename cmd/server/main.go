package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/tasky-app/tasky-api/internal/config"
	"github.com/tasky-app/tasky-api/internal/database"
	"github.com/tasky-app/tasky-api/internal/handlers"
	"github.com/tasky-app/tasky-api/internal/logger"
	"github.com/tasky-app/tasky-api/internal/middleware"
	"github.com/tasky-app/tasky-api/internal/repository"
	"github.com/tasky-app/tasky-api/internal/services"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	if err := logger.Init(!cfg.IsProduction()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize services
	tokenService := services.NewTokenService(cfg.JWTSecret)
	userRepo := repository.NewUserRepository(database.GetDB())
	taskRepo := repository.NewTaskRepository(database.GetDB())
	assetClient := services.NewAssetClient(cfg.AssetHostURL, cfg.AssetHostKey)

	authService := services.NewAuthService(userRepo, tokenService)
	taskService := services.NewTaskService(taskRepo)
	userService := services.NewUserService(userRepo, assetClient)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)
	userHandler := handlers.NewUserHandler(userService)

	// Initialize Gin router
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.ClientURL},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Tasky API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.PATCH("/password", middleware.RequireAuth(tokenService), authHandler.ChangePassword)
			auth.POST("/logout", middleware.RequireAuth(tokenService), authHandler.Logout)
		}

		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireAuth(tokenService))
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.PATCH("/complete/:id", taskHandler.CompleteTask)
			tasks.PATCH("/incomplete/:id", taskHandler.IncompleteTask)
			tasks.PATCH("/restore/:id", taskHandler.RestoreTask)
			tasks.DELETE("/purge/:id", taskHandler.PurgeTask)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PATCH("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		user := api.Group("/user")
		user.Use(middleware.RequireAuth(tokenService))
		{
			user.GET("", userHandler.GetUser)
			user.PATCH("", userHandler.UpdateProfile)
			user.POST("/avatar", userHandler.UploadAvatar)
			user.DELETE("/avatar", userHandler.RemoveAvatar)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Welcome to the tasky api"})
	})

	// Start server
	addr := ":" + cfg.Port
	logger.Info("Server starting", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
