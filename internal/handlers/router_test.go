package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/tasky-app/tasky-api/internal/database"
	"github.com/tasky-app/tasky-api/internal/middleware"
	"github.com/tasky-app/tasky-api/internal/models"
	"github.com/tasky-app/tasky-api/internal/repository"
	"github.com/tasky-app/tasky-api/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// stubAssets is a minimal in-memory stand-in for the asset host.
type stubAssets struct {
	uploads int
	deletes int
}

func (s *stubAssets) Upload(_ context.Context, _ []byte, _ string) (*services.UploadedAsset, error) {
	s.uploads++
	return &services.UploadedAsset{
		URL:      "https://assets.example.com/avatar-stub.png",
		PublicID: "avatar-stub",
	}, nil
}

func (s *stubAssets) Delete(_ context.Context, _ string) error {
	s.deletes++
	return nil
}

type testEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	tokens      *services.TokenService
	authService *services.AuthService
	assets      *stubAssets
}

// newTestEnv wires the full router the way cmd/server does, against an
// in-memory database and a stubbed asset host.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Task{}))

	database.SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	tokens := services.NewTokenService("test-secret")
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	assets := &stubAssets{}

	authService := services.NewAuthService(userRepo, tokens)
	taskService := services.NewTaskService(taskRepo)
	userService := services.NewUserService(userRepo, assets)

	authHandler := NewAuthHandler(authService)
	taskHandler := NewTaskHandler(taskService)
	userHandler := NewUserHandler(userService)

	r := gin.New()

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.PATCH("/password", middleware.RequireAuth(tokens), authHandler.ChangePassword)
			auth.POST("/logout", middleware.RequireAuth(tokens), authHandler.Logout)
		}

		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireAuth(tokens))
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
		user.Use(middleware.RequireAuth(tokens))
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

	return &testEnv{
		db:          db,
		router:      r,
		tokens:      tokens,
		authService: authService,
		assets:      assets,
	}
}

// registerUser creates an account directly through the service and returns the
// user with a valid bearer token.
func (env *testEnv) registerUser(t *testing.T, username string) (*models.User, string) {
	t.Helper()

	user, err := env.authService.Register(services.RegisterInput{
		FirstName:    "Test",
		LastName:     "User",
		Username:     username,
		EmailAddress: username + "@example.com",
		Password:     "supersecret",
	})
	require.NoError(t, err)

	token, err := env.tokens.Issue(user.ID)
	require.NoError(t, err)

	return user, token
}
