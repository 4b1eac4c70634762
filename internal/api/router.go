package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskforge/task-manager/internal/api/handler"
	"github.com/taskforge/task-manager/internal/api/middleware"
	"github.com/taskforge/task-manager/internal/core/domain"
	"github.com/taskforge/task-manager/internal/core/service"
	"github.com/taskforge/task-manager/internal/infrastructure/config"
	mongodb "github.com/taskforge/task-manager/internal/infrastructure/db/mongo"
	redisdb "github.com/taskforge/task-manager/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("taskmanager"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)
	throttle := redisdb.NewLoginThrottle(rdb, cfg.Lockout.MaxAttempts, cfg.Lockout.Window)

	authService := service.NewAuthService(userRepo, throttle, cfg.JWTSecret, cfg.TokenTTL, log)
	userService := service.NewUserService(userRepo, taskRepo, log)
	taskService := service.NewTaskService(taskRepo, userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	taskHandler := handler.NewTaskHandler(taskService)

	authMiddleware := middleware.Auth(cfg.JWTSecret)
	anyRole := middleware.RBAC(domain.RoleUser, domain.RoleAdmin, domain.RoleModerator)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.PATCH("/change-password", authHandler.ChangePassword, authMiddleware, anyRole)

	// --- User routes (ownership checks live in the service layer) ---
	users := e.Group("/api/users", authMiddleware, anyRole)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.GET("/:id", userHandler.Get)
	users.GET("/email/:email", userHandler.GetByEmail)
	users.PATCH("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Task routes ---
	tasks := e.Group("/api/tasks", authMiddleware, anyRole)
	tasks.GET("", taskHandler.List)
	tasks.POST("", taskHandler.Create)
	tasks.GET("/:id", taskHandler.Get)
	tasks.GET("/user/:userId", taskHandler.ListByUser)
	tasks.PATCH("/:id", taskHandler.Update)
	tasks.DELETE("/:id", taskHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
