package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/skillshare/skillshare-api/internal/api/handler"
	"github.com/skillshare/skillshare-api/internal/api/middleware"
	"github.com/skillshare/skillshare-api/internal/core/domain"
	"github.com/skillshare/skillshare-api/internal/core/ports"
	"github.com/skillshare/skillshare-api/internal/core/service"
	mongodb "github.com/skillshare/skillshare-api/internal/infrastructure/db/mongo"
	redisdb "github.com/skillshare/skillshare-api/internal/infrastructure/db/redis"
	"github.com/skillshare/skillshare-api/internal/infrastructure/http/handlers"
)

// Options carries the external dependencies the router needs.
type Options struct {
	JWTSecret string
	TokenTTL  time.Duration
	Activity  ports.ActivityRecorder
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("skillshare"))

	// --- Dependencies ---
	authRepo := mongodb.NewAuthRepository(db)
	skillRepo := mongodb.NewSkillRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)
	guard := redisdb.NewSubmitGuard(rdb)

	authService := service.NewAuthService(authRepo, opts.Activity, opts.JWTSecret, opts.TokenTTL)
	skillService := service.NewSkillService(skillRepo, guard, opts.Activity, opts.Logger)
	taskService := service.NewTaskService(taskRepo, guard, opts.Activity, opts.Logger)

	authHandler := handler.NewAuthHandler(authService)
	skillHandler := handler.NewSkillHandler(skillService)
	taskHandler := handler.NewTaskHandler(taskService)

	authMW := middleware.Auth(opts.JWTSecret)
	anyRole := middleware.RBAC(domain.RoleUser, domain.RoleProvider)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Skill routes ---
	skill := e.Group("/skill", authMW, anyRole)
	skill.GET("/get", skillHandler.List)
	skill.POST("/create", skillHandler.Create)
	skill.PUT("/update", skillHandler.Update)
	skill.DELETE("/delete/:id", skillHandler.Delete)
	skill.PATCH("/postoffer/:id", skillHandler.PostOffer)

	// --- Task routes ---
	task := e.Group("/task", authMW, anyRole)
	task.GET("/get", taskHandler.List)
	task.POST("/create", taskHandler.Create, middleware.RBAC(domain.RoleUser))
	task.PUT("/update", taskHandler.Update)
	task.DELETE("/delete/:id", taskHandler.Delete)
	// PATCH is canonical; PUT is kept for clients built against the older
	// endpoint shape.
	task.PATCH("/mark_task_complete/:id", taskHandler.ToggleComplete)
	task.PUT("/mark_task_complete/:id", taskHandler.ToggleComplete)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	return e
}
