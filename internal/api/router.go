package api

import (
	"database/sql"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/pressroom/newsroom-api/internal/api/handler"
	"github.com/pressroom/newsroom-api/internal/api/middleware"
	"github.com/pressroom/newsroom-api/internal/core/domain"
	"github.com/pressroom/newsroom-api/internal/core/ports"
	"github.com/pressroom/newsroom-api/internal/core/service"
	"github.com/pressroom/newsroom-api/internal/infrastructure/db/postgres"
	redisdb "github.com/pressroom/newsroom-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, rdb *redis.Client, dispatcher ports.NotificationDispatcher, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("newsroom"))

	e.Validator = handler.NewValidator()
	e.Renderer = handler.NewRenderer()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	articleRepo := postgres.NewArticleRepository(db)
	userRepo := postgres.NewUserRepository(db)
	publisherRepo := postgres.NewPublisherRepository(db)
	subscriptionRepo := postgres.NewSubscriptionRepository(db)
	dedup := redisdb.NewNotificationDedup(rdb)

	articleService := service.NewArticleService(articleRepo, userRepo, publisherRepo, subscriptionRepo, dispatcher, dedup, log)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, userRepo, publisherRepo, log)
	publisherService := service.NewPublisherService(publisherRepo, userRepo, log)
	authService := service.NewAuthService(userRepo, jwtSecret, 24*time.Hour)

	articleHandler := handler.NewArticleHandler(articleService)
	editorHandler := handler.NewEditorHandler(articleService)
	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionService)
	publisherHandler := handler.NewPublisherHandler(publisherService)
	authHandler := handler.NewAuthHandler(authService)

	authMiddleware := middleware.Auth(jwtSecret)

	// --- Public pages ---
	e.GET("/", articleHandler.PublicList)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Reader feed (role enforced by the service, not the router) ---
	e.GET("/api/articles/", articleHandler.Feed, authMiddleware)

	// --- Editor review queue ---
	editor := e.Group("/editor", authMiddleware, middleware.RequireRoles(domain.RoleEditor))
	editor.GET("/review/", editorHandler.Review)
	editor.POST("/approve/:article_id/", editorHandler.Approve)

	// --- Journalist authoring ---
	e.POST("/v1/articles", articleHandler.Create, authMiddleware, middleware.RequireRoles(domain.RoleJournalist))

	// --- Reader subscriptions ---
	subs := e.Group("/v1/subscriptions", authMiddleware, middleware.RequireRoles(domain.RoleReader))
	subs.PUT("/publishers/:publisher_id", subscriptionHandler.SubscribePublisher)
	subs.DELETE("/publishers/:publisher_id", subscriptionHandler.UnsubscribePublisher)
	subs.PUT("/journalists/:journalist_id", subscriptionHandler.SubscribeJournalist)
	subs.DELETE("/journalists/:journalist_id", subscriptionHandler.UnsubscribeJournalist)

	// --- Publisher administration ---
	e.GET("/v1/publishers", publisherHandler.List, authMiddleware)
	pubs := e.Group("/v1/publishers", authMiddleware, middleware.RequireRoles(domain.RoleEditor))
	pubs.POST("", publisherHandler.Create)
	pubs.POST("/:publisher_id/staff", publisherHandler.AddStaff)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
