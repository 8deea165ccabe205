package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/credora/creator-platform/internal/api/handler"
	"github.com/credora/creator-platform/internal/api/middleware"
	"github.com/credora/creator-platform/internal/core/domain"
	"github.com/credora/creator-platform/internal/core/ports"
	"github.com/credora/creator-platform/internal/infrastructure/config"
)

// Dependencies carries everything the router needs. Mongo and Redis may be
// nil in demo mode; the readiness probe skips absent backends.
type Dependencies struct {
	Config       *config.Config
	Logger       zerolog.Logger
	Mongo        *mongo.Database
	Redis        *redis.Client
	Sessions     ports.SessionStore
	Auth         ports.AuthService
	Creators     ports.CreatorService
	Saved        ports.SavedListService
	Campaigns    ports.CampaignService
	Applications ports.ApplicationService
	Ratings      ports.RatingService
	Dispatcher   handler.RatingDispatcher
}

// NewRouter builds and returns the Echo instance with all routes registered.
// Every protected route group declares its own allow-list; admin access is
// granted only where RoleAdmin is listed, never implied.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// Request metrics get their own registry per router instance; the exposed
	// endpoint gathers it together with the default registry carrying the
	// application metrics.
	promRegistry := prometheus.NewRegistry()
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "creator_platform",
		Registerer: promRegistry,
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	creatorHandler := handler.NewCreatorHandler(deps.Creators)
	savedHandler := handler.NewSavedHandler(deps.Saved)
	campaignHandler := handler.NewCampaignHandler(deps.Campaigns)
	applicationHandler := handler.NewApplicationHandler(deps.Applications)
	adminHandler := handler.NewAdminHandler(deps.Applications, deps.Ratings, deps.Dispatcher)

	authRequired := middleware.Auth(deps.Config.JWTSecret, deps.Sessions)
	authOptional := middleware.OptionalAuth(deps.Config.JWTSecret, deps.Sessions)

	// --- Landing (optionally signs authenticated visitors out) ---
	e.GET("/",
		func(c echo.Context) error {
			return c.JSON(http.StatusOK, map[string]string{"service": "creator-platform", "status": "ok"})
		},
		middleware.HomeLogout(deps.Config.Session.LogoutOnHomeVisit, deps.Config.JWTSecret, deps.Auth, deps.Logger),
	)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/logout", authHandler.Logout, authRequired)
	e.GET("/auth/session", authHandler.Session, authRequired)
	e.POST("/auth/refresh", authHandler.Refresh, authRequired)

	// --- Public discovery ---
	// Creator routes take an optional bearer identity: anonymous callers see
	// approved profiles only, while an authenticated admin also sees pending
	// and rejected ones.
	e.GET("/v1/creators", creatorHandler.List, authOptional)
	e.GET("/v1/creators/:id", creatorHandler.Get, authOptional)
	e.GET("/v1/campaigns", campaignHandler.List)
	e.POST("/v1/applications", applicationHandler.Submit)

	// --- Brand area: brand or admin ---
	brand := e.Group("", authRequired, middleware.RBAC(domain.RoleBrand, domain.RoleAdmin))
	brand.POST("/v1/creators/compare", creatorHandler.Compare)
	brand.GET("/v1/saved", savedHandler.List)
	brand.PUT("/v1/saved/:creator_id", savedHandler.Save)
	brand.DELETE("/v1/saved/:creator_id", savedHandler.Unsave)

	// --- Influencer area: influencer or admin ---
	influencer := e.Group("", authRequired, middleware.RBAC(domain.RoleInfluencer, domain.RoleAdmin))
	influencer.POST("/v1/campaigns", campaignHandler.Create)

	// --- Admin area: admin only ---
	admin := e.Group("/v1/admin", authRequired, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/applications", adminHandler.ListApplications)
	admin.POST("/applications/:id/review", adminHandler.ReviewApplication)
	admin.GET("/rating/weights", adminHandler.GetWeights)
	admin.PUT("/rating/weights", adminHandler.SetWeights)
	admin.POST("/creators/:id/rating", adminHandler.AssignRating)
	admin.GET("/stats", adminHandler.Stats)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{promRegistry, prometheus.DefaultGatherer},
	}))
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
