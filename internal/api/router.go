package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/geoyouth/league-api/internal/api/handler"
	"github.com/geoyouth/league-api/internal/api/middleware"
	"github.com/geoyouth/league-api/internal/core/domain"
	"github.com/geoyouth/league-api/internal/core/service"
	"github.com/geoyouth/league-api/internal/infrastructure/db/postgres"
)

// crudHandler is the route surface every league resource exposes.
type crudHandler interface {
	List(echo.Context) error
	Get(echo.Context) error
	Create(echo.Context) error
	Update(echo.Context) error
	Delete(echo.Context) error
}

// NewRouter builds the Echo instance with all routes registered. Reads are
// public; every mutation sits behind the bearer-token gate plus the admin
// role check.
func NewRouter(db *sql.DB, tokens *service.TokenIssuer, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("league"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Auth ---
	authRepo := postgres.NewAuthRepository(db)
	authService := service.NewAuthService(authRepo, tokens)
	authHandler := handler.NewAuthHandler(authService)

	adminOnly := []echo.MiddlewareFunc{
		middleware.Auth(tokens),
		middleware.RBAC(domain.RoleAdmin),
	}

	api := e.Group("/api")

	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// --- Resource routes ---
	mountResource(api, "/clubs", handler.NewClubHandler(postgres.NewClubRepository(db)), adminOnly)
	mountResource(api, "/teams", handler.NewTeamHandler(postgres.NewTeamRepository(db)), adminOnly)
	mountResource(api, "/players", handler.NewPlayerHandler(postgres.NewPlayerRepository(db)), adminOnly)
	mountResource(api, "/coaches", handler.NewCoachHandler(postgres.NewCoachRepository(db)), adminOnly)
	mountResource(api, "/matches", handler.NewMatchHandler(postgres.NewMatchRepository(db)), adminOnly)
	mountResource(api, "/tournaments", handler.NewTournamentHandler(postgres.NewTournamentRepository(db)), adminOnly)
	mountResource(api, "/news", handler.NewNewsHandler(postgres.NewNewsRepository(db)), adminOnly)

	// --- Health probes and operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

// mountResource registers the uniform CRUD routes for one resource:
// public reads, admin-gated mutations.
func mountResource(api *echo.Group, prefix string, h crudHandler, adminOnly []echo.MiddlewareFunc) {
	g := api.Group(prefix)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create, adminOnly...)
	g.PUT("/:id", h.Update, adminOnly...)
	g.DELETE("/:id", h.Delete, adminOnly...)
}
