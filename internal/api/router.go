package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/comunidad/social-api/docs"
	"github.com/comunidad/social-api/internal/api/handler"
	"github.com/comunidad/social-api/internal/api/metrics"
	"github.com/comunidad/social-api/internal/api/middleware"
	"github.com/comunidad/social-api/internal/core/ports"
)

// Deps is everything the HTTP surface needs from the rest of the process.
type Deps struct {
	Auth    ports.AuthService
	Events  ports.EventService
	Posts   ports.PostService
	Cookies handler.SessionCookies
	// Health maps dependency names to readiness probes.
	Health map[string]handler.PingFunc
	Log    zerolog.Logger

	CORSOrigins    []string
	PublicDir      string
	UploadDir      string // served at /uploads; empty when media lives elsewhere
	MaxUploadBytes int64

	// Registerer and Gatherer default to the prometheus globals.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	if d.Registerer == nil {
		d.Registerer = prometheus.DefaultRegisterer
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Log))
	e.Use(echo.WrapMiddleware(cors.New(cors.Options{
		AllowedOrigins:   d.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  metrics.Namespace,
		Registerer: d.Registerer,
		Skipper: func(c echo.Context) bool {
			switch c.Path() {
			case "/metrics", "/health", "/health/ready":
				return true
			}
			return false
		},
	}))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(d.Auth, d.Cookies, d.Log)
	eventHandler := handler.NewEventHandler(d.Events)
	postHandler := handler.NewPostHandler(d.Posts, d.MaxUploadBytes)
	healthHandler := handler.NewHealthHandler(d.Health)
	sessionGate := middleware.Session(d.Cookies, d.Auth, d.Log)

	// --- Auth routes ---
	api := e.Group("/api")
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.POST("/logout", authHandler.Logout)
	api.GET("/perfil", authHandler.Profile, sessionGate)

	// --- Resources: reads are public, writes need a session ---
	api.GET("/events", eventHandler.List)
	api.POST("/events", eventHandler.Create, sessionGate)
	api.GET("/posts", postHandler.List)
	api.POST("/posts", postHandler.Create, sessionGate)

	// --- Health probes and operations (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Static site and uploaded media ---
	if d.UploadDir != "" {
		e.Static("/uploads", d.UploadDir)
	}
	if d.PublicDir != "" {
		e.Static("/", d.PublicDir)
	}
	// Registered after the static site so it wins over its index route.
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/login.html")
	})

	return e
}
