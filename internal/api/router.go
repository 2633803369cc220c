package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/spectrakit/fragmentor/internal/dbpool"
	"github.com/spectrakit/fragmentor/internal/middleware"
	"github.com/spectrakit/fragmentor/internal/ws"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log         *logrus.Logger
	Pool        *dbpool.Pool
	Hub         *ws.Hub
	Molecules   MoleculeRepository
	Fragments   FragmentRepository
	Spectra     SpectrumRepository
	Stats       StatsRepository
	CORSOrigins []string
	Version     string
}

// Router-level limits.
const (
	maxBodySize = 10 << 20 // 10 MB
	rateLimit   = 100      // requests per second per IP
	rateBurst   = 200      // token bucket burst size
)

// setupMiddleware configures all middleware on the Gin engine.
func setupMiddleware(ctx context.Context, r *gin.Engine, deps *RouterDeps) {
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID(deps.Log))
	r.Use(ginLogger(deps.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.MaxBodySize(maxBodySize))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		MaxAge:           1 * time.Hour,
		AllowCredentials: false,
	}))
	r.Use(middleware.NewRateLimiter(ctx, rateLimit, rateBurst).Handler())
	r.Use(middleware.PrometheusMiddleware())

	// Metrics endpoint (outside the API group, like health).
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// registerRoutes sets up all API route handlers on the given router group.
func registerRoutes(ctx context.Context, api *gin.RouterGroup, deps *RouterDeps) {
	log := deps.Log

	health := NewHealthHandler(deps.Pool, deps.Hub, log, deps.Version)
	molecules := NewMoleculeHandler(deps.Molecules, log)
	fragments := NewFragmentHandler(deps.Fragments, log)
	spectra := NewSpectrumHandler(deps.Spectra, log)
	stats := NewStatsHandler(deps.Stats, log)

	api.GET("/health", health.Liveness)
	api.GET("/ready", health.Readiness)

	// Molecules.
	api.GET("/molecules", molecules.List)
	api.POST("/molecules", molecules.Create)
	api.GET("/molecules/:id", molecules.Get)
	api.DELETE("/molecules/:id", molecules.Delete)

	// Fragments.
	api.POST("/molecules/:id/fragments", fragments.Extract)
	api.GET("/molecules/:id/fragments", fragments.ListForMolecule)
	api.GET("/fragments/:id", fragments.Get)
	api.DELETE("/fragments/:id", fragments.Delete)

	// Spectra.
	api.POST("/molecules/:id/spectra", spectra.Create)
	api.GET("/molecules/:id/spectra", spectra.ListForMolecule)
	api.GET("/spectra/:id", spectra.Get)
	api.POST("/spectra/:id/pick", spectra.Pick)
	api.DELETE("/spectra/:id", spectra.Delete)

	// Stats.
	api.GET("/stats", stats.GetStats)

	// WebSocket endpoint.
	api.GET("/ws", wsHandler(ctx, log, deps.Hub, deps.CORSOrigins))
}

// NewRouter creates and configures the Gin engine with all middleware
// and routes.
func NewRouter(ctx context.Context, deps *RouterDeps) http.Handler {
	r := gin.New()
	setupMiddleware(ctx, r, deps)
	registerRoutes(ctx, r.Group("/api/v1"), deps)

	return r
}
