package router

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/medidash/clinic-api/internal/middleware"
)

// Handler is anything that can hang routes off a group.
type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Config struct {
	RateLimitEnabled bool
	RateLimitRPS     float64
	RateLimitBurst   int
	CORS             middleware.CORSConfig
}

type Router struct {
	engine  *gin.Engine
	session *middleware.SessionMiddleware
	metrics *routerMetrics
}

type routerMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
}

func initRouterMetrics() *routerMetrics {
	return &routerMetrics{
		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name: "medidash_request_duration_seconds",
			Help: "HTTP request latency.",
		}, []string{"method", "path", "status"}),
		requestTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "medidash_requests_total",
			Help: "HTTP requests served.",
		}, []string{"method", "path", "status"}),
	}
}

// NewRouter assembles the engine with the shared middleware stack. authH
// registers both its public (login) and protected (me) routes; health stays
// outside the gate; everything in gated goes behind the session middleware.
func NewRouter(
	session *middleware.SessionMiddleware,
	authH Handler,
	healthH Handler,
	gated []Handler,
	cfg Config,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	r := &Router{
		engine:  engine,
		session: session,
		metrics: initRouterMetrics(),
	}

	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.ErrorHandler(),
		r.metricsMiddleware(),
	)
	engine.Use(middleware.SecurityHeaders())
	engine.Use(middleware.SizeLimit(middleware.DefaultMaxBodySize))
	engine.Use(middleware.CORS(cfg.CORS))

	if cfg.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
			RPS:   cfg.RateLimitRPS,
			Burst: cfg.RateLimitBurst,
		})
		engine.Use(limiter.RateLimit())
	}

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := engine.Group("/api/v1")
	healthH.RegisterRoutes(api)
	authH.RegisterRoutes(api)

	protected := api.Group("")
	protected.Use(session.Authenticate())
	if ph, ok := authH.(interface{ RegisterProtectedRoutes(*gin.RouterGroup) }); ok {
		ph.RegisterProtectedRoutes(protected)
	}
	for _, h := range gated {
		h.RegisterRoutes(protected)
	}

	return r
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		r.metrics.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		r.metrics.requestDuration.WithLabelValues(c.Request.Method, path, status).
			Observe(time.Since(start).Seconds())
	}
}
