package bootstrap

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	httpapi "github.com/Lightzzz011/project-showcase-api/internal/api/http"
	"github.com/Lightzzz011/project-showcase-api/internal/api/http/middleware"
	"github.com/Lightzzz011/project-showcase-api/internal/api/http/routes"
	"github.com/Lightzzz011/project-showcase-api/internal/projects/catalog"
	"github.com/Lightzzz011/project-showcase-api/internal/stats"
	"github.com/Lightzzz011/project-showcase-api/internal/web"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Development bool

	Catalog *catalog.Store
	Stats   *stats.Service
	Log     zerolog.Logger

	StaticDir      string
	AllowedOrigins []string
	TrustedProxies []string
	RatePerMinute  int
	RateBurst      int
	Metrics        bool
}

// BuildRouter assembles the HTTP surface. Static pages sit in front of the
// rate limiter; everything under /api goes through it, unmatched paths included.
func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	// Client IPs key the rate limiter, so X-Forwarded-For is honoured only
	// from configured proxies.
	if err := r.SetTrustedProxies(dep.TrustedProxies); err != nil {
		dep.Log.Warn().Err(err).Strs("trusted_proxies", dep.TrustedProxies).Msg("invalid trusted proxies, trusting none")
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(dep.Log))
	r.Use(middleware.Recovery(dep.Log))
	if dep.Metrics {
		r.Use(middleware.Prometheus())
	}
	r.Use(middleware.Secure(middleware.SecureOptions(dep.Development)))
	r.Use(middleware.CORS(dep.AllowedOrigins))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Catalog)
	healthHandler.RegisterRoutes(r)

	if dep.Metrics {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	site := web.NewHandler(dep.StaticDir)
	site.Register(r)

	var limiter *middleware.RateLimiter
	api := r.Group("/api")
	if dep.RatePerMinute > 0 {
		limiter = middleware.NewRateLimiter(dep.RatePerMinute, dep.RateBurst)
		api.Use(limiter.Middleware())
	}
	routes.RegisterV1(api, routes.V1Deps{
		Catalog: dep.Catalog,
		Stats:   dep.Stats,
		Log:     dep.Log,
	})

	if limiter != nil {
		r.NoRoute(limiter.PathPrefix(web.APIPrefix), site.NoRoute)
	} else {
		r.NoRoute(site.NoRoute)
	}

	return r
}
