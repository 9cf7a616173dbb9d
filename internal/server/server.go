// Package server assembles the gin engine for the blog service. main.go and
// the integration harness both build the engine through New so tests exercise
// the exact middleware chain and routes that production runs.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/blogd/blogd/handlers"
	"github.com/blogd/blogd/internal/config"
	"github.com/blogd/blogd/internal/post/handler"
	"github.com/blogd/blogd/internal/post/service"
	"github.com/blogd/blogd/pkg/metrics"
	"github.com/blogd/blogd/pkg/middleware"
)

// Options carries the collaborators the engine needs beyond configuration.
type Options struct {
	Service service.Service

	// Redis backs the distributed rate limiter when cfg.RateLimit.UseRedis
	// is set; nil falls back to the in-memory limiter.
	Redis *redis.Client

	// Ping reports store reachability for the readiness endpoint.
	Ping func(ctx context.Context) error
}

var startTime = time.Now()

// New builds the engine: CORS, request logging, recovery, optional rate
// limiting, post routes, swagger, health/readiness and metrics.
func New(cfg *config.Config, opts Options) *gin.Engine {
	r := gin.New()

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	})

	r.Use(middleware.RequestLogger(), gin.Recovery())

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && opts.Redis != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(opts.Redis, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness: 200 only when the document store answers a ping
	r.GET("/ready", func(c *gin.Context) {
		deps := map[string]bool{"storage": true}
		if opts.Ping != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			deps["storage"] = opts.Ping(ctx) == nil
		}
		if !deps["storage"] {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": fmt.Sprintf("%s", time.Since(startTime))})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": fmt.Sprintf("%s", time.Since(startTime))})
	})

	handler.RegisterPostRoutes(r, opts.Service)
	handlers.RegisterSwagger(r)

	// a fresh registry per engine keeps repeated construction (test
	// fixtures) from tripping duplicate-registration panics
	reg := prometheus.NewRegistry()
	metrics.RegisterCollectors(reg)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	return r
}
