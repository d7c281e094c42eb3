// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging, panic recovery, metrics, CORS,
// security headers, and identity resolution.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Production-ready CORS and security header posture
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/gorodok/go-market-backend/internal/auth"
	"github.com/gorodok/go-market-backend/internal/config"
	"github.com/gorodok/go-market-backend/internal/http/handlers"
	"github.com/gorodok/go-market-backend/internal/http/middleware"
	"github.com/gorodok/go-market-backend/internal/services"
	"github.com/gorodok/go-market-backend/internal/storage"
)

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), CORS and security
// headers, identity resolution, health and metrics endpoints, static photo
// serving, and then mounts the versioned public API under cfg.APIBasePath.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured request logs
//  4. Recovery: capture panics after logger
//  5. Body size limiter (sized for multipart photo uploads)
//  6. Gzip compression
//  7. Metrics
//  8. CORS and Security headers
//  9. Identity: resolve bearer token to a caller (never rejects)
func RegisterRoutes(r *gin.Engine, db *gorm.DB, blobs *storage.Local, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging
	r.Use(middleware.Logger())

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit; must admit a full photo upload
	r.Use(limitBody(cfg.MaxUploadSize))

	// 6) Response compression
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 7) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 8) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Uploaded ad photos
	r.Static("/uploads", blobs.Dir())

	// Swagger UI (opt-in)
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: services ← db/codec/blobs
	codec := &auth.Codec{
		AccessSecret:  []byte(cfg.Auth.AccessSecret),
		RefreshSecret: []byte(cfg.Auth.RefreshSecret),
		AccessTTL:     cfg.Auth.AccessTTL,
		RefreshTTL:    cfg.Auth.RefreshTTL,
	}
	authSvc := &services.AuthService{DB: db, Codec: codec, BcryptCost: cfg.Auth.BcryptCost}
	adSvc := &services.AdService{DB: db, Blobs: blobs}
	favSvc := &services.FavoriteService{DB: db}
	msgSvc := &services.MessageService{DB: db}
	reviewSvc := &services.ReviewService{DB: db}
	adminSvc := &services.AdminService{DB: db, Blobs: blobs}
	h := handlers.New(authSvc, adSvc, favSvc, msgSvc, reviewSvc, adminSvc, blobs)

	// 9) Bearer token → caller identity for everything below
	r.Use(middleware.Identity(authSvc))

	// Public API
	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		// Auth
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)
		api.POST("/auth/refresh", h.RefreshToken)
		api.POST("/auth/logout", h.Logout)
		api.GET("/auth/me", h.Me)

		// Ads
		api.GET("/ads", h.ListAds)
		api.GET("/ads/:id", h.GetAd)
		api.POST("/ads", h.CreateAd)
		api.PUT("/ads/:id", h.UpdateAd)
		api.DELETE("/ads/:id", h.DeleteAd)
		api.POST("/upload", h.UploadPhoto)

		// Favorites
		api.POST("/ads/:id/favorite", h.ToggleFavorite)
		api.GET("/favorites", h.ListFavorites)

		// Messages
		api.POST("/messages", h.SendMessage)
		api.GET("/chats", h.ListChats)
		api.GET("/chats/:adID/:partnerID", h.GetConversation)
		api.DELETE("/messages/:id", h.DeleteMessage)

		// Reviews
		api.POST("/reviews", h.CreateReview)
		api.GET("/users/:id/reviews", h.ListUserReviews)

		// Moderation
		api.GET("/admin/users", h.AdminListUsers)
		api.PUT("/admin/users/:id/promote", h.AdminPromoteUser)
		api.DELETE("/admin/users/:id", h.AdminDeleteUser)
		api.GET("/admin/ads", h.AdminListAds)
		api.DELETE("/admin/ads/:id", h.AdminDeleteAd)
		api.GET("/admin/reviews", h.AdminListReviews)
		api.DELETE("/admin/reviews/:id", h.AdminDeleteReview)
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
