// Package rest exposes the JobMatch API over HTTP using gin.
package rest

import (
	"strings"

	"github.com/dmitrijs2005/jobmatch/internal/common"
	"github.com/dmitrijs2005/jobmatch/internal/logging"
	"github.com/dmitrijs2005/jobmatch/internal/server/config"
	"github.com/gin-gonic/gin"
)

// PublicPrefixes are reachable without a bearer token.
var PublicPrefixes = []string{"/api/auth", "/api/actuator", "/api/health", "/metrics"}

// AllowedOrigins lists the CORS origin patterns for a given frontend.
func AllowedOrigins(frontendURL string) []string {
	origins := []string{
		"https://*.vercel.app",
		"https://ai-resume-job-matcher-*.vercel.app",
		"http://localhost:*",
	}
	if frontendURL = strings.TrimSuffix(frontendURL, "/"); frontendURL != "" {
		origins = append([]string{frontendURL}, origins...)
	}
	return origins
}

func NewRouter(cfg *config.Config, log logging.Logger, svc Services, metrics *Metrics) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		Recovery(log),
		SecurityHeaders(),
		RequestID(),
		RequestLogger(log),
		metrics.Middleware(),
		CORS(AllowedOrigins(cfg.FrontendURL)),
		Authenticate(svc.Users, PublicPrefixes...),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")

	api.GET("/actuator/health", health)
	api.HEAD("/actuator/health", health)
	api.GET("/health", health)
	api.HEAD("/health", health)

	ah := &authHandler{users: svc.Users, log: log}
	authGroup := api.Group("/auth")
	authGroup.POST("/register", ah.register)
	authGroup.POST("/login", ah.login)
	authGroup.POST("/resume-login", ah.resumeLogin)
	authGroup.POST("/logout", ah.logout)
	authGroup.GET("/me", ah.me)

	api.GET("/users/profile", ah.profile)
	api.PUT("/users/profile", ah.updateProfile)

	jh := &jobHandler{jobs: svc.Jobs, log: log}
	jobs := api.Group("/jobs")
	jobs.GET("", jh.list)
	jobs.POST("/search", jh.search)
	jobs.GET("/:id", jh.get)
	recruiterOnly := RequireRole(common.RoleRecruiter)
	jobs.POST("", recruiterOnly, jh.create)
	jobs.PUT("/:id", recruiterOnly, jh.update)
	jobs.DELETE("/:id", recruiterOnly, jh.delete)

	aph := &applicationHandler{apps: svc.Applications, log: log}
	apps := api.Group("/applications")
	apps.GET("", aph.list)
	apps.POST("", aph.create)
	apps.GET("/:id", aph.get)
	apps.PUT("/:id", aph.update)

	rh := &resumeHandler{resumes: svc.Resumes, maxSize: cfg.MaxUploadSize, log: log}
	resumes := api.Group("/resumes")
	resumes.GET("", rh.list)
	resumes.POST("/upload", rh.upload)
	resumes.GET("/:id", rh.get)
	resumes.DELETE("/:id", rh.delete)

	return r
}
