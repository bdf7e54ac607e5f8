package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/examhub/internal/common"
	"github.com/dmitrijs2005/examhub/internal/logging"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options tune the router. Zero RateLimit disables throttling.
type Options struct {
	GinMode        string
	AllowedOrigins []string
	RateLimit      float64
	RateBurst      int
}

type handler struct {
	logger  logging.Logger
	users   UserService
	catalog CatalogService
	exams   ExamService
	uploads UploadService
	reports ReportService
}

func setGinMode(mode string) {
	switch strings.ToLower(mode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", common.InitDataHeaderName},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// NewRouter wires middleware and routes.
func NewRouter(l logging.Logger, d Deps, o Options) *gin.Engine {
	setGinMode(o.GinMode)

	h := &handler{
		logger:  l.With("module", "http_api"),
		users:   d.Users,
		catalog: d.Catalog,
		exams:   d.Exams,
		uploads: d.Uploads,
		reports: d.Reports,
	}

	r := gin.New()
	r.Use(recovery(h.logger), requestLogger(h.logger), metricsMiddleware(), cors.New(corsConfig(o.AllowedOrigins)))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ExamHub API - Telegram Mini App for exam sharing"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authed := api.Group("")
	authed.Use(telegramAuth(d.Validator))
	if o.RateLimit > 0 {
		authed.Use(rateLimit(newLimiterStore(o.RateLimit, o.RateBurst)))
	}
	authed.POST("/auth/verify", h.verify)

	user := authed.Group("")
	user.Use(h.currentUser)

	user.GET("/user/profile", h.ownProfile)
	user.GET("/user/profile/:id", h.userProfile)
	user.PUT("/user/profile", h.updateProfile)
	user.POST("/follow/:id", h.follow)
	user.DELETE("/follow/:id", h.unfollow)

	user.GET("/universities", h.listUniversities)
	user.POST("/universities", h.createUniversity)
	user.GET("/courses", h.listCourses)
	user.POST("/courses", h.createCourse)

	user.GET("/exams", h.listExams)
	user.GET("/exams/:id", h.getExam)
	user.POST("/exams", h.createExam)
	user.POST("/exams/:id/like", h.like)
	user.DELETE("/exams/:id/like", h.unlike)

	user.POST("/upload/url", h.uploadURL)
	user.POST("/upload/confirm", h.confirmUpload)

	user.POST("/reports", h.createReport)

	r.NoRoute(func(c *gin.Context) {
		abortWith(c, http.StatusNotFound, "Not found")
	})

	return r
}
