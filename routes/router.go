package routes

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/baskettime/config"
	"github.com/DhavalSuthar-24/baskettime/internal/auth"
	"github.com/DhavalSuthar-24/baskettime/internal/match"
	"github.com/DhavalSuthar-24/baskettime/internal/middleware"
	"github.com/DhavalSuthar-24/baskettime/internal/session"
	"github.com/DhavalSuthar-24/baskettime/internal/team"
	"github.com/DhavalSuthar-24/baskettime/pkg/token"
	"github.com/DhavalSuthar-24/baskettime/pkg/utils"
)

// SetupRoutes builds the HTTP handler: the JSON API under /api, swagger, and the static frontend.
// revoker may be nil when no revocation store is configured.
func SetupRoutes(db *gorm.DB, cfg *config.Config, revoker token.Revoker) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.App.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	sessions := session.NewManager(db, session.Options{
		Secret:     cfg.Session.Secret,
		Lifetime:   time.Duration(cfg.Session.LifetimeDays) * 24 * time.Hour,
		CookieName: cfg.Session.CookieName,
		Secure:     cfg.Session.CookieSecure,
		Revoker:    revoker,
	})

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	api.Use(sessions.Resolve())
	auth.RegisterAuthRoutes(api, db, sessions, cfg)
	team.TeamRoutes(api, db)
	match.MatchRoutes(api, db)

	staticDir, dbPath := cfg.App.StaticDir, cfg.DB.SQLitePath
	r.GET("/", func(c *gin.Context) {
		c.File(filepath.Join(staticDir, "index.html"))
	})
	r.NoRoute(func(c *gin.Context) {
		if isAPIPath(c.Request.URL.Path) {
			utils.ErrorJSON(c, http.StatusNotFound, "Not found")
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.String(http.StatusNotFound, "Not found")
			return
		}
		serveStatic(c, staticDir, dbPath)
	})

	return r
}

func isAPIPath(p string) bool {
	return p == "/api" || strings.HasPrefix(p, "/api/")
}

// serveStatic serves a file below dir. Cleaning the rooted path keeps requests inside dir.
// Dotfiles and the SQLite database are never served, even when they live in dir.
func serveStatic(c *gin.Context, dir, dbPath string) {
	clean := path.Clean("/" + c.Request.URL.Path)
	if hasDotSegment(clean) {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	name := filepath.Join(dir, filepath.FromSlash(clean))
	if dbPath != "" && samePath(name, dbPath) {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	info, err := os.Stat(name)
	if err != nil || info.IsDir() {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	c.File(name)
}

func hasDotSegment(p string) bool {
	for _, seg := range strings.Split(p, "/") {
		if strings.HasPrefix(seg, ".") {
			return true
		}
	}
	return false
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return false
	}
	if absA == absB {
		return true
	}
	infoA, errA := os.Stat(absA)
	infoB, errB := os.Stat(absB)
	return errA == nil && errB == nil && os.SameFile(infoA, infoB)
}
