package auth

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/baskettime/config"
	"github.com/DhavalSuthar-24/baskettime/internal/session"
)

// RegisterAuthRoutes mounts /auth. The group must already run session.Resolve.
func RegisterAuthRoutes(router *gin.RouterGroup, db *gorm.DB, sessions *session.Manager, appConfig *config.Config) {
	authService := NewService(NewAuthRepository(db), appConfig.Security.BcryptCost)
	authController := NewAuthController(authService, sessions)

	authPublic := router.Group("/auth")
	{
		authPublic.POST("/register", authController.Register)
		authPublic.POST("/login", authController.Login)
		authPublic.POST("/logout", authController.Logout)
	}

	authProtected := router.Group("/auth")
	authProtected.Use(session.Require())
	{
		authProtected.GET("/me", authController.Me)
	}
}
