package match

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/baskettime/internal/session"
)

// MatchRoutes sets up all match routes. The group must already run session.Resolve.
func MatchRoutes(router *gin.RouterGroup, db *gorm.DB) {
	matchController := NewMatchController(NewGormMatchRepository(db))

	matches := router.Group("/matches")
	matches.Use(session.Require())
	{
		matches.GET("", matchController.GetMatches)
		matches.POST("", matchController.SaveMatch)
		matches.POST("/clear", matchController.ClearMatches)
		matches.GET("/:id", matchController.GetMatchByID)
		matches.DELETE("/:id", matchController.DeleteMatch)
	}
}
