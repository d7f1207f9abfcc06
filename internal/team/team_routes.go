package team

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/baskettime/internal/session"
)

// TeamRoutes sets up all team routes. The group must already run session.Resolve.
func TeamRoutes(router *gin.RouterGroup, db *gorm.DB) {
	teamController := NewTeamController(NewTeamRepository(db))

	teams := router.Group("/teams")
	teams.Use(session.Require())
	{
		teams.GET("", teamController.ListTeams)
		teams.POST("", teamController.CreateTeam)
		teams.GET("/:id", teamController.GetTeam)
		teams.PUT("/:id", teamController.UpdateTeam)
		teams.DELETE("/:id", teamController.DeleteTeam)
	}
}
