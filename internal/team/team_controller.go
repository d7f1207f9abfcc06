package team

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/baskettime/internal/session"
	"github.com/DhavalSuthar-24/baskettime/pkg/utils"
)

// TeamController handles team-related HTTP requests
type TeamController struct {
	repo TeamRepository
	now  func() time.Time
}

// NewTeamController creates a new team controller
func NewTeamController(repo TeamRepository) *TeamController {
	return &TeamController{repo: repo, now: time.Now}
}

// ListTeams godoc
// @Summary List teams
// @Description Returns the caller's teams, oldest first.
// @Tags Teams
// @Produce json
// @Success 200 {object} ListResponse
// @Failure 401 {object} utils.ErrorResponse "Unauthorized"
// @Router /teams [get]
func (tc *TeamController) ListTeams(c *gin.Context) {
	caller := session.MustCaller(c)

	teams, err := tc.repo.ListTeams(c.Request.Context(), caller.UserID)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, ToListResponse(teams))
}

// CreateTeam godoc
// @Summary Create a team
// @Description Creates a team with a generated id. At most 20 players are kept; missing ids and names get placeholders.
// @Tags Teams
// @Accept json
// @Produce json
// @Param team body SaveTeamRequest true "Team"
// @Success 201 {object} Response
// @Failure 400 {object} utils.ErrorResponse "Invalid JSON body"
// @Failure 401 {object} utils.ErrorResponse "Unauthorized"
// @Router /teams [post]
func (tc *TeamController) CreateTeam(c *gin.Context) {
	caller := session.MustCaller(c)

	body, err := utils.ReadJSONObject(c)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	name := CoerceName(body["name"], DefaultName)
	players := CoercePlayers(body["players"])

	team, err := tc.repo.CreateTeam(c.Request.Context(), caller.UserID, NewID(tc.now()), name, players)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, team.ToResponse())
}

// GetTeam godoc
// @Summary Get a team
// @Tags Teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} Response
// @Failure 401 {object} utils.ErrorResponse "Unauthorized"
// @Failure 404 {object} utils.ErrorResponse "Team not found"
// @Router /teams/{id} [get]
func (tc *TeamController) GetTeam(c *gin.Context) {
	caller := session.MustCaller(c)

	team, err := tc.repo.GetTeam(c.Request.Context(), caller.UserID, c.Param("id"))
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, team.ToResponse())
}

// UpdateTeam godoc
// @Summary Update a team
// @Description Only fields present in the body change. A blank name keeps the current one; "players" replaces the whole roster.
// @Tags Teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param team body SaveTeamRequest true "Fields to change"
// @Success 200 {object} Response
// @Failure 400 {object} utils.ErrorResponse "Invalid JSON body"
// @Failure 401 {object} utils.ErrorResponse "Unauthorized"
// @Failure 404 {object} utils.ErrorResponse "Team not found"
// @Router /teams/{id} [put]
func (tc *TeamController) UpdateTeam(c *gin.Context) {
	caller := session.MustCaller(c)

	body, err := utils.ReadJSONObject(c)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	var name *string
	if v, ok := body["name"]; ok {
		if n := CoerceName(v, ""); n != "" {
			name = &n
		}
	}
	var players []TeamPlayer
	if v, ok := body["players"]; ok {
		players = CoercePlayers(v)
	}

	team, err := tc.repo.UpdateTeam(c.Request.Context(), caller.UserID, c.Param("id"), name, players)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, team.ToResponse())
}

// DeleteTeam godoc
// @Summary Delete a team
// @Tags Teams
// @Param id path string true "Team ID"
// @Success 204
// @Failure 401 {object} utils.ErrorResponse "Unauthorized"
// @Failure 404 {object} utils.ErrorResponse "Team not found"
// @Router /teams/{id} [delete]
func (tc *TeamController) DeleteTeam(c *gin.Context) {
	caller := session.MustCaller(c)

	if err := tc.repo.DeleteTeam(c.Request.Context(), caller.UserID, c.Param("id")); err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
