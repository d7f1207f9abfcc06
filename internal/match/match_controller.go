package match

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/baskettime/internal/session"
	"github.com/DhavalSuthar-24/baskettime/pkg/utils"
)

// MatchController handles match-related HTTP requests
type MatchController struct {
	repo MatchRepository
}

// NewMatchController creates a new match controller
func NewMatchController(repo MatchRepository) *MatchController {
	return &MatchController{repo: repo}
}

// GetMatches godoc
// @Summary List matches
// @Description Returns the caller's matches, most recent first.
// @Tags Matches
// @Produce json
// @Success 200 {object} ListResponse
// @Failure 401 {object} utils.ErrorResponse "Unauthorized"
// @Router /matches [get]
func (mc *MatchController) GetMatches(c *gin.Context) {
	caller := session.MustCaller(c)

	matches, err := mc.repo.ListMatches(c.Request.Context(), caller.UserID)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, ToListResponse(matches))
}

// SaveMatch godoc
// @Summary Save a match
// @Description Creates the match with the given id or replaces the stored one entirely. Responds 201 in both cases.
// @Tags Matches
// @Accept json
// @Produce json
// @Param match body SaveMatchRequest true "Match"
// @Success 201 {object} Response
// @Failure 400 {object} utils.ErrorResponse "Match id required"
// @Failure 401 {object} utils.ErrorResponse "Unauthorized"
// @Router /matches [post]
func (mc *MatchController) SaveMatch(c *gin.Context) {
	caller := session.MustCaller(c)

	body, err := utils.ReadJSONObject(c)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	in, err := ParseInput(body)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	match, err := mc.repo.SaveMatch(c.Request.Context(), caller.UserID, in)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, match.ToResponse())
}

// GetMatchByID godoc
// @Summary Get a match
// @Tags Matches
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} Response
// @Failure 401 {object} utils.ErrorResponse "Unauthorized"
// @Failure 404 {object} utils.ErrorResponse "Match not found"
// @Router /matches/{id} [get]
func (mc *MatchController) GetMatchByID(c *gin.Context) {
	caller := session.MustCaller(c)

	match, err := mc.repo.GetMatch(c.Request.Context(), caller.UserID, c.Param("id"))
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, match.ToResponse())
}

// DeleteMatch godoc
// @Summary Delete a match
// @Tags Matches
// @Param id path string true "Match ID"
// @Success 204
// @Failure 401 {object} utils.ErrorResponse "Unauthorized"
// @Failure 404 {object} utils.ErrorResponse "Match not found"
// @Router /matches/{id} [delete]
func (mc *MatchController) DeleteMatch(c *gin.Context) {
	caller := session.MustCaller(c)

	if err := mc.repo.DeleteMatch(c.Request.Context(), caller.UserID, c.Param("id")); err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ClearMatches godoc
// @Summary Delete all matches
// @Description Deletes every match owned by the caller.
// @Tags Matches
// @Success 204
// @Failure 401 {object} utils.ErrorResponse "Unauthorized"
// @Router /matches/clear [post]
func (mc *MatchController) ClearMatches(c *gin.Context) {
	caller := session.MustCaller(c)

	if err := mc.repo.ClearMatches(c.Request.Context(), caller.UserID); err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
