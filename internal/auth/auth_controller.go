package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/baskettime/internal/session"
	"github.com/DhavalSuthar-24/baskettime/internal/user"
	"github.com/DhavalSuthar-24/baskettime/pkg/utils"
)

type AuthController struct {
	service  *Service
	sessions *session.Manager
}

func NewAuthController(service *Service, sessions *session.Manager) *AuthController {
	return &AuthController{service: service, sessions: sessions}
}

// @Summary      Register a new user
// @Description  Creates an account and starts a session for it.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        user  body  RegisterRequest  true  "Credentials"
// @Success      201   {object} UserResponse
// @Failure      400   {object} utils.ErrorResponse "Username or password too short"
// @Failure      409   {object} utils.ErrorResponse "Username already taken"
// @Router       /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.AbortWithError(c, err)
		return
	}

	u, err := ac.service.Register(c.Request.Context(), req)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	if err := ac.sessions.Issue(c, u.ID); err != nil {
		utils.InternalErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusCreated, UserResponse{User: u.ToResponse()})
}

// @Summary      Login user
// @Description  Checks the credentials and replaces any current session.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Credentials"
// @Success      200   {object} UserResponse
// @Failure      400   {object} utils.ErrorResponse "Username and password required"
// @Failure      401   {object} utils.ErrorResponse "Invalid username or password"
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.AbortWithError(c, err)
		return
	}

	u, err := ac.service.Authenticate(c.Request.Context(), req)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	if err := ac.sessions.Issue(c, u.ID); err != nil {
		utils.InternalErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, UserResponse{User: u.ToResponse()})
}

// @Summary      Logout
// @Description  Ends the current session. Always succeeds.
// @Tags         Auth
// @Success      204
// @Router       /auth/logout [post]
func (ac *AuthController) Logout(c *gin.Context) {
	ac.sessions.Clear(c)
	c.Status(http.StatusNoContent)
}

// @Summary      Current user
// @Tags         Auth
// @Produce      json
// @Success      200 {object} UserResponse
// @Failure      401 {object} utils.ErrorResponse "Unauthorized"
// @Router       /auth/me [get]
func (ac *AuthController) Me(c *gin.Context) {
	caller := session.MustCaller(c)
	c.JSON(http.StatusOK, UserResponse{User: user.Response{ID: caller.UserID, Username: caller.Username}})
}
