package auth

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/bmizerany/assert"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/DhavalSuthar-24/baskettime/internal/session"
	"github.com/DhavalSuthar-24/baskettime/internal/testutil"
	"github.com/DhavalSuthar-24/baskettime/internal/user"
)

func setupRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	db := testutil.NewDB(t, &user.User{})
	sessions := session.NewManager(db, session.Options{Secret: "test-secret", Lifetime: time.Hour})

	controller := NewAuthController(NewService(NewAuthRepository(db), bcrypt.MinCost), sessions)
	r := gin.New()
	r.Use(sessions.Resolve())
	r.POST("/api/auth/register", controller.Register)
	r.POST("/api/auth/login", controller.Login)
	r.POST("/api/auth/logout", controller.Logout)
	r.GET("/api/auth/me", session.Require(), controller.Me)
	return r
}

func TestRegisterStartsSession(t *testing.T) {
	r := setupRouter(t)

	w := testutil.Do(r, testutil.MakeRequest(http.MethodPost, "/api/auth/register",
		map[string]string{"username": "ann", "password": "secret1"}))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp UserResponse
	testutil.AssertJSON(t, w, &resp)
	assert.Equal(t, "ann", resp.User.Username)

	cookie := testutil.Cookie(w, "session")
	if cookie == nil {
		t.Fatal("register should set the session cookie")
	}

	w = testutil.Do(r, testutil.MakeRequest(http.MethodGet, "/api/auth/me", nil, cookie))
	testutil.AssertStatus(t, w, http.StatusOK)
	var me UserResponse
	testutil.AssertJSON(t, w, &me)
	assert.Equal(t, resp.User, me.User)
}

func TestRegisterErrors(t *testing.T) {
	r := setupRouter(t)
	testutil.Do(r, testutil.MakeRequest(http.MethodPost, "/api/auth/register",
		map[string]string{"username": "ann", "password": "secret1"}))

	tests := []struct {
		name   string
		body   interface{}
		status int
		want   string
	}{
		{"duplicate", map[string]string{"username": "ann", "password": "other12"}, http.StatusConflict, "Username already taken"},
		{"short username", map[string]string{"username": "a", "password": "secret1"}, http.StatusBadRequest, "Username required (min 2 characters)"},
		{"short password", map[string]string{"username": "bo", "password": "123"}, http.StatusBadRequest, "Password required (min 6 characters)"},
		{"empty body", "", http.StatusBadRequest, "Username required (min 2 characters)"},
		{"malformed", "{not json", http.StatusBadRequest, "Invalid JSON body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testutil.Do(r, testutil.MakeRequest(http.MethodPost, "/api/auth/register", tt.body))
			testutil.AssertStatus(t, w, tt.status)
			var resp map[string]string
			testutil.AssertJSON(t, w, &resp)
			assert.Equal(t, tt.want, resp["error"])
		})
	}
}

func TestLogin(t *testing.T) {
	r := setupRouter(t)
	testutil.Do(r, testutil.MakeRequest(http.MethodPost, "/api/auth/register",
		map[string]string{"username": "ann", "password": "secret1"}))

	w := testutil.Do(r, testutil.MakeRequest(http.MethodPost, "/api/auth/login",
		map[string]string{"username": "ann", "password": "secret1"}))
	testutil.AssertStatus(t, w, http.StatusOK)
	assert.NotEqual(t, (*http.Cookie)(nil), testutil.Cookie(w, "session"))

	w = testutil.Do(r, testutil.MakeRequest(http.MethodPost, "/api/auth/login",
		map[string]string{"username": "ann", "password": "wrong12"}))
	testutil.AssertStatus(t, w, http.StatusUnauthorized)
	assert.Equal(t, `{"error":"Invalid username or password"}`, w.Body.String())

	w = testutil.Do(r, testutil.MakeRequest(http.MethodPost, "/api/auth/login",
		map[string]string{"username": "ann"}))
	testutil.AssertStatus(t, w, http.StatusBadRequest)
	assert.Equal(t, `{"error":"Username and password required"}`, w.Body.String())
}

func TestLogoutAndMe(t *testing.T) {
	r := setupRouter(t)

	w := testutil.Do(r, testutil.MakeRequest(http.MethodGet, "/api/auth/me", nil))
	testutil.AssertStatus(t, w, http.StatusUnauthorized)
	assert.Equal(t, `{"error":"Unauthorized"}`, w.Body.String())

	w = testutil.Do(r, testutil.MakeRequest(http.MethodPost, "/api/auth/logout", nil))
	testutil.AssertStatus(t, w, http.StatusNoContent)
	assert.Equal(t, "", w.Body.String())
}

func TestLongPasswordRoundTrip(t *testing.T) {
	r := setupRouter(t)
	password := strings.Repeat("x", 80)

	w := testutil.Do(r, testutil.MakeRequest(http.MethodPost, "/api/auth/register",
		map[string]string{"username": "ann", "password": password}))
	testutil.AssertStatus(t, w, http.StatusCreated)

	w = testutil.Do(r, testutil.MakeRequest(http.MethodPost, "/api/auth/login",
		map[string]string{"username": "ann", "password": password}))
	testutil.AssertStatus(t, w, http.StatusOK)

	w = testutil.Do(r, testutil.MakeRequest(http.MethodPost, "/api/auth/login",
		map[string]string{"username": "ann", "password": strings.Repeat("x", 81)}))
	testutil.AssertStatus(t, w, http.StatusUnauthorized)
}
