package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/bmizerany/assert"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/baskettime/internal/testutil"
	"github.com/DhavalSuthar-24/baskettime/internal/user"
	"github.com/DhavalSuthar-24/baskettime/pkg/token"
)

const cookieName = "session"

func init() {
	gin.SetMode(gin.TestMode)
}

func setup(t *testing.T, revoker token.Revoker) (*gin.Engine, *Manager, *gorm.DB) {
	db := testutil.NewDB(t, &user.User{})
	m := NewManager(db, Options{
		Secret:     "test-secret",
		Lifetime:   time.Hour,
		CookieName: cookieName,
		Revoker:    revoker,
	})

	r := gin.New()
	r.Use(m.Resolve())
	r.POST("/login/:id", func(c *gin.Context) {
		var u user.User
		db.Where("username = ?", c.Param("id")).Take(&u)
		if err := m.Issue(c, u.ID); err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusNoContent)
	})
	r.POST("/logout", func(c *gin.Context) {
		m.Clear(c)
		c.Status(http.StatusNoContent)
	})
	r.GET("/whoami", Require(), func(c *gin.Context) {
		caller := MustCaller(c)
		c.JSON(http.StatusOK, gin.H{"id": caller.UserID, "username": caller.Username})
	})
	return r, m, db
}

func login(t *testing.T, r *gin.Engine, db *gorm.DB, username string) *http.Cookie {
	t.Helper()
	db.Create(&user.User{Username: username, PasswordHash: "x"})
	w := testutil.Do(r, testutil.MakeRequest(http.MethodPost, "/login/"+username, nil))
	testutil.AssertStatus(t, w, http.StatusNoContent)
	cookie := testutil.Cookie(w, cookieName)
	if cookie == nil {
		t.Fatal("expected a session cookie")
	}
	return cookie
}

func TestIssueSetsHardenedCookie(t *testing.T) {
	r, _, db := setup(t, nil)
	cookie := login(t, r, db, "ann")

	assert.T(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, 3600, cookie.MaxAge)
	assert.Equal(t, "/", cookie.Path)
}

func TestResolveRestoresCaller(t *testing.T) {
	r, _, db := setup(t, nil)
	cookie := login(t, r, db, "ann")

	w := testutil.Do(r, testutil.MakeRequest(http.MethodGet, "/whoami", nil, cookie))
	testutil.AssertStatus(t, w, http.StatusOK)

	var got struct {
		ID       uint   `json:"id"`
		Username string `json:"username"`
	}
	testutil.AssertJSON(t, w, &got)
	assert.Equal(t, "ann", got.Username)
	assert.NotEqual(t, uint(0), got.ID)
}

func TestRequireRejectsAnonymous(t *testing.T) {
	r, _, db := setup(t, nil)
	valid := login(t, r, db, "ann")
	forged, _, _ := token.Generate(1, "another-secret", time.Hour)
	expired, _, _ := token.Generate(1, "test-secret", -time.Minute)
	missingUser, _, _ := token.Generate(999, "test-secret", time.Hour)

	tests := []struct {
		name   string
		cookie *http.Cookie
	}{
		{"no cookie", nil},
		{"garbage", &http.Cookie{Name: cookieName, Value: "garbage"}},
		{"wrong secret", &http.Cookie{Name: cookieName, Value: forged}},
		{"expired", &http.Cookie{Name: cookieName, Value: expired}},
		{"deleted account", &http.Cookie{Name: cookieName, Value: missingUser}},
		{"other cookie name", &http.Cookie{Name: "other", Value: valid.Value}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest(http.MethodGet, "/whoami", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			w := testutil.Do(r, req)
			testutil.AssertStatus(t, w, http.StatusUnauthorized)
			assert.Equal(t, `{"error":"Unauthorized"}`, w.Body.String())
		})
	}
}

func TestClearExpiresCookie(t *testing.T) {
	r, _, db := setup(t, nil)
	cookie := login(t, r, db, "ann")

	w := testutil.Do(r, testutil.MakeRequest(http.MethodPost, "/logout", nil, cookie))
	testutil.AssertStatus(t, w, http.StatusNoContent)
	cleared := testutil.Cookie(w, cookieName)
	if cleared == nil {
		t.Fatal("expected the cookie to be overwritten")
	}
	assert.Equal(t, "", cleared.Value)
	assert.T(t, cleared.MaxAge < 0)

	// logout without a session is fine too
	w = testutil.Do(r, testutil.MakeRequest(http.MethodPost, "/logout", nil))
	testutil.AssertStatus(t, w, http.StatusNoContent)
}

func TestClearRevokesToken(t *testing.T) {
	mr := miniredis.RunT(t)
	revoker := token.NewRedisRevoker(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { revoker.Close() })

	r, _, db := setup(t, revoker)
	cookie := login(t, r, db, "ann")

	testutil.Do(r, testutil.MakeRequest(http.MethodPost, "/logout", nil, cookie))

	// a copy of the old cookie no longer authenticates
	w := testutil.Do(r, testutil.MakeRequest(http.MethodGet, "/whoami", nil, cookie))
	testutil.AssertStatus(t, w, http.StatusUnauthorized)
	assert.Equal(t, 1, len(mr.Keys()))
}

func TestRevocationOutageKeepsSessions(t *testing.T) {
	mr := miniredis.RunT(t)
	revoker := token.NewRedisRevoker(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { revoker.Close() })

	r, _, db := setup(t, revoker)
	cookie := login(t, r, db, "ann")
	mr.Close()

	w := testutil.Do(r, testutil.MakeRequest(http.MethodGet, "/whoami", nil, cookie))
	testutil.AssertStatus(t, w, http.StatusOK)

	w = testutil.Do(r, testutil.MakeRequest(http.MethodPost, "/logout", nil, cookie))
	testutil.AssertStatus(t, w, http.StatusNoContent)
}

func TestCallerFromWithoutSession(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := CallerFrom(c)
	assert.T(t, !ok)
}
