package match

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/bmizerany/assert"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/baskettime/internal/common"
	"github.com/DhavalSuthar-24/baskettime/internal/session"
	"github.com/DhavalSuthar-24/baskettime/internal/testutil"
)

// asUser stands in for session.Resolve: the X-User header names the caller.
func asUser(c *gin.Context) {
	if id, err := strconv.Atoi(c.GetHeader("X-User")); err == nil {
		c.Set(common.ContextCallerKey, session.Caller{UserID: uint(id)})
	}
	c.Next()
}

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)
	db := testutil.NewDB(t, &Match{}, &MatchPlayer{})
	r := gin.New()
	MatchRoutes(r.Group("/api", asUser), db)
	return r, db
}

func call(r *gin.Engine, user int, method, path string, body interface{}) *httptest.ResponseRecorder {
	req := testutil.MakeRequest(method, path, body)
	if user != 0 {
		req.Header.Set("X-User", strconv.Itoa(user))
	}
	return testutil.Do(r, req)
}

func save(t *testing.T, r *gin.Engine, user int, body map[string]interface{}) Response {
	t.Helper()
	w := call(r, user, http.MethodPost, "/api/matches", body)
	testutil.AssertStatus(t, w, http.StatusCreated)
	var m Response
	testutil.AssertJSON(t, w, &m)
	return m
}

func statLine(name string) map[string]interface{} {
	return map[string]interface{}{"playerId": name, "playerNameAtTime": name, "goals": 1}
}

func TestSaveMatch(t *testing.T) {
	r, _ := setupRouter(t)

	got := save(t, r, 1, map[string]interface{}{
		"id":                "m1",
		"name":              "Hemma",
		"date_iso":          "2025-03-01",
		"match_seconds":     2400,
		"team_id":           "t1",
		"team_name_at_time": "A-lag",
		"players": []interface{}{
			map[string]interface{}{"playerId": "p1", "playerNameAtTime": "Eva", "secondsOnCourt": 600, "assists": 2, "fouls": 1, "goals": 4},
		},
	})
	assert.Equal(t, Response{
		ID:             "m1",
		Name:           "Hemma",
		DateISO:        "2025-03-01",
		MatchSeconds:   2400,
		TeamID:         "t1",
		TeamNameAtTime: "A-lag",
		Players: []PlayerResponse{
			{PlayerID: "p1", PlayerNameAtTime: "Eva", SecondsOnCourt: 600, Assists: 2, Fouls: 1, Goals: 4},
		},
	}, got)
}

func TestSaveMatchBlankID(t *testing.T) {
	r, _ := setupRouter(t)
	w := call(r, 1, http.MethodPost, "/api/matches", map[string]interface{}{"id": "", "name": "x"})
	testutil.AssertStatus(t, w, http.StatusBadRequest)
	assert.Equal(t, `{"error":"Match id required"}`, w.Body.String())
}

func TestSaveMatchReplacesPlayers(t *testing.T) {
	r, db := setupRouter(t)
	save(t, r, 1, map[string]interface{}{
		"id":      "m1",
		"players": []interface{}{statLine("a"), statLine("b"), statLine("c")},
	})

	// updating still answers 201
	got := save(t, r, 1, map[string]interface{}{
		"id":      "m1",
		"name":    "Omspelad",
		"players": []interface{}{statLine("z")},
	})
	assert.Equal(t, "Omspelad", got.Name)
	assert.Equal(t, 1, len(got.Players))

	var rows int64
	db.Model(&MatchPlayer{}).Where("match_id = ?", "m1").Count(&rows)
	assert.Equal(t, int64(1), rows)
}

func TestResaveIsFullSnapshot(t *testing.T) {
	r, _ := setupRouter(t)
	save(t, r, 1, map[string]interface{}{"id": "m1", "teamId": "t1", "teamNameAtTime": "A-lag"})

	// fields left out of a resave fall back to their defaults
	got := save(t, r, 1, map[string]interface{}{"id": "m1"})
	assert.Equal(t, "", got.TeamID)
	assert.Equal(t, "Match", got.Name)
}

func TestListMostRecentFirst(t *testing.T) {
	r, _ := setupRouter(t)
	save(t, r, 1, map[string]interface{}{"id": "old"})
	time.Sleep(5 * time.Millisecond)
	save(t, r, 1, map[string]interface{}{"id": "new"})

	w := call(r, 1, http.MethodGet, "/api/matches", nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	var list ListResponse
	testutil.AssertJSON(t, w, &list)
	assert.Equal(t, 2, len(list.Matches))
	assert.Equal(t, "new", list.Matches[0].ID)
	assert.Equal(t, "old", list.Matches[1].ID)
}

func TestOwnership(t *testing.T) {
	r, _ := setupRouter(t)
	save(t, r, 1, map[string]interface{}{"id": "m1", "name": "Min"})

	w := call(r, 2, http.MethodGet, "/api/matches/m1", nil)
	testutil.AssertStatus(t, w, http.StatusNotFound)
	assert.Equal(t, `{"error":"Match not found"}`, w.Body.String())
	w = call(r, 2, http.MethodDelete, "/api/matches/m1", nil)
	testutil.AssertStatus(t, w, http.StatusNotFound)

	// the same id under another account is a separate match
	save(t, r, 2, map[string]interface{}{"id": "m1", "name": "Deras"})
	w = call(r, 1, http.MethodGet, "/api/matches/m1", nil)
	var mine Response
	testutil.AssertJSON(t, w, &mine)
	assert.Equal(t, "Min", mine.Name)
}

func TestDeleteAndClear(t *testing.T) {
	r, db := setupRouter(t)
	save(t, r, 1, map[string]interface{}{"id": "a", "players": []interface{}{statLine("x")}})
	save(t, r, 1, map[string]interface{}{"id": "b", "players": []interface{}{statLine("y")}})
	save(t, r, 2, map[string]interface{}{"id": "a", "players": []interface{}{statLine("z")}})

	testutil.AssertStatus(t, call(r, 1, http.MethodDelete, "/api/matches/a", nil), http.StatusNoContent)
	testutil.AssertStatus(t, call(r, 1, http.MethodDelete, "/api/matches/a", nil), http.StatusNotFound)

	testutil.AssertStatus(t, call(r, 1, http.MethodPost, "/api/matches/clear", nil), http.StatusNoContent)
	// clearing nothing still succeeds
	testutil.AssertStatus(t, call(r, 1, http.MethodPost, "/api/matches/clear", nil), http.StatusNoContent)

	w := call(r, 1, http.MethodGet, "/api/matches", nil)
	assert.Equal(t, `{"matches":[]}`, w.Body.String())

	var remaining int64
	db.Model(&MatchPlayer{}).Count(&remaining)
	assert.Equal(t, int64(1), remaining)
}

func TestRequiresSession(t *testing.T) {
	r, _ := setupRouter(t)
	for _, path := range []string{"/api/matches", "/api/matches/m1"} {
		w := call(r, 0, http.MethodGet, path, nil)
		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	}
	w := call(r, 0, http.MethodPost, "/api/matches/clear", nil)
	testutil.AssertStatus(t, w, http.StatusUnauthorized)
}
