package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bmizerany/assert"
	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/baskettime/internal/common"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAbortWithError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"invalid input", common.InvalidInput("Match id required"), http.StatusBadRequest, "Match id required"},
		{"conflict", common.Conflict("Username already taken"), http.StatusConflict, "Username already taken"},
		{"unauthorized", common.Unauthorized("Unauthorized"), http.StatusUnauthorized, "Unauthorized"},
		{"wrapped not found", fmt.Errorf("load: %w", common.NotFound("Team not found")), http.StatusNotFound, "Team not found"},
		{"store failure", errors.New("connection reset"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/x", nil)

			AbortWithError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			var body ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			assert.Equal(t, tt.wantBody, body.Error)
			assert.T(t, c.IsAborted())
		})
	}
}

func TestGenerateRandomToken(t *testing.T) {
	for _, n := range []int{1, 16, 33, 64} {
		assert.Equal(t, n, len(GenerateRandomToken(n)))
	}
	assert.NotEqual(t, GenerateRandomToken(32), GenerateRandomToken(32))
}
