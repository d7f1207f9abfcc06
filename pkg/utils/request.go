package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/baskettime/internal/common"
)

// ReadJSONObject decodes the request body as a JSON object. An empty body is an empty object.
// Field presence matters to callers (partial updates, aliases), so the body is not bound to a struct.
func ReadJSONObject(c *gin.Context) (map[string]interface{}, error) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, common.InvalidInput("Invalid JSON body")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]interface{}{}, nil
	}

	var body interface{}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, common.InvalidInput("Invalid JSON body")
	}
	switch obj := body.(type) {
	case map[string]interface{}:
		return obj, nil
	case nil:
		return map[string]interface{}{}, nil
	default:
		return nil, common.InvalidInput("Invalid JSON body")
	}
}

// BindJSON decodes the request body into obj. An empty body leaves obj at its zero value.
func BindJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return common.InvalidInput("Invalid JSON body")
	}
	return nil
}
