package payload

import (
	"errors"
	"io"

	"anoa.com/forumapi/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// FromRequest decodes a JSON object body. An empty body yields an empty payload
// so the entity reports which fields are missing.
func FromRequest(c *gin.Context) (map[string]any, error) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, apperror.BadRequest("payload harus berupa objek JSON")
	}
	if body == nil {
		body = map[string]any{}
	}
	return body, nil
}
