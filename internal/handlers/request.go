package handlers

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	apierrors "github.com/yukikurage/task-tracker-api/internal/errors"
)

var errInvalidBody = apierrors.Validation("Invalid request body")

// bindCreateBody decodes a create request into obj. A missing, null or empty
// object body is reported as a create error with createMessage.
func bindCreateBody(c *gin.Context, obj interface{}, createMessage string) error {
	body, err := c.GetRawData()
	if err != nil {
		return errInvalidBody
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return apierrors.CreateFailed(createMessage)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return errInvalidBody
	}
	if len(fields) == 0 {
		return apierrors.CreateFailed(createMessage)
	}

	if err := binding.JSON.BindBody(trimmed, obj); err != nil {
		return errInvalidBody
	}
	return nil
}

// bindBody decodes a JSON request body into obj
func bindBody(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return errInvalidBody
	}
	return nil
}

// queryBool parses an optional boolean query parameter
func queryBool(c *gin.Context, key string) (bool, error) {
	raw := c.Query(key)
	if raw == "" {
		return false, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		msg := key + " must be true or false"
		return false, apierrors.Validation(msg, apierrors.FieldError{Field: key, Message: msg})
	}
	return value, nil
}
