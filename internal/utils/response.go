package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/task-tracker-api/internal/errors"
	"github.com/yukikurage/task-tracker-api/internal/logger"
)

// Envelope is the body of every API response
type Envelope struct {
	Success    bool                `json:"success"`
	Data       interface{}         `json:"data"`
	Error      *apierrors.APIError `json:"error"`
	Message    string              `json:"message"`
	Pagination *PaginationResponse `json:"pagination,omitempty"`
}

// RespondSuccess writes a successful envelope
func RespondSuccess(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Envelope{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// RespondList writes a successful envelope with pagination metadata
func RespondList(c *gin.Context, message string, data interface{}, pagination PaginationResponse) {
	c.JSON(http.StatusOK, Envelope{
		Success:    true,
		Data:       data,
		Message:    message,
		Pagination: &pagination,
	})
}

// RespondError translates err into its HTTP status and an error envelope.
// Errors outside the API taxonomy are logged and hidden behind a generic 500.
func RespondError(c *gin.Context, err error) {
	statusCode := apierrors.StatusCode(err)

	apiErr, ok := apierrors.As(err)
	if !ok {
		logger.ErrorLog(c.Request.Context(), "unhandled error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		apiErr = apierrors.Internal("")
	}

	c.JSON(statusCode, Envelope{
		Success: false,
		Error:   apiErr,
		Message: http.StatusText(statusCode),
	})
}
