package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends 400 with err as the message.
func Error(c *gin.Context, err error, data map[string]any) {
	if data == nil {
		data = make(map[string]any)
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: ErrorCodeBadRequest,
		Message:   err.Error(),
		Data:      data,
	})
}

// InternalError sends 500 without leaking err to the client.
func InternalError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// Unauthorized aborts with 401.
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Resp{
		ErrorCode: ErrorCodeUnauthorized,
		Message:   "Unauthorized",
	})
}

// TooManyRequests aborts with 429.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: ErrorCodeTooManyRequests,
		Message:   "Too many requests",
	})
}
