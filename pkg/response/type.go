package response

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	ErrorCodeBadRequest      = 1
	ErrorCodeUnauthorized    = 401
	InternalServerErrorCode  = 500
	ErrorCodeTooManyRequests = 429
)
