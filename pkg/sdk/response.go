package sdk

import "net/http"

// Status values used in API response envelopes
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Response is the envelope the backend wraps every JSON payload in
type Response struct {
	Code    int    `json:"-"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ApiResponse mirrors Response for decoding, with typed data
type ApiResponse[T any] struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
	Error   string `json:"error"`
}

// NewSuccessResponse builds a 200 success envelope with a data payload
func NewSuccessResponse(message string, data any) *Response {
	return &Response{Code: http.StatusOK, Status: StatusSuccess, Message: message, Data: data}
}

// NewSuccess builds a 200 success envelope without data
func NewSuccess(message string) *Response {
	return &Response{Code: http.StatusOK, Status: StatusSuccess, Message: message}
}

// NewFailResponse builds a client-failure envelope (4xx)
func NewFailResponse(code int, message string) *Response {
	return &Response{Code: code, Status: StatusFail, Message: message}
}

// NewErrorResponse builds a server-error envelope (5xx)
func NewErrorResponse(code int, message string, err error) *Response {
	r := &Response{Code: code, Status: StatusError, Message: message}
	if err != nil {
		r.Error = err.Error()
	}
	return r
}

// AsGinResponse returns the envelope in the (code, body) shape expected
// by gin's c.JSON
func (r *Response) AsGinResponse() (int, any) {
	return r.Code, r
}
