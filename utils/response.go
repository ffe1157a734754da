package utils

import (
	"net/http"
)

// GenericResponse is the envelope every endpoint answers with: a flat
// error flag, a human-readable message, the payload, and the HTTP
// status echoed in the body.
type GenericResponse struct {
	Error   bool        `json:"error"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Status  int         `json:"status"`
}

// APIResponse builds the envelope. Success defaults to 200, errors to
// 400; pass an explicit status to override either.
func APIResponse(errorFlag bool, message string, data interface{}, status ...int) GenericResponse {
	code := http.StatusOK
	if len(status) > 0 {
		code = status[0]
	} else if errorFlag {
		code = http.StatusBadRequest
	}

	return GenericResponse{
		Error:   errorFlag,
		Message: message,
		Data:    data,
		Status:  code,
	}
}
