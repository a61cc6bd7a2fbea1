package dto

import "time"

// APIResponse is the envelope for every successful response.
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// SuccessResponse carries a plain confirmation message.
type SuccessResponse struct {
	Message string `json:"message" example:"Operation completed successfully"`
}
