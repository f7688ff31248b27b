package dto

import "time"

// APIResponse is the envelope every successful endpoint responds with
type APIResponse struct {
	Success   bool        `json:"success" example:"true"`
	Message   string      `json:"message,omitempty" example:"Operation completed successfully"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewSuccessResponse wraps data in a success envelope
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewMessageResponse wraps data in a success envelope with a message
func NewMessageResponse(data interface{}, message string) APIResponse {
	resp := NewSuccessResponse(data)
	resp.Message = message
	return resp
}
