package models

// APIResponse is the uniform envelope returned by every route.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func Success(message string, data interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func Fail(errMsg string) APIResponse {
	return APIResponse{
		Success: false,
		Error:   errMsg,
	}
}
