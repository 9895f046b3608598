package dto

// ActionResponse is the caller-facing envelope for the registration workflow
// endpoints: success flag, a short human-readable error when it failed, and
// the coach-with-relations payload when it succeeded.
type ActionResponse struct {
	Success bool                 `json:"success"`
	Error   string               `json:"error,omitempty"`
	Data    *CoachDetailResponse `json:"data,omitempty"`
}

// OKResponse wraps a successful action payload.
func OKResponse(data *CoachDetailResponse) ActionResponse {
	return ActionResponse{Success: true, Data: data}
}

// FailResponse wraps a failed action with a user-facing message.
func FailResponse(msg string) ActionResponse {
	return ActionResponse{Success: false, Error: msg}
}
