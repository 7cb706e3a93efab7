package request_models

type AskRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

type ResetRequest struct {
	UserID string `json:"user_id" binding:"required"`
}
