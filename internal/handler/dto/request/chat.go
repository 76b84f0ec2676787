package request

type ChatMessageRequest struct {
	Message string `json:"message" binding:"required,max=500"`
}
