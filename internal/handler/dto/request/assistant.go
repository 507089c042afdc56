package request

type AssistantMessageRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	Utterance string `json:"utterance" binding:"required"`
}
