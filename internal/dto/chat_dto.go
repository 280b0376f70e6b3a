package dto

type ChatRequest struct {
	Question string `json:"question" validate:"required"`
	// ConversationId threads follow-up questions into the same memory. A new
	// one is generated and returned when the client omits it.
	ConversationId string `json:"conversation_id,omitempty" validate:"omitempty,uuid4"`
}

type ChatResponse struct {
	Answer         string `json:"answer"`
	ConversationId string `json:"conversation_id"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
