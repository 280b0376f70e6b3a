package events

import (
	"encoding/json"

	"ticker-chat-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// TopicTurnRecorded carries one event per successfully answered question.
const TopicTurnRecorded = "chat.turn.recorded"

// TurnRecordedEvent is the audit payload. Question and answer text stay out
// of the event on purpose; only shapes and sources are recorded.
type TurnRecordedEvent struct {
	ConversationId string   `json:"conversation_id"`
	QuestionLen    int      `json:"question_len"`
	AnswerLen      int      `json:"answer_len"`
	Sources        []string `json:"sources"`
	Fallback       bool     `json:"fallback"`
}

// TurnPublisher emits turn events onto the in-process bus. Publishing is
// best effort: a bus failure must never fail the request that produced the
// answer.
type TurnPublisher struct {
	publisher message.Publisher
	log       logger.ILogger
}

func NewTurnPublisher(publisher message.Publisher, log logger.ILogger) *TurnPublisher {
	return &TurnPublisher{
		publisher: publisher,
		log:       log,
	}
}

func (p *TurnPublisher) PublishTurnRecorded(event TurnRecordedEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		p.log.Warn("events", "failed to marshal turn event", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := p.publisher.Publish(TopicTurnRecorded, msg); err != nil {
		p.log.Warn("events", "failed to publish turn event", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
