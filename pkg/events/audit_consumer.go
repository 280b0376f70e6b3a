package events

import (
	"context"
	"encoding/json"

	"ticker-chat-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
)

// AuditConsumer drains turn events into the isolated audit log so the main
// application log stays clean.
type AuditConsumer struct {
	subscriber message.Subscriber
	auditLog   logger.ILogger
}

func NewAuditConsumer(subscriber message.Subscriber, auditLog logger.ILogger) *AuditConsumer {
	return &AuditConsumer{
		subscriber: subscriber,
		auditLog:   auditLog,
	}
}

// Consume blocks until ctx is cancelled or the subscription closes.
func (c *AuditConsumer) Consume(ctx context.Context) error {
	messages, err := c.subscriber.Subscribe(ctx, TopicTurnRecorded)
	if err != nil {
		return err
	}

	for msg := range messages {
		var event TurnRecordedEvent
		if err := json.Unmarshal(msg.Payload, &event); err != nil {
			c.auditLog.Warn("audit", "dropping malformed turn event", map[string]interface{}{
				"error": err.Error(),
			})
			msg.Ack()
			continue
		}

		c.auditLog.Info("audit", "turn recorded", map[string]interface{}{
			"conversation_id": event.ConversationId,
			"question_len":    event.QuestionLen,
			"answer_len":      event.AnswerLen,
			"sources":         event.Sources,
			"fallback":        event.Fallback,
		})
		msg.Ack()
	}

	return nil
}
