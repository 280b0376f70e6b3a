package service

import (
	"context"
	"fmt"
	"strings"

	"ticker-chat-be/internal/config"
	"ticker-chat-be/internal/constant"
	"ticker-chat-be/internal/dto"
	"ticker-chat-be/internal/pkg/apperrors"
	"ticker-chat-be/internal/pkg/logger"
	"ticker-chat-be/pkg/events"
	"ticker-chat-be/pkg/rag/executor"

	"github.com/google/uuid"
)

// IChatService defines the chat service interface
type IChatService interface {
	Chat(ctx context.Context, apiKey string, request *dto.ChatRequest) (*dto.ChatResponse, error)
}

type chatService struct {
	cfg       *config.Config
	pipeline  *executor.Pipeline
	publisher *events.TurnPublisher
	log       logger.ILogger
}

func NewChatService(
	cfg *config.Config,
	pipeline *executor.Pipeline,
	publisher *events.TurnPublisher,
	log logger.ILogger,
) IChatService {
	return &chatService{
		cfg:       cfg,
		pipeline:  pipeline,
		publisher: publisher,
		log:       log,
	}
}

// Chat runs one question through the retrieve -> generate pipeline under the
// caller's credential.
func (cs *chatService) Chat(ctx context.Context, apiKey string, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	if missing := cs.cfg.MissingDatabaseVars(); len(missing) > 0 {
		return nil, apperrors.NewConfig("Configuration Error",
			fmt.Errorf("missing environment variables: %s", strings.Join(missing, ", ")))
	}

	conversationID := request.ConversationId
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	cs.log.Info("chat", "processing question", map[string]interface{}{
		"conversation_id": conversationID,
		"question_len":    len(request.Question),
	})

	result, err := cs.pipeline.Execute(ctx, executor.ExecuteInput{
		APIKey:         apiKey,
		ConversationID: conversationID,
		Question:       request.Question,
	})
	if err != nil {
		return nil, err
	}

	cs.publisher.PublishTurnRecorded(events.TurnRecordedEvent{
		ConversationId: conversationID,
		QuestionLen:    len(request.Question),
		AnswerLen:      len(result.Answer),
		Sources:        result.Sources,
		Fallback:       result.Answer == constant.FallbackAnswer,
	})

	return &dto.ChatResponse{
		Answer:         result.Answer,
		ConversationId: conversationID,
	}, nil
}
