package bootstrap

import (
	"context"
	"log"

	"ticker-chat-be/internal/config"
	"ticker-chat-be/internal/controller"
	"ticker-chat-be/internal/pkg/logger"
	"ticker-chat-be/internal/repository/implementation"
	"ticker-chat-be/internal/service"
	"ticker-chat-be/pkg/embedding"
	"ticker-chat-be/pkg/events"
	"ticker-chat-be/pkg/llm"
	"ticker-chat-be/pkg/llm/openai"
	"ticker-chat-be/pkg/rag/executor"
	"ticker-chat-be/pkg/rag/memory"
	"ticker-chat-be/pkg/rag/retriever"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController controller.IChatController

	// Background services (exposed for main.go to run)
	AuditConsumer *events.AuditConsumer

	// Logger kept for Sync on shutdown
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	auditLogger := logger.NewIsolatedLogger(cfg.App.AuditLogFilePath)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Conversation memory backend
	var memoryStore memory.Store
	if cfg.Memory.Backend == "redis" {
		opt, err := redis.ParseURL(cfg.Memory.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.Memory.RedisURL}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v. Falling back to in-process memory", err)
			memoryStore = memory.NewCacheStore()
		} else {
			log.Println("[INFO] Using conversation memory backend: REDIS")
			memoryStore = memory.NewRedisStore(rdb)
		}
	} else {
		log.Println("[INFO] Using conversation memory backend: IN-PROCESS CACHE")
		memoryStore = memory.NewCacheStore()
	}

	// 4. Per-request provider factories bound to the caller's credential
	embeddingFactory := embedding.ProviderFactory(func(apiKey string) embedding.EmbeddingProvider {
		return embedding.NewOpenAIProvider(apiKey, cfg.Ai.BaseURL, cfg.Ai.EmbeddingModel)
	})
	llmFactory := llm.ProviderFactory(func(apiKey string) llm.LLMProvider {
		return openai.NewOpenAIProvider(apiKey, cfg.Ai.BaseURL, cfg.Ai.ChatModel)
	})

	// 5. RAG pipeline
	newsRepo := implementation.NewNewsDocumentRepository(db)
	ragRetriever := retriever.NewRetriever(newsRepo, embeddingFactory, sysLogger)
	pipeline := executor.NewPipeline(ragRetriever, llmFactory, memoryStore, sysLogger, cfg.Ai.Temperature)

	// 6. Events
	turnPublisher := events.NewTurnPublisher(pubSub, sysLogger)
	auditConsumer := events.NewAuditConsumer(pubSub, auditLogger)

	// 7. Services and controllers
	chatService := service.NewChatService(cfg, pipeline, turnPublisher, sysLogger)

	return &Container{
		ChatController: controller.NewChatController(chatService),
		AuditConsumer:  auditConsumer,
		Logger:         sysLogger,
	}
}
