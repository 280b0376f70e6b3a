package retriever

import (
	"context"
	"strings"

	"ticker-chat-be/internal/constant"
	"ticker-chat-be/internal/entity"
	"ticker-chat-be/internal/pkg/logger"
	"ticker-chat-be/internal/repository/contract"
	"ticker-chat-be/pkg/embedding"
)

// Retriever embeds the question with the caller's credential and runs the
// similarity search against the news store. It never mutates store state and
// never retries; failures surface to the pipeline.
type Retriever struct {
	repo             contract.NewsDocumentRepository
	embeddingFactory embedding.ProviderFactory
	log              logger.ILogger
}

func NewRetriever(repo contract.NewsDocumentRepository, embeddingFactory embedding.ProviderFactory, log logger.ILogger) *Retriever {
	return &Retriever{
		repo:             repo,
		embeddingFactory: embeddingFactory,
		log:              log,
	}
}

// Retrieve returns the top passages for the question ordered most-similar
// first; the result may be empty.
func (r *Retriever) Retrieve(ctx context.Context, apiKey, question string) ([]entity.Passage, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}

	provider := r.embeddingFactory(apiKey)
	vector, err := provider.Generate(ctx, question)
	if err != nil {
		return nil, err
	}

	passages, err := r.repo.SearchSimilar(ctx, vector, constant.TopK)
	if err != nil {
		return nil, err
	}

	r.log.Info("retriever", "similarity search completed", map[string]interface{}{
		"passages": len(passages),
	})

	return passages, nil
}
