package contract

import (
	"context"

	"ticker-chat-be/internal/entity"
)

// NewsDocumentRepository is the read-only view over the ticker_news vector
// store. Ingestion is owned by a separate system.
type NewsDocumentRepository interface {
	// SearchSimilar returns the passages closest to the query embedding by
	// cosine distance, most similar first. The result may be empty.
	SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]entity.Passage, error)
}
