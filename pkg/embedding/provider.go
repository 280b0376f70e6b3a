package embedding

import "context"

// EmbeddingProvider turns text into a vector suitable for similarity search
// against the document store.
type EmbeddingProvider interface {
	Generate(ctx context.Context, text string) ([]float32, error)
}

// ProviderFactory binds a caller-supplied credential to a provider for the
// duration of one request. Providers are cheap structs around a shared HTTP
// client, so per-request construction costs nothing.
type ProviderFactory func(apiKey string) EmbeddingProvider
