package retriever

import (
	"context"
	"errors"
	"testing"

	"ticker-chat-be/internal/constant"
	"ticker-chat-be/internal/entity"
	"ticker-chat-be/pkg/embedding"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

type fakeEmbeddingProvider struct {
	vector []float32
	err    error
	apiKey string
	calls  int
}

func (f *fakeEmbeddingProvider) Generate(_ context.Context, _ string) ([]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.vector, nil
}

type fakeNewsRepo struct {
	passages   []entity.Passage
	err        error
	calls      int
	lastVector []float32
	lastLimit  int
}

func (f *fakeNewsRepo) SearchSimilar(_ context.Context, vec []float32, limit int) ([]entity.Passage, error) {
	f.calls++
	f.lastVector = vec
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.passages, nil
}

func newTestRetriever(emb *fakeEmbeddingProvider, repo *fakeNewsRepo) *Retriever {
	factory := embedding.ProviderFactory(func(apiKey string) embedding.EmbeddingProvider {
		emb.apiKey = apiKey
		return emb
	})
	return NewRetriever(repo, factory, nopLogger{})
}

func TestRetrieveRejectsEmptyQuestion(t *testing.T) {
	tests := []struct {
		name     string
		question string
	}{
		{"empty", ""},
		{"whitespace only", "   \t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emb := &fakeEmbeddingProvider{}
			repo := &fakeNewsRepo{}

			_, err := newTestRetriever(emb, repo).Retrieve(context.Background(), "sk-test", tt.question)

			require.ErrorIs(t, err, ErrEmptyQuestion)
			assert.Equal(t, 0, emb.calls, "no remote call for an empty question")
			assert.Equal(t, 0, repo.calls)
		})
	}
}

func TestRetrieveQueriesStoreWithQuestionEmbedding(t *testing.T) {
	emb := &fakeEmbeddingProvider{vector: []float32{0.1, 0.2, 0.3}}
	repo := &fakeNewsRepo{passages: []entity.Passage{
		{Content: "AMD beat estimates.", SourceName: "Reuters"},
	}}

	passages, err := newTestRetriever(emb, repo).Retrieve(context.Background(), "sk-test", "AMD earnings?")

	require.NoError(t, err)
	require.Len(t, passages, 1)
	assert.Equal(t, "sk-test", emb.apiKey, "embedding provider is bound to the caller's credential")
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, repo.lastVector)
	assert.Equal(t, constant.TopK, repo.lastLimit)
}

func TestRetrieveSurfacesFailures(t *testing.T) {
	t.Run("embedding failure", func(t *testing.T) {
		emb := &fakeEmbeddingProvider{err: errors.New("quota exceeded")}
		repo := &fakeNewsRepo{}

		_, err := newTestRetriever(emb, repo).Retrieve(context.Background(), "sk-test", "q")

		require.Error(t, err)
		assert.Equal(t, 0, repo.calls, "store is not queried when embedding fails")
	})

	t.Run("store failure", func(t *testing.T) {
		emb := &fakeEmbeddingProvider{vector: []float32{1}}
		repo := &fakeNewsRepo{err: errors.New("connection refused")}

		_, err := newTestRetriever(emb, repo).Retrieve(context.Background(), "sk-test", "q")

		require.Error(t, err)
		assert.ErrorContains(t, err, "connection refused")
	})
}

func TestRetrieveAllowsEmptyResult(t *testing.T) {
	emb := &fakeEmbeddingProvider{vector: []float32{1}}
	repo := &fakeNewsRepo{passages: []entity.Passage{}}

	passages, err := newTestRetriever(emb, repo).Retrieve(context.Background(), "sk-test", "obscure topic")

	require.NoError(t, err)
	assert.Empty(t, passages)
}
