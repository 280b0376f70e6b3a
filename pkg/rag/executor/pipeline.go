package executor

import (
	"context"
	"fmt"
	"time"

	"ticker-chat-be/internal/constant"
	"ticker-chat-be/internal/entity"
	"ticker-chat-be/internal/pkg/apperrors"
	"ticker-chat-be/internal/pkg/logger"
	"ticker-chat-be/pkg/llm"
	"ticker-chat-be/pkg/rag/memory"
	"ticker-chat-be/pkg/rag/prompt"
)

// Retriever is the ingress side of the pipeline. The concrete implementation
// lives in pkg/rag/retriever; tests substitute fakes.
type Retriever interface {
	Retrieve(ctx context.Context, apiKey, question string) ([]entity.Passage, error)
}

// PipelineState is the transient per-request record flowing through the two
// phases. Generation reads Passages, so retrieval must populate the field
// first, even when the search comes back empty.
type PipelineState struct {
	Question    string
	ChatHistory string
	Passages    []entity.Passage
	Answer      string
}

// ExecuteInput is what the orchestrator needs for one request/response cycle.
type ExecuteInput struct {
	APIKey         string
	ConversationID string
	Question       string
}

// ExecuteResult carries the answer plus the sources that grounded it.
type ExecuteResult struct {
	Answer  string
	Sources []string
}

// Pipeline runs the two-phase retrieve -> generate flow exactly once per
// request. No loops, no branching back: a request either reaches a terminal
// answer or aborts on the first failing phase.
type Pipeline struct {
	retriever  Retriever
	llmFactory llm.ProviderFactory
	composer   *prompt.Composer
	store      memory.Store
	log        logger.ILogger
	temp       float64
}

func NewPipeline(
	retriever Retriever,
	llmFactory llm.ProviderFactory,
	store memory.Store,
	log logger.ILogger,
	temperature float64,
) *Pipeline {
	return &Pipeline{
		retriever:  retriever,
		llmFactory: llmFactory,
		composer:   prompt.NewComposer(),
		store:      store,
		log:        log,
		temp:       temperature,
	}
}

// Execute runs retrieval then generation. Memory is read before generation
// and written only after a successful answer; a failed generation leaves the
// conversation untouched.
func (p *Pipeline) Execute(ctx context.Context, in ExecuteInput) (*ExecuteResult, error) {
	turns, err := p.store.Load(ctx, in.ConversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation memory: %w", err)
	}

	state := &PipelineState{
		Question:    in.Question,
		ChatHistory: memory.RenderHistory(turns),
	}

	if err := p.retrieve(ctx, in.APIKey, state); err != nil {
		return nil, apperrors.NewRetrieval(err)
	}

	if err := p.generate(ctx, in.APIKey, state); err != nil {
		return nil, apperrors.NewGeneration(err)
	}

	turn := entity.ConversationTurn{
		Question:  in.Question,
		Answer:    state.Answer,
		CreatedAt: time.Now(),
	}
	if err := p.store.Append(ctx, in.ConversationID, turn); err != nil {
		// The answer already exists; losing one memory write is better than
		// failing the request after a paid generation.
		p.log.Warn("pipeline", "failed to record conversation turn", map[string]interface{}{
			"conversation_id": in.ConversationID,
			"error":           err.Error(),
		})
	}

	return &ExecuteResult{
		Answer:  state.Answer,
		Sources: sourceNames(state.Passages),
	}, nil
}

// retrieve is phase one. On success state.Passages is populated, possibly
// with an empty slice.
func (p *Pipeline) retrieve(ctx context.Context, apiKey string, state *PipelineState) error {
	passages, err := p.retriever.Retrieve(ctx, apiKey, state.Question)
	if err != nil {
		return err
	}

	state.Passages = passages
	return nil
}

// generate is phase two. Zero passages short-circuit to the fallback answer
// without invoking the model; the grounding instructions in the template are
// the second line of defense for low-relevance passages that do get through.
func (p *Pipeline) generate(ctx context.Context, apiKey string, state *PipelineState) error {
	if len(state.Passages) == 0 {
		p.log.Info("pipeline", "no passages retrieved, returning fallback answer", nil)
		state.Answer = constant.FallbackAnswer
		return nil
	}

	composed := p.composer.Compose(state.Question, state.ChatHistory, state.Passages)

	provider := p.llmFactory(apiKey)
	answer, err := provider.Chat(ctx,
		[]llm.Message{{Role: constant.ChatRoleUser, Content: composed}},
		llm.WithTemperature(p.temp),
	)
	if err != nil {
		return err
	}

	state.Answer = answer
	return nil
}

func sourceNames(passages []entity.Passage) []string {
	names := make([]string, 0, len(passages))
	for _, p := range passages {
		names = append(names, p.SourceName)
	}
	return names
}
