package prompt

import (
	"strings"
	"testing"

	"ticker-chat-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestComposeIsDeterministic(t *testing.T) {
	composer := NewComposer()
	passages := []entity.Passage{
		{Content: "AMD reported record revenue.", SourceName: "Reuters", SourceURL: "https://example.com/amd"},
		{Content: "Data center sales doubled.", SourceName: "Bloomberg", SourceURL: "https://example.com/dc"},
	}

	first := composer.Compose("What is AMD's latest earnings report?", "Human: hi\nAI: hello", passages)
	for i := 0; i < 10; i++ {
		again := composer.Compose("What is AMD's latest earnings report?", "Human: hi\nAI: hello", passages)
		assert.Equal(t, first, again, "composed prompt must be byte-identical across calls")
	}
}

func TestComposeContainsPassagesAndNumberedSources(t *testing.T) {
	composer := NewComposer()
	passages := []entity.Passage{
		{Content: "AMD reported record revenue.", SourceName: "Reuters", SourceURL: "https://example.com/amd"},
		{Content: "Data center sales doubled.", SourceName: "Bloomberg", SourceURL: "https://example.com/dc"},
	}

	out := composer.Compose("What is AMD's latest earnings report?", "", passages)

	assert.Contains(t, out, "AMD reported record revenue.")
	assert.Contains(t, out, "Data center sales doubled.")
	assert.Contains(t, out, "[Source: Reuters(https://example.com/amd)]")
	assert.Contains(t, out, "[Source: Bloomberg(https://example.com/dc)]")
	assert.Contains(t, out, "1. [Reuters](https://example.com/amd)")
	assert.Contains(t, out, "2. [Bloomberg](https://example.com/dc)")
	assert.Contains(t, out, "Current question: What is AMD's latest earnings report?")

	// Source list entries appear in retrieval order.
	assert.Less(t,
		strings.Index(out, "1. [Reuters]"),
		strings.Index(out, "2. [Bloomberg]"),
	)
}

func TestComposeRendering(t *testing.T) {
	tests := []struct {
		name     string
		passages []entity.Passage
		history  string
		want     []string
		wantNot  []string
	}{
		{
			name: "passage without url omits the parenthesized link",
			passages: []entity.Passage{
				{Content: "Markets closed mixed.", SourceName: "Internal Memo"},
			},
			want:    []string{"Markets closed mixed.\n[Source: Internal Memo]", "1. Internal Memo"},
			wantNot: []string{"Internal Memo()"},
		},
		{
			name: "passages separated by a blank line",
			passages: []entity.Passage{
				{Content: "First.", SourceName: "A", SourceURL: "https://a"},
				{Content: "Second.", SourceName: "B", SourceURL: "https://b"},
			},
			want: []string{"First.\n[Source: A(https://a)]\n\nSecond.\n[Source: B(https://b)]"},
		},
		{
			name: "history is injected verbatim",
			passages: []entity.Passage{
				{Content: "X.", SourceName: "A"},
			},
			history: "Human: earlier question\nAI: earlier answer",
			want:    []string{"Previous conversation:\nHuman: earlier question\nAI: earlier answer"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := NewComposer().Compose("q", tt.history, tt.passages)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			for _, w := range tt.wantNot {
				assert.NotContains(t, out, w)
			}
		})
	}
}

func TestComposeKeepsGroundingInstructions(t *testing.T) {
	out := NewComposer().Compose("q", "", []entity.Passage{{Content: "X.", SourceName: "A"}})

	assert.Contains(t, out, "CRITICAL INSTRUCTION")
	assert.Contains(t, out, "never mention the context, database, or available information")
	assert.Contains(t, out, "Format sources as a numbered list with markdown links")
}
