package prompt

import (
	"fmt"
	"strings"

	"ticker-chat-be/internal/constant"
	"ticker-chat-be/internal/entity"
)

// Composer renders the fixed grounding template. Compose is a pure function
// of its inputs: the same question, history and passages always produce
// byte-identical output.
type Composer struct{}

func NewComposer() *Composer {
	return &Composer{}
}

// Compose merges retrieved passages, prior conversation and the current
// question into the instruction set for the generation stage. It must not be
// called with zero passages; the pipeline short-circuits that case before
// composition.
func (c *Composer) Compose(question, chatHistory string, passages []entity.Passage) string {
	replacer := strings.NewReplacer(
		"{chat_history}", chatHistory,
		"{context}", renderContext(passages),
		"{sources}", renderSources(passages),
		"{question}", question,
	)
	return replacer.Replace(constant.GroundingPromptV1)
}

// renderContext formats each passage as the template expects:
// the passage text followed by a bracketed source line.
func renderContext(passages []entity.Passage) string {
	blocks := make([]string, 0, len(passages))
	for _, p := range passages {
		var b strings.Builder
		b.WriteString(p.Content)
		b.WriteString("\n[Source: ")
		b.WriteString(p.SourceName)
		if p.SourceURL != "" {
			b.WriteString("(")
			b.WriteString(p.SourceURL)
			b.WriteString(")")
		}
		b.WriteString("]")
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n")
}

// renderSources builds the numbered list the model cites against, one line
// per passage in retrieval order.
func renderSources(passages []entity.Passage) string {
	var b strings.Builder
	for i, p := range passages {
		if i > 0 {
			b.WriteString("\n")
		}
		if p.SourceURL != "" {
			b.WriteString(fmt.Sprintf("%d. [%s](%s)", i+1, p.SourceName, p.SourceURL))
		} else {
			b.WriteString(fmt.Sprintf("%d. %s", i+1, p.SourceName))
		}
	}
	return b.String()
}
