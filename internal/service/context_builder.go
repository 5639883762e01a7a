package service

import (
	"fmt"

	"persona-qa/internal/dataset"
	"persona-qa/internal/domain"
	"persona-qa/internal/llm"
)

// historyWindow is the number of recent turns kept in the backend payload
// (5 user/assistant pairs). Older context is discarded, never summarized.
const historyWindow = 10

// ContextBuilder turns a session's full history into the bounded message list
// sent to the generation backend.
type ContextBuilder struct {
	prompts map[string]string
	window  int
}

func NewContextBuilder(prompts map[string]string) *ContextBuilder {
	return &ContextBuilder{prompts: prompts, window: historyWindow}
}

// Supported reports whether a system prompt exists for the language tag.
func (b *ContextBuilder) Supported(lang string) bool {
	_, ok := b.prompts[lang]
	return ok
}

// BuildMessages assembles [system prompt with dataset] + last N history turns
// + the new user turn. The history suffix keeps insertion order and makes no
// assumption about strict user/assistant alternation: an odd trailing user
// turn left by a crash passes through untouched.
func (b *ContextBuilder) BuildMessages(lang string, data *dataset.PersonalDataset, history []domain.Turn, question string) ([]llm.Message, error) {
	tpl, ok := b.prompts[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedLanguage, lang)
	}

	if len(history) > b.window {
		history = history[len(history)-b.window:]
	}

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{
		Role:    "system",
		Content: fmt.Sprintf(tpl, data.Text()),
	})
	for _, turn := range history {
		messages = append(messages, llm.Message{
			Role:    string(turn.Role),
			Content: turn.Content,
		})
	}
	messages = append(messages, llm.Message{
		Role:    string(domain.RoleUser),
		Content: question,
	})

	return messages, nil
}
