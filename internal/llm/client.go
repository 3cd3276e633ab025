package llm

import "context"

type Message struct {
	Role    string
	Content string
}

type Response struct {
	Content          string
	Model            string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Client generates a completion for a message sequence. It is the fallback
// answer path when no FAQ entry matches a free-text question.
type Client interface {
	Generate(ctx context.Context, messages []Message) (Response, error)
}
