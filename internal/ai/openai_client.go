package ai

import (
	"context"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Hard format guard appended as the LAST system message. Models drift into
// prose without it.
const jsonGuard = `
Reply ONLY with valid JSON.
No text outside the JSON object.
If you break the format the reply will be discarded.
`

type OpenAIClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	log     *zap.Logger
}

func NewOpenAIClient(apiKey, model string, timeout time.Duration, log *zap.Logger) *OpenAIClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &OpenAIClient{
		client:  openai.NewClient(apiKey),
		model:   model,
		timeout: timeout,
		log:     log.Named("ai"),
	}
}

// Complete sends one system prompt plus a JSON input document and returns the
// raw model reply. The timeout bounds the whole round trip; callers treat any
// error as "collaborator unavailable" and fall back locally.
func (c *OpenAIClient) Complete(ctx context.Context, systemPrompt string, inputJSON string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	msgs := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: inputJSON},
		// format guard goes last
		{Role: openai.ChatMessageRoleSystem, Content: jsonGuard},
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: msgs,
	})
	if err != nil {
		c.log.Warn("completion failed", zap.Error(err))
		return "", err
	}

	if len(resp.Choices) == 0 {
		c.log.Warn("completion returned no choices")
		return "", nil
	}

	raw := resp.Choices[0].Message.Content
	c.log.Debug("raw completion", zap.String("reply", short(raw)))
	return raw, nil
}

func short(s string) string {
	if len(s) > 180 {
		return s[:180] + "..."
	}
	return s
}
