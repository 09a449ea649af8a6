package ai

import "context"

// AI is the external completion collaborator. It knows nothing about
// conversations, extraction or the ledger; it takes a system prompt plus a
// JSON input document and returns the raw model reply.
type AI interface {
	Complete(ctx context.Context, systemPrompt string, inputJSON string) (string, error)
}
