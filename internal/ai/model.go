// Package ai is the invocation adapter between the orchestration layer and
// the generative model provider.
//
// A Model performs exactly one outbound call per invocation. It never caches,
// retries or deduplicates requests.
package ai

import (
	"context"
	"errors"

	"google.golang.org/genai"
)

var (
	ErrMissingCredential = errors.New("model credential not configured")
	ErrEmptyResponse     = errors.New("model returned no candidates")
)

// Request is a one-shot structured call. Schema is optional; when set the
// provider is asked for JSON in that shape.
type Request struct {
	Op                string
	Model             string
	Prompt            string
	SystemInstruction string
	Schema            *genai.Schema
}

type ChatConfig struct {
	Model             string
	SystemInstruction string
}

type Model interface {
	// Generate blocks until the complete text payload is returned.
	Generate(ctx context.Context, req Request) (string, error)
	// StartChat opens a conversational session that keeps its own history.
	StartChat(ctx context.Context, cfg ChatConfig) (ChatSession, error)
}

type ChatSession interface {
	// SendStream sends message and returns the reply as a finite sequence of
	// text fragments, in arrival order.
	SendStream(ctx context.Context, message string) *Stream
}
