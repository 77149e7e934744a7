package ai

import (
	"context"
	"fmt"
	"iter"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Gemini is the Model backed by the Gemini API.
type Gemini struct {
	client *genai.Client
	log    *zap.Logger
}

// NewGemini builds a client for the Gemini API. An empty apiKey yields
// ErrMissingCredential so callers can run with AI disabled.
func NewGemini(ctx context.Context, apiKey string, log *zap.Logger) (*Gemini, error) {
	if apiKey == "" {
		return nil, ErrMissingCredential
	}
	if log == nil {
		log = zap.NewNop()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Gemini{client: client, log: log}, nil
}

func (g *Gemini) Generate(ctx context.Context, req Request) (string, error) {
	cfg := &genai.GenerateContentConfig{}
	if req.Schema != nil {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = req.Schema
	}
	if req.SystemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}

	resp, err := g.client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("%s: generate content: %w", req.Op, err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%s: %w", req.Op, ErrEmptyResponse)
	}

	return resp.Text(), nil
}

func (g *Gemini) StartChat(ctx context.Context, cfg ChatConfig) (ChatSession, error) {
	genCfg := &genai.GenerateContentConfig{}
	if cfg.SystemInstruction != "" {
		genCfg.SystemInstruction = genai.NewContentFromText(cfg.SystemInstruction, genai.RoleUser)
	}

	chat, err := g.client.Chats.Create(ctx, cfg.Model, genCfg, nil)
	if err != nil {
		return nil, fmt.Errorf("create chat: %w", err)
	}

	g.log.Debug("chat session created", zap.String("model", cfg.Model))
	return &geminiChat{chat: chat}, nil
}

type geminiChat struct {
	chat *genai.Chat
}

func (c *geminiChat) SendStream(ctx context.Context, message string) *Stream {
	if err := ctx.Err(); err != nil {
		return ErrStream(fmt.Errorf("chat stream: %w", err))
	}
	ctx, cancel := context.WithCancel(ctx)
	upstream := c.chat.SendMessageStream(ctx, genai.Part{Text: message})

	seq := func(yield func(string, error) bool) {
		for resp, err := range upstream {
			if err != nil {
				yield("", fmt.Errorf("chat stream: %w", err))
				return
			}
			if resp == nil {
				continue
			}
			if !yield(resp.Text(), nil) {
				return
			}
		}
	}

	return NewStream(iter.Seq2[string, error](seq), cancel)
}
