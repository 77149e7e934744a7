// Package aitest provides a scripted ai.Model for tests.
package aitest

import (
	"context"
	"sync"

	"careeriq/internal/ai"
)

// Model answers Generate from Responses keyed by Request.Op and records every
// request it receives.
type Model struct {
	mu sync.Mutex

	Responses map[string]string
	Errors    map[string]error
	StartErr  error
	Chat      *Chat

	requests    []ai.Request
	chatConfigs []ai.ChatConfig
}

func (m *Model) Generate(_ context.Context, req ai.Request) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.requests = append(m.requests, req)
	if err := m.Errors[req.Op]; err != nil {
		return "", err
	}
	return m.Responses[req.Op], nil
}

func (m *Model) StartChat(_ context.Context, cfg ai.ChatConfig) (ai.ChatSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.chatConfigs = append(m.chatConfigs, cfg)
	if m.StartErr != nil {
		return nil, m.StartErr
	}
	if m.Chat == nil {
		m.Chat = &Chat{}
	}
	return m.Chat, nil
}

func (m *Model) Requests() []ai.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ai.Request(nil), m.requests...)
}

func (m *Model) ChatConfigs() []ai.ChatConfig {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ai.ChatConfig(nil), m.chatConfigs...)
}

// Chat replays Turns in order, one per SendStream call. When Err is set it is
// yielded after the fragments of every turn.
//
// If Gate is non-nil each stream waits for it to be closed (or for its
// context to end) before the first fragment; Started receives one value per
// stream that reaches the gate.
type Chat struct {
	mu sync.Mutex

	Turns   [][]string
	Err     error
	Gate    chan struct{}
	Started chan struct{}

	messages []string
	turn     int
}

func (c *Chat) SendStream(ctx context.Context, message string) *ai.Stream {
	c.mu.Lock()
	c.messages = append(c.messages, message)
	var fragments []string
	if c.turn < len(c.Turns) {
		fragments = c.Turns[c.turn]
	}
	c.turn++
	failure := c.Err
	gate, started := c.Gate, c.Started
	c.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	return ai.NewStream(func(yield func(string, error) bool) {
		if gate != nil {
			if started != nil {
				started <- struct{}{}
			}
			select {
			case <-gate:
			case <-ctx.Done():
				yield("", ctx.Err())
				return
			}
		}
		for _, f := range fragments {
			if ctx.Err() != nil {
				yield("", ctx.Err())
				return
			}
			if !yield(f, nil) {
				return
			}
		}
		if failure != nil {
			yield("", failure)
		}
	}, cancel)
}

func (c *Chat) Messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.messages...)
}
