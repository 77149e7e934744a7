package ai

import (
	"context"
	"time"

	"careeriq/internal/observability"

	"go.uber.org/zap"
)

// Instrumented records metrics and logs for every call made through a Model.
type Instrumented struct {
	next Model
	log  *zap.Logger
}

func NewInstrumented(next Model, log *zap.Logger) *Instrumented {
	if log == nil {
		log = zap.NewNop()
	}
	return &Instrumented{next: next, log: log}
}

func (m *Instrumented) Generate(ctx context.Context, req Request) (string, error) {
	start := time.Now()
	out, err := m.next.Generate(ctx, req)
	elapsed := time.Since(start)

	status := "ok"
	if err != nil {
		status = "error"
	}
	observability.ModelRequestsTotal.WithLabelValues(req.Op, req.Model, status).Inc()
	observability.ModelLatency.WithLabelValues(req.Op, req.Model).Observe(elapsed.Seconds())

	fields := []zap.Field{
		zap.String("op", req.Op),
		zap.String("model", req.Model),
		zap.Duration("latency", elapsed),
		zap.Int("response_bytes", len(out)),
	}
	if err != nil {
		m.log.Warn("model call failed", append(fields, zap.Error(err))...)
		return "", err
	}
	m.log.Info("model call", fields...)
	return out, nil
}

func (m *Instrumented) StartChat(ctx context.Context, cfg ChatConfig) (ChatSession, error) {
	sess, err := m.next.StartChat(ctx, cfg)
	status := "ok"
	if err != nil {
		status = "error"
	}
	observability.ModelRequestsTotal.WithLabelValues("chat.start", cfg.Model, status).Inc()
	if err != nil {
		m.log.Warn("chat start failed", zap.String("model", cfg.Model), zap.Error(err))
		return nil, err
	}
	return &instrumentedChat{next: sess, model: cfg.Model, log: m.log}, nil
}

type instrumentedChat struct {
	next  ChatSession
	model string
	log   *zap.Logger
}

func (c *instrumentedChat) SendStream(ctx context.Context, message string) *Stream {
	inner := c.next.SendStream(ctx, message)

	return NewStream(func(yield func(string, error) bool) {
		start := time.Now()
		observability.ActiveChatStreams.Inc()
		fragments := 0
		defer func() {
			observability.ActiveChatStreams.Dec()
			inner.Close()

			status := "ok"
			if inner.Err() != nil {
				status = "error"
			}
			observability.ModelRequestsTotal.WithLabelValues("chat.send", c.model, status).Inc()
			observability.ModelLatency.WithLabelValues("chat.send", c.model).Observe(time.Since(start).Seconds())
			c.log.Info("chat stream finished",
				zap.String("model", c.model),
				zap.Int("fragments", fragments),
				zap.Duration("latency", time.Since(start)),
				zap.Error(inner.Err()),
			)
		}()

		for inner.Next() {
			fragments++
			if !yield(inner.Text(), nil) {
				return
			}
		}
		if err := inner.Err(); err != nil {
			yield("", err)
		}
	}, inner.Close)
}
