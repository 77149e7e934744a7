// Package ws carries mentor chat over a websocket: every inbound text frame
// becomes one mentor turn whose reply is streamed back as message frames.
package ws

import (
	"context"
	"net/http"
	"time"

	"careeriq/internal/delivery/http/middleware"
	"careeriq/internal/domain/career"
	"careeriq/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type MentorService interface {
	Start(ctx context.Context, owner string) (*usecase.MentorSession, career.ChatMessage, error)
	Send(ctx context.Context, owner, id, text string, onUpdate func(career.ChatMessage)) (career.ChatMessage, error)
	End(owner, id string) error
}

type ownerKey struct{}

// WithOwner tags ctx with the user a new connection acts for.
func WithOwner(ctx context.Context, owner string) context.Context {
	return context.WithValue(ctx, ownerKey{}, owner)
}

func ownerFrom(ctx context.Context) string {
	owner, _ := ctx.Value(ownerKey{}).(string)
	return owner
}

type Handler struct {
	hub    *Hub
	mentor MentorService
	logger *zap.Logger
}

func NewHandler(hub *Hub, mentor MentorService, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{hub: hub, mentor: mentor, logger: logger}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (h *Handler) HandleMentorWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil || h.mentor == nil {
		return fiber.ErrServiceUnavailable
	}
	owner := ""
	if id, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID); ok {
		owner = id.String()
	}
	return adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(w, r.WithContext(WithOwner(r.Context(), owner)))
	})(c)
}

// ServeHTTP upgrades the request and opens a mentor session for the
// connection, owned by the user set with WithOwner. The first frame is either
// the session greeting or an error.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	owner := ownerFrom(r.Context())
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("ws upgrade", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	sess, greeting, err := h.mentor.Start(ctx, owner)
	cancel()
	if err != nil {
		_ = conn.WriteJSON(Frame{Type: FrameError, Error: usecase.ErrChatUnavailable.Error()})
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "mentor unavailable"))
		_ = conn.Close()
		return
	}

	client := NewClient(h.hub, conn, h.mentor, owner, sess.ID, h.logger)
	if !h.hub.Register(client) {
		_ = h.mentor.End(owner, sess.ID)
		_ = conn.Close()
		return
	}
	client.enqueue(Frame{Type: FrameSession, SessionID: sess.ID, Message: &greeting})

	go client.WritePump()
	go client.ReadPump()
}
