package handler

import (
	"bufio"
	"context"
	"errors"
	"strings"

	"careeriq/internal/delivery/http/dto"
	"careeriq/internal/delivery/http/middleware"
	"careeriq/internal/domain/career"
	"careeriq/internal/pkg/response"
	"careeriq/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MentorHandler struct {
	mentor *usecase.Mentor
	logger *zap.Logger
}

type sendMessageRequest struct {
	Text string `json:"text"`
}

func NewMentorHandler(mentor *usecase.Mentor, logger *zap.Logger) *MentorHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MentorHandler{mentor: mentor, logger: logger}
}

func (h *MentorHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/sessions", h.HandleStart)
	r.Get("/sessions/:id", h.HandleTranscript)
	r.Post("/sessions/:id/messages", h.HandleSendMessage)
	r.Delete("/sessions/:id", h.HandleEnd)
}

func (h *MentorHandler) HandleStart(c fiber.Ctx) error {
	sess, greeting, err := h.mentor.Start(c.Context(), sessionOwner(c))
	if err != nil {
		return mapMentorUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.MentorSessionResponse{
		SessionID: sess.ID,
		Message:   greeting,
	})
}

func (h *MentorHandler) HandleTranscript(c fiber.Ctx) error {
	sess, err := h.mentor.Session(sessionOwner(c), c.Params("id"))
	if err != nil {
		return mapMentorUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.MentorTranscriptResponse{
		SessionID: sess.ID,
		Messages:  sess.Transcript(),
	})
}

// HandleSendMessage streams the reply as server-sent events: one "message"
// event per snapshot of the AI message, the last one with streaming unset.
// Problems found before the stream opens are ordinary JSON errors.
func (h *MentorHandler) HandleSendMessage(c fiber.Ctx) error {
	var req sendMessageRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if strings.TrimSpace(req.Text) == "" {
		return mapMentorUsecaseError(usecase.ErrEmptyMessage)
	}

	owner := sessionOwner(c)
	id := c.Params("id")
	sess, err := h.mentor.Session(owner, id)
	if err != nil {
		return mapMentorUsecaseError(err)
	}
	if sess.Busy() {
		return mapMentorUsecaseError(usecase.ErrSessionBusy)
	}

	// Params and body are only valid until the handler returns.
	id = strings.Clone(id)
	text := req.Text

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	return c.SendStreamWriter(func(w *bufio.Writer) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		_, err := h.mentor.Send(ctx, owner, id, text, func(m career.ChatMessage) {
			if werr := writeEvent(w, eventMessage, m); werr != nil {
				cancel()
			}
		})
		switch {
		case err == nil, errors.Is(err, usecase.ErrReplyFailed):
		default:
			h.logger.Warn("mentor send", zap.String("session_id", id), zap.Error(err))
			_ = writeEvent(w, eventError, map[string]string{"message": mentorErrorMessage(err)})
		}
	})
}

func (h *MentorHandler) HandleEnd(c fiber.Ctx) error {
	if err := h.mentor.End(sessionOwner(c), c.Params("id")); err != nil {
		return mapMentorUsecaseError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// sessionOwner is the authenticated user id, or empty when none was set.
func sessionOwner(c fiber.Ctx) string {
	if id, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID); ok {
		return id.String()
	}
	return ""
}

func mentorErrorMessage(err error) string {
	switch {
	case errors.Is(err, usecase.ErrSessionBusy),
		errors.Is(err, usecase.ErrSessionNotFound),
		errors.Is(err, usecase.ErrEmptyMessage):
		return err.Error()
	default:
		return usecase.ErrChatUnavailable.Error()
	}
}

func mapMentorUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrEmptyMessage):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrSessionBusy):
		return middleware.NewAppError(fiber.StatusConflict, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrChatUnavailable):
		return middleware.NewPublicError(fiber.StatusServiceUnavailable, err.Error(), err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
