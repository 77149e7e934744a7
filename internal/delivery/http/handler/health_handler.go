package handler

import (
	"careeriq/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	aiAvailable func() bool
}

// NewHealthHandler reports liveness plus whether the AI provider is wired.
func NewHealthHandler(aiAvailable func() bool) *HealthHandler {
	return &HealthHandler{aiAvailable: aiAvailable}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ai := false
	if h.aiAvailable != nil {
		ai = h.aiAvailable()
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{
		"status": "up",
		"ai":     ai,
	})
}
