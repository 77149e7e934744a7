package handler

import (
	"careeriq/internal/delivery/http/dto"
	"careeriq/internal/delivery/http/middleware"
	"careeriq/internal/pkg/response"
	"careeriq/internal/repository"

	"github.com/gofiber/fiber/v3"
)

type DashboardHandler struct {
	catalog repository.Catalog
}

func NewDashboardHandler(catalog repository.Catalog) *DashboardHandler {
	return &DashboardHandler{catalog: catalog}
}

func (h *DashboardHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/dashboard", h.HandleDashboard)
}

func (h *DashboardHandler) HandleDashboard(c fiber.Ctx) error {
	ctx := c.Context()
	internal := func(err error) error {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	profile, err := currentUser(c, h.catalog)
	if err != nil {
		return internal(err)
	}
	skills, err := h.catalog.Skills(ctx)
	if err != nil {
		return internal(err)
	}
	notifications, err := h.catalog.Notifications(ctx)
	if err != nil {
		return internal(err)
	}
	feed, err := h.catalog.FeedItems(ctx)
	if err != nil {
		return internal(err)
	}

	unread := 0
	for _, n := range notifications {
		if !n.Read {
			unread++
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.DashboardResponse{
		User:          profile,
		Skills:        skills,
		Notifications: notifications,
		Feed:          feed,
		UnreadCount:   unread,
	})
}
