package v1

import (
	"careeriq/internal/delivery/http/handler"
	"careeriq/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Auth      *handler.AuthHandler
	Dashboard *handler.DashboardHandler
	Jobs      *handler.JobsHandler
	Learning  *handler.LearningHandler
	Planning  *handler.PlanningHandler
	Mentor    *handler.MentorHandler
	Settings  *handler.SettingsHandler
}

func Register(r fiber.Router, h Handlers, auth *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	if h.Auth != nil {
		h.Auth.RegisterRoutes(r.Group("/auth"))
	}

	if auth == nil {
		return
	}
	protected := r.Group("", auth.Middleware())

	RegisterCareer(protected, h)
	RegisterAccount(protected, h)
}
