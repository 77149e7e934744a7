package v1

import "github.com/gofiber/fiber/v3"

// RegisterAccount mounts the dashboard and settings views.
func RegisterAccount(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Dashboard != nil {
		h.Dashboard.RegisterRoutes(r)
	}
	if h.Settings != nil {
		h.Settings.RegisterRoutes(r.Group("/settings"))
	}
}
