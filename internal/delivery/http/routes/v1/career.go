package v1

import "github.com/gofiber/fiber/v3"

// RegisterCareer mounts the AI-assisted career tools.
func RegisterCareer(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Jobs != nil {
		h.Jobs.RegisterRoutes(r)
	}
	if h.Learning != nil {
		h.Learning.RegisterRoutes(r)
	}
	if h.Planning != nil {
		h.Planning.RegisterRoutes(r)
	}
	if h.Mentor != nil {
		h.Mentor.RegisterRoutes(r.Group("/mentor"))
	}
}
