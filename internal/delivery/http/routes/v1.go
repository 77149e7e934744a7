package routes

import (
	"careeriq/internal/delivery/http/middleware"
	v1 "careeriq/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, h v1.Handlers, auth *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	v1.Register(r, h, auth)
}
