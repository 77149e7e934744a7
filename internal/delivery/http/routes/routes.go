package routes

import (
	"careeriq/internal/delivery/http/handler"
	"careeriq/internal/delivery/http/middleware"
	v1 "careeriq/internal/delivery/http/routes/v1"
	"careeriq/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	health *handler.HealthHandler
	api    v1.Handlers
	ws     *ws.Handler
	auth   *middleware.AuthMiddleware
}

func NewRegistry(health *handler.HealthHandler, api v1.Handlers, wsHandler *ws.Handler, auth *middleware.AuthMiddleware) *Registry {
	return &Registry{health: health, api: api, ws: wsHandler, auth: auth}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerMetrics(app)
	r.registerWS(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.health != nil {
		r.health.RegisterRoutes(app)
	}
}

func (r *Registry) registerMetrics(app *fiber.App) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.ws == nil || r.auth == nil {
		return
	}
	app.Get("/ws/mentor", r.auth.Middleware(), r.ws.HandleMentorWS)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.api, r.auth)
}
