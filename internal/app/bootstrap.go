package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"careeriq/internal/config"
	"careeriq/internal/delivery/http/handler"
	"careeriq/internal/delivery/http/middleware"
	"careeriq/internal/delivery/http/routes"
	v1 "careeriq/internal/delivery/http/routes/v1"
	"careeriq/internal/observability"
	"careeriq/internal/ws"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// New builds the HTTP app over an already wired container.
func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c.Logger)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

// Bootstrap wires the container, starts the websocket hub and returns the
// app with a cleanup func that stops both.
func Bootstrap(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	model, err := NewModel(ctx, cfg.AI, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("init model: %w", err)
	}

	c, err := NewContainer(ctx, cfg, logger, model)
	if err != nil {
		return nil, nil, err
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	go c.Hub.Run(hubCtx)

	cleanup := func() error {
		stopHub()
		return errors.Join(c.Close(), logger.Sync())
	}
	return New(c), cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *zap.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger.Named("http")).Middleware())
	app.Use(observability.Metrics())
	app.Use(middleware.NewErrorMiddleware(logger.Named("http")).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	authMw := middleware.NewAuthMiddleware(c.Tokens)
	api := v1.Handlers{
		Auth:      handler.NewAuthHandler(c.Auth),
		Dashboard: handler.NewDashboardHandler(c.Catalog),
		Jobs:      handler.NewJobsHandler(c.Career, c.Catalog),
		Learning:  handler.NewLearningHandler(c.Career, c.Catalog),
		Planning:  handler.NewPlanningHandler(c.Career),
		Mentor:    handler.NewMentorHandler(c.Mentor, c.Logger.Named("mentor")),
		Settings:  handler.NewSettingsHandler(c.Settings, c.Catalog),
	}

	routes.NewRegistry(
		handler.NewHealthHandler(c.Career.Available),
		api,
		ws.NewHandler(c.Hub, c.Mentor, c.Logger.Named("ws")),
		authMw,
	).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
