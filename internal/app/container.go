package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"careeriq/internal/ai"
	"careeriq/internal/config"
	"careeriq/internal/database"
	dbpostgres "careeriq/internal/database/postgres"
	"careeriq/internal/fixtures"
	"careeriq/internal/pkg/jwt"
	"careeriq/internal/repository"
	"careeriq/internal/usecase"
	ucauth "careeriq/internal/usecase/auth"
	useruc "careeriq/internal/usecase/user"
	"careeriq/internal/ws"

	"go.uber.org/zap"
)

type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB

	Catalog repository.Catalog
	Model   ai.Model

	Career   *usecase.CareerUsecase
	Mentor   *usecase.Mentor
	Auth     *ucauth.Service
	Settings *useruc.Service
	Tokens   *jwt.HMACService
	Hub      *ws.Hub
}

// NewContainer wires every dependency. A nil model means the provider is not
// configured; the service still starts and AI features report unavailable.
func NewContainer(ctx context.Context, cfg config.Config, logger *zap.Logger, model ai.Model) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Container{Config: cfg, Logger: logger, Model: model}

	if cfg.Database.Enabled() {
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		db, err := dbpostgres.Connect(connectCtx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect catalog database: %w", err)
		}
		c.DB = db
		c.Catalog = repository.NewPostgresCatalog(db)
		logger.Info("catalog source", zap.String("source", "postgres"), zap.String("host", cfg.Database.DBHost))
	} else {
		data, err := fixtures.Load()
		if err != nil {
			return nil, fmt.Errorf("load fixtures: %w", err)
		}
		c.Catalog = repository.NewFixtureCatalog(data)
		logger.Info("catalog source", zap.String("source", "fixtures"))
	}

	c.Career = usecase.NewCareerUsecase(c.Catalog, model, usecase.ModelNames{
		Default:  cfg.AI.Model,
		Analysis: cfg.AI.AnalysisModel,
	}, logger.Named("career"))
	c.Mentor = usecase.NewMentor(model, cfg.AI.Model, logger.Named("mentor"))

	c.Tokens = jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiresIn, cfg.App.AppName)
	c.Auth = ucauth.NewService(c.Tokens)
	c.Settings = useruc.NewService()
	c.Hub = ws.NewHub(logger.Named("ws"))

	return c, nil
}

// NewModel connects the Gemini adapter behind the metrics decorator. A missing
// credential is not an error: it returns a nil model and logs a warning.
func NewModel(ctx context.Context, cfg config.AIConfig, logger *zap.Logger) (ai.Model, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	g, err := ai.NewGemini(ctx, cfg.APIKey, logger.Named("gemini"))
	if errors.Is(err, ai.ErrMissingCredential) {
		logger.Warn("API_KEY is not set; AI features are disabled")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ai.NewInstrumented(g, logger.Named("ai")), nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
