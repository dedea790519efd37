// Package app defines the App struct that composes the tool's
// dependencies for one invocation.
//
// It owns:
//   - configuration
//   - the logger
//   - the database descriptor (connections are opened per operation)
//   - the services the commands call
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/deppfellow/products/internal/config"
	"github.com/deppfellow/products/internal/database"
	"github.com/deppfellow/products/internal/errs"
	loggerPkg "github.com/deppfellow/products/internal/logger"
	"github.com/deppfellow/products/internal/model"
	"github.com/deppfellow/products/internal/repository"
	"github.com/deppfellow/products/internal/service"
)

// App is the application container.
type App struct {
	Config   *config.Config
	Logger   *zerolog.Logger
	DB       *database.Database
	Services *service.Services
}

// Open loads configuration from the environment and builds an App
// whose logs go to logOut.
func Open(logOut io.Writer) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errs.NewConfigError(err)
	}

	logger := loggerPkg.New(cfg.Observability, logOut)

	return New(cfg, &logger)
}

// New constructs an App. Nothing is dialed here; the first operation
// opens the first connection.
func New(cfg *config.Config, logger *zerolog.Logger) (*App, error) {
	db, err := database.New(cfg, logger)
	if err != nil {
		return nil, errs.NewConfigError(fmt.Errorf("failed to initialize database: %w", err))
	}

	logger.Debug().
		Str("env", cfg.Primary.Env).
		Str("host", cfg.Database.Host).
		Int("port", cfg.Database.Port).
		Str("database", cfg.Database.Name).
		Msg("application initialized")

	return &App{
		Config:   cfg,
		Logger:   logger,
		DB:       db,
		Services: service.NewServices(db, repository.NewRepositories(), logger),
	}, nil
}

func (a *App) EnsureSchema(ctx context.Context) error {
	return a.Services.Schema.Ensure(ctx)
}

func (a *App) AddProduct(ctx context.Context, in service.AddProductInput) error {
	_, err := a.Services.Products.Add(ctx, in)
	return err
}

func (a *App) ListProducts(ctx context.Context) ([]model.Record, error) {
	return a.Services.Products.List(ctx)
}

func (a *App) FindProducts(ctx context.Context, name string) ([]model.Record, error) {
	return a.Services.Products.Find(ctx, name)
}
