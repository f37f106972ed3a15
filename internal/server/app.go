// Package server initializes and runs the marketplace application server.
// It opens the SQLite store, applies migrations, seeds the sample catalog,
// and starts the HTTP server with graceful shutdown on termination signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/farmconnect/internal/logging"
	"github.com/dmitrijs2005/farmconnect/internal/server/config"
	"github.com/dmitrijs2005/farmconnect/internal/server/httpapi"
	"github.com/dmitrijs2005/farmconnect/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/farmconnect/internal/server/services"
	_ "modernc.org/sqlite"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	catalog  *services.CatalogService
	profiles *services.ProfileService
	cart     *services.CartService
}

// NewApp opens the store and wires services together. An error here means
// the store could not be opened or migrated; the caller is expected to
// terminate non-zero.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	db, err := sql.Open("sqlite", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	rm, err := repomanager.NewSQLiteRepositoryManager()
	if err != nil {
		return nil, fmt.Errorf("repository init error: %w", err)
	}

	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	catalog := services.NewCatalogService(db, rm)
	if err := catalog.SeedSampleData(ctx); err != nil {
		return nil, fmt.Errorf("db seed error: %w", err)
	}

	return &App{
		config:   c,
		logger:   logger,
		db:       db,
		catalog:  catalog,
		profiles: services.NewProfileService(db, rm),
		cart:     services.NewCartService(db, rm),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := httpapi.NewHTTPServer(app.config, app.logger, app.catalog, app.profiles, app.cart)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	} else {

		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "error closing db", "error", err.Error())
	}
}
