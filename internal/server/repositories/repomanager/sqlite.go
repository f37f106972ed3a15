package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/farmconnect/internal/dbx"
	"github.com/dmitrijs2005/farmconnect/internal/server/migrations"
	"github.com/dmitrijs2005/farmconnect/internal/server/repositories/cart"
	"github.com/dmitrijs2005/farmconnect/internal/server/repositories/products"
	"github.com/dmitrijs2005/farmconnect/internal/server/repositories/profiles"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// SQLiteRepositoryManager vends SQLite-backed repository implementations
// and exposes a schema migration hook.
type SQLiteRepositoryManager struct{}

// NewSQLiteRepositoryManager constructs a SQLite-backed RepositoryManager.
func NewSQLiteRepositoryManager() (RepositoryManager, error) {
	return &SQLiteRepositoryManager{}, nil
}

// Products returns a products.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Products(db dbx.DBTX) products.Repository {
	return products.NewSQLiteRepository(db)
}

// Cart returns a cart.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Cart(db dbx.DBTX) cart.Repository {
	return cart.NewSQLiteRepository(db)
}

// Profiles returns a profiles.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Profiles(db dbx.DBTX) profiles.Repository {
	return profiles.NewSQLiteRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}
