// Package repomanager wires repository constructors together with database
// schema migrations for the server store.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/farmconnect/internal/dbx"
	"github.com/dmitrijs2005/farmconnect/internal/server/repositories/cart"
	"github.com/dmitrijs2005/farmconnect/internal/server/repositories/products"
	"github.com/dmitrijs2005/farmconnect/internal/server/repositories/profiles"
)

// RepositoryManager vends per-table repository implementations bound to a
// DBTX, so services can run the same repository code on *sql.DB or *sql.Tx.
type RepositoryManager interface {
	Products(db dbx.DBTX) products.Repository
	Cart(db dbx.DBTX) cart.Repository
	Profiles(db dbx.DBTX) profiles.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
