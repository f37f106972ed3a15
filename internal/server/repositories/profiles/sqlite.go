package profiles

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/farmconnect/internal/dbx"
	"github.com/dmitrijs2005/farmconnect/internal/server/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Add inserts one profile row. No validation is applied; the password is
// stored exactly as submitted (see models.Profile).
func (r *SQLiteRepository) Add(ctx context.Context, p *models.Profile) error {
	query := `INSERT INTO profiles (name, email, password, phone, location, farmingtype, description)
	          VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		p.Name, p.Email, p.Password, p.Phone, p.Location, p.FarmingType, p.Description)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
