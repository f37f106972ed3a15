package cart

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

// Add inserts one cart line unconditionally. The inputs are not validated;
// price is stored as a snapshot and never reconciled with the products table.
func (r *SQLiteRepository) Add(ctx context.Context, productName string, price float64) error {
	query := `INSERT INTO cart (productname, price) VALUES (?, ?)`

	_, err := r.db.ExecContext(ctx, query, productName, price)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetAll lists every cart line in store order.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.CartLine, error) {
	query := `SELECT id, productname, price FROM cart`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.CartLine
	for rows.Next() {
		var item models.CartLine
		if err := rows.Scan(&item.ID, &item.ProductName, &item.Price); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// RemoveByName deletes every line whose product name matches exactly.
// Matching zero rows is not an error: the caller cannot distinguish
// "nothing matched" from "matched and removed", so RowsAffected is ignored.
func (r *SQLiteRepository) RemoveByName(ctx context.Context, productName string) error {
	query := `DELETE FROM cart WHERE productname = ?`

	_, err := r.db.ExecContext(ctx, query, productName)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
