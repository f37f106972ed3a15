package products

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

// Add inserts one listing and returns the identity assigned by the store.
func (r *SQLiteRepository) Add(ctx context.Context, p *models.Product) (int64, error) {
	query := `INSERT INTO products (name, productname, priceperkg_l, amountkg_l, description)
	          VALUES (?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query,
		p.Name, p.ProductName, p.PricePerKg, p.AmountKg, p.Description)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return id, nil
}

// GetAll lists every product row in store order (insertion order in practice).
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	query := `SELECT id, name, productname, priceperkg_l, amountkg_l, description FROM products`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Product
	for rows.Next() {
		var item models.Product
		if err := rows.Scan(&item.ID, &item.Name, &item.ProductName,
			&item.PricePerKg, &item.AmountKg, &item.Description); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Count reports the number of product rows. The seed routine uses it to
// decide whether the sample listings are already present.
func (r *SQLiteRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
