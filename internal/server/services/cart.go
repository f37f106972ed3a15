package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/farmconnect/internal/dbx"
	"github.com/dmitrijs2005/farmconnect/internal/server/models"
	"github.com/dmitrijs2005/farmconnect/internal/server/repositories/repomanager"
)

// CartService provides cart line operations. Cart input is deliberately
// unvalidated: lines carry a denormalized product name and a price snapshot
// taken at add-time.
type CartService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewCartService constructs a CartService using the repository manager.
func NewCartService(db *sql.DB, m repomanager.RepositoryManager) *CartService {
	return &CartService{db: db, repomanager: m}
}

// AddLine inserts one cart line. Each call creates a new row, even for a
// product name that is already in the cart.
func (s *CartService) AddLine(ctx context.Context, productName string, price float64) error {
	repo := s.repomanager.Cart(s.db)
	if err := repo.Add(ctx, productName, price); err != nil {
		return fmt.Errorf("error adding to cart: %w", err)
	}
	return nil
}

// List returns every cart line in store order.
func (s *CartService) List(ctx context.Context) ([]models.CartLine, error) {
	repo := s.repomanager.Cart(s.db)
	result, err := repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing cart: %w", err)
	}
	return result, nil
}

// RemoveByName deletes every line matching the exact product name. Zero
// matches still count as success.
func (s *CartService) RemoveByName(ctx context.Context, productName string) error {
	repo := s.repomanager.Cart(s.db)
	if err := repo.RemoveByName(ctx, productName); err != nil {
		return fmt.Errorf("error removing from cart: %w", err)
	}
	return nil
}

// Checkout stores a batch of lines in a single transaction, so a failure
// midway leaves the cart unchanged instead of half-written. Returns the
// number of lines stored.
func (s *CartService) Checkout(ctx context.Context, lines []models.CartLine) (int, error) {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Cart(tx)
		for _, line := range lines {
			if err := repo.Add(ctx, line.ProductName, line.Price); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("error saving cart: %w", err)
	}
	return len(lines), nil
}
