// Package services contains server-side business logic. This file implements
// CatalogService, which validates and stores product listings and seeds the
// sample catalog on first start.
package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/farmconnect/internal/server/models"
	"github.com/dmitrijs2005/farmconnect/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/farmconnect/internal/server/validation"
)

// productRules is the declarative rule set for a product submission.
// Only product submissions are validated; profile and cart input goes to
// the store untouched.
var productRules = []validation.Rule{
	validation.TrimmedNonEmpty("name"),
	validation.TrimmedNonEmpty("productname"),
	validation.NonNegativeNumber("priceperkg_l"),
	validation.NonNegativeNumber("amountkg_l"),
	validation.Trimmed("description"),
}

// sampleProducts is inserted once, when the products table is empty.
var sampleProducts = []models.Product{
	{Name: "Farmer John", ProductName: "Carrots", PricePerKg: 40, AmountKg: 100, Description: "Fresh organic carrots"},
	{Name: "Farmer Jane", ProductName: "Apples", PricePerKg: 60, AmountKg: 50, Description: "Crisp and juicy apples"},
	{Name: "Farmer Joe", ProductName: "Tomatoes", PricePerKg: 30, AmountKg: 80, Description: "Ripe red tomatoes"},
}

// CatalogService provides product listing operations:
// - AddListing: validate and store a submission
// - ListProducts: list the whole catalog
// - SeedSampleData: insert the sample rows on an empty table
type CatalogService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewCatalogService constructs a CatalogService using the repository manager.
func NewCatalogService(db *sql.DB, m repomanager.RepositoryManager) *CatalogService {
	return &CatalogService{db: db, repomanager: m}
}

// AddListing applies the product rule set to the raw submission and, when it
// passes, inserts one row and returns the assigned identity. A non-empty
// violation list means the submission never reached the store.
func (s *CatalogService) AddListing(ctx context.Context, fields map[string]any) (int64, []validation.Violation, error) {
	normalized, violations := validation.Apply(productRules, fields)
	if len(violations) > 0 {
		return 0, violations, nil
	}

	product := &models.Product{
		Name:        normalized["name"].(string),
		ProductName: normalized["productname"].(string),
		PricePerKg:  normalized["priceperkg_l"].(float64),
		AmountKg:    normalized["amountkg_l"].(float64),
		Description: normalized["description"].(string),
	}

	repo := s.repomanager.Products(s.db)
	id, err := repo.Add(ctx, product)
	if err != nil {
		return 0, nil, fmt.Errorf("error adding product: %w", err)
	}
	return id, nil, nil
}

// ListProducts returns every listing in store order.
func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	repo := s.repomanager.Products(s.db)
	result, err := repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing products: %w", err)
	}
	return result, nil
}

// SeedSampleData inserts the sample listings, but only when the products
// table is empty, so restarts do not accumulate duplicate rows.
func (s *CatalogService) SeedSampleData(ctx context.Context) error {
	repo := s.repomanager.Products(s.db)

	n, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("error counting products: %w", err)
	}
	if n > 0 {
		return nil
	}

	for _, p := range sampleProducts {
		if _, err := repo.Add(ctx, &p); err != nil {
			return fmt.Errorf("error seeding products: %w", err)
		}
	}
	return nil
}
