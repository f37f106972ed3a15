package products

import (
	"context"

	"github.com/dmitrijs2005/farmconnect/internal/server/models"
)

type Repository interface {
	Add(ctx context.Context, product *models.Product) (int64, error)
	GetAll(ctx context.Context) ([]models.Product, error)
	Count(ctx context.Context) (int64, error)
}
