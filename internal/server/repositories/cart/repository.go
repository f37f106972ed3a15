package cart

import (
	"context"

	"github.com/dmitrijs2005/farmconnect/internal/server/models"
)

type Repository interface {
	Add(ctx context.Context, productName string, price float64) error
	GetAll(ctx context.Context) ([]models.CartLine, error)
	RemoveByName(ctx context.Context, productName string) error
}
