package profiles

import (
	"context"

	"github.com/dmitrijs2005/farmconnect/internal/server/models"
)

type Repository interface {
	Add(ctx context.Context, profile *models.Profile) error
}
