package properties

import (
	"context"

	"github.com/dmitrijs2005/rentboard/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, property *models.Property) (*models.Property, error)
	Get(ctx context.Context, id int64) (*models.Property, error)
	Update(ctx context.Context, property *models.Property) (*models.Property, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, offset, limit int) ([]*models.Property, error)
	Count(ctx context.Context) (int64, error)
}
