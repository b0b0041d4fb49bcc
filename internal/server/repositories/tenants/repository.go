package tenants

import (
	"context"

	"github.com/dmitrijs2005/rentboard/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, tenant *models.Tenant) (*models.Tenant, error)
	Get(ctx context.Context, id int64) (*models.Tenant, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, offset, limit int) ([]*models.Tenant, error)
	Count(ctx context.Context) (int64, error)
}
