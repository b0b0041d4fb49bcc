package applications

import (
	"context"

	"github.com/dmitrijs2005/rentboard/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, application *models.RentalApplication) (*models.RentalApplication, error)
	Get(ctx context.Context, id int64) (*models.RentalApplication, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.RentalApplication, error)
	List(ctx context.Context, offset, limit int) ([]*models.RentalApplication, error)
	Count(ctx context.Context) (int64, error)
}
