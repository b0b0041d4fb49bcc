package photos

import (
	"context"

	"github.com/dmitrijs2005/rentboard/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, photo *models.PropertyPhoto) (*models.PropertyPhoto, error)
	ListByProperty(ctx context.Context, propertyID int64) ([]*models.PropertyPhoto, error)
}
