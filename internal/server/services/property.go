package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/rentboard/internal/common"
	"github.com/dmitrijs2005/rentboard/internal/server/models"
	"github.com/dmitrijs2005/rentboard/internal/server/repositories/repomanager"
)

// PropertyService provides CRUD operations over rental listings. Ownership
// and role checks happen in the HTTP layer after session resolution; the
// service only touches storage.
type PropertyService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewPropertyService(db *sql.DB, m repomanager.RepositoryManager) *PropertyService {
	return &PropertyService{db: db, repomanager: m}
}

// Create stores a new listing owned by ownerID.
func (s *PropertyService) Create(ctx context.Context, property *models.Property, ownerID int64) (*models.Property, error) {
	if property.Title == "" || property.Location == "" {
		return nil, common.ErrorValidation
	}

	property.OwnerID = ownerID
	repo := s.repomanager.Properties(s.db)
	return repo.Create(ctx, property)
}

func (s *PropertyService) Get(ctx context.Context, id int64) (*models.Property, error) {
	repo := s.repomanager.Properties(s.db)
	return repo.Get(ctx, id)
}

func (s *PropertyService) List(ctx context.Context, offset, limit int) ([]*models.Property, error) {
	repo := s.repomanager.Properties(s.db)
	return repo.List(ctx, offset, limit)
}

// Update applies a partial update. Only non-nil fields of upd replace the
// stored values; the owner never changes.
func (s *PropertyService) Update(ctx context.Context, id int64, upd *models.PropertyUpdate) (*models.Property, error) {
	repo := s.repomanager.Properties(s.db)

	property, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		property.Title = *upd.Title
	}
	if upd.Description != nil {
		property.Description = *upd.Description
	}
	if upd.Price != nil {
		property.Price = *upd.Price
	}
	if upd.Location != nil {
		property.Location = *upd.Location
	}
	if upd.NumberOfBedrooms != nil {
		property.NumberOfBedrooms = *upd.NumberOfBedrooms
	}

	return repo.Update(ctx, property)
}

func (s *PropertyService) Delete(ctx context.Context, id int64) error {
	repo := s.repomanager.Properties(s.db)
	return repo.Delete(ctx, id)
}
