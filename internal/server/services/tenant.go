package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/rentboard/internal/common"
	"github.com/dmitrijs2005/rentboard/internal/server/models"
	"github.com/dmitrijs2005/rentboard/internal/server/repositories/repomanager"
)

// TenantService manages renter profiles.
type TenantService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTenantService(db *sql.DB, m repomanager.RepositoryManager) *TenantService {
	return &TenantService{db: db, repomanager: m}
}

// Create stores a tenant profile. The email must be unique across tenants.
func (s *TenantService) Create(ctx context.Context, tenant *models.Tenant) (*models.Tenant, error) {
	if tenant.Name == "" || tenant.Email == "" {
		return nil, common.ErrorValidation
	}

	repo := s.repomanager.Tenants(s.db)
	exists, err := repo.ExistsByEmail(ctx, tenant.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.ErrorAlreadyExists
	}

	return repo.Create(ctx, tenant)
}

func (s *TenantService) Get(ctx context.Context, id int64) (*models.Tenant, error) {
	repo := s.repomanager.Tenants(s.db)
	return repo.Get(ctx, id)
}

func (s *TenantService) List(ctx context.Context, offset, limit int) ([]*models.Tenant, error) {
	repo := s.repomanager.Tenants(s.db)
	return repo.List(ctx, offset, limit)
}
