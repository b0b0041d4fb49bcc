package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/rentboard/internal/common"
	"github.com/dmitrijs2005/rentboard/internal/dbx"
	"github.com/dmitrijs2005/rentboard/internal/server/models"
	"github.com/dmitrijs2005/rentboard/internal/server/repositories/repomanager"
)

// ApplicationService manages rental applications submitted by tenants for
// properties.
type ApplicationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewApplicationService(db *sql.DB, m repomanager.RepositoryManager) *ApplicationService {
	return &ApplicationService{db: db, repomanager: m}
}

// Submit creates a pending application after checking that both the tenant
// and the property exist. The existence checks and the insert run in one
// transaction.
func (s *ApplicationService) Submit(ctx context.Context, tenantID, propertyID int64) (*models.RentalApplication, error) {
	application := &models.RentalApplication{
		TenantID:   tenantID,
		PropertyID: propertyID,
		Status:     models.ApplicationStatusPending,
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Tenants(tx).Get(ctx, tenantID); err != nil {
			return fmt.Errorf("tenant lookup: %w", err)
		}
		if _, err := s.repomanager.Properties(tx).Get(ctx, propertyID); err != nil {
			return fmt.Errorf("property lookup: %w", err)
		}
		var err error
		application, err = s.repomanager.Applications(tx).Create(ctx, application)
		return err
	}); err != nil {
		return nil, err
	}

	return application, nil
}

func (s *ApplicationService) Get(ctx context.Context, id int64) (*models.RentalApplication, error) {
	repo := s.repomanager.Applications(s.db)
	return repo.Get(ctx, id)
}

// ApplicantUserID returns the account id managing the tenant behind an
// application, for ownership checks. Zero means the tenant is unlinked.
func (s *ApplicationService) ApplicantUserID(ctx context.Context, application *models.RentalApplication) (int64, error) {
	tenant, err := s.repomanager.Tenants(s.db).Get(ctx, application.TenantID)
	if err != nil {
		return 0, err
	}
	return tenant.UserID, nil
}

// UpdateStatus moves an application to a new status. The status must be one
// of the known values.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id int64, status string) (*models.RentalApplication, error) {
	if !models.ValidApplicationStatus(status) {
		return nil, common.ErrorValidation
	}

	repo := s.repomanager.Applications(s.db)
	return repo.UpdateStatus(ctx, id, status)
}

func (s *ApplicationService) List(ctx context.Context, offset, limit int) ([]*models.RentalApplication, error) {
	repo := s.repomanager.Applications(s.db)
	return repo.List(ctx, offset, limit)
}
