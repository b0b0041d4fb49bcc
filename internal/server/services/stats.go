package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/rentboard/internal/server/models"
	"github.com/dmitrijs2005/rentboard/internal/server/repositories/repomanager"
)

// StatsService computes the totals shown on the admin dashboard.
type StatsService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewStatsService(db *sql.DB, m repomanager.RepositoryManager) *StatsService {
	return &StatsService{db: db, repomanager: m}
}

func (s *StatsService) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}
	var err error

	if stats.TotalUsers, err = s.repomanager.Users(s.db).Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalProperties, err = s.repomanager.Properties(s.db).Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalTenants, err = s.repomanager.Tenants(s.db).Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalApplications, err = s.repomanager.Applications(s.db).Count(ctx); err != nil {
		return nil, err
	}

	return stats, nil
}
