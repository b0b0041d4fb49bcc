package applications

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/rentboard/internal/common"
	"github.com/dmitrijs2005/rentboard/internal/dbx"
	"github.com/dmitrijs2005/rentboard/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const applicationColumns = `id, tenant_id, property_id, status, submission_date`

func scanApplication(row *sql.Row) (*models.RentalApplication, error) {
	a := &models.RentalApplication{}
	err := row.Scan(&a.ID, &a.TenantID, &a.PropertyID, &a.Status, &a.SubmissionDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *PostgresRepository) Create(ctx context.Context, application *models.RentalApplication) (*models.RentalApplication, error) {

	query :=
		`INSERT INTO rental_applications (tenant_id, property_id, status)
		 VALUES ($1, $2, $3)
		 RETURNING id, submission_date
		 `

	err := r.db.QueryRowContext(ctx, query,
		application.TenantID, application.PropertyID, application.Status).
		Scan(&application.ID, &application.SubmissionDate)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return application, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.RentalApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM rental_applications WHERE id = $1`
	return scanApplication(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id int64, status string) (*models.RentalApplication, error) {
	query := `UPDATE rental_applications SET status = $1 WHERE id = $2 RETURNING ` + applicationColumns
	return scanApplication(r.db.QueryRowContext(ctx, query, status, id))
}

func (r *PostgresRepository) List(ctx context.Context, offset, limit int) ([]*models.RentalApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM rental_applications ORDER BY id OFFSET $1 LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.RentalApplication
	for rows.Next() {
		a := &models.RentalApplication{}
		if err := rows.Scan(&a.ID, &a.TenantID, &a.PropertyID, &a.Status, &a.SubmissionDate); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rental_applications`).Scan(&count); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return count, nil
}
