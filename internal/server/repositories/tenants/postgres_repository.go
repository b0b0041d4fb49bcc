package tenants

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

func scanTenant(row *sql.Row) (*models.Tenant, error) {
	t := &models.Tenant{}
	var userID sql.NullInt64
	err := row.Scan(&t.ID, &t.Name, &t.Email, &userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	t.UserID = userID.Int64
	return t, nil
}

func (r *PostgresRepository) Create(ctx context.Context, tenant *models.Tenant) (*models.Tenant, error) {

	query :=
		`INSERT INTO tenants (name, email, user_id)
		 VALUES ($1, $2, $3)
		 RETURNING id
		 `

	var userID sql.NullInt64
	if tenant.UserID != 0 {
		userID = sql.NullInt64{Int64: tenant.UserID, Valid: true}
	}

	err := r.db.QueryRowContext(ctx, query, tenant.Name, tenant.Email, userID).Scan(&tenant.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return tenant, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Tenant, error) {
	query := `SELECT id, name, email, user_id FROM tenants WHERE id = $1`
	return scanTenant(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM tenants WHERE email = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) List(ctx context.Context, offset, limit int) ([]*models.Tenant, error) {
	query := `SELECT id, name, email, user_id FROM tenants ORDER BY id OFFSET $1 LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Tenant
	for rows.Next() {
		t := &models.Tenant{}
		var userID sql.NullInt64
		if err := rows.Scan(&t.ID, &t.Name, &t.Email, &userID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		t.UserID = userID.Int64
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM tenants`).Scan(&count); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return count, nil
}
