package photos

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/rentboard/internal/dbx"
	"github.com/dmitrijs2005/rentboard/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, photo *models.PropertyPhoto) (*models.PropertyPhoto, error) {

	query :=
		`INSERT INTO property_photos (property_id, storage_key)
		 VALUES ($1, $2)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query, photo.PropertyID, photo.StorageKey).
		Scan(&photo.ID, &photo.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return photo, nil
}

func (r *PostgresRepository) ListByProperty(ctx context.Context, propertyID int64) ([]*models.PropertyPhoto, error) {
	query := `SELECT id, property_id, storage_key, created_at FROM property_photos WHERE property_id = $1 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, propertyID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.PropertyPhoto
	for rows.Next() {
		p := &models.PropertyPhoto{}
		if err := rows.Scan(&p.ID, &p.PropertyID, &p.StorageKey, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
