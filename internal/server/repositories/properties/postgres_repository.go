package properties

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

const propertyColumns = `id, title, description, price, location, number_of_bedrooms, owner_id`

func scanProperty(row *sql.Row) (*models.Property, error) {
	p := &models.Property{}
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.Location,
		&p.NumberOfBedrooms, &p.OwnerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) Create(ctx context.Context, property *models.Property) (*models.Property, error) {

	query :=
		`INSERT INTO properties (title, description, price, location, number_of_bedrooms, owner_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		property.Title, property.Description, property.Price, property.Location,
		property.NumberOfBedrooms, property.OwnerID).Scan(&property.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return property, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`
	return scanProperty(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) Update(ctx context.Context, property *models.Property) (*models.Property, error) {
	query :=
		`UPDATE properties
		 SET title = $1, description = $2, price = $3, location = $4, number_of_bedrooms = $5
		 WHERE id = $6
		 RETURNING ` + propertyColumns

	return scanProperty(r.db.QueryRowContext(ctx, query,
		property.Title, property.Description, property.Price, property.Location,
		property.NumberOfBedrooms, property.ID))
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context, offset, limit int) ([]*models.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties ORDER BY id OFFSET $1 LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Property
	for rows.Next() {
		p := &models.Property{}
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.Location,
			&p.NumberOfBedrooms, &p.OwnerID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM properties`).Scan(&count); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return count, nil
}
