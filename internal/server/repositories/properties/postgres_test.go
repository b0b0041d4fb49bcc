package properties

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/rentboard/internal/common"
	"github.com/dmitrijs2005/rentboard/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+properties`).
		WithArgs("Loft", "Sunny loft", 1200.0, "Riga", 2, int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	p := &models.Property{Title: "Loft", Description: "Sunny loft", Price: 1200, Location: "Riga", NumberOfBedrooms: 2, OwnerID: 7}
	got, err := repo.Create(context.Background(), p)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 3 {
		t.Fatalf("unexpected property: %+v", got)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM properties WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), 99)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestUpdate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "title", "description", "price", "location", "number_of_bedrooms", "owner_id"}).
		AddRow(int64(3), "Loft", "Renovated loft", 1300.0, "Riga", 2, int64(7))
	mock.ExpectQuery(`UPDATE properties`).
		WithArgs("Loft", "Renovated loft", 1300.0, "Riga", 2, int64(3)).
		WillReturnRows(rows)

	p := &models.Property{ID: 3, Title: "Loft", Description: "Renovated loft", Price: 1300, Location: "Riga", NumberOfBedrooms: 2, OwnerID: 7}
	got, err := repo.Update(context.Background(), p)
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Description != "Renovated loft" || got.Price != 1300 {
		t.Fatalf("unexpected property: %+v", got)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM properties WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 99)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestList_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "title", "description", "price", "location", "number_of_bedrooms", "owner_id"}).
		AddRow(int64(1), "Loft", "", 1200.0, "Riga", 2, int64(7)).
		AddRow(int64(2), "Studio", "", 800.0, "Riga", 1, int64(8))
	mock.ExpectQuery(`SELECT .+ FROM properties ORDER BY id OFFSET \$1 LIMIT \$2`).
		WithArgs(0, 10).
		WillReturnRows(rows)

	got, err := repo.List(context.Background(), 0, 10)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 || got[0].Title != "Loft" {
		t.Fatalf("unexpected properties: %+v", got)
	}
}
