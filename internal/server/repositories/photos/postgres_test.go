package photos

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
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

func TestCreate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Now()
	mock.ExpectQuery(`INSERT\s+INTO\s+property_photos`).
		WithArgs(int64(5), "properties/5/abc").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), created))

	photo, err := repo.Create(context.Background(), &models.PropertyPhoto{
		PropertyID: 5,
		StorageKey: "properties/5/abc",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if photo.ID != 1 || !photo.CreatedAt.Equal(created) {
		t.Fatalf("unexpected photo: %+v", photo)
	}
}

func TestListByProperty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "property_id", "storage_key", "created_at"}).
		AddRow(int64(1), int64(5), "properties/5/a", time.Now()).
		AddRow(int64(2), int64(5), "properties/5/b", time.Now())

	mock.ExpectQuery(`SELECT\s+id,\s+property_id,\s+storage_key,\s+created_at\s+FROM\s+property_photos`).
		WithArgs(int64(5)).
		WillReturnRows(rows)

	photos, err := repo.ListByProperty(context.Background(), 5)
	if err != nil {
		t.Fatalf("ListByProperty error: %v", err)
	}
	if len(photos) != 2 {
		t.Fatalf("got %d photos, want 2", len(photos))
	}
	if photos[0].StorageKey != "properties/5/a" {
		t.Fatalf("unexpected first photo: %+v", photos[0])
	}
}
