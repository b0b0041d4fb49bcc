package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/rentboard/internal/common"
	"github.com/dmitrijs2005/rentboard/internal/dbx"
	"github.com/dmitrijs2005/rentboard/internal/logging"
	"github.com/dmitrijs2005/rentboard/internal/server/models"
	applicationsrepo "github.com/dmitrijs2005/rentboard/internal/server/repositories/applications"
	photosrepo "github.com/dmitrijs2005/rentboard/internal/server/repositories/photos"
	propertiesrepo "github.com/dmitrijs2005/rentboard/internal/server/repositories/properties"
	tenantsrepo "github.com/dmitrijs2005/rentboard/internal/server/repositories/tenants"
	usersrepo "github.com/dmitrijs2005/rentboard/internal/server/repositories/users"
)

// ---- shared helpers and fakes ----

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (nopLogger) With(...any) logging.Logger            { return nopLogger{} }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	getOut *models.User
	getErr error

	exists    bool
	existsErr error

	updatePasswordErr error
	lastPasswordHash  string

	setAdminOut *models.User
	setAdminErr error

	listOut []*models.User
	listErr error

	countOut int64
	countErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	u.ID = 1
	return u, nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsersRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	return f.exists, f.existsErr
}

func (f *fakeUsersRepo) UpdatePassword(ctx context.Context, username, hashedPassword string) error {
	f.lastPasswordHash = hashedPassword
	return f.updatePasswordErr
}

func (f *fakeUsersRepo) SetAdmin(ctx context.Context, id int64, isAdmin bool) (*models.User, error) {
	if f.setAdminErr != nil {
		return nil, f.setAdminErr
	}
	if f.setAdminOut != nil {
		return f.setAdminOut, nil
	}
	return &models.User{ID: id, IsAdmin: isAdmin}, nil
}

func (f *fakeUsersRepo) List(ctx context.Context, offset, limit int) ([]*models.User, error) {
	return f.listOut, f.listErr
}

func (f *fakeUsersRepo) Count(ctx context.Context) (int64, error) { return f.countOut, f.countErr }

type fakePropertiesRepo struct {
	store map[int64]*models.Property

	createErr error
	getErr    error
	updateErr error
	deleteErr error

	listOut []*models.Property
	listErr error

	countOut int64
	countErr error
}

func (f *fakePropertiesRepo) Create(ctx context.Context, p *models.Property) (*models.Property, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	p.ID = int64(len(f.store) + 1)
	if f.store == nil {
		f.store = map[int64]*models.Property{}
	}
	f.store[p.ID] = p
	return p, nil
}

func (f *fakePropertiesRepo) Get(ctx context.Context, id int64) (*models.Property, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	p, ok := f.store[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePropertiesRepo) Update(ctx context.Context, p *models.Property) (*models.Property, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.store[p.ID] = p
	return p, nil
}

func (f *fakePropertiesRepo) Delete(ctx context.Context, id int64) error { return f.deleteErr }

func (f *fakePropertiesRepo) List(ctx context.Context, offset, limit int) ([]*models.Property, error) {
	return f.listOut, f.listErr
}

func (f *fakePropertiesRepo) Count(ctx context.Context) (int64, error) { return f.countOut, f.countErr }

type fakeTenantsRepo struct {
	createOut *models.Tenant
	createErr error

	getOut *models.Tenant
	getErr error

	exists    bool
	existsErr error

	listOut []*models.Tenant
	listErr error

	countOut int64
	countErr error
}

func (f *fakeTenantsRepo) Create(ctx context.Context, t *models.Tenant) (*models.Tenant, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	t.ID = 1
	return t, nil
}

func (f *fakeTenantsRepo) Get(ctx context.Context, id int64) (*models.Tenant, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeTenantsRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return f.exists, f.existsErr
}

func (f *fakeTenantsRepo) List(ctx context.Context, offset, limit int) ([]*models.Tenant, error) {
	return f.listOut, f.listErr
}

func (f *fakeTenantsRepo) Count(ctx context.Context) (int64, error) { return f.countOut, f.countErr }

type fakeApplicationsRepo struct {
	createOut *models.RentalApplication
	createErr error

	getOut *models.RentalApplication
	getErr error

	updateOut *models.RentalApplication
	updateErr error

	listOut []*models.RentalApplication
	listErr error

	countOut int64
	countErr error
}

func (f *fakeApplicationsRepo) Create(ctx context.Context, a *models.RentalApplication) (*models.RentalApplication, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	a.ID = 1
	return a, nil
}

func (f *fakeApplicationsRepo) Get(ctx context.Context, id int64) (*models.RentalApplication, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeApplicationsRepo) UpdateStatus(ctx context.Context, id int64, status string) (*models.RentalApplication, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updateOut != nil {
		return f.updateOut, nil
	}
	return &models.RentalApplication{ID: id, Status: status}, nil
}

func (f *fakeApplicationsRepo) List(ctx context.Context, offset, limit int) ([]*models.RentalApplication, error) {
	return f.listOut, f.listErr
}

func (f *fakeApplicationsRepo) Count(ctx context.Context) (int64, error) {
	return f.countOut, f.countErr
}

type fakePhotosRepo struct {
	createOut *models.PropertyPhoto
	createErr error

	listOut []*models.PropertyPhoto
	listErr error
}

func (f *fakePhotosRepo) Create(ctx context.Context, p *models.PropertyPhoto) (*models.PropertyPhoto, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	p.ID = 1
	return p, nil
}

func (f *fakePhotosRepo) ListByProperty(ctx context.Context, propertyID int64) ([]*models.PropertyPhoto, error) {
	return f.listOut, f.listErr
}

type fakeRepoManager struct {
	u  *fakeUsersRepo
	p  *fakePropertiesRepo
	t  *fakeTenantsRepo
	a  *fakeApplicationsRepo
	ph *fakePhotosRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository       { return m.u }
func (m *fakeRepoManager) Properties(db dbx.DBTX) propertiesrepo.Repository {
	return m.p
}
func (m *fakeRepoManager) Tenants(db dbx.DBTX) tenantsrepo.Repository { return m.t }
func (m *fakeRepoManager) Applications(db dbx.DBTX) applicationsrepo.Repository {
	return m.a
}
func (m *fakeRepoManager) Photos(db dbx.DBTX) photosrepo.Repository { return m.ph }
