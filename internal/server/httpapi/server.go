// Package httpapi exposes the platform over HTTP: public login/registration
// and listing routes, and bearer-token protected resource routes.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/dmitrijs2005/rentboard/internal/logging"
	"github.com/dmitrijs2005/rentboard/internal/server/models"
	"github.com/dmitrijs2005/rentboard/internal/server/services"
)

// Service contracts consumed by the HTTP layer. The concrete implementations
// live in internal/server/services; tests substitute fakes.

type UserService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpdatePassword(ctx context.Context, username, newPassword string) error
	List(ctx context.Context, offset, limit int) ([]*models.User, error)
	SetUserRole(ctx context.Context, id int64, role string) (*models.User, error)
}

type PropertyService interface {
	Create(ctx context.Context, property *models.Property, ownerID int64) (*models.Property, error)
	Get(ctx context.Context, id int64) (*models.Property, error)
	List(ctx context.Context, offset, limit int) ([]*models.Property, error)
	Update(ctx context.Context, id int64, upd *models.PropertyUpdate) (*models.Property, error)
	Delete(ctx context.Context, id int64) error
}

type TenantService interface {
	Create(ctx context.Context, tenant *models.Tenant) (*models.Tenant, error)
	Get(ctx context.Context, id int64) (*models.Tenant, error)
	List(ctx context.Context, offset, limit int) ([]*models.Tenant, error)
}

type ApplicationService interface {
	Submit(ctx context.Context, tenantID, propertyID int64) (*models.RentalApplication, error)
	Get(ctx context.Context, id int64) (*models.RentalApplication, error)
	ApplicantUserID(ctx context.Context, application *models.RentalApplication) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.RentalApplication, error)
	List(ctx context.Context, offset, limit int) ([]*models.RentalApplication, error)
}

type PhotoService interface {
	RequestUpload(ctx context.Context, propertyID int64) (*models.PropertyPhoto, string, error)
	List(ctx context.Context, propertyID int64) ([]services.PhotoLink, error)
}

type StatsService interface {
	Dashboard(ctx context.Context) (*models.DashboardStats, error)
}

type Server struct {
	address      string
	logger       logging.Logger
	users        UserService
	properties   PropertyService
	tenants      TenantService
	applications ApplicationService
	photos       PhotoService
	stats        StatsService
	jwtSecret    []byte
	corsOrigin   string
}

func NewServer(address string, l logging.Logger,
	us UserService, ps PropertyService, ts TenantService, as ApplicationService,
	phs PhotoService, ss StatsService, secretKey, corsOrigin string) *Server {
	return &Server{
		address:      address,
		logger:       l.With("module", "http_server"),
		users:        us,
		properties:   ps,
		tenants:      ts,
		applications: as,
		photos:       phs,
		stats:        ss,
		jwtSecret:    []byte(secretKey),
		corsOrigin:   corsOrigin,
	}
}

// Routes builds the router: a public group for registration, login, and
// listing browsing, and a protected group behind the bearer-token session
// resolver.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{s.corsOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Get("/", s.handleRoot)

	// Public routes.
	r.Group(func(r chi.Router) {
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/token", s.handleLogin)
		r.Get("/properties", s.handleListProperties)
		r.Get("/properties/{propertyID}", s.handleGetProperty)
	})

	// Protected routes.
	r.Group(func(r chi.Router) {
		r.Use(s.currentUser)

		r.Put("/auth/password", s.handleUpdatePassword)

		r.Post("/properties", s.handleCreateProperty)
		r.Put("/properties/{propertyID}", s.handleUpdateProperty)
		r.Delete("/properties/{propertyID}", s.handleDeleteProperty)
		r.Post("/properties/{propertyID}/photos", s.handleRequestPhotoUpload)
		r.Get("/properties/{propertyID}/photos", s.handleListPhotos)

		r.Post("/tenants", s.handleCreateTenant)
		r.Get("/tenants", s.handleListTenants)
		r.Get("/tenants/{tenantID}", s.handleGetTenant)

		r.Post("/applications", s.handleSubmitApplication)
		r.Get("/applications", s.handleListApplications)
		r.Get("/applications/{applicationID}", s.handleGetApplication)
		r.Put("/applications/{applicationID}/status", s.handleUpdateApplicationStatus)

		r.Get("/admin/users", s.handleListUsers)
		r.Put("/admin/users/{userID}/role", s.handleUpdateUserRole)
		r.Get("/admin/analytics", s.handleAnalytics)
	})

	return r
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Welcome to the Property Management API"})
}
