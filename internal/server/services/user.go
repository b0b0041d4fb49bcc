// Package services contains server-side business logic. This file implements
// UserService: registration, credential verification, bearer-token login,
// password updates, and admin user management.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/rentboard/internal/common"
	"github.com/dmitrijs2005/rentboard/internal/dbx"
	"github.com/dmitrijs2005/rentboard/internal/logging"
	"github.com/dmitrijs2005/rentboard/internal/server/auth"
	"github.com/dmitrijs2005/rentboard/internal/server/config"
	"github.com/dmitrijs2005/rentboard/internal/server/models"
	"github.com/dmitrijs2005/rentboard/internal/server/repositories/repomanager"
)

// UserService provides account and authentication operations:
//   - Register: create accounts
//   - Authenticate / Login: verify credentials and mint bearer tokens
//   - UpdatePassword, SetUserRole, List: account management
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	logger                      logging.Logger
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, l logging.Logger) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		logger:                      l.With("module", "user_service"),
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register creates a new active, non-admin user. It fails with
// common.ErrorAlreadyExists when the username or email is taken and
// common.ErrorValidation when a field is empty.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, common.ErrorValidation
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username:       username,
		Email:          email,
		HashedPassword: hash,
		IsActive:       true,
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)
		exists, err := repo.ExistsByUsernameOrEmail(ctx, username, email)
		if err != nil {
			return fmt.Errorf("error checking user existence: %w", err)
		}
		if exists {
			return common.ErrorAlreadyExists
		}
		user, err = repo.Create(ctx, user)
		if err != nil {
			return fmt.Errorf("error creating user: %w", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate verifies a username/password pair and returns the live user
// record on success. Unknown users, wrong passwords, and deactivated
// accounts all fail with the same common.ErrorUnauthorized so callers
// cannot tell the cases apart.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	ok, err := auth.VerifyPassword(password, user.HashedPassword)
	if err != nil {
		// Stored hash is malformed. Treat as a failed login but leave a trace.
		s.logger.Error(ctx, "malformed password hash", "username", username, "error", err.Error())
		return nil, common.ErrorUnauthorized
	}
	if !ok || !user.IsActive {
		return nil, common.ErrorUnauthorized
	}

	return user, nil
}

// Login authenticates and, on success, issues a signed bearer token carrying
// the username and an admin-flag snapshot.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}

	token, err := auth.IssueToken(user.Username, user.IsAdmin, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// GetByUsername returns the live user record for a verified token subject.
// Deleted and deactivated accounts resolve to common.ErrorUnauthorized.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	if !user.IsActive {
		return nil, common.ErrorUnauthorized
	}

	return user, nil
}

// GetByID returns a user by primary key.
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	return repo.GetByID(ctx, id)
}

// UpdatePassword re-hashes and stores a new password for the user.
func (s *UserService) UpdatePassword(ctx context.Context, username, newPassword string) error {
	if newPassword == "" {
		return common.ErrorValidation
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	repo := s.repomanager.Users(s.db)
	return repo.UpdatePassword(ctx, username, hash)
}

// List returns a page of users for the admin dashboard.
func (s *UserService) List(ctx context.Context, offset, limit int) ([]*models.User, error) {
	repo := s.repomanager.Users(s.db)
	return repo.List(ctx, offset, limit)
}

// SetUserRole updates the admin flag from a role name. Accepted roles are
// "admin" and "user"; anything else fails with common.ErrorValidation.
func (s *UserService) SetUserRole(ctx context.Context, id int64, role string) (*models.User, error) {
	var isAdmin bool
	switch strings.ToLower(role) {
	case "admin":
		isAdmin = true
	case "user":
		isAdmin = false
	default:
		return nil, common.ErrorValidation
	}

	repo := s.repomanager.Users(s.db)
	return repo.SetAdmin(ctx, id, isAdmin)
}
