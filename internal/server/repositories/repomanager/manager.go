// Package repomanager constructs repositories over a shared DB handle so
// services can run them either directly or inside a transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/rentboard/internal/dbx"
	"github.com/dmitrijs2005/rentboard/internal/server/repositories/applications"
	"github.com/dmitrijs2005/rentboard/internal/server/repositories/photos"
	"github.com/dmitrijs2005/rentboard/internal/server/repositories/properties"
	"github.com/dmitrijs2005/rentboard/internal/server/repositories/tenants"
	"github.com/dmitrijs2005/rentboard/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Properties(db dbx.DBTX) properties.Repository
	Tenants(db dbx.DBTX) tenants.Repository
	Applications(db dbx.DBTX) applications.Repository
	Photos(db dbx.DBTX) photos.Repository
}
