package repomanager

import (
	"context"
	"database/sql"

	"github.com/courtside/courtside/internal/dbx"
	"github.com/courtside/courtside/internal/server/repositories/authtokens"
	"github.com/courtside/courtside/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	AuthTokens(db dbx.DBTX) authtokens.Repository
}
