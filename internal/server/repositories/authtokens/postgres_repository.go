package authtokens

import (
	"context"
	"time"

	"github.com/courtside/courtside/internal/dbx"
	"github.com/courtside/courtside/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, token *models.AuthToken) error {

	query :=
		`INSERT INTO auth_tokens (user_id, token, expires_at)
         VALUES ($1, $2, $3)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query, token.UserID, token.Token, token.ExpiresAt).Scan(&token.CreatedAt)
	if err != nil {
		return dbx.TranslateError(err)
	}

	return nil
}

func (r *PostgresRepository) PurgeExpired(ctx context.Context, before time.Time) (int64, error) {
	query := `DELETE FROM auth_tokens WHERE expires_at < $1`

	res, err := r.db.ExecContext(ctx, query, before)
	if err != nil {
		return 0, dbx.TranslateError(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, dbx.TranslateError(err)
	}
	return n, nil
}
