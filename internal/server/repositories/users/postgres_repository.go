package users

import (
	"context"

	"github.com/courtside/courtside/internal/dbx"
	"github.com/courtside/courtside/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (email, password_hash, first_name, last_name, role)
         VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.Email, user.PasswordHash, user.FirstName, user.LastName, string(user.Role)).
		Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		return nil, dbx.TranslateError(err)
	}

	return user, nil
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT id, email, password_hash, first_name, last_name, role, created_at FROM users
		 WHERE email = $1
		 `

	user := &models.User{}
	var role string
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName, &role, &user.CreatedAt)

	if err != nil {
		return nil, dbx.TranslateError(err)
	}

	user.Role = models.Role(role)
	return user, nil
}
