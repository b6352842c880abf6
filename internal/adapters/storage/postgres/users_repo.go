package postgres

import (
	"context"
	"database/sql"
	"errors"

	"petweb/internal/domain/users"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (
			id, username, password_hash, user_status, signup_code, created_at
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		u.ID,
		u.Username,
		u.PasswordHash,
		u.UserStatus,
		toNullString(u.SignupCode),
		u.CreatedAt,
	)
	if err != nil {
		// el índice único de username es quien sostiene la invariante;
		// acá solo traducimos el rechazo a un sentinel del dominio
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return users.ErrUsernameTaken
		}
		return err
	}
	return nil
}

func (r *UsersRepo) GetByUsername(ctx context.Context, username string) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, user_status, signup_code, created_at
		FROM users
		WHERE username = $1
	`, username)

	var u users.User
	var signupCode sql.NullString
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.UserStatus,
		&signupCode,
		&u.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}

	if signupCode.Valid {
		u.SignupCode = signupCode.String
	}

	return u, nil
}
