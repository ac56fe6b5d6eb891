package storage

import (
	"context"
	"database/sql"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/adubrov/boiler-parts/internal/core/domain"
)

const mysqlErrDuplicateEntry = 1062

const userColumns = "id, username, email, password, created_at, updated_at"

type MySQLUserRepository struct {
	db *sqlx.DB
}

func NewMySQLUserRepository(db *sqlx.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}

func (r *MySQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO users (username, email, password, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		user.Username, user.Email, user.HashedPassword, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		// The unique index on username closes the race the service-level
		// existence check leaves open.
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
			return domain.ErrUsernameTaken
		}
		return errors.Wrap(err, "insert user")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "user insert id")
	}
	user.ID = id

	return nil
}

func (r *MySQLUserRepository) Find(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	err := r.db.GetContext(ctx, &user,
		"SELECT "+userColumns+" FROM users WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "select user")
	}

	return &user, nil
}

func (r *MySQLUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := r.db.GetContext(ctx, &user,
		"SELECT "+userColumns+" FROM users WHERE username = ?", username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "select user by username")
	}

	return &user, nil
}
