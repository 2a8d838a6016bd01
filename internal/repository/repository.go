package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dan9191/thingful-users/internal/models"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// uniqueViolation is the postgres SQLSTATE for unique_violation
const uniqueViolation = pq.ErrorCode("23505")

var (
	// ErrDuplicateUserName is returned when the user_name unique constraint rejects an insert
	ErrDuplicateUserName = errors.New("user_name already exists")
	// ErrUserNotFound is returned when no row matches a lookup
	ErrUserNotFound = errors.New("user not found")
)

// Repository provides database operations
type Repository struct {
	db *sqlx.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// HasUserWithUserName reports whether a user with exactly this user_name exists
func (r *Repository) HasUserWithUserName(ctx context.Context, userName string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM thingful_users WHERE user_name = $1)`
	if err := r.db.GetContext(ctx, &exists, query, userName); err != nil {
		return false, fmt.Errorf("failed to check user_name: %w", err)
	}
	return exists, nil
}

// InsertUser stores a new user and returns the row with id and date_created populated
func (r *Repository) InsertUser(ctx context.Context, newUser models.NewUser) (*models.User, error) {
	user := &models.User{}
	query := `
		INSERT INTO thingful_users (user_name, password, full_name, nick_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_name, full_name, nick_name, password, date_created`
	err := r.db.QueryRowxContext(ctx, query,
		newUser.UserName, newUser.Password, newUser.FullName, nullString(newUser.NickName)).
		StructScan(user)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, fmt.Errorf("failed to create user %q: %w", newUser.UserName, ErrDuplicateUserName)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// FindUserByID retrieves a user by id
func (r *Repository) FindUserByID(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, user_name, full_name, nick_name, password, date_created
		FROM thingful_users
		WHERE id = $1`
	err := r.db.GetContext(ctx, user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
