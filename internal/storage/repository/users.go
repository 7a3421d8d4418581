package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/magabrotheeeer/identity-service/internal/models"
)

// CreateUser сохраняет нового пользователя и возвращает его UID.
// При нарушении уникальности возвращает ErrUsernameTaken или
// ErrEmailTaken в зависимости от сработавшего индекса.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	uid := uuid.NewString()
	query := `INSERT INTO users (uid, username, email, full_name, password_hash)
			  VALUES ($1, $2, $3, $4, $5);`
	if _, err := s.DB.ExecContext(ctx, query,
		uid, user.Username, user.Email, user.FullName, user.PasswordHash); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			switch pgErr.ConstraintName {
			case "users_username_key":
				return "", fmt.Errorf("%s: %w", op, ErrUsernameTaken)
			case "users_email_key":
				return "", fmt.Errorf("%s: %w", op, ErrEmailTaken)
			}
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return uid, nil
}

// GetUserByUsername возвращает пользователя по его username.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.GetUserByUsername"
	return s.getUser(ctx, op, `SELECT uid, username, email, full_name, password_hash, create_date, soft_delete
			  FROM users
			  WHERE username = $1`, username)
}

// GetUserByEmail возвращает пользователя по его email.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	return s.getUser(ctx, op, `SELECT uid, username, email, full_name, password_hash, create_date, soft_delete
			  FROM users
			  WHERE email = $1`, email)
}

// GetUserByUID возвращает пользователя по его UID.
func (s *Storage) GetUserByUID(ctx context.Context, userUID string) (*models.User, error) {
	const op = "storage.GetUserByUID"
	return s.getUser(ctx, op, `SELECT uid, username, email, full_name, password_hash, create_date, soft_delete
			  FROM users
			  WHERE uid = $1`, userUID)
}

func (s *Storage) getUser(ctx context.Context, op, query, arg string) (*models.User, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, arg)
	if err := row.Scan(&u.UID, &u.Username, &u.Email, &u.FullName,
		&u.PasswordHash, &u.CreateDate, &u.SoftDelete); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// CountUsers возвращает количество учётных записей.
func (s *Storage) CountUsers(ctx context.Context) (int, error) {
	const op = "storage.CountUsers"
	var count int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}
