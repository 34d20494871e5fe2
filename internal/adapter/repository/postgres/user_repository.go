package postgres

import (
	"context"
	"fmt"

	"github.com/srgjo27/hotel_booking/internal/core/domain"
)

type UserRepository struct {
	q querier
}

func (r *UserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
	SELECT id, username, password_hash, role, full_name
	FROM users
	WHERE username = $1
	`

	var u domain.User
	err := r.q.QueryRowContext(ctx, query, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.FullName)
	if err != nil {
		return nil, notFound(err, domain.ErrUserNotFound)
	}

	return &u, nil
}

func (r *UserRepository) InsertUser(ctx context.Context, user *domain.User) error {
	query := `
	INSERT INTO users (id, username, password_hash, role, full_name)
	VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.q.ExecContext(ctx, query, user.ID, user.Username, user.PasswordHash, user.Role, user.FullName)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrUserExists, user.Username)
		}
		return err
	}

	return nil
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT id, username, password_hash, role, full_name FROM users ORDER BY username`)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.FullName); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}
