package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/procurement-service/internal/domain"
)

// UserRepository defines read access to the credential store.
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByLogin(ctx context.Context, login string) (*domain.User, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.User, error)
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const query = `
        SELECT id, name, login, password_hash, role
        FROM users WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *userRepository) GetByLogin(ctx context.Context, login string) (*domain.User, error) {
	const query = `
        SELECT id, name, login, password_hash, role
        FROM users WHERE login=$1`
	return r.fetchSingle(ctx, query, login)
}

func (r *userRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.User, error) {
	var (
		user     domain.User
		roleCode int16
	)
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Name,
		&user.Login,
		&user.PasswordHash,
		&roleCode,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	role, err := domain.RoleFromCode(roleCode)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", user.ID, err)
	}
	user.Role = role
	return &user, nil
}

// GetByIDs resolves a set of user ids in a single round-trip. Ids absent
// from the store are simply absent from the result map.
func (r *userRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.User, error) {
	const query = `
        SELECT id, name, login, password_hash, role
        FROM users WHERE id = ANY($1)`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make(map[uuid.UUID]domain.User, len(ids))
	for rows.Next() {
		var (
			user     domain.User
			roleCode int16
		)
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Login,
			&user.PasswordHash,
			&roleCode,
		); err != nil {
			return nil, err
		}
		role, err := domain.RoleFromCode(roleCode)
		if err != nil {
			return nil, fmt.Errorf("user %s: %w", user.ID, err)
		}
		user.Role = role
		users[user.ID] = user
	}
	return users, rows.Err()
}
