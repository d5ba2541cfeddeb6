// Package repo is the postgres-backed user store behind API authentication.
// Design runs themselves are never persisted; the engine is stateless.
package repo

import (
	"context"
	"database/sql"
	"errors"
)

// ErrNotFound reports an unknown login.
var ErrNotFound = errors.New("user not found")

type Repository interface {
	CreateUser(ctx context.Context, login, email, passwordHash string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
}

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserDB(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, login, email, passwordHash string) (int, error) {
	var id int
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id",
		login, email, passwordHash).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var (
		id   int
		hash string
	)
	err := r.db.QueryRowContext(ctx,
		"SELECT id, password FROM users WHERE login=$1", login).Scan(&id, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, "", ErrNotFound
	}
	if err != nil {
		return 0, "", err
	}
	return id, hash, nil
}
