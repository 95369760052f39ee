package user

import (
	"context"
	"database/sql"
	"errors"
)

var ErrNotFound = errors.New("user not found")

// Account is a locally stored user with its bcrypt hash.
type Account struct {
	User
	PasswordHash string
}

type Repository interface {
	Create(ctx context.Context, acc *Account) error
	FindByEmail(ctx context.Context, email string) (*Account, error)
}

type MySQLRepo struct {
	DB *sql.DB
}

func NewMySQLRepo(db *sql.DB) *MySQLRepo {
	return &MySQLRepo{DB: db}
}

func (r *MySQLRepo) Create(ctx context.Context, acc *Account) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (id, email, password) VALUES (?, ?, ?)",
		acc.ID, acc.Email, acc.PasswordHash,
	)
	return err
}

func (r *MySQLRepo) FindByEmail(ctx context.Context, email string) (*Account, error) {
	var acc Account
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, email, password FROM users WHERE email = ?",
		email,
	).Scan(&acc.ID, &acc.Email, &acc.PasswordHash)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &acc, nil
}
