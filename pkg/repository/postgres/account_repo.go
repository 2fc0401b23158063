package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkuznecov/bookmarkd/pkg/account"
)

// AccountRepository implements account.Repository backed by PostgreSQL (pgx).
// Emails are stored and matched exactly as given; uniqueness is enforced by
// the database so racing signups cannot both succeed.
type AccountRepository struct {
	pool *pgxpool.Pool
}

func NewAccountRepository(pool *pgxpool.Pool) (*AccountRepository, error) {
	repo := &AccountRepository{pool: pool}
	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *AccountRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS accounts (
			id UUID PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);
	`)
	return err
}

func (r *AccountRepository) Create(ctx context.Context, acct account.Account) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO accounts (id, email, password_hash, first_name, last_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, acct.ID, acct.Email, acct.PasswordHash, acct.FirstName, acct.LastName, acct.CreatedAt, acct.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return account.ErrCredentialsTaken
		}
		return err
	}
	return nil
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (account.Account, error) {
	return r.getOne(ctx, `
		SELECT id, email, password_hash, first_name, last_name, created_at, updated_at
		FROM accounts WHERE email = $1
	`, email)
}

func (r *AccountRepository) GetByID(ctx context.Context, id uuid.UUID) (account.Account, error) {
	return r.getOne(ctx, `
		SELECT id, email, password_hash, first_name, last_name, created_at, updated_at
		FROM accounts WHERE id = $1
	`, id)
}

func (r *AccountRepository) Update(ctx context.Context, acct account.Account) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE accounts
		SET email = $2, first_name = $3, last_name = $4, updated_at = $5
		WHERE id = $1
	`, acct.ID, acct.Email, acct.FirstName, acct.LastName, acct.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return account.ErrCredentialsTaken
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return account.ErrNotFound
	}
	return nil
}

func (r *AccountRepository) getOne(ctx context.Context, query string, arg any) (account.Account, error) {
	row := r.pool.QueryRow(ctx, query, arg)
	var acct account.Account
	err := row.Scan(&acct.ID, &acct.Email, &acct.PasswordHash,
		&acct.FirstName, &acct.LastName, &acct.CreatedAt, &acct.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.Account{}, account.ErrNotFound
		}
		return account.Account{}, err
	}
	return acct, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
