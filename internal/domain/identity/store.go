package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"talento/internal/platform/db"
)

const uniqueViolationCode = "23505"

type Store struct {
	DB db.Querier
}

func NewStore(q db.Querier) *Store {
	return &Store{DB: q}
}

// UsernameExists checks every account, active or not. Issued usernames
// are never recycled.
func (s *Store) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM accounts WHERE username = $1", username).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) FindActiveByUsername(ctx context.Context, username string) (Account, error) {
	var acc Account
	err := s.DB.QueryRow(ctx, `
    SELECT id, national_id, username, email, password_hash, role, active, created_at, last_access
    FROM accounts
    WHERE username = $1 AND active = true
  `, username).Scan(&acc.ID, &acc.NationalID, &acc.Username, &acc.Email, &acc.PasswordHash, &acc.Role, &acc.Active, &acc.CreatedAt, &acc.LastAccess)
	if errors.Is(err, pgx.ErrNoRows) {
		return Account{}, ErrAccountNotFound
	}
	if err != nil {
		return Account{}, err
	}
	return acc, nil
}

func (s *Store) Create(ctx context.Context, acc Account) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO accounts (national_id, username, email, password_hash, role)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id
  `, acc.NationalID, acc.Username, acc.Email, acc.PasswordHash, acc.Role).Scan(&id)
	if err != nil {
		return 0, translatePgError(err)
	}
	return id, nil
}

func (s *Store) UpdateLastAccess(ctx context.Context, accountID int64) error {
	_, err := s.DB.Exec(ctx, "UPDATE accounts SET last_access = now() WHERE id = $1", accountID)
	return err
}

func translatePgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return fmt.Errorf("%s: %w", pgErr.ConstraintName, ErrAccountConflict)
	}
	return err
}
