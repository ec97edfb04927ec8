package repository

import (
	"context"
	"fmt"

	"neonbank/database"
	"neonbank/domain/entities"
	"neonbank/domain/interfaces"

	"github.com/jackc/pgx/v5"
)

// AccountRepository implements the AccountRepository interface
type AccountRepository struct {
	q Queryable
}

// NewAccountRepository creates a new account repository backed by the pool
func NewAccountRepository(db *database.DB) *AccountRepository {
	return &AccountRepository{q: db.Pool}
}

func newAccountRepository(tx Queryable) interfaces.AccountRepository {
	return &AccountRepository{q: tx}
}

const accountColumns = `id, account_number, character_name, password_hash, is_admin, balance, created_at`

func (r *AccountRepository) scanAccount(row pgx.Row) (*entities.Account, error) {
	var account entities.Account
	err := row.Scan(
		&account.ID,
		&account.AccountNumber,
		&account.CharacterName,
		&account.PasswordHash,
		&account.IsAdmin,
		&account.Balance,
		&account.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetByAccountNumber retrieves an account by its account number
func (r *AccountRepository) GetByAccountNumber(ctx context.Context, accountNumber string) (*entities.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_number = $1`

	account, err := r.scanAccount(r.q.QueryRow(ctx, query, accountNumber))
	if err != nil {
		return nil, fmt.Errorf("failed to get account %s: %w", accountNumber, err)
	}
	return account, nil
}

// GetByAccountNumberForUpdate retrieves an account and takes a row lock on
// it for the duration of the enclosing transaction
func (r *AccountRepository) GetByAccountNumberForUpdate(ctx context.Context, accountNumber string) (*entities.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_number = $1 FOR UPDATE`

	account, err := r.scanAccount(r.q.QueryRow(ctx, query, accountNumber))
	if err != nil {
		return nil, fmt.Errorf("failed to lock account %s: %w", accountNumber, err)
	}
	return account, nil
}

// GetByCharacterName retrieves an account by its character name
func (r *AccountRepository) GetByCharacterName(ctx context.Context, characterName string) (*entities.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE character_name = $1`

	account, err := r.scanAccount(r.q.QueryRow(ctx, query, characterName))
	if err != nil {
		return nil, fmt.Errorf("failed to get account for character %s: %w", characterName, err)
	}
	return account, nil
}

// Create inserts a new account and fills in its ID and CreatedAt
func (r *AccountRepository) Create(ctx context.Context, account *entities.Account) error {
	query := `
		INSERT INTO accounts (account_number, character_name, password_hash, is_admin, balance)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.q.QueryRow(ctx, query,
		account.AccountNumber,
		account.CharacterName,
		account.PasswordHash,
		account.IsAdmin,
		account.Balance,
	).Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create account %s: %w", account.AccountNumber, err)
	}
	return nil
}

// UpdateBalance sets an account's balance
func (r *AccountRepository) UpdateBalance(ctx context.Context, accountID int64, newBalance int64) error {
	query := `UPDATE accounts SET balance = $1 WHERE id = $2`

	result, err := r.q.Exec(ctx, query, newBalance, accountID)
	if err != nil {
		return fmt.Errorf("failed to update balance for account %d: %w", accountID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("account %d not found", accountID)
	}
	return nil
}
