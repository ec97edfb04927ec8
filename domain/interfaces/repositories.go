package interfaces

import (
	"context"

	"neonbank/domain/entities"
)

// AccountRepository defines data access for accounts. Lookups return
// (nil, nil) when no row matches. Balance mutation goes through
// UpdateBalance only, and only the ledger service calls it — that
// discipline is what keeps the conservation invariant provable.
type AccountRepository interface {
	// GetByAccountNumber retrieves an account by its account number
	GetByAccountNumber(ctx context.Context, accountNumber string) (*entities.Account, error)

	// GetByAccountNumberForUpdate retrieves an account and takes a row lock
	// on it for the duration of the enclosing unit of work
	GetByAccountNumberForUpdate(ctx context.Context, accountNumber string) (*entities.Account, error)

	// GetByCharacterName retrieves an account by its character name
	GetByCharacterName(ctx context.Context, characterName string) (*entities.Account, error)

	// Create inserts a new account and fills in its ID and CreatedAt
	Create(ctx context.Context, account *entities.Account) error

	// UpdateBalance sets an account's balance
	UpdateBalance(ctx context.Context, accountID int64, newBalance int64) error
}

// TransactionRepository defines data access for the immutable transaction log
type TransactionRepository interface {
	// Create appends a transaction record and fills in its ID and CreatedAt
	Create(ctx context.Context, txn *entities.Transaction) error

	// GetByAccount returns transactions where the account is sender or
	// receiver, newest first
	GetByAccount(ctx context.Context, accountID int64, limit, offset int) ([]*entities.Transaction, error)

	// Search returns an account's transactions whose memo or counterparty
	// account number matches the query, newest first
	Search(ctx context.Context, accountID int64, query string, limit int) ([]*entities.Transaction, error)

	// GetAll returns all transactions, newest first
	GetAll(ctx context.Context, limit, offset int) ([]*entities.Transaction, error)
}

// AuditLogRepository defines data access for admin audit records
type AuditLogRepository interface {
	// Create appends an audit log entry
	Create(ctx context.Context, log *entities.AuditLog) error

	// List returns audit log entries, newest first
	List(ctx context.Context, limit, offset int) ([]*entities.AuditLog, error)
}

// GameConfigRepository defines data access for per-game casino configuration
type GameConfigRepository interface {
	// GetByName returns the config for a game, creating the default
	// (enabled, 102%) if none exists yet
	GetByName(ctx context.Context, gameName string) (*entities.GameConfig, error)

	// Update persists changes to a game's config
	Update(ctx context.Context, config *entities.GameConfig) error

	// List returns all game configs
	List(ctx context.Context) ([]*entities.GameConfig, error)
}

// UnitOfWork defines a transactional boundary over the repositories.
// Repositories obtained from it share one database transaction; Commit
// makes all their writes visible atomically.
type UnitOfWork interface {
	// Begin starts the transaction
	Begin(ctx context.Context) error

	// Commit commits the transaction
	Commit() error

	// Rollback rolls back the transaction; it is a no-op after Commit
	Rollback() error

	AccountRepository() AccountRepository
	TransactionRepository() TransactionRepository
	AuditLogRepository() AuditLogRepository
	GameConfigRepository() GameConfigRepository
}

// UnitOfWorkFactory creates UnitOfWork instances
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}
