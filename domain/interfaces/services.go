package interfaces

import (
	"context"

	"neonbank/domain/entities"
)

// LedgerService is the transaction engine: every balance mutation in the
// system happens inside one of its calls.
type LedgerService interface {
	// Transfer atomically moves amount cents between two accounts and
	// appends the transaction record. Either everything commits or
	// nothing does.
	Transfer(ctx context.Context, fromAccountNumber, toAccountNumber string, amount int64, memo string, category entities.TransactionCategory) (*entities.TransferResult, error)

	// AdjustBalance credits (amount > 0) or debits (amount < 0) a target
	// account against the system reserve account, recording an audit entry
	// on a best-effort basis.
	AdjustBalance(ctx context.Context, admin *entities.Account, targetAccountNumber string, amount int64, reason string) (*entities.Transaction, error)

	// History returns an account's transactions, newest first
	History(ctx context.Context, accountNumber string, limit, offset int) ([]*entities.Transaction, error)

	// SearchTransactions filters an account's transactions by memo or
	// counterparty account number
	SearchTransactions(ctx context.Context, accountNumber string, query string, limit int) ([]*entities.Transaction, error)
}

// CasinoService orchestrates bets and payouts against the house account
type CasinoService interface {
	// SpinGlitchGrid plays one round of the 3-reel slot for bet cents
	SpinGlitchGrid(ctx context.Context, playerAccountNumber string, bet int64) (*entities.GridSpinResult, error)

	// SpinStarlight plays one round of the 5x3 multiline slot at
	// betPerLine cents per payline (total stake is betPerLine * 9)
	SpinStarlight(ctx context.Context, playerAccountNumber string, betPerLine int64) (*entities.MultilineSpinResult, error)
}

// AccountService handles registration, authentication and account reads
type AccountService interface {
	// Register creates an account with a fresh NC-XXXX-XXXX account number
	// and the configured starting balance
	Register(ctx context.Context, characterName, password string) (*entities.Account, error)

	// Authenticate verifies a character name and password pair
	Authenticate(ctx context.Context, characterName, password string) (*entities.Account, error)

	// GetByAccountNumber resolves an account or returns ErrAccountNotFound
	GetByAccountNumber(ctx context.Context, accountNumber string) (*entities.Account, error)
}

// AdminService covers the administrative surface outside direct balance moves
type AdminService interface {
	// UpdateGameConfig toggles a game and/or sets its payout percentage
	// (within [50,99]), recording an audit entry on a best-effort basis
	UpdateGameConfig(ctx context.Context, admin *entities.Account, gameName string, enabled *bool, payoutPercentage *float64) (*entities.GameConfig, error)

	// ListGameConfigs returns all game configurations
	ListGameConfigs(ctx context.Context) ([]*entities.GameConfig, error)

	// ListAuditLogs returns audit entries, newest first
	ListAuditLogs(ctx context.Context, limit, offset int) ([]*entities.AuditLog, error)

	// ListTransactions returns all transactions, newest first
	ListTransactions(ctx context.Context, limit, offset int) ([]*entities.Transaction, error)
}
