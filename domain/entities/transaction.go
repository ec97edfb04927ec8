package entities

import "time"

// MaxMemoLength is the longest memo a transaction may carry.
const MaxMemoLength = 140

// TransactionCategory tags a transaction with the operation that produced it
type TransactionCategory string

const (
	CategoryTransfer        TransactionCategory = "transfer"
	CategoryCasinoBet       TransactionCategory = "casino_bet"
	CategoryCasinoWin       TransactionCategory = "casino_win"
	CategoryAdminAdjustment TransactionCategory = "admin_adjustment"
)

// Valid reports whether the category is one of the known tags
func (c TransactionCategory) Valid() bool {
	switch c {
	case CategoryTransfer, CategoryCasinoBet, CategoryCasinoWin, CategoryAdminAdjustment:
		return true
	}
	return false
}

// Transaction is the immutable record of a committed transfer. It is
// created inside the same database transaction as the balance mutations
// it describes and is never updated or deleted afterwards.
type Transaction struct {
	ID            int64               `db:"id"`
	FromAccountID int64               `db:"from_account_id"`
	ToAccountID   int64               `db:"to_account_id"`
	Amount        int64               `db:"amount"`
	Memo          string              `db:"memo"`
	Category      TransactionCategory `db:"category"`
	CreatedAt     time.Time           `db:"created_at"`

	// Populated on reads via joins; empty on freshly created records.
	FromAccountNumber string `db:"-"`
	ToAccountNumber   string `db:"-"`
}

// TransferResult carries a committed transfer together with the balances
// both accounts were left with.
type TransferResult struct {
	Transaction *Transaction
	FromBalance int64
	ToBalance   int64
}
