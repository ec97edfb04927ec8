package entities

import "time"

// Well-known account numbers seeded by the initial migration.
const (
	// HouseAccountNumber is the counterparty for every casino bet and win.
	HouseAccountNumber = "NC-CASA-0000"

	// SystemAccountNumber is the counterparty for admin balance adjustments.
	SystemAccountNumber = "NC-SYST-EM00"
)

// Account represents a bank account in the game economy.
// Balance is stored in cents and must never go negative; it is only
// mutated through the ledger service's transfer path.
type Account struct {
	ID            int64     `db:"id"`
	AccountNumber string    `db:"account_number"`
	CharacterName string    `db:"character_name"`
	PasswordHash  string    `db:"password_hash"`
	IsAdmin       bool      `db:"is_admin"`
	Balance       int64     `db:"balance"`
	CreatedAt     time.Time `db:"created_at"`
}

// HasSufficientBalance checks if the account can cover an amount
func (a *Account) HasSufficientBalance(amount int64) bool {
	return a.Balance >= amount
}

// IsHouse reports whether this is the casino house account
func (a *Account) IsHouse() bool {
	return a.AccountNumber == HouseAccountNumber
}

// IsSystem reports whether this is the system reserve account
func (a *Account) IsSystem() bool {
	return a.AccountNumber == SystemAccountNumber
}
