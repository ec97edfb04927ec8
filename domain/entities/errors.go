package entities

import "errors"

// Error kinds returned by the ledger and casino services. Callers match
// them with errors.Is; the web layer maps them to response codes.
var (
	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrAccountNotFound      = errors.New("account not found")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrMemoTooLong          = errors.New("memo exceeds 140 characters")
	ErrSelfTransfer         = errors.New("cannot transfer to the same account")
	ErrGameDisabled         = errors.New("game is currently disabled")
	ErrPlayerNotFound       = errors.New("player not found")
	ErrSystemAccountMissing = errors.New("system account not found")
	ErrHouseAccountMissing  = errors.New("casino house account not found")
	ErrWinningsDisbursement = errors.New("failed to disburse winnings")

	ErrNameTaken          = errors.New("character name already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPayout      = errors.New("payout percentage must be between 50 and 99")
)
