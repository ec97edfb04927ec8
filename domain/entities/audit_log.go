package entities

import "time"

// Audit actions recorded for admin operations.
const (
	ActionBalanceAdjustment  = "BALANCE_ADJUSTMENT"
	ActionCasinoConfigUpdate = "CASINO_CONFIG_UPDATE"
)

// AuditLog records an admin action. Audit writes are best-effort logging
// layered on top of committed ledger operations; a failed audit write is
// reported but never unwinds the transfer it describes.
type AuditLog struct {
	ID              int64     `db:"id"`
	AdminAccountID  int64     `db:"admin_account_id"`
	Action          string    `db:"action"`
	TargetAccountID *int64    `db:"target_account_id"`
	Details         string    `db:"details"`
	CreatedAt       time.Time `db:"created_at"`
}
