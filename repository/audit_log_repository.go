package repository

import (
	"context"
	"fmt"

	"neonbank/database"
	"neonbank/domain/entities"
	"neonbank/domain/interfaces"
)

// AuditLogRepository implements the AuditLogRepository interface
type AuditLogRepository struct {
	q Queryable
}

// NewAuditLogRepository creates a new audit log repository backed by the pool
func NewAuditLogRepository(db *database.DB) *AuditLogRepository {
	return &AuditLogRepository{q: db.Pool}
}

func newAuditLogRepository(tx Queryable) interfaces.AuditLogRepository {
	return &AuditLogRepository{q: tx}
}

// Create appends an audit log entry
func (r *AuditLogRepository) Create(ctx context.Context, entry *entities.AuditLog) error {
	query := `
		INSERT INTO audit_logs (admin_account_id, action, target_account_id, details)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.q.QueryRow(ctx, query,
		entry.AdminAccountID,
		entry.Action,
		entry.TargetAccountID,
		entry.Details,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create audit log entry: %w", err)
	}
	return nil
}

// List returns audit log entries, newest first
func (r *AuditLogRepository) List(ctx context.Context, limit, offset int) ([]*entities.AuditLog, error) {
	query := `
		SELECT id, admin_account_id, action, target_account_id, details, created_at
		FROM audit_logs
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit logs: %w", err)
	}
	defer rows.Close()

	var entries []*entities.AuditLog
	for rows.Next() {
		var entry entities.AuditLog
		err := rows.Scan(
			&entry.ID,
			&entry.AdminAccountID,
			&entry.Action,
			&entry.TargetAccountID,
			&entry.Details,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit log entry: %w", err)
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate audit logs: %w", err)
	}
	return entries, nil
}
