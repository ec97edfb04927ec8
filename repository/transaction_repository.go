package repository

import (
	"context"
	"fmt"

	"neonbank/database"
	"neonbank/domain/entities"
	"neonbank/domain/interfaces"

	sq "github.com/Masterminds/squirrel"
)

// TransactionRepository implements the TransactionRepository interface.
// The transactions table is append-only: there is no update or delete.
type TransactionRepository struct {
	q Queryable
}

// NewTransactionRepository creates a new transaction repository backed by the pool
func NewTransactionRepository(db *database.DB) *TransactionRepository {
	return &TransactionRepository{q: db.Pool}
}

func newTransactionRepository(tx Queryable) interfaces.TransactionRepository {
	return &TransactionRepository{q: tx}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Create appends a transaction record and fills in its ID and CreatedAt
func (r *TransactionRepository) Create(ctx context.Context, txn *entities.Transaction) error {
	query := `
		INSERT INTO transactions (from_account_id, to_account_id, amount, memo, category)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.q.QueryRow(ctx, query,
		txn.FromAccountID,
		txn.ToAccountID,
		txn.Amount,
		txn.Memo,
		txn.Category,
	).Scan(&txn.ID, &txn.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// selectTransactions is the shared base query; the joins resolve account
// numbers for display without a second round trip.
func selectTransactions() sq.SelectBuilder {
	return psql.Select(
		"t.id", "t.from_account_id", "t.to_account_id", "t.amount",
		"t.memo", "t.category", "t.created_at",
		"fa.account_number AS from_account_number",
		"ta.account_number AS to_account_number",
	).
		From("transactions t").
		Join("accounts fa ON fa.id = t.from_account_id").
		Join("accounts ta ON ta.id = t.to_account_id").
		OrderBy("t.created_at DESC", "t.id DESC")
}

func (r *TransactionRepository) queryTransactions(ctx context.Context, builder sq.SelectBuilder) ([]*entities.Transaction, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build transaction query: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var txns []*entities.Transaction
	for rows.Next() {
		var txn entities.Transaction
		err := rows.Scan(
			&txn.ID,
			&txn.FromAccountID,
			&txn.ToAccountID,
			&txn.Amount,
			&txn.Memo,
			&txn.Category,
			&txn.CreatedAt,
			&txn.FromAccountNumber,
			&txn.ToAccountNumber,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, &txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return txns, nil
}

// GetByAccount returns transactions where the account is sender or
// receiver, newest first
func (r *TransactionRepository) GetByAccount(ctx context.Context, accountID int64, limit, offset int) ([]*entities.Transaction, error) {
	builder := selectTransactions().
		Where(sq.Or{
			sq.Eq{"t.from_account_id": accountID},
			sq.Eq{"t.to_account_id": accountID},
		}).
		Limit(uint64(limit)).
		Offset(uint64(offset))
	return r.queryTransactions(ctx, builder)
}

// Search returns an account's transactions whose memo or counterparty
// account number matches the query, newest first
func (r *TransactionRepository) Search(ctx context.Context, accountID int64, query string, limit int) ([]*entities.Transaction, error) {
	pattern := "%" + query + "%"
	builder := selectTransactions().
		Where(sq.Or{
			sq.Eq{"t.from_account_id": accountID},
			sq.Eq{"t.to_account_id": accountID},
		}).
		Where(sq.Or{
			sq.ILike{"t.memo": pattern},
			sq.ILike{"fa.account_number": pattern},
			sq.ILike{"ta.account_number": pattern},
		}).
		Limit(uint64(limit))
	return r.queryTransactions(ctx, builder)
}

// GetAll returns all transactions, newest first
func (r *TransactionRepository) GetAll(ctx context.Context, limit, offset int) ([]*entities.Transaction, error) {
	builder := selectTransactions().
		Limit(uint64(limit)).
		Offset(uint64(offset))
	return r.queryTransactions(ctx, builder)
}
