package repository

import (
	"context"
	"testing"

	"neonbank/domain/entities"
	"neonbank/domain/services"
	"neonbank/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// End-to-end ledger test against a real database: transfers must move
// money atomically and leave a matching transaction record behind.
func TestLedger_TransferRoundTrip(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	accounts := NewAccountRepository(testDB.DB)
	factory := NewUnitOfWorkFactory(testDB.DB)
	ledger := services.NewLedgerService(factory)

	sender := testutil.CreateTestAccountWithBalance("NC-1000-0001", "Dex", 1000)
	receiver := testutil.CreateTestAccountWithBalance("NC-1000-0002", "Mori", 200)
	require.NoError(t, accounts.Create(ctx, sender))
	require.NoError(t, accounts.Create(ctx, receiver))

	result, err := ledger.Transfer(ctx, "NC-1000-0001", "NC-1000-0002", 300, "for the chrome", entities.CategoryTransfer)
	require.NoError(t, err)
	assert.Equal(t, int64(700), result.FromBalance)
	assert.Equal(t, int64(500), result.ToBalance)

	// Balances persisted
	got, err := accounts.GetByAccountNumber(ctx, "NC-1000-0001")
	require.NoError(t, err)
	assert.Equal(t, int64(700), got.Balance)

	// The record is queryable from both sides with account numbers resolved
	txns, err := ledger.History(ctx, "NC-1000-0002", 10, 0)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "for the chrome", txns[0].Memo)
	assert.Equal(t, "NC-1000-0001", txns[0].FromAccountNumber)
	assert.Equal(t, "NC-1000-0002", txns[0].ToAccountNumber)
}

func TestLedger_InsufficientFundsLeavesNoTrace(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	accounts := NewAccountRepository(testDB.DB)
	factory := NewUnitOfWorkFactory(testDB.DB)
	ledger := services.NewLedgerService(factory)

	sender := testutil.CreateTestAccountWithBalance("NC-2000-0001", "Brick", 50)
	receiver := testutil.CreateTestAccountWithBalance("NC-2000-0002", "Slate", 0)
	require.NoError(t, accounts.Create(ctx, sender))
	require.NoError(t, accounts.Create(ctx, receiver))

	_, err := ledger.Transfer(ctx, "NC-2000-0001", "NC-2000-0002", 51, "", entities.CategoryTransfer)
	require.ErrorIs(t, err, entities.ErrInsufficientFunds)

	got, err := accounts.GetByAccountNumber(ctx, "NC-2000-0001")
	require.NoError(t, err)
	assert.Equal(t, int64(50), got.Balance)

	txns, err := ledger.History(ctx, "NC-2000-0001", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestLedger_SearchTransactions(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	accounts := NewAccountRepository(testDB.DB)
	factory := NewUnitOfWorkFactory(testDB.DB)
	ledger := services.NewLedgerService(factory)

	a := testutil.CreateTestAccountWithBalance("NC-3000-0001", "Ash", 10_000)
	b := testutil.CreateTestAccountWithBalance("NC-3000-0002", "Bone", 10_000)
	require.NoError(t, accounts.Create(ctx, a))
	require.NoError(t, accounts.Create(ctx, b))

	_, err := ledger.Transfer(ctx, "NC-3000-0001", "NC-3000-0002", 100, "ramen money", entities.CategoryTransfer)
	require.NoError(t, err)
	_, err = ledger.Transfer(ctx, "NC-3000-0002", "NC-3000-0001", 200, "loan repayment", entities.CategoryTransfer)
	require.NoError(t, err)

	byMemo, err := ledger.SearchTransactions(ctx, "NC-3000-0001", "ramen", 10)
	require.NoError(t, err)
	require.Len(t, byMemo, 1)
	assert.Equal(t, int64(100), byMemo[0].Amount)

	byCounterparty, err := ledger.SearchTransactions(ctx, "NC-3000-0001", "NC-3000-0002", 10)
	require.NoError(t, err)
	assert.Len(t, byCounterparty, 2)
}
