package services

import (
	"context"
	"fmt"
	"unicode/utf8"

	"neonbank/domain/entities"
	"neonbank/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

type ledgerService struct {
	uowFactory interfaces.UnitOfWorkFactory
}

// NewLedgerService creates the transaction engine
func NewLedgerService(uowFactory interfaces.UnitOfWorkFactory) interfaces.LedgerService {
	return &ledgerService{uowFactory: uowFactory}
}

func (s *ledgerService) Transfer(ctx context.Context, fromAccountNumber, toAccountNumber string, amount int64, memo string, category entities.TransactionCategory) (*entities.TransferResult, error) {
	if amount <= 0 {
		return nil, entities.ErrInvalidAmount
	}
	if utf8.RuneCountInString(memo) > entities.MaxMemoLength {
		return nil, entities.ErrMemoTooLong
	}
	if fromAccountNumber == toAccountNumber {
		return nil, entities.ErrSelfTransfer
	}
	if !category.Valid() {
		return nil, fmt.Errorf("unknown transaction category %q", category)
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	accounts := uow.AccountRepository()

	// Lock both rows in a fixed order so two opposing transfers on the
	// same pair cannot deadlock. House and system accounts are contended
	// by every casino and admin operation; this serializes them.
	first, second := fromAccountNumber, toAccountNumber
	if second < first {
		first, second = second, first
	}

	locked := make(map[string]*entities.Account, 2)
	for _, number := range []string{first, second} {
		account, err := accounts.GetByAccountNumberForUpdate(ctx, number)
		if err != nil {
			return nil, fmt.Errorf("failed to get account %s: %w", number, err)
		}
		if account == nil {
			return nil, fmt.Errorf("account %s: %w", number, entities.ErrAccountNotFound)
		}
		locked[number] = account
	}

	sender := locked[fromAccountNumber]
	receiver := locked[toAccountNumber]

	if !sender.HasSufficientBalance(amount) {
		return nil, fmt.Errorf("account %s has %d, needs %d: %w",
			sender.AccountNumber, sender.Balance, amount, entities.ErrInsufficientFunds)
	}

	newFromBalance := sender.Balance - amount
	newToBalance := receiver.Balance + amount

	if err := accounts.UpdateBalance(ctx, sender.ID, newFromBalance); err != nil {
		return nil, fmt.Errorf("failed to debit sender: %w", err)
	}
	if err := accounts.UpdateBalance(ctx, receiver.ID, newToBalance); err != nil {
		return nil, fmt.Errorf("failed to credit receiver: %w", err)
	}

	txn := &entities.Transaction{
		FromAccountID:     sender.ID,
		ToAccountID:       receiver.ID,
		Amount:            amount,
		Memo:              memo,
		Category:          category,
		FromAccountNumber: sender.AccountNumber,
		ToAccountNumber:   receiver.AccountNumber,
	}
	if err := uow.TransactionRepository().Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to append transaction record: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transfer: %w", err)
	}

	return &entities.TransferResult{
		Transaction: txn,
		FromBalance: newFromBalance,
		ToBalance:   newToBalance,
	}, nil
}

func (s *ledgerService) AdjustBalance(ctx context.Context, admin *entities.Account, targetAccountNumber string, amount int64, reason string) (*entities.Transaction, error) {
	if amount == 0 {
		return nil, entities.ErrInvalidAmount
	}

	system, err := s.getAccount(ctx, entities.SystemAccountNumber)
	if err != nil {
		return nil, err
	}
	if system == nil {
		return nil, entities.ErrSystemAccountMissing
	}

	var result *entities.TransferResult
	if amount > 0 {
		memo := truncateMemo(fmt.Sprintf("Admin credit by %s: %s", admin.CharacterName, reason))
		result, err = s.Transfer(ctx, entities.SystemAccountNumber, targetAccountNumber, amount, memo, entities.CategoryAdminAdjustment)
	} else {
		memo := truncateMemo(fmt.Sprintf("Admin debit by %s: %s", admin.CharacterName, reason))
		result, err = s.Transfer(ctx, targetAccountNumber, entities.SystemAccountNumber, -amount, memo, entities.CategoryAdminAdjustment)
	}
	if err != nil {
		return nil, err
	}

	// The transfer has committed; the audit record is best-effort and must
	// not unwind the ledger if it fails.
	targetID := result.Transaction.ToAccountID
	if amount < 0 {
		targetID = result.Transaction.FromAccountID
	}
	s.recordAudit(ctx, &entities.AuditLog{
		AdminAccountID:  admin.ID,
		Action:          entities.ActionBalanceAdjustment,
		TargetAccountID: &targetID,
		Details:         fmt.Sprintf("Amount: %d, Reason: %s", amount, reason),
	})

	return result.Transaction, nil
}

func (s *ledgerService) History(ctx context.Context, accountNumber string, limit, offset int) ([]*entities.Transaction, error) {
	account, err := s.getAccount(ctx, accountNumber)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, fmt.Errorf("account %s: %w", accountNumber, entities.ErrAccountNotFound)
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	return uow.TransactionRepository().GetByAccount(ctx, account.ID, limit, offset)
}

func (s *ledgerService) SearchTransactions(ctx context.Context, accountNumber string, query string, limit int) ([]*entities.Transaction, error) {
	account, err := s.getAccount(ctx, accountNumber)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, fmt.Errorf("account %s: %w", accountNumber, entities.ErrAccountNotFound)
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	return uow.TransactionRepository().Search(ctx, account.ID, query, limit)
}

// getAccount resolves an account without taking locks; returns nil when
// the account does not exist.
func (s *ledgerService) getAccount(ctx context.Context, accountNumber string) (*entities.Account, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	account, err := uow.AccountRepository().GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get account %s: %w", accountNumber, err)
	}
	return account, nil
}

// recordAudit writes an audit entry in its own unit of work, logging a
// warning instead of failing when the write cannot complete.
func (s *ledgerService) recordAudit(ctx context.Context, entry *entities.AuditLog) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		log.WithError(err).WithField("action", entry.Action).Warn("failed to begin audit log transaction")
		return
	}
	defer uow.Rollback()

	if err := uow.AuditLogRepository().Create(ctx, entry); err != nil {
		log.WithError(err).WithField("action", entry.Action).Warn("failed to write audit log entry")
		return
	}
	if err := uow.Commit(); err != nil {
		log.WithError(err).WithField("action", entry.Action).Warn("failed to commit audit log entry")
	}
}

// truncateMemo caps a memo at MaxMemoLength characters. Cutting on a rune
// boundary keeps multibyte memos valid UTF-8.
func truncateMemo(memo string) string {
	if utf8.RuneCountInString(memo) <= entities.MaxMemoLength {
		return memo
	}
	return string([]rune(memo)[:entities.MaxMemoLength])
}
