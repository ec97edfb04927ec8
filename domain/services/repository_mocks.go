package services

import (
	"context"

	"neonbank/domain/entities"
	"neonbank/domain/interfaces"

	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock implementation of AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) GetByAccountNumber(ctx context.Context, accountNumber string) (*entities.Account, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByAccountNumberForUpdate(ctx context.Context, accountNumber string) (*entities.Account, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByCharacterName(ctx context.Context, characterName string) (*entities.Account, error) {
	args := m.Called(ctx, characterName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, account *entities.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateBalance(ctx context.Context, accountID int64, newBalance int64) error {
	args := m.Called(ctx, accountID, newBalance)
	return args.Error(0)
}

// MockTransactionRepository is a mock implementation of TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, txn *entities.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) GetByAccount(ctx context.Context, accountID int64, limit, offset int) ([]*entities.Transaction, error) {
	args := m.Called(ctx, accountID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) Search(ctx context.Context, accountID int64, query string, limit int) ([]*entities.Transaction, error) {
	args := m.Called(ctx, accountID, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) GetAll(ctx context.Context, limit, offset int) ([]*entities.Transaction, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Transaction), args.Error(1)
}

// MockAuditLogRepository is a mock implementation of AuditLogRepository
type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) Create(ctx context.Context, entry *entities.AuditLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditLogRepository) List(ctx context.Context, limit, offset int) ([]*entities.AuditLog, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.AuditLog), args.Error(1)
}

// MockGameConfigRepository is a mock implementation of GameConfigRepository
type MockGameConfigRepository struct {
	mock.Mock
}

func (m *MockGameConfigRepository) GetByName(ctx context.Context, gameName string) (*entities.GameConfig, error) {
	args := m.Called(ctx, gameName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GameConfig), args.Error(1)
}

func (m *MockGameConfigRepository) Update(ctx context.Context, config *entities.GameConfig) error {
	args := m.Called(ctx, config)
	return args.Error(0)
}

func (m *MockGameConfigRepository) List(ctx context.Context) ([]*entities.GameConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.GameConfig), args.Error(1)
}

// MockUnitOfWork is a mock implementation of UnitOfWork. Repository
// getters hand back whatever SetRepositories installed; only the
// transaction boundary calls go through the mock machinery.
type MockUnitOfWork struct {
	mock.Mock

	accountRepo     interfaces.AccountRepository
	transactionRepo interfaces.TransactionRepository
	auditLogRepo    interfaces.AuditLogRepository
	gameConfigRepo  interfaces.GameConfigRepository
}

// SetRepositories installs the repositories the getters will return
func (m *MockUnitOfWork) SetRepositories(
	accounts interfaces.AccountRepository,
	transactions interfaces.TransactionRepository,
	auditLogs interfaces.AuditLogRepository,
	gameConfigs interfaces.GameConfigRepository,
) {
	m.accountRepo = accounts
	m.transactionRepo = transactions
	m.auditLogRepo = auditLogs
	m.gameConfigRepo = gameConfigs
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) AccountRepository() interfaces.AccountRepository {
	return m.accountRepo
}

func (m *MockUnitOfWork) TransactionRepository() interfaces.TransactionRepository {
	return m.transactionRepo
}

func (m *MockUnitOfWork) AuditLogRepository() interfaces.AuditLogRepository {
	return m.auditLogRepo
}

func (m *MockUnitOfWork) GameConfigRepository() interfaces.GameConfigRepository {
	return m.gameConfigRepo
}

// MockUnitOfWorkFactory is a mock implementation of UnitOfWorkFactory
type MockUnitOfWorkFactory struct {
	mock.Mock
}

func (m *MockUnitOfWorkFactory) Create() interfaces.UnitOfWork {
	args := m.Called()
	return args.Get(0).(interfaces.UnitOfWork)
}

// MockLedgerService is a mock implementation of LedgerService
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) Transfer(ctx context.Context, fromAccountNumber, toAccountNumber string, amount int64, memo string, category entities.TransactionCategory) (*entities.TransferResult, error) {
	args := m.Called(ctx, fromAccountNumber, toAccountNumber, amount, memo, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TransferResult), args.Error(1)
}

func (m *MockLedgerService) AdjustBalance(ctx context.Context, admin *entities.Account, targetAccountNumber string, amount int64, reason string) (*entities.Transaction, error) {
	args := m.Called(ctx, admin, targetAccountNumber, amount, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Transaction), args.Error(1)
}

func (m *MockLedgerService) History(ctx context.Context, accountNumber string, limit, offset int) ([]*entities.Transaction, error) {
	args := m.Called(ctx, accountNumber, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Transaction), args.Error(1)
}

func (m *MockLedgerService) SearchTransactions(ctx context.Context, accountNumber string, query string, limit int) ([]*entities.Transaction, error) {
	args := m.Called(ctx, accountNumber, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Transaction), args.Error(1)
}

// MockAccountService is a mock implementation of AccountService
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Register(ctx context.Context, characterName, password string) (*entities.Account, error) {
	args := m.Called(ctx, characterName, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

func (m *MockAccountService) Authenticate(ctx context.Context, characterName, password string) (*entities.Account, error) {
	args := m.Called(ctx, characterName, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

func (m *MockAccountService) GetByAccountNumber(ctx context.Context, accountNumber string) (*entities.Account, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

// MockCasinoService is a mock implementation of CasinoService
type MockCasinoService struct {
	mock.Mock
}

func (m *MockCasinoService) SpinGlitchGrid(ctx context.Context, playerAccountNumber string, bet int64) (*entities.GridSpinResult, error) {
	args := m.Called(ctx, playerAccountNumber, bet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GridSpinResult), args.Error(1)
}

func (m *MockCasinoService) SpinStarlight(ctx context.Context, playerAccountNumber string, betPerLine int64) (*entities.MultilineSpinResult, error) {
	args := m.Called(ctx, playerAccountNumber, betPerLine)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MultilineSpinResult), args.Error(1)
}

// MockAdminService is a mock implementation of AdminService
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) UpdateGameConfig(ctx context.Context, admin *entities.Account, gameName string, enabled *bool, payoutPercentage *float64) (*entities.GameConfig, error) {
	args := m.Called(ctx, admin, gameName, enabled, payoutPercentage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GameConfig), args.Error(1)
}

func (m *MockAdminService) ListGameConfigs(ctx context.Context) ([]*entities.GameConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.GameConfig), args.Error(1)
}

func (m *MockAdminService) ListAuditLogs(ctx context.Context, limit, offset int) ([]*entities.AuditLog, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.AuditLog), args.Error(1)
}

func (m *MockAdminService) ListTransactions(ctx context.Context, limit, offset int) ([]*entities.Transaction, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Transaction), args.Error(1)
}
