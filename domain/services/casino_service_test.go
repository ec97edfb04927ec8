package services

import (
	"context"
	"errors"
	"testing"

	"neonbank/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupCasinoMocks(config *entities.GameConfig, player, house *entities.Account) (*casinoService, *MockLedgerService, *MockUnitOfWork) {
	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockAccountRepo := new(MockAccountRepository)
	mockConfigRepo := new(MockGameConfigRepository)
	mockLedger := new(MockLedgerService)

	mockUoW.SetRepositories(mockAccountRepo, nil, nil, mockConfigRepo)
	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", mock.Anything).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockConfigRepo.On("GetByName", mock.Anything, config.GameName).Return(config, nil)
	if player != nil {
		mockAccountRepo.On("GetByAccountNumber", mock.Anything, player.AccountNumber).Return(player, nil)
	} else {
		mockAccountRepo.On("GetByAccountNumber", mock.Anything, mock.MatchedBy(func(n string) bool {
			return n != entities.HouseAccountNumber
		})).Return(nil, nil)
	}
	if house != nil {
		mockAccountRepo.On("GetByAccountNumber", mock.Anything, entities.HouseAccountNumber).Return(house, nil)
	} else {
		mockAccountRepo.On("GetByAccountNumber", mock.Anything, entities.HouseAccountNumber).Return(nil, nil)
	}

	service := NewCasinoService(mockFactory, mockLedger).(*casinoService)
	return service, mockLedger, mockUoW
}

func TestCasinoService_SpinGlitchGrid_Win(t *testing.T) {
	ctx := context.Background()
	config := &entities.GameConfig{GameName: entities.GameGlitchGrid, Enabled: true, PayoutPercentage: 102.0}
	player := &entities.Account{ID: 1, AccountNumber: "NC-1111-1111", Balance: 1000}
	house := &entities.Account{ID: 2, AccountNumber: entities.HouseAccountNumber, Balance: 1_000_000}

	service, mockLedger, _ := setupCasinoMocks(config, player, house)
	// Pair of skulls: raw 5, effective floor(5 * 1.02) = 5
	service.drawReels = func() [3]entities.Symbol {
		return [3]entities.Symbol{SymbolSkull, SymbolSkull, SymbolBinary}
	}

	mockLedger.On("Transfer", ctx, "NC-1111-1111", entities.HouseAccountNumber,
		int64(10), "Glitch Grid bet", entities.CategoryCasinoBet).
		Return(&entities.TransferResult{FromBalance: 990, ToBalance: 1_000_010}, nil)
	mockLedger.On("Transfer", ctx, entities.HouseAccountNumber, "NC-1111-1111",
		int64(50), "Glitch Grid win (5x)", entities.CategoryCasinoWin).
		Return(&entities.TransferResult{FromBalance: 999_960, ToBalance: 1040}, nil)

	result, err := service.SpinGlitchGrid(ctx, "NC-1111-1111", 10)

	assert.NoError(t, err)
	assert.Equal(t, int64(5), result.Multiplier)
	assert.Equal(t, int64(50), result.WinAmount)
	assert.Equal(t, int64(1040), result.Balance)
	mockLedger.AssertExpectations(t)
}

func TestCasinoService_SpinGlitchGrid_Loss(t *testing.T) {
	ctx := context.Background()
	config := &entities.GameConfig{GameName: entities.GameGlitchGrid, Enabled: true, PayoutPercentage: 102.0}
	player := &entities.Account{ID: 1, AccountNumber: "NC-1111-1111", Balance: 1000}
	house := &entities.Account{ID: 2, AccountNumber: entities.HouseAccountNumber, Balance: 1_000_000}

	service, mockLedger, _ := setupCasinoMocks(config, player, house)
	service.drawReels = func() [3]entities.Symbol {
		return [3]entities.Symbol{SymbolBinary, SymbolJack, SymbolKanji}
	}

	mockLedger.On("Transfer", ctx, "NC-1111-1111", entities.HouseAccountNumber,
		int64(10), "Glitch Grid bet", entities.CategoryCasinoBet).
		Return(&entities.TransferResult{FromBalance: 990, ToBalance: 1_000_010}, nil)

	result, err := service.SpinGlitchGrid(ctx, "NC-1111-1111", 10)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), result.Multiplier)
	assert.Equal(t, int64(0), result.WinAmount)
	assert.Equal(t, int64(990), result.Balance)
	// Only the bet transfer happened
	mockLedger.AssertNumberOfCalls(t, "Transfer", 1)
}

func TestCasinoService_SpinGlitchGrid_GameDisabled(t *testing.T) {
	ctx := context.Background()
	config := &entities.GameConfig{GameName: entities.GameGlitchGrid, Enabled: false, PayoutPercentage: 102.0}
	player := &entities.Account{ID: 1, AccountNumber: "NC-1111-1111", Balance: 1000}
	house := &entities.Account{ID: 2, AccountNumber: entities.HouseAccountNumber}

	service, mockLedger, _ := setupCasinoMocks(config, player, house)

	result, err := service.SpinGlitchGrid(ctx, "NC-1111-1111", 10)

	assert.ErrorIs(t, err, entities.ErrGameDisabled)
	assert.Nil(t, result)
	mockLedger.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCasinoService_SpinGlitchGrid_PlayerNotFound(t *testing.T) {
	ctx := context.Background()
	config := &entities.GameConfig{GameName: entities.GameGlitchGrid, Enabled: true, PayoutPercentage: 102.0}
	house := &entities.Account{ID: 2, AccountNumber: entities.HouseAccountNumber}

	service, mockLedger, _ := setupCasinoMocks(config, nil, house)

	result, err := service.SpinGlitchGrid(ctx, "NC-0000-1234", 10)

	assert.ErrorIs(t, err, entities.ErrPlayerNotFound)
	assert.Nil(t, result)
	mockLedger.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCasinoService_SpinGlitchGrid_HouseAccountMissing(t *testing.T) {
	ctx := context.Background()
	config := &entities.GameConfig{GameName: entities.GameGlitchGrid, Enabled: true, PayoutPercentage: 102.0}
	player := &entities.Account{ID: 1, AccountNumber: "NC-1111-1111", Balance: 1000}

	service, _, _ := setupCasinoMocks(config, player, nil)

	result, err := service.SpinGlitchGrid(ctx, "NC-1111-1111", 10)

	assert.ErrorIs(t, err, entities.ErrHouseAccountMissing)
	assert.Nil(t, result)
}

func TestCasinoService_SpinGlitchGrid_InvalidBet(t *testing.T) {
	ctx := context.Background()
	mockFactory := new(MockUnitOfWorkFactory)
	mockLedger := new(MockLedgerService)
	service := NewCasinoService(mockFactory, mockLedger)

	_, err := service.SpinGlitchGrid(ctx, "NC-1111-1111", 0)
	assert.ErrorIs(t, err, entities.ErrInvalidAmount)

	_, err = service.SpinGlitchGrid(ctx, "NC-1111-1111", -10)
	assert.ErrorIs(t, err, entities.ErrInvalidAmount)

	mockFactory.AssertNotCalled(t, "Create")
}

func TestCasinoService_SpinGlitchGrid_WinningsDisbursementFailure(t *testing.T) {
	ctx := context.Background()
	config := &entities.GameConfig{GameName: entities.GameGlitchGrid, Enabled: true, PayoutPercentage: 102.0}
	player := &entities.Account{ID: 1, AccountNumber: "NC-1111-1111", Balance: 1000}
	house := &entities.Account{ID: 2, AccountNumber: entities.HouseAccountNumber, Balance: 10}

	service, mockLedger, _ := setupCasinoMocks(config, player, house)
	service.drawReels = func() [3]entities.Symbol {
		return [3]entities.Symbol{SymbolWild, SymbolWild, SymbolWild}
	}

	mockLedger.On("Transfer", ctx, "NC-1111-1111", entities.HouseAccountNumber,
		int64(10), "Glitch Grid bet", entities.CategoryCasinoBet).
		Return(&entities.TransferResult{FromBalance: 990, ToBalance: 20}, nil)
	// House cannot cover a 102x jackpot
	mockLedger.On("Transfer", ctx, entities.HouseAccountNumber, "NC-1111-1111",
		int64(1020), "Glitch Grid win (102x)", entities.CategoryCasinoWin).
		Return(nil, errors.New("insufficient funds"))

	result, err := service.SpinGlitchGrid(ctx, "NC-1111-1111", 10)

	assert.ErrorIs(t, err, entities.ErrWinningsDisbursement)
	assert.Nil(t, result)
	// The bet transfer stays committed; both calls were made
	mockLedger.AssertNumberOfCalls(t, "Transfer", 2)
}

func TestCasinoService_SpinStarlight_Win(t *testing.T) {
	ctx := context.Background()
	config := &entities.GameConfig{GameName: entities.GameStarlightSmuggler, Enabled: true, PayoutPercentage: 102.0}
	player := &entities.Account{ID: 1, AccountNumber: "NC-1111-1111", Balance: 1000}
	house := &entities.Account{ID: 2, AccountNumber: entities.HouseAccountNumber, Balance: 1_000_000}

	service, mockLedger, _ := setupCasinoMocks(config, player, house)
	// Top row run of three gems (raw 20), nothing else pays
	service.drawGrid = func() [3][5]entities.Symbol {
		return [3][5]entities.Symbol{
			{SymbolGem, SymbolGem, SymbolGem, SymbolMap, SymbolGem},
			{SymbolMap, SymbolBlaster, SymbolMap, SymbolBlaster, SymbolMap},
			{SymbolBlaster, SymbolMap, SymbolBlaster, SymbolMap, SymbolBlaster},
		}
	}

	mockLedger.On("Transfer", ctx, "NC-1111-1111", entities.HouseAccountNumber,
		int64(45), "Starlight Smuggler bet", entities.CategoryCasinoBet).
		Return(&entities.TransferResult{FromBalance: 955, ToBalance: 1_000_045}, nil)
	// floor(20 * 1.02) = 20; win = 5 * 20 = 100
	mockLedger.On("Transfer", ctx, entities.HouseAccountNumber, "NC-1111-1111",
		int64(100), "Starlight Smuggler win (20x)", entities.CategoryCasinoWin).
		Return(&entities.TransferResult{FromBalance: 999_945, ToBalance: 1055}, nil)

	result, err := service.SpinStarlight(ctx, "NC-1111-1111", 5)

	assert.NoError(t, err)
	assert.Equal(t, int64(45), result.TotalBet)
	assert.Equal(t, int64(20), result.Multiplier)
	assert.Equal(t, int64(100), result.WinAmount)
	assert.Equal(t, int64(1055), result.Balance)
	assert.Equal(t, []int{0}, result.WinningLines)
	mockLedger.AssertExpectations(t)
}

func TestCasinoService_SpinStarlight_InsufficientFundsBeforeDraw(t *testing.T) {
	ctx := context.Background()
	config := &entities.GameConfig{GameName: entities.GameStarlightSmuggler, Enabled: true, PayoutPercentage: 102.0}
	player := &entities.Account{ID: 1, AccountNumber: "NC-1111-1111", Balance: 5}
	house := &entities.Account{ID: 2, AccountNumber: entities.HouseAccountNumber, Balance: 1_000_000}

	service, mockLedger, _ := setupCasinoMocks(config, player, house)
	drew := false
	service.drawGrid = func() [3][5]entities.Symbol {
		drew = true
		return [3][5]entities.Symbol{}
	}

	// Per-line bet 5 means a total stake of 45 against a balance of 5
	mockLedger.On("Transfer", ctx, "NC-1111-1111", entities.HouseAccountNumber,
		int64(45), "Starlight Smuggler bet", entities.CategoryCasinoBet).
		Return(nil, entities.ErrInsufficientFunds)

	result, err := service.SpinStarlight(ctx, "NC-1111-1111", 5)

	assert.ErrorIs(t, err, entities.ErrInsufficientFunds)
	assert.Nil(t, result)
	assert.False(t, drew, "reels must not spin when the stake cannot be covered")
}

func TestCasinoService_SpinStarlight_ScatterBonusReported(t *testing.T) {
	ctx := context.Background()
	config := &entities.GameConfig{GameName: entities.GameStarlightSmuggler, Enabled: true, PayoutPercentage: 102.0}
	player := &entities.Account{ID: 1, AccountNumber: "NC-1111-1111", Balance: 1000}
	house := &entities.Account{ID: 2, AccountNumber: entities.HouseAccountNumber, Balance: 1_000_000}

	service, mockLedger, _ := setupCasinoMocks(config, player, house)
	service.drawGrid = func() [3][5]entities.Symbol {
		return [3][5]entities.Symbol{
			{SymbolWormhole, SymbolGem, SymbolMap, SymbolGem, SymbolStar},
			{SymbolMap, SymbolWormhole, SymbolGem, SymbolStar, SymbolMap},
			{SymbolGem, SymbolMap, SymbolStar, SymbolWormhole, SymbolGem},
		}
	}

	mockLedger.On("Transfer", ctx, "NC-1111-1111", entities.HouseAccountNumber,
		int64(9), "Starlight Smuggler bet", entities.CategoryCasinoBet).
		Return(&entities.TransferResult{FromBalance: 991, ToBalance: 1_000_009}, nil)

	result, err := service.SpinStarlight(ctx, "NC-1111-1111", 1)

	assert.NoError(t, err)
	assert.Equal(t, 3, result.ScatterCount)
	assert.Equal(t, 5, result.BonusSpins)
	assert.Equal(t, int64(0), result.WinAmount)
	assert.Equal(t, int64(991), result.Balance)
}
