package services

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"neonbank/domain/entities"
	"neonbank/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

type casinoService struct {
	uowFactory interfaces.UnitOfWorkFactory
	ledger     interfaces.LedgerService

	mu  sync.Mutex
	rng *rand.Rand

	// Draw seams; tests replace these to pin outcomes.
	drawReels func() [3]entities.Symbol
	drawGrid  func() [3][5]entities.Symbol
}

// NewCasinoService creates the casino orchestrator. All money movement
// goes through the ledger; this service only sequences bets, draws and
// payouts.
func NewCasinoService(uowFactory interfaces.UnitOfWorkFactory, ledger interfaces.LedgerService) interfaces.CasinoService {
	s := &casinoService{
		uowFactory: uowFactory,
		ledger:     ledger,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	s.drawReels = s.randomReels
	s.drawGrid = s.randomGrid
	return s
}

func (s *casinoService) SpinGlitchGrid(ctx context.Context, playerAccountNumber string, bet int64) (*entities.GridSpinResult, error) {
	if bet <= 0 {
		return nil, entities.ErrInvalidAmount
	}

	config, err := s.prepareSpin(ctx, entities.GameGlitchGrid, playerAccountNumber)
	if err != nil {
		return nil, err
	}

	betResult, err := s.ledger.Transfer(ctx, playerAccountNumber, entities.HouseAccountNumber,
		bet, "Glitch Grid bet", entities.CategoryCasinoBet)
	if err != nil {
		return nil, err
	}
	balance := betResult.FromBalance

	reels := s.drawReels()
	multiplier := config.EffectiveMultiplier(evaluateGlitchGrid(reels))
	winAmount := bet * multiplier

	if winAmount > 0 {
		memo := fmt.Sprintf("Glitch Grid win (%dx)", multiplier)
		winResult, err := s.ledger.Transfer(ctx, entities.HouseAccountNumber, playerAccountNumber,
			winAmount, memo, entities.CategoryCasinoWin)
		if err != nil {
			// The bet has already committed; report the stuck payout rather
			// than inventing a refund the ledger never recorded.
			log.WithError(err).WithFields(log.Fields{
				"player": playerAccountNumber,
				"game":   entities.GameGlitchGrid,
				"amount": winAmount,
			}).Error("failed to pay out winnings")
			return nil, fmt.Errorf("win of %d for %s: %w", winAmount, playerAccountNumber, entities.ErrWinningsDisbursement)
		}
		balance = winResult.ToBalance
	}

	return &entities.GridSpinResult{
		Reels:      reels,
		Bet:        bet,
		Multiplier: multiplier,
		WinAmount:  winAmount,
		Balance:    balance,
	}, nil
}

func (s *casinoService) SpinStarlight(ctx context.Context, playerAccountNumber string, betPerLine int64) (*entities.MultilineSpinResult, error) {
	if betPerLine <= 0 {
		return nil, entities.ErrInvalidAmount
	}
	totalBet := betPerLine * StarlightLineCount

	config, err := s.prepareSpin(ctx, entities.GameStarlightSmuggler, playerAccountNumber)
	if err != nil {
		return nil, err
	}

	betResult, err := s.ledger.Transfer(ctx, playerAccountNumber, entities.HouseAccountNumber,
		totalBet, "Starlight Smuggler bet", entities.CategoryCasinoBet)
	if err != nil {
		return nil, err
	}
	balance := betResult.FromBalance

	grid := s.drawGrid()
	lineWins, rawMultiplier, scatterCount, bonusSpins := evaluateStarlight(grid)
	multiplier := config.EffectiveMultiplier(rawMultiplier)
	winAmount := betPerLine * multiplier

	winningLines := make([]int, 0, len(lineWins))
	for _, win := range lineWins {
		winningLines = append(winningLines, win.Line)
	}

	if winAmount > 0 {
		memo := fmt.Sprintf("Starlight Smuggler win (%dx)", multiplier)
		winResult, err := s.ledger.Transfer(ctx, entities.HouseAccountNumber, playerAccountNumber,
			winAmount, memo, entities.CategoryCasinoWin)
		if err != nil {
			log.WithError(err).WithFields(log.Fields{
				"player": playerAccountNumber,
				"game":   entities.GameStarlightSmuggler,
				"amount": winAmount,
			}).Error("failed to pay out winnings")
			return nil, fmt.Errorf("win of %d for %s: %w", winAmount, playerAccountNumber, entities.ErrWinningsDisbursement)
		}
		balance = winResult.ToBalance
	}

	return &entities.MultilineSpinResult{
		Grid:         grid,
		BetPerLine:   betPerLine,
		TotalBet:     totalBet,
		LineWins:     lineWins,
		WinningLines: winningLines,
		Multiplier:   multiplier,
		WinAmount:    winAmount,
		ScatterCount: scatterCount,
		BonusSpins:   bonusSpins,
		Balance:      balance,
	}, nil
}

// prepareSpin loads the game's config snapshot and verifies the player
// and house accounts before any money moves. The snapshot is read once;
// a config change mid-spin does not affect an in-flight round.
func (s *casinoService) prepareSpin(ctx context.Context, gameName, playerAccountNumber string) (*entities.GameConfig, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	config, err := uow.GameConfigRepository().GetByName(ctx, gameName)
	if err != nil {
		return nil, fmt.Errorf("failed to load config for %s: %w", gameName, err)
	}
	if !config.Enabled {
		return nil, fmt.Errorf("%s: %w", gameName, entities.ErrGameDisabled)
	}

	player, err := uow.AccountRepository().GetByAccountNumber(ctx, playerAccountNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get player account: %w", err)
	}
	if player == nil {
		return nil, fmt.Errorf("account %s: %w", playerAccountNumber, entities.ErrPlayerNotFound)
	}

	house, err := uow.AccountRepository().GetByAccountNumber(ctx, entities.HouseAccountNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get house account: %w", err)
	}
	if house == nil {
		return nil, entities.ErrHouseAccountMissing
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit config read: %w", err)
	}
	return config, nil
}

func (s *casinoService) randomReels() [3]entities.Symbol {
	s.mu.Lock()
	defer s.mu.Unlock()
	var reels [3]entities.Symbol
	for i := range reels {
		reels[i] = glitchGridSymbols[s.rng.Intn(len(glitchGridSymbols))]
	}
	return reels
}

func (s *casinoService) randomGrid() [3][5]entities.Symbol {
	s.mu.Lock()
	defer s.mu.Unlock()
	var grid [3][5]entities.Symbol
	for row := range grid {
		for col := range grid[row] {
			grid[row][col] = starlightSymbols[s.rng.Intn(len(starlightSymbols))]
		}
	}
	return grid
}
