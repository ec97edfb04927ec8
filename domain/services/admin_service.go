package services

import (
	"context"
	"fmt"

	"neonbank/domain/entities"
	"neonbank/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// Administrative bounds on the payout percentage. The engine itself
// accepts any positive factor (seeded configs run above 100), but admin
// updates are held to a sane band.
const (
	MinPayoutPercentage = 50.0
	MaxPayoutPercentage = 99.0
)

var knownGames = map[string]bool{
	entities.GameGlitchGrid:        true,
	entities.GameStarlightSmuggler: true,
}

type adminService struct {
	uowFactory interfaces.UnitOfWorkFactory
}

// NewAdminService creates the admin service
func NewAdminService(uowFactory interfaces.UnitOfWorkFactory) interfaces.AdminService {
	return &adminService{uowFactory: uowFactory}
}

func (s *adminService) UpdateGameConfig(ctx context.Context, admin *entities.Account, gameName string, enabled *bool, payoutPercentage *float64) (*entities.GameConfig, error) {
	if !knownGames[gameName] {
		return nil, fmt.Errorf("unknown game %q", gameName)
	}
	if enabled == nil && payoutPercentage == nil {
		return nil, fmt.Errorf("nothing to update for %s", gameName)
	}
	if payoutPercentage != nil && (*payoutPercentage < MinPayoutPercentage || *payoutPercentage > MaxPayoutPercentage) {
		return nil, fmt.Errorf("payout percentage %.2f outside [%.0f,%.0f]: %w",
			*payoutPercentage, MinPayoutPercentage, MaxPayoutPercentage, entities.ErrInvalidPayout)
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	config, err := uow.GameConfigRepository().GetByName(ctx, gameName)
	if err != nil {
		return nil, fmt.Errorf("failed to load config for %s: %w", gameName, err)
	}

	if enabled != nil {
		config.Enabled = *enabled
	}
	if payoutPercentage != nil {
		config.PayoutPercentage = *payoutPercentage
	}
	if err := uow.GameConfigRepository().Update(ctx, config); err != nil {
		return nil, fmt.Errorf("failed to update config for %s: %w", gameName, err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit config update: %w", err)
	}

	s.recordAudit(ctx, &entities.AuditLog{
		AdminAccountID: admin.ID,
		Action:         entities.ActionCasinoConfigUpdate,
		Details:        fmt.Sprintf("Game: %s, Enabled: %t, Payout: %.2f", gameName, config.Enabled, config.PayoutPercentage),
	})

	return config, nil
}

func (s *adminService) ListGameConfigs(ctx context.Context) ([]*entities.GameConfig, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	// Touch both games so defaults exist before listing
	for game := range knownGames {
		if _, err := uow.GameConfigRepository().GetByName(ctx, game); err != nil {
			return nil, fmt.Errorf("failed to load config for %s: %w", game, err)
		}
	}

	configs, err := uow.GameConfigRepository().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list game configs: %w", err)
	}
	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit config listing: %w", err)
	}
	return configs, nil
}

func (s *adminService) ListAuditLogs(ctx context.Context, limit, offset int) ([]*entities.AuditLog, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	return uow.AuditLogRepository().List(ctx, limit, offset)
}

func (s *adminService) ListTransactions(ctx context.Context, limit, offset int) ([]*entities.Transaction, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	return uow.TransactionRepository().GetAll(ctx, limit, offset)
}

func (s *adminService) recordAudit(ctx context.Context, entry *entities.AuditLog) {
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
