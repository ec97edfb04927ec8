package repository

import (
	"context"
	"fmt"

	"neonbank/database"
	"neonbank/domain/entities"
	"neonbank/domain/interfaces"
)

// GameConfigRepository implements the GameConfigRepository interface
type GameConfigRepository struct {
	q Queryable
}

// NewGameConfigRepository creates a new game config repository backed by the pool
func NewGameConfigRepository(db *database.DB) *GameConfigRepository {
	return &GameConfigRepository{q: db.Pool}
}

func newGameConfigRepository(tx Queryable) interfaces.GameConfigRepository {
	return &GameConfigRepository{q: tx}
}

// GetByName returns the config for a game, creating the default row if
// none exists yet. The upsert keeps concurrent first reads from racing.
func (r *GameConfigRepository) GetByName(ctx context.Context, gameName string) (*entities.GameConfig, error) {
	query := `
		INSERT INTO casino_config (game_name, enabled, payout_percentage)
		VALUES ($1, TRUE, $2)
		ON CONFLICT (game_name) DO UPDATE SET game_name = EXCLUDED.game_name
		RETURNING id, game_name, enabled, payout_percentage, updated_at
	`

	var config entities.GameConfig
	err := r.q.QueryRow(ctx, query, gameName, entities.DefaultPayoutPercentage).Scan(
		&config.ID,
		&config.GameName,
		&config.Enabled,
		&config.PayoutPercentage,
		&config.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get config for game %s: %w", gameName, err)
	}
	return &config, nil
}

// Update persists changes to a game's config
func (r *GameConfigRepository) Update(ctx context.Context, config *entities.GameConfig) error {
	query := `
		UPDATE casino_config
		SET enabled = $1, payout_percentage = $2, updated_at = NOW()
		WHERE game_name = $3
		RETURNING updated_at
	`

	err := r.q.QueryRow(ctx, query, config.Enabled, config.PayoutPercentage, config.GameName).
		Scan(&config.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update config for game %s: %w", config.GameName, err)
	}
	return nil
}

// List returns all game configs
func (r *GameConfigRepository) List(ctx context.Context) ([]*entities.GameConfig, error) {
	query := `
		SELECT id, game_name, enabled, payout_percentage, updated_at
		FROM casino_config
		ORDER BY game_name
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query game configs: %w", err)
	}
	defer rows.Close()

	var configs []*entities.GameConfig
	for rows.Next() {
		var config entities.GameConfig
		err := rows.Scan(
			&config.ID,
			&config.GameName,
			&config.Enabled,
			&config.PayoutPercentage,
			&config.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game config: %w", err)
		}
		configs = append(configs, &config)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate game configs: %w", err)
	}
	return configs, nil
}
