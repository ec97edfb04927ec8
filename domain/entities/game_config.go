package entities

import "time"

// Game names known to the casino.
const (
	GameGlitchGrid        = "glitch_grid"
	GameStarlightSmuggler = "starlight_smuggler"
)

// DefaultPayoutPercentage is applied when a game has no stored config yet.
const DefaultPayoutPercentage = 102.0

// GameConfig is the per-game configuration snapshot read before each spin.
// The admin surface keeps PayoutPercentage within [50,99]; the payout math
// accepts any positive factor so seeded or legacy values still work.
type GameConfig struct {
	ID               int64     `db:"id"`
	GameName         string    `db:"game_name"`
	Enabled          bool      `db:"enabled"`
	PayoutPercentage float64   `db:"payout_percentage"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// EffectiveMultiplier scales a raw win multiplier by the payout percentage,
// truncating toward zero. floor(10 * 102/100) = 10, floor(50 * 1.02) = 51.
func (c *GameConfig) EffectiveMultiplier(raw int64) int64 {
	if raw <= 0 {
		return 0
	}
	return int64(float64(raw) * c.PayoutPercentage / 100.0)
}
