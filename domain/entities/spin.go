package entities

// Symbol is a single reel symbol. The concrete alphabets live with the
// payout engines; results carry symbols as opaque identifiers.
type Symbol string

// GridSpinResult is the outcome of one Glitch Grid spin.
type GridSpinResult struct {
	Reels      [3]Symbol `json:"reels"`
	Bet        int64     `json:"bet"`
	Multiplier int64     `json:"win_multiplier"`
	WinAmount  int64     `json:"win_amount"`
	Balance    int64     `json:"balance"`
}

// LineWin is a single winning payline in a multiline spin. Multiplier is
// the raw table value before the payout percentage is applied.
type LineWin struct {
	Line       int    `json:"line"`
	Symbol     Symbol `json:"symbol"`
	Run        int    `json:"run"`
	Multiplier int64  `json:"multiplier"`
}

// MultilineSpinResult is the outcome of one Starlight Smuggler spin.
// Multiplier is the aggregate across all winning lines after the payout
// percentage adjustment; WinAmount = per-line bet * Multiplier.
type MultilineSpinResult struct {
	Grid         [3][5]Symbol `json:"grid"`
	BetPerLine   int64        `json:"bet_per_line"`
	TotalBet     int64        `json:"total_bet"`
	LineWins     []LineWin    `json:"line_wins"`
	WinningLines []int        `json:"winning_lines"`
	Multiplier   int64        `json:"win_multiplier"`
	WinAmount    int64        `json:"win_amount"`
	ScatterCount int          `json:"scatter_count"`
	BonusSpins   int          `json:"bonus_spins"`
	Balance      int64        `json:"balance"`
}
