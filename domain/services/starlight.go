package services

import "neonbank/domain/entities"

// Starlight Smuggler symbol alphabet. Wormhole is the scatter: it has no
// line payout and instead triggers bonus spins when three or more land
// anywhere on the grid.
const (
	SymbolFreighter entities.Symbol = "freighter"
	SymbolMap       entities.Symbol = "map"
	SymbolBlaster   entities.Symbol = "blaster"
	SymbolGem       entities.Symbol = "gem"
	SymbolWormhole  entities.Symbol = "wormhole"
	SymbolStar      entities.Symbol = "star"
)

const (
	// StarlightLineCount is the fixed number of paylines; every spin
	// stakes all of them.
	StarlightLineCount = 9

	starlightScatterTrigger = 3
	starlightBonusSpins     = 5
)

// starlightSymbols is the uniform draw pool for a single grid cell.
var starlightSymbols = []entities.Symbol{
	SymbolFreighter, SymbolMap, SymbolBlaster, SymbolGem, SymbolWormhole, SymbolStar,
}

// starlightPayouts maps symbol and run length to the raw multiplier, in
// per-line bet units. Runs shorter than three pay nothing.
var starlightPayouts = map[entities.Symbol][6]int64{
	//                       run:  0  1  2   3   4    5
	SymbolGem:       {0, 0, 0, 20, 75, 250},
	SymbolFreighter: {0, 0, 0, 15, 50, 200},
	SymbolMap:       {0, 0, 0, 12, 40, 150},
	SymbolBlaster:   {0, 0, 0, 10, 30, 100},
	SymbolStar:      {0, 0, 0, 8, 25, 80},
}

// starlightPaylines gives each payline as five (row, col) grid
// coordinates, left to right. Lines 0-2 are the straight rows, then the
// V and inverted V, the two diagonals, and the two W shapes.
var starlightPaylines = [StarlightLineCount][5][2]int{
	{{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}},
	{{1, 0}, {1, 1}, {1, 2}, {1, 3}, {1, 4}},
	{{2, 0}, {2, 1}, {2, 2}, {2, 3}, {2, 4}},
	{{0, 0}, {1, 1}, {2, 2}, {1, 3}, {0, 4}},
	{{2, 0}, {1, 1}, {0, 2}, {1, 3}, {2, 4}},
	{{0, 0}, {0, 1}, {1, 2}, {2, 3}, {2, 4}},
	{{2, 0}, {2, 1}, {1, 2}, {0, 3}, {0, 4}},
	{{1, 0}, {0, 1}, {0, 2}, {0, 3}, {1, 4}},
	{{1, 0}, {2, 1}, {2, 2}, {2, 3}, {1, 4}},
}

// evaluateStarlight scores a full grid: line wins across all nine
// paylines plus the scatter count. The returned multiplier is the raw
// sum of line multipliers in per-line bet units.
func evaluateStarlight(grid [3][5]entities.Symbol) (lineWins []entities.LineWin, rawMultiplier int64, scatterCount, bonusSpins int) {
	for line, coords := range starlightPaylines {
		anchor := grid[coords[0][0]][coords[0][1]]
		run := 1
		for _, c := range coords[1:] {
			if grid[c[0]][c[1]] != anchor {
				break
			}
			run++
		}
		payout := starlightPayouts[anchor][run]
		if payout > 0 {
			lineWins = append(lineWins, entities.LineWin{
				Line:       line,
				Symbol:     anchor,
				Run:        run,
				Multiplier: payout,
			})
			rawMultiplier += payout
		}
	}

	for row := range grid {
		for _, symbol := range grid[row] {
			if symbol == SymbolWormhole {
				scatterCount++
			}
		}
	}
	if scatterCount >= starlightScatterTrigger {
		bonusSpins = starlightBonusSpins
	}
	return lineWins, rawMultiplier, scatterCount, bonusSpins
}
