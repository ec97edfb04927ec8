package services

import "neonbank/domain/entities"

// Glitch Grid symbol alphabet.
const (
	SymbolSkull  entities.Symbol = "skull"
	SymbolBinary entities.Symbol = "binary"
	SymbolJack   entities.Symbol = "jack"
	SymbolKanji  entities.Symbol = "kanji"
	SymbolWild   entities.Symbol = "wild"
)

// glitchGridSymbols is the uniform draw pool for a single reel.
var glitchGridSymbols = []entities.Symbol{
	SymbolSkull, SymbolBinary, SymbolJack, SymbolKanji, SymbolWild,
}

// Raw multipliers for three matching symbols.
var glitchGridTriples = map[entities.Symbol]int64{
	SymbolWild:   100,
	SymbolSkull:  50,
	SymbolKanji:  40,
	SymbolBinary: 30,
	SymbolJack:   20,
}

// Raw multipliers for a left-aligned pair on reels one and two.
var glitchGridPairs = map[entities.Symbol]int64{
	SymbolWild:   10,
	SymbolSkull:  5,
	SymbolKanji:  4,
	SymbolBinary: 3,
	SymbolJack:   2,
}

// evaluateGlitchGrid returns the raw win multiplier for a reel draw.
// Only left-aligned matches pay: three of a kind beats the pair table,
// and a pair on reels two and three pays nothing.
func evaluateGlitchGrid(reels [3]entities.Symbol) int64 {
	if reels[0] == reels[1] && reels[1] == reels[2] {
		return glitchGridTriples[reels[0]]
	}
	if reels[0] == reels[1] {
		return glitchGridPairs[reels[0]]
	}
	return 0
}
