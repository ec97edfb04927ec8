package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAmount converts a decimal credit string like "12.50" or "-3" into
// cents. At most two fractional digits are accepted.
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return 0, fmt.Errorf("malformed amount")
	}
	if whole == "" {
		whole = "0"
	}

	// ParseInt tolerates its own sign, so only bare digits may reach it
	if !digitsOnly(whole) || !digitsOnly(frac) {
		return 0, fmt.Errorf("malformed amount %q", s)
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed amount %q: %w", s, err)
	}

	var cents int64
	if hasFrac {
		if len(frac) == 0 || len(frac) > 2 {
			return 0, fmt.Errorf("amount %q must have one or two fractional digits", s)
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("malformed amount %q: %w", s, err)
		}
		if len(frac) == 1 {
			cents *= 10
		}
	}

	total := units*100 + cents
	if negative {
		total = -total
	}
	return total, nil
}

func digitsOnly(s string) bool {
	for _, c := range []byte(s) {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// FormatAmount renders cents as a decimal credit string, e.g. 1250 -> "12.50"
func FormatAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
