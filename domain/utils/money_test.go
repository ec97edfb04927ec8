package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		input    string
		expected int64
	}{
		{"12.50", 1250},
		{"12.5", 1250},
		{"12", 1200},
		{"0.01", 1},
		{".5", 50},
		{"-3", -300},
		{"-0.25", -25},
		{"+7.00", 700},
		{" 10 ", 1000},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.input)
		assert.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.expected, got, "input %q", tc.input)
	}
}

func TestParseAmount_Malformed(t *testing.T) {
	for _, input := range []string{"", ".", "1.234", "12,50", "abc", "1.x", "1.-5", "2.+9", "--5", "+-5", "1. 5"} {
		_, err := ParseAmount(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "12.50", FormatAmount(1250))
	assert.Equal(t, "0.01", FormatAmount(1))
	assert.Equal(t, "0.00", FormatAmount(0))
	assert.Equal(t, "-3.00", FormatAmount(-300))
	assert.Equal(t, "1000.00", FormatAmount(100_000))
}
