package cheque

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		dollars uint64
		cents   int
	}{
		{"0", 0, 0},
		{"123", 123, 0},
		{"123.45", 123, 45},
		{"123.4", 123, 40},
		{"1,234.50", 1234, 50},
		{"0.05", 0, 5},
		{"1000001", 1000001, 0},
		{"  42  ", 42, 0},
		{"0.00", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			a, err := ParseAmount(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.dollars, a.Dollars)
			assert.Equal(t, tt.cents, a.Cents)
		})
	}
}

func TestParseAmountRejectsInvalid(t *testing.T) {
	bad := []string{
		"",
		"abc",
		"-1",
		"-0.01",
		"12.345",
		"1.2.3",
		"+5",
		"1000000000000000", // beyond the trillion/兆 vocabulary
	}
	for _, in := range bad {
		t.Run(in, func(t *testing.T) {
			_, err := ParseAmount(in)
			assert.ErrorIs(t, err, ErrInvalidAmount)
		})
	}
}
