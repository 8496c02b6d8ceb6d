package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceCents(t *testing.T) {
	cases := []struct {
		input string
		want  int64
	}{
		{"79.99", 7999},
		{"45", 4500},
		{"45.00", 4500},
		{"0.5", 50},
		{"0.05", 5},
		{"129,95", 12995},
		{" 10.00 ", 1000},
		{".99", 99},
		{"0", 0},
	}

	for _, tc := range cases {
		got, err := ParsePriceCents(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
	}
}

func TestParsePriceCentsRejectsInvalid(t *testing.T) {
	for _, input := range []string{"", "abc", "10.999", "10.00.00", "12e3"} {
		_, err := ParsePriceCents(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestParsePriceCentsRejectsNegative(t *testing.T) {
	for _, input := range []string{"-5.00", "-0.01", " -1 ", "-,50"} {
		_, err := ParsePriceCents(input)
		require.Error(t, err, "input %q", input)
		assert.ErrorIs(t, err, ErrInvalidPrice, "input %q", input)
	}
}

func TestCentsToDecimalString(t *testing.T) {
	assert.Equal(t, "79.99", CentsToDecimalString(7999))
	assert.Equal(t, "45.00", CentsToDecimalString(4500))
	assert.Equal(t, "0.05", CentsToDecimalString(5))
	assert.Equal(t, "-12.50", CentsToDecimalString(-1250))
}

func TestFormatPriceFallsBackOnUnknownCurrency(t *testing.T) {
	assert.Equal(t, "79.99 XXX_BAD", FormatPrice(7999, "XXX_BAD"))
}
