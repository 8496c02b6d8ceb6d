package lib

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ErrInvalidPrice = errors.New("invalid price")

// ParsePriceCents converts a decimal price string like "79.99" into integer
// cents. Parsing is done on the string itself so values never round-trip
// through floating point.
func ParsePriceCents(input string) (int64, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, ErrInvalidPrice
	}

	// Accept a comma decimal separator as typed by European users
	s = strings.ReplaceAll(s, ",", ".")

	// Prices are amounts, not deltas: a negative value is always operator error.
	if strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("%w: must not be negative", ErrInvalidPrice)
	}

	whole := s
	frac := ""
	if idx := strings.Index(s, "."); idx >= 0 {
		whole = s[:idx]
		frac = s[idx+1:]
	}

	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("%w: at most two decimal places", ErrInvalidPrice)
	}
	// Pad "9" -> "90" so .9 means 90 cents
	for len(frac) < 2 {
		frac += "0"
	}

	wholeVal, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, input)
	}
	fracVal, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, input)
	}

	return wholeVal*100 + fracVal, nil
}

// CentsToDecimalString renders integer cents as a plain "79.99" style string.
func CentsToDecimalString(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// FormatPrice renders integer cents as a localized currency amount, for
// example "€ 79,99" for EUR.
func FormatPrice(cents int64, currencyCode string) string {
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return CentsToDecimalString(cents) + " " + currencyCode
	}

	printer := message.NewPrinter(language.Dutch)
	amount := float64(cents) / 100
	return printer.Sprintf("%v", currency.Symbol(unit.Amount(amount)))
}
