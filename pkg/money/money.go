// Package money converts between integer cents and the two-decimal strings
// used on the wire.
package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Cents is an amount of money stored as an integer number of cents
type Cents int64

// String renders the amount with two decimal places, e.g. 13635 -> "136.35"
func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON renders the amount as a quoted decimal string
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(c.String())), nil
}

// ParseDollars parses a decimal dollar amount such as "136.35" into cents.
// Digits past the second decimal place round half away from zero. Exponents
// and amounts that do not fit in Cents are rejected.
func ParseDollars(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	digits := s
	negative := false
	switch digits[0] {
	case '-':
		negative = true
		digits = digits[1:]
	case '+':
		digits = digits[1:]
	}

	whole, frac, _ := strings.Cut(digits, ".")
	if (whole == "" && frac == "") || !allDigits(whole) || !allDigits(frac) {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	var cents uint64
	for _, d := range whole {
		if cents > (math.MaxInt64-9)/10 {
			return 0, fmt.Errorf("amount %q out of range", s)
		}
		cents = cents*10 + uint64(d-'0')
	}
	if cents > math.MaxInt64/100 {
		return 0, fmt.Errorf("amount %q out of range", s)
	}
	cents *= 100

	for i, scale := range []uint64{10, 1} {
		if i < len(frac) {
			cents += uint64(frac[i]-'0') * scale
		}
	}
	if len(frac) > 2 && frac[2] >= '5' {
		cents++
	}
	if cents > math.MaxInt64 {
		return 0, fmt.Errorf("amount %q out of range", s)
	}

	if negative {
		return -Cents(cents), nil
	}
	return Cents(cents), nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
