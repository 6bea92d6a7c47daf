// Package money implements fixed-point currency amounts and fee rates.
//
// Amounts are integer minor units (cents) and rates are integer basis points,
// so sums and products are exact. Conversion to a two-decimal string happens
// only when a value is presented.
package money

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"boxoffice/internal/shared/apperr"
)

// Amount is a currency amount in minor units (cents).
type Amount int64

// Rate is a fraction in basis points: 1500 is 0.15, RateOne is 1.
type Rate int64

const (
	amountDigits = 2
	rateDigits   = 4

	// RateOne is a rate of 100%.
	RateOne Rate = 10000
)

// Cents builds an Amount from minor units.
func Cents(c int64) Amount {
	return Amount(c)
}

// Units builds an Amount from whole currency units.
func Units(u int64) Amount {
	return Amount(u * 100)
}

// ParseAmount parses a decimal such as "99", "99.5" or "227.70".
// More than two fraction digits is rejected rather than rounded.
func ParseAmount(s string) (Amount, error) {
	v, err := parseFixed(s, amountDigits)
	if err != nil {
		return 0, fmt.Errorf("%w: amount %q: %v", apperr.ErrInvalidInput, s, err)
	}
	return Amount(v), nil
}

// Cents returns the amount in minor units.
func (a Amount) Cents() int64 {
	return int64(a)
}

// IsWhole reports whether the amount has no cents.
func (a Amount) IsWhole() bool {
	return a%100 == 0
}

// String formats the amount with exactly two decimals.
func (a Amount) String() string {
	return formatFixed(int64(a), amountDigits, false)
}

// Mul returns a*n. ok is false when the product overflows.
func (a Amount) Mul(n int64) (Amount, bool) {
	if a == 0 || n == 0 {
		return 0, true
	}
	p := int64(a) * n
	if p/n != int64(a) || (n == -1 && int64(a) == math.MinInt64) {
		return 0, false
	}
	return Amount(p), true
}

// Add returns a+b. ok is false when the sum overflows.
func (a Amount) Add(b Amount) (Amount, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}
	return s, true
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts both "99.00" and 99.00.
func (a *Amount) UnmarshalJSON(data []byte) error {
	raw, err := rawDecimal(data)
	if err != nil || raw == "" {
		return err
	}
	v, err := ParseAmount(raw)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// ParseRate parses a fraction such as "0.15" or "1". Up to four fraction digits are kept.
func ParseRate(s string) (Rate, error) {
	v, err := parseFixed(s, rateDigits)
	if err != nil {
		return 0, fmt.Errorf("%w: rate %q: %v", apperr.ErrInvalidInput, s, err)
	}
	return Rate(v), nil
}

// BasisPoints returns the rate in hundredths of a percent.
func (r Rate) BasisPoints() int64 {
	return int64(r)
}

// InUnitRange reports whether the rate lies in [0, 1].
func (r Rate) InUnitRange() bool {
	return r >= 0 && r <= RateOne
}

// String formats the rate without trailing zeros, e.g. "0.15".
func (r Rate) String() string {
	return formatFixed(int64(r), rateDigits, true)
}

// Of returns a×r rounded half away from zero to the cent. ok is false on overflow.
func (r Rate) Of(a Amount) (Amount, bool) {
	p, ok := a.Mul(int64(r))
	if !ok {
		return 0, false
	}
	q := int64(p) / int64(RateOne)
	rem := int64(p) % int64(RateOne)
	switch {
	case rem*2 >= int64(RateOne):
		q++
	case rem*2 <= -int64(RateOne):
		q--
	}
	return Amount(q), true
}

func (r Rate) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON accepts both "0.15" and 0.15.
func (r *Rate) UnmarshalJSON(data []byte) error {
	raw, err := rawDecimal(data)
	if err != nil || raw == "" {
		return err
	}
	v, err := ParseRate(raw)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// rawDecimal extracts the decimal text of a JSON string or number. null yields "".
func rawDecimal(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return "", nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	return string(data), nil
}

func parseFixed(s string, digits int) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty value")
	}

	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	whole, frac, hasDot := strings.Cut(s, ".")
	if !isDigits(whole) || (hasDot && !isDigits(frac)) {
		return 0, errors.New("malformed decimal")
	}
	if len(frac) > digits {
		return 0, fmt.Errorf("more than %d decimal places", digits)
	}
	frac += strings.Repeat("0", digits-len(frac))

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, errors.New("value out of range")
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, errors.New("malformed decimal")
	}

	scale := pow10(digits)
	if w > (math.MaxInt64-f)/scale {
		return 0, errors.New("value out of range")
	}
	v := w*scale + f
	if neg {
		v = -v
	}
	return v, nil
}

func formatFixed(v int64, digits int, trim bool) string {
	neg := v < 0
	u := uint64(v)
	if neg {
		u = -u
	}

	scale := uint64(pow10(digits))
	fs := strconv.FormatUint(u%scale, 10)
	fs = strings.Repeat("0", digits-len(fs)) + fs
	if trim {
		fs = strings.TrimRight(fs, "0")
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(strconv.FormatUint(u/scale, 10))
	if fs != "" {
		b.WriteByte('.')
		b.WriteString(fs)
	}
	return b.String()
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func pow10(n int) int64 {
	p := int64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}
