package domain

import (
	"fmt"
	"math/big"
	"strings"
)

// validCurrencies is the fixed set of currency codes this catalog accepts.
var validCurrencies = map[string]bool{
	"USD": true,
	"EUR": true,
	"GBP": true,
	"ETB": true,
}

// Money is an immutable amount/currency pair. The amount is held as a
// big.Rat to avoid floating-point drift and is always rounded to two
// decimal places, half away from zero, at construction. All operations
// return new instances.
type Money struct {
	amount   *big.Rat
	currency string
}

// NewMoney builds Money from a rational amount and a currency code.
// The currency is case-normalized to upper case and must be one of the
// allowed set; the amount must not be negative.
func NewMoney(amount *big.Rat, currency string) (*Money, error) {
	if amount == nil || amount.Sign() < 0 {
		return nil, ErrNegativeAmount
	}
	cur := strings.ToUpper(strings.TrimSpace(currency))
	if cur == "" {
		return nil, ErrCurrencyRequired
	}
	if !validCurrencies[cur] {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCurrency, currency)
	}
	return &Money{amount: roundHalfAwayFromZero(amount), currency: cur}, nil
}

// NewMoneyFromDecimal builds Money from a decimal string such as "450.00".
func NewMoneyFromDecimal(decimal, currency string) (*Money, error) {
	rat := new(big.Rat)
	if _, ok := rat.SetString(decimal); !ok {
		return nil, fmt.Errorf("invalid decimal format: %s", decimal)
	}
	return NewMoney(rat, currency)
}

// NewMoneyFromCents builds Money from an integer number of minor units.
// Used when loading persisted prices.
func NewMoneyFromCents(cents int64, currency string) (*Money, error) {
	return NewMoney(big.NewRat(cents, 100), currency)
}

// Amount returns a copy of the amount.
func (m *Money) Amount() *big.Rat {
	return new(big.Rat).Set(m.amount)
}

// Currency returns the upper-case currency code.
func (m *Money) Currency() string {
	return m.currency
}

// Cents returns the amount in minor units. The amount is always a
// multiple of 1/100 after construction, so this is exact.
func (m *Money) Cents() int64 {
	scaled := new(big.Rat).Mul(m.amount, big.NewRat(100, 1))
	return scaled.Num().Int64() / scaled.Denom().Int64()
}

// Decimal returns the amount as a two-decimal string, e.g. "450.00".
func (m *Money) Decimal() string {
	return m.amount.FloatString(2)
}

// String formats the value for display, e.g. "ETB 450.00".
func (m *Money) String() string {
	return m.currency + " " + m.Decimal()
}

// Add returns m + other. Fails if currencies differ.
func (m *Money) Add(other *Money) (*Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return nil, err
	}
	return NewMoney(new(big.Rat).Add(m.amount, other.amount), m.currency)
}

// Subtract returns m - other. Fails if currencies differ or the result
// would be negative.
func (m *Money) Subtract(other *Money) (*Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return nil, err
	}
	return NewMoney(new(big.Rat).Sub(m.amount, other.amount), m.currency)
}

// Multiply returns m scaled by factor, re-validated and re-rounded.
func (m *Money) Multiply(factor *big.Rat) (*Money, error) {
	if factor == nil {
		return nil, fmt.Errorf("multiply: factor is required")
	}
	return NewMoney(new(big.Rat).Mul(m.amount, factor), m.currency)
}

// ApplyPercentage returns pct percent of m, e.g. ApplyPercentage(20)
// on ETB 100.00 yields ETB 20.00.
func (m *Money) ApplyPercentage(pct *big.Rat) (*Money, error) {
	if pct == nil {
		return nil, fmt.Errorf("apply percentage: percentage is required")
	}
	return m.Multiply(new(big.Rat).Quo(pct, big.NewRat(100, 1)))
}

// Compare returns -1, 0 or +1 ordering m against other.
// Cross-currency comparison is rejected with ErrCurrencyMismatch rather
// than returning a misleading ordering.
func (m *Money) Compare(other *Money) (int, error) {
	if err := m.sameCurrency(other); err != nil {
		return 0, err
	}
	return m.amount.Cmp(other.amount), nil
}

// LessThanOrEqual reports m <= other, failing on mismatched currency.
func (m *Money) LessThanOrEqual(other *Money) (bool, error) {
	c, err := m.Compare(other)
	if err != nil {
		return false, err
	}
	return c <= 0, nil
}

// GreaterThanOrEqual reports m >= other, failing on mismatched currency.
func (m *Money) GreaterThanOrEqual(other *Money) (bool, error) {
	c, err := m.Compare(other)
	if err != nil {
		return false, err
	}
	return c >= 0, nil
}

// Equals reports value equality. Money of different currencies is never
// equal.
func (m *Money) Equals(other *Money) bool {
	if other == nil {
		return false
	}
	return m.currency == other.currency && m.amount.Cmp(other.amount) == 0
}

// IsZero reports whether the amount is zero.
func (m *Money) IsZero() bool {
	return m.amount.Sign() == 0
}

// IsPositive reports whether the amount is strictly positive.
func (m *Money) IsPositive() bool {
	return m.amount.Sign() > 0
}

func (m *Money) sameCurrency(other *Money) error {
	if other == nil {
		return fmt.Errorf("money: other operand is required")
	}
	if m.currency != other.currency {
		return fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.currency, other.currency)
	}
	return nil
}

// roundHalfAwayFromZero rounds r to two decimal places with ties going
// away from zero.
func roundHalfAwayFromZero(r *big.Rat) *big.Rat {
	scaled := new(big.Rat).Mul(r, big.NewRat(100, 1))
	num := new(big.Int).Abs(scaled.Num())
	den := scaled.Denom() // always positive
	q, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	if new(big.Int).Lsh(rem, 1).Cmp(den) >= 0 {
		q.Add(q, big.NewInt(1))
	}
	if scaled.Sign() < 0 {
		q.Neg(q)
	}
	return new(big.Rat).SetFrac(q, big.NewInt(100))
}
