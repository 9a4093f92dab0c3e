package offer

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativePrice       = errors.New("price amount cannot be negative")
	ErrInvalidCurrency     = errors.New("currency must be a 3-letter ISO 4217 code")
	ErrNegativeStock       = errors.New("stock total cannot be negative")
	ErrInitialSoldOutRange = errors.New("initial sold count must be between 0 and stock total")
	ErrMissingEndsAt       = errors.New("countdown target is required")
)

var currencyRegex = regexp.MustCompile(`^[A-Z]{3}$`)

type Currency string

func NewCurrency(s string) (Currency, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !currencyRegex.MatchString(s) {
		return "", ErrInvalidCurrency
	}
	return Currency(s), nil
}

func (c Currency) String() string {
	return string(c)
}

type Price struct {
	amount   decimal.Decimal
	currency Currency
	note     string
}

func NewPrice(amount decimal.Decimal, currency, note string) (Price, error) {
	if amount.IsNegative() {
		return Price{}, ErrNegativePrice
	}
	cur, err := NewCurrency(currency)
	if err != nil {
		return Price{}, err
	}
	return Price{amount: amount, currency: cur, note: strings.TrimSpace(note)}, nil
}

func (p Price) Amount() decimal.Decimal { return p.amount }
func (p Price) Currency() Currency      { return p.currency }
func (p Price) Note() string            { return p.note }

// Display renders the amount the way the pricing panel shows it: "$49", "$49.90".
func (p Price) Display() string {
	return "$" + p.amount.StringFixedBank(decimalPlaces(p.amount))
}

// Summary is the one-line price caption under the hero call to action.
func (p Price) Summary() string {
	s := p.Display() + " " + p.currency.String()
	if p.note != "" {
		s += " — " + p.note
	}
	return s
}

func decimalPlaces(d decimal.Decimal) int32 {
	if d.Equal(d.Truncate(0)) {
		return 0
	}
	return 2
}

type Stock struct {
	total       int
	initialSold int
	endsAt      time.Time
}

func NewStock(total, initialSold int, endsAt time.Time) (Stock, error) {
	if total < 0 {
		return Stock{}, ErrNegativeStock
	}
	if initialSold < 0 || initialSold > total {
		return Stock{}, ErrInitialSoldOutRange
	}
	if endsAt.IsZero() {
		return Stock{}, ErrMissingEndsAt
	}
	return Stock{total: total, initialSold: initialSold, endsAt: endsAt}, nil
}

func (s Stock) Total() int        { return s.total }
func (s Stock) InitialSold() int  { return s.initialSold }
func (s Stock) EndsAt() time.Time { return s.endsAt }

// DefaultEndsAt is the fallback countdown target: five days after now, at
// 23:59:59 in now's location.
func DefaultEndsAt(now time.Time) time.Time {
	d := now.AddDate(0, 0, 5)
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 0, d.Location())
}

type Hero struct {
	Title        string
	Subtitle     string
	CTAPrimary   string
	CTASecondary string
}

type Feature struct {
	Icon  string
	Title string
	Desc  string
}

type FAQ struct {
	Q string
	A string
}
