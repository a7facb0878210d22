package room

import (
	"strings"

	"github.com/shopspring/decimal"
)

const MaxRoomNumberLength = 16

type Number struct {
	value string
}

func NewNumber(s string) (Number, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Number{}, ErrEmptyRoomNumber
	}
	if len(t) > MaxRoomNumberLength {
		return Number{}, ErrRoomNumberTooLong
	}
	return Number{value: t}, nil
}

func (n Number) String() string { return n.value }

// Price is a positive nightly rate.
type Price struct {
	amount decimal.Decimal
}

func NewPrice(amount decimal.Decimal) (Price, error) {
	if !amount.IsPositive() {
		return Price{}, ErrNonPositivePrice
	}
	return Price{amount: amount}, nil
}

func (p Price) Decimal() decimal.Decimal { return p.amount }

func (p Price) Times(n int) decimal.Decimal {
	return p.amount.Mul(decimal.NewFromInt(int64(n)))
}

func (p Price) String() string { return p.amount.StringFixed(2) }
