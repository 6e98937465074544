package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction classifies a transaction as money out or money in.
type Direction string

const (
	DirectionDebit  Direction = "Debit"
	DirectionCredit Direction = "Credit"
)

// Transaction is one row of the canonical table produced by the loader.
type Transaction struct {
	ID        int             // 0-based position after the amount filter; never reassigned
	Date      time.Time       // zero value when the date was absent or unparseable
	Details   string          // trimmed free-text description
	Amount    decimal.Decimal // non-negative magnitude; sign lives in Direction
	Direction Direction
	Category  string
}

// HasDate reports whether the transaction carries a parsed date.
func (t Transaction) HasDate() bool {
	return !t.Date.IsZero()
}
