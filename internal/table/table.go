// Package table holds the canonical transaction table produced by the loader
// and its presentation-boundary views: debit/credit subsets and per-category
// sums.
package table

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/spendlens/spendlens/internal/model"
)

// Table is the normalized, typed row set for one loaded file. Row IDs are
// assigned once at load time and never reassigned.
type Table struct {
	Rows []model.Transaction
}

// Get returns a pointer to the transaction with the given ID, nil if absent.
func (t *Table) Get(id int) *model.Transaction {
	// IDs are positional at load time, so try the direct index first.
	if id >= 0 && id < len(t.Rows) && t.Rows[id].ID == id {
		return &t.Rows[id]
	}
	for i := range t.Rows {
		if t.Rows[i].ID == id {
			return &t.Rows[i]
		}
	}
	return nil
}

// Debits returns the rows classified as money out.
func (t *Table) Debits() []model.Transaction {
	return t.byDirection(model.DirectionDebit)
}

// Credits returns the rows classified as money in.
func (t *Table) Credits() []model.Transaction {
	return t.byDirection(model.DirectionCredit)
}

func (t *Table) byDirection(d model.Direction) []model.Transaction {
	var out []model.Transaction
	for _, row := range t.Rows {
		if row.Direction == d {
			out = append(out, row)
		}
	}
	return out
}

// CategorySum is one row of the per-category aggregation.
type CategorySum struct {
	Category string
	Amount   decimal.Decimal
}

// SumByCategory aggregates amounts per category, largest first. Categories
// tied on amount are ordered by name so the output is deterministic.
func (t *Table) SumByCategory() []CategorySum {
	totals := make(map[string]decimal.Decimal)
	for _, row := range t.Rows {
		totals[row.Category] = totals[row.Category].Add(row.Amount)
	}

	sums := make([]CategorySum, 0, len(totals))
	for cat, amt := range totals {
		sums = append(sums, CategorySum{Category: cat, Amount: amt})
	}
	sort.Slice(sums, func(i, j int) bool {
		if !sums[i].Amount.Equal(sums[j].Amount) {
			return sums[i].Amount.GreaterThan(sums[j].Amount)
		}
		return sums[i].Category < sums[j].Category
	})
	return sums
}

// Total returns the sum of all row amounts.
func (t *Table) Total() decimal.Decimal {
	total := decimal.Zero
	for _, row := range t.Rows {
		total = total.Add(row.Amount)
	}
	return total
}
