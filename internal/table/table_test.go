package table

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlens/spendlens/internal/model"
)

func amt(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleTable() *Table {
	return &Table{Rows: []model.Transaction{
		{ID: 0, Details: "SWIGGY ORDER", Amount: amt("450.50"), Direction: model.DirectionDebit, Category: "Food"},
		{ID: 1, Details: "SALARY", Amount: amt("50000"), Direction: model.DirectionCredit, Category: "Uncategorized"},
		{ID: 2, Details: "UBER TRIP", Amount: amt("230"), Direction: model.DirectionDebit, Category: "Transport"},
		{ID: 3, Details: "ZOMATO", Amount: amt("320"), Direction: model.DirectionDebit, Category: "Food"},
	}}
}

func TestGet(t *testing.T) {
	tbl := sampleTable()
	txn := tbl.Get(2)
	require.NotNil(t, txn)
	assert.Equal(t, "UBER TRIP", txn.Details)

	assert.Nil(t, tbl.Get(99))
	assert.Nil(t, tbl.Get(-1))
}

func TestGet_ReturnsMutablePointer(t *testing.T) {
	tbl := sampleTable()
	tbl.Get(1).Category = "Income"
	assert.Equal(t, "Income", tbl.Rows[1].Category)
}

func TestDebitsCredits(t *testing.T) {
	tbl := sampleTable()
	assert.Len(t, tbl.Debits(), 3)
	assert.Len(t, tbl.Credits(), 1)
	assert.Equal(t, "SALARY", tbl.Credits()[0].Details)
}

func TestSumByCategory(t *testing.T) {
	tbl := sampleTable()
	sums := tbl.SumByCategory()
	require.Len(t, sums, 3)

	// Largest first.
	assert.Equal(t, "Uncategorized", sums[0].Category)
	assert.Equal(t, "50000", sums[0].Amount.String())
	assert.Equal(t, "Food", sums[1].Category)
	assert.Equal(t, "770.5", sums[1].Amount.String())
	assert.Equal(t, "Transport", sums[2].Category)
}

func TestTotal(t *testing.T) {
	tbl := sampleTable()
	assert.Equal(t, "51000.5", tbl.Total().String())
}

func TestCSV_RoundTrip(t *testing.T) {
	tbl := sampleTable()
	tbl.Rows[0].Date = time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)

	var buf strings.Builder
	require.NoError(t, Write(&buf, tbl))

	got, err := Read(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Len(t, got.Rows, 4)

	assert.Equal(t, tbl.Rows[0].Details, got.Rows[0].Details)
	assert.True(t, got.Rows[0].Date.Equal(tbl.Rows[0].Date))
	assert.False(t, got.Rows[1].HasDate())
	assert.True(t, got.Rows[3].Amount.Equal(amt("320")))
	assert.Equal(t, model.DirectionCredit, got.Rows[1].Direction)
}

func TestRead_Empty(t *testing.T) {
	got, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got.Rows)
}

func TestRead_HeaderOnly(t *testing.T) {
	got, err := Read(strings.NewReader(Header + "\n"))
	require.NoError(t, err)
	assert.Empty(t, got.Rows)
}

func TestUnmarshalRow_BadFields(t *testing.T) {
	_, err := UnmarshalRow([]string{"x", "", "desc", "1.00", "Debit", "Food"})
	assert.Error(t, err)

	_, err = UnmarshalRow([]string{"0", "not-a-date", "desc", "1.00", "Debit", "Food"})
	assert.Error(t, err)

	_, err = UnmarshalRow([]string{"0", "", "desc", "NaN?", "Debit", "Food"})
	assert.Error(t, err)

	_, err = UnmarshalRow([]string{"0", "", "desc", "1.00", "Sideways", "Food"})
	assert.Error(t, err)
}
