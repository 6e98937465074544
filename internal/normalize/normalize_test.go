package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlens/spendlens/internal/model"
)

func TestParseAmount_ThousandsSeparators(t *testing.T) {
	d, ok := ParseAmount("1,234.56")
	require.True(t, ok)
	assert.Equal(t, "1234.56", d.String())
}

func TestParseAmount_CurrencyPrefix(t *testing.T) {
	d, ok := ParseAmount("INR 1,234.56")
	require.True(t, ok)
	assert.Equal(t, "1234.56", d.String())
}

func TestParseAmount_NegativeSign(t *testing.T) {
	d, ok := ParseAmount("-42.50")
	require.True(t, ok)
	assert.True(t, d.IsNegative())
	assert.Equal(t, "-42.5", d.String())
}

func TestParseAmount_CurrencySymbolAndSign(t *testing.T) {
	d, ok := ParseAmount("$-1,000.00")
	require.True(t, ok)
	assert.Equal(t, "-1000", d.String())
}

func TestParseAmount_NonNumeric(t *testing.T) {
	_, ok := ParseAmount("abc")
	assert.False(t, ok)
}

func TestParseAmount_Empty(t *testing.T) {
	_, ok := ParseAmount("")
	assert.False(t, ok)

	_, ok = ParseAmount("   ")
	assert.False(t, ok)
}

func TestParseAmount_InBodyHeader(t *testing.T) {
	// Some exports repeat the header row inside the body.
	_, ok := ParseAmount("Amount")
	assert.False(t, ok)
}

func TestParseDate_DayFirst(t *testing.T) {
	d, ok := ParseDate("05/01/2025", true)
	require.True(t, ok)
	assert.Equal(t, 5, d.Day())
	assert.Equal(t, time.January, d.Month())
	assert.Equal(t, 2025, d.Year())
}

func TestParseDate_ISOFallback(t *testing.T) {
	d, ok := ParseDate("2025-01-05", true)
	require.True(t, ok)
	assert.Equal(t, 5, d.Day())
	assert.Equal(t, time.January, d.Month())
}

func TestParseDate_MonthFirstFallback(t *testing.T) {
	// 13 cannot be a month, so the day-first layouts reject this and
	// the month-first fallback picks it up.
	d, ok := ParseDate("01/13/2025", true)
	require.True(t, ok)
	assert.Equal(t, 13, d.Day())
	assert.Equal(t, time.January, d.Month())
}

func TestParseDate_MonthFirstPreference(t *testing.T) {
	d, ok := ParseDate("01/05/2025", false)
	require.True(t, ok)
	assert.Equal(t, 5, d.Day())
	assert.Equal(t, time.January, d.Month())
}

func TestParseDate_Invalid(t *testing.T) {
	_, ok := ParseDate("NOTADATE", true)
	assert.False(t, ok)

	_, ok = ParseDate("", true)
	assert.False(t, ok)
}

func TestParseDirection_Vocabulary(t *testing.T) {
	cases := map[string]model.Direction{
		"DEBIT":         model.DirectionDebit,
		"withdrawal":    model.DirectionDebit,
		"Payment":       model.DirectionDebit,
		"DR":            model.DirectionDebit,
		"credit":        model.DirectionCredit,
		"Deposit":       model.DirectionCredit,
		"CR":            model.DirectionCredit,
		"ACH_DEBIT":     model.DirectionDebit,
		"Direct Credit": model.DirectionCredit,
	}
	for raw, want := range cases {
		got, ok := ParseDirection(raw)
		require.True(t, ok, "raw=%q", raw)
		assert.Equal(t, want, got, "raw=%q", raw)
	}
}

func TestParseDirection_NumericSign(t *testing.T) {
	got, ok := ParseDirection("-50.00")
	require.True(t, ok)
	assert.Equal(t, model.DirectionDebit, got)

	got, ok = ParseDirection("30")
	require.True(t, ok)
	assert.Equal(t, model.DirectionCredit, got)

	got, ok = ParseDirection("0")
	require.True(t, ok)
	assert.Equal(t, model.DirectionCredit, got)
}

func TestParseDirection_Unknown(t *testing.T) {
	_, ok := ParseDirection("mystery")
	assert.False(t, ok)

	_, ok = ParseDirection("")
	assert.False(t, ok)
}
