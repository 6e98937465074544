// Package loader turns raw bank CSV content into the canonical transaction
// table: schema detection, field normalization, stable ID assignment and
// initial categorization.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/spendlens/spendlens/internal/categorize"
	"github.com/spendlens/spendlens/internal/catstore"
	"github.com/spendlens/spendlens/internal/model"
	"github.com/spendlens/spendlens/internal/normalize"
	"github.com/spendlens/spendlens/internal/schema"
	"github.com/spendlens/spendlens/internal/table"
)

var log = logrus.New()

// SetLogger replaces the package logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// ReadError reports a malformed or unreadable CSV file. Fatal to the load;
// no partial table is produced.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading transactions CSV: %v", e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Options control per-file parsing behavior.
type Options struct {
	// DayFirst makes ambiguous dates parse day-first (DD/MM/YYYY).
	DayFirst bool
}

// Result is a loaded canonical table plus load diagnostics.
type Result struct {
	Table *table.Table
	// Dropped counts rows discarded because their amount failed to parse.
	// Dropping is deliberate (it also sheds in-body header rows some
	// exports duplicate) but observable.
	Dropped int
}

// Load reads raw CSV content, normalizes it against the detected schema and
// returns the categorized canonical table. Fails with *ReadError for
// unreadable content or *schema.Error when a required column is missing.
//
// Rows whose amount fails to parse are dropped, not errors. Dates that fail
// to parse are left absent. A row whose direction cannot be resolved from
// its own column falls back to the sign of the amount as written in the
// file, captured before the absolute value is taken.
func Load(r io.Reader, store *catstore.Store, opts Options) (*Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, &ReadError{Err: err}
	}
	if len(records) == 0 {
		return nil, &ReadError{Err: errors.New("no header row")}
	}

	header := make([]string, len(records[0]))
	for i, name := range records[0] {
		header[i] = strings.TrimSpace(name)
	}

	mapping, err := schema.Detect(header)
	if err != nil {
		return nil, err
	}

	t := &table.Table{}
	dropped := 0
	for _, rec := range records[1:] {
		signed, ok := normalize.ParseAmount(cell(rec, mapping.Amount))
		if !ok {
			dropped++
			continue
		}

		txn := model.Transaction{
			ID:      len(t.Rows),
			Details: strings.TrimSpace(cell(rec, mapping.Details)),
			Amount:  signed.Abs(),
		}

		if mapping.Date >= 0 {
			if date, ok := normalize.ParseDate(cell(rec, mapping.Date), opts.DayFirst); ok {
				txn.Date = date
			}
		}

		var direction model.Direction
		var resolved bool
		if mapping.Direction >= 0 {
			direction, resolved = normalize.ParseDirection(cell(rec, mapping.Direction))
		}
		if !resolved {
			direction = model.DirectionCredit
			if signed.IsNegative() {
				direction = model.DirectionDebit
			}
		}
		txn.Direction = direction

		t.Rows = append(t.Rows, txn)
	}

	categorize.Apply(t, store)

	if dropped > 0 {
		log.WithField("dropped", dropped).Debug("rows discarded during load")
	}
	return &Result{Table: t, Dropped: dropped}, nil
}

// cell returns the record field at index i, or "" when the record is too
// short. Blank cells stay empty strings, never a missing-value sentinel.
func cell(rec []string, i int) string {
	if i >= 0 && i < len(rec) {
		return rec[i]
	}
	return ""
}
