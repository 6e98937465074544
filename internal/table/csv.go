package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendlens/spendlens/internal/model"
)

// Header is the CSV header for an exported canonical table.
const Header = "id,date,details,amount,direction,category"

const (
	numFields    = 6
	dateFormat   = "2006-01-02"
	colID        = 0
	colDate      = 1
	colDetails   = 2
	colAmount    = 3
	colDirection = 4
	colCategory  = 5
)

// Read reads an exported canonical table.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading table CSV: %w", err)
	}

	t := &Table{}
	if len(records) == 0 {
		return t, nil
	}

	for i, rec := range records[1:] {
		txn, err := UnmarshalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		t.Rows = append(t.Rows, txn)
	}
	return t, nil
}

// Write writes the table as CSV, including the header.
func Write(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range t.Rows {
		if err := cw.Write(MarshalRow(row)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalRow converts a Transaction to a CSV row.
func MarshalRow(txn model.Transaction) []string {
	row := make([]string, numFields)
	row[colID] = strconv.Itoa(txn.ID)
	if txn.HasDate() {
		row[colDate] = txn.Date.Format(dateFormat)
	}
	row[colDetails] = txn.Details
	row[colAmount] = txn.Amount.String()
	row[colDirection] = string(txn.Direction)
	row[colCategory] = txn.Category
	return row
}

// UnmarshalRow converts a CSV row to a Transaction.
func UnmarshalRow(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	id, err := strconv.Atoi(record[colID])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing id %q: %w", record[colID], err)
	}

	var date time.Time
	if record[colDate] != "" {
		date, err = time.Parse(dateFormat, record[colDate])
		if err != nil {
			return model.Transaction{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
		}
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	direction := model.Direction(record[colDirection])
	if direction != model.DirectionDebit && direction != model.DirectionCredit {
		return model.Transaction{}, fmt.Errorf("invalid direction %q", record[colDirection])
	}

	return model.Transaction{
		ID:        id,
		Date:      date,
		Details:   record[colDetails],
		Amount:    amount,
		Direction: direction,
		Category:  record[colCategory],
	}, nil
}
