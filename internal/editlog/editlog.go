// Package editlog keeps an append-only CSV trail of applied category edits,
// so recategorizations (and the keywords learned from them) stay auditable.
package editlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Entry is one row in the edit log.
type Entry struct {
	Timestamp     time.Time
	TransactionID int
	OldCategory   string
	NewCategory   string
	Details       string
}

// Header is the CSV header for the edit log.
const Header = "timestamp,transaction_id,old_category,new_category,details"

const (
	numFields  = 5
	colTime    = 0
	colID      = 1
	colOld     = 2
	colNew     = 3
	colDetails = 4
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTime] = e.Timestamp.Format(time.RFC3339)
	row[colID] = strconv.Itoa(e.TransactionID)
	row[colOld] = e.OldCategory
	row[colNew] = e.NewCategory
	row[colDetails] = e.Details
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTime])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTime], err)
	}

	id, err := strconv.Atoi(record[colID])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing transaction_id %q: %w", record[colID], err)
	}

	return Entry{
		Timestamp:     ts,
		TransactionID: id,
		OldCategory:   record[colOld],
		NewCategory:   record[colNew],
		Details:       record[colDetails],
	}, nil
}

// Append writes entries to the log at path, creating the file and header if
// needed.
func Append(path string, entries []Entry) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating log dir: %w", err)
		}
	}

	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening edit log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from the log at path. Returns nil if the file
// does not exist.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening edit log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading edit log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
