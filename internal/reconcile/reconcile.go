// Package reconcile merges externally supplied category edits back into the
// canonical table and feeds confirmed keywords into the category store. This
// is how the system learns: every manual recategorization becomes a future
// auto-categorization rule.
package reconcile

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/spendlens/spendlens/internal/catstore"
	"github.com/spendlens/spendlens/internal/model"
	"github.com/spendlens/spendlens/internal/table"
)

var log = logrus.New()

// SetLogger replaces the package logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Change records one applied edit.
type Change struct {
	ID      int
	From    string
	To      string
	Details string
}

// Apply walks the edit batch in order. An edit whose new category matches
// the row's current one is a no-op; an edit referencing an unknown ID or an
// unknown category is a stale reference and is skipped. Each applied edit
// updates the row in place and persists the details as a keyword under the
// new category. Edits that succeed stay applied even if a later edit fails,
// so the returned changes are valid alongside a non-nil error.
func Apply(t *table.Table, edits []model.Edit, store *catstore.Store) ([]Change, error) {
	var changes []Change
	for _, e := range edits {
		txn := t.Get(e.ID)
		if txn == nil {
			log.WithField("id", e.ID).Debug("edit references unknown transaction, skipping")
			continue
		}
		if !store.Has(e.Category) {
			log.WithFields(logrus.Fields{"id": e.ID, "category": e.Category}).
				Warn("edit references unknown category, skipping")
			continue
		}
		if e.Category == txn.Category {
			continue
		}

		old := txn.Category
		txn.Category = e.Category
		if err := store.AddKeyword(e.Category, e.Details); err != nil {
			return changes, fmt.Errorf("learning keyword for %q: %w", e.Category, err)
		}
		changes = append(changes, Change{ID: e.ID, From: old, To: e.Category, Details: e.Details})
	}
	return changes, nil
}

// Edits CSV format: id,category,details (with header).

const (
	editNumFields  = 3
	editColID      = 0
	editColCat     = 1
	editColDetails = 2
)

// EditsHeader is the CSV header for an edit batch.
const EditsHeader = "id,category,details"

// ReadEdits reads an edit batch from CSV.
func ReadEdits(r io.Reader) ([]model.Edit, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = editNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading edits CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var edits []model.Edit
	for i, rec := range records[1:] {
		id, err := strconv.Atoi(strings.TrimSpace(rec[editColID]))
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing id %q: %w", i+2, rec[editColID], err)
		}
		edits = append(edits, model.Edit{
			ID:       id,
			Category: rec[editColCat],
			Details:  rec[editColDetails],
		})
	}
	return edits, nil
}
