// Package categorize assigns spending categories to transactions by matching
// the category store's keyword lists against transaction details.
package categorize

import (
	"strings"

	"github.com/spendlens/spendlens/internal/catstore"
	"github.com/spendlens/spendlens/internal/table"
)

// Apply assigns a category to every row in the table. Rows without a
// category default to Uncategorized. Categories are evaluated in store
// insertion order; a later category's match overwrites an earlier one's, so
// when details match keywords from several categories the last one in store
// order wins. Uncategorized and categories without keywords are skipped.
func Apply(t *table.Table, store *catstore.Store) {
	for i := range t.Rows {
		if t.Rows[i].Category == "" {
			t.Rows[i].Category = catstore.Uncategorized
		}
	}

	for _, name := range store.Categories() {
		if name == catstore.Uncategorized {
			continue
		}
		keywords := lowered(store.Keywords(name))
		if len(keywords) == 0 {
			continue
		}

		for i := range t.Rows {
			details := strings.ToLower(t.Rows[i].Details)
			for _, kw := range keywords {
				if strings.Contains(details, kw) {
					t.Rows[i].Category = name
					break
				}
			}
		}
	}
}

func lowered(keywords []string) []string {
	out := keywords[:0]
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			out = append(out, kw)
		}
	}
	return out
}
