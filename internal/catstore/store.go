// Package catstore persists the mapping from category name to keyword list
// that drives auto-categorization. The store is a single JSON document; every
// mutation is written through immediately.
package catstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Uncategorized is the reserved category. It always exists and its keywords
// are never consulted during matching.
const Uncategorized = "Uncategorized"

var log = logrus.New()

// SetLogger replaces the package logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Store is the in-memory copy of the persisted category dictionary. Category
// insertion order is preserved; the categorizer depends on it.
type Store struct {
	path     string
	names    []string
	keywords map[string][]string
}

// Open loads the store from path. A missing file yields the default store; a
// corrupt file is logged as a warning and also yields the default. Open
// never fails the process over persisted state.
func Open(path string) *Store {
	s := &Store{
		path:     path,
		names:    []string{Uncategorized},
		keywords: map[string][]string{Uncategorized: {}},
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s
	}
	if err != nil {
		log.WithError(err).WithField("path", path).Warn("category store unreadable, using defaults")
		return s
	}

	names, keywords, err := unmarshalCategories(data)
	if err != nil {
		log.WithError(err).WithField("path", path).Warn("category store corrupted, using defaults")
		return s
	}

	s.names = names
	s.keywords = keywords
	if _, ok := s.keywords[Uncategorized]; !ok {
		s.names = append([]string{Uncategorized}, s.names...)
		s.keywords[Uncategorized] = []string{}
	}
	return s
}

// Path returns the file backing this store.
func (s *Store) Path() string {
	return s.path
}

// Categories returns category names in insertion order.
func (s *Store) Categories() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Keywords returns the keyword list for a category, nil if unknown.
func (s *Store) Keywords(name string) []string {
	kws, ok := s.keywords[name]
	if !ok {
		return nil
	}
	out := make([]string, len(kws))
	copy(out, kws)
	return out
}

// Has reports whether a category exists.
func (s *Store) Has(name string) bool {
	_, ok := s.keywords[name]
	return ok
}

// AddCategory inserts a category with an empty keyword list and persists.
// Adding an existing category is a no-op.
func (s *Store) AddCategory(name string) error {
	if s.Has(name) {
		return nil
	}
	s.names = append(s.names, name)
	s.keywords[name] = []string{}
	return s.Save()
}

// AddKeyword appends a trimmed keyword to a category and persists. Empty
// keywords and exact duplicates are no-ops. Containment is checked
// case-sensitively even though matching is case-insensitive, so near
// duplicates differing only in case are kept out by the caller's input, not
// by the store.
func (s *Store) AddKeyword(category, keyword string) error {
	kws, ok := s.keywords[category]
	if !ok {
		return fmt.Errorf("unknown category %q", category)
	}

	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil
	}
	for _, kw := range kws {
		if kw == keyword {
			return nil
		}
	}

	s.keywords[category] = append(kws, keyword)
	return s.Save()
}

// Save writes the store to its path via a temp file and rename, so a crash
// mid-write leaves either the old or the new content.
func (s *Store) Save() error {
	data, err := marshalCategories(s.names, s.keywords)
	if err != nil {
		return fmt.Errorf("marshaling category store: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".categories-*.json")
	if err != nil {
		return fmt.Errorf("creating temp store file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing category store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp store file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing category store: %w", err)
	}
	return nil
}
