package session

import (
	"coursepanel/database"
	"coursepanel/models"
	"encoding/json"
	"sync"
)

// ImportTargetFull replaces the whole document (after default backfill)
const ImportTargetFull = "full"

// ImportTargetMain merges into the root document fields
const ImportTargetMain = "main"

// Session is the single in-memory content state between the persistence
// store and the admin API. It is constructed once in main and passed to
// every handler explicitly; there is no package-level instance.
//
// Mutations are single-writer by contract; the mutex only shields the
// document from concurrent HTTP handlers.
type Session struct {
	mu       sync.RWMutex
	store    *database.ContentStore
	doc      models.ContentDocument
	modified bool
}

// New loads the last committed document and wraps it in a session
func New(store *database.ContentStore) *Session {
	return &Session{store: store, doc: store.Load()}
}

// Content returns a deep copy of the current document. Callers can read and
// render it freely without aliasing session state.
func (s *Session) Content() models.ContentDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone()
}

// IsModified reports whether in-memory state differs from the last
// successful save
func (s *Session) IsModified() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.modified
}

// UpdateContent shallow-merges a partial document and marks the session
// dirty. Persistence stays explicit: the operator batches edits and saves.
func (s *Session) UpdateContent(patch models.ContentPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = s.doc.Apply(patch)
	s.modified = true
}

// SaveNow commits the current document; clears the dirty flag on success.
// On failure the in-memory state and the dirty flag are kept so the
// operator can retry without losing edits.
func (s *Session) SaveNow() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.store.Save(s.doc) {
		return false
	}
	s.modified = false
	return true
}

// ResetToDefault replaces the working document with the built-in default.
// Not persisted until the operator saves.
func (s *Session) ResetToDefault() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = models.DefaultContent()
	s.modified = true
}

// ExportJSON returns a pretty-printed snapshot of the current document
func (s *Session) ExportJSON() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// ImportJSON parses text and merges it into the chosen target:
// "full" replaces the document after backfilling defaults, "main" merges
// additively into the root fields, and any other target is treated as a
// page slug. Returns false with no mutation on parse failure or when the
// slug is unknown.
func (s *Session) ImportJSON(text, target string) bool {
	raw := []byte(text)

	s.mu.Lock()
	defer s.mu.Unlock()

	switch target {
	case ImportTargetFull:
		doc, err := models.MergeOntoDefaults(raw)
		if err != nil {
			return false
		}
		s.doc = doc
	case ImportTargetMain:
		doc, err := models.MergeDocument(s.doc, raw)
		if err != nil {
			return false
		}
		s.doc = doc
	default:
		idx := -1
		for i := range s.doc.Pages {
			if s.doc.Pages[i].Slug == target {
				idx = i
				break
			}
		}
		if idx == -1 {
			return false
		}
		page, err := models.MergePage(s.doc.Pages[idx], raw)
		if err != nil {
			return false
		}
		s.doc.Pages[idx] = page
	}

	s.modified = true
	return true
}
