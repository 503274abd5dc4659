package database

import (
	"coursepanel/models"
	"encoding/json"
	"errors"
	"log"

	"gorm.io/gorm"
)

// ContentKey is the fixed storage key of the single content blob
const ContentKey = "site-content"

// ContentStore persists the whole ContentDocument as one JSON blob under a
// fixed key. The document is small and always read whole, so a single blob
// row replaces a normalized schema.
type ContentStore struct {
	db *gorm.DB
}

// NewContentStore wires a store onto an open database handle
func NewContentStore(db *gorm.DB) *ContentStore {
	return &ContentStore{db: db}
}

// Load returns the last committed document. A missing row or a blob that no
// longer parses falls back to the built-in default; older blobs missing
// newer fields are backfilled from the default document.
func (s *ContentStore) Load() models.ContentDocument {
	var record models.ContentRecord
	if err := s.db.Where("key = ?", ContentKey).First(&record).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Failed to read content record: %v", err)
		}
		return models.DefaultContent()
	}

	doc, err := models.MergeOntoDefaults(record.Data)
	if err != nil {
		log.Printf("Stored content is not valid JSON, using defaults: %v", err)
		return models.DefaultContent()
	}
	return doc
}

// Save serializes and commits the document. Returns false on serialization
// or storage errors; it never panics so unsaved edits stay in memory.
func (s *ContentStore) Save(doc models.ContentDocument) bool {
	raw, err := json.Marshal(doc)
	if err != nil {
		log.Printf("Failed to serialize content: %v", err)
		return false
	}

	var record models.ContentRecord
	err = s.db.Where("key = ?", ContentKey).First(&record).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		record = models.ContentRecord{Key: ContentKey, Data: raw}
		err = s.db.Create(&record).Error
	case err == nil:
		record.Data = raw
		err = s.db.Save(&record).Error
	}
	if err != nil {
		log.Printf("Failed to save content: %v", err)
		return false
	}
	return true
}

// Clear removes the committed blob; the next Load returns the default document
func (s *ContentStore) Clear() error {
	return s.db.Unscoped().Where("key = ?", ContentKey).Delete(&models.ContentRecord{}).Error
}
