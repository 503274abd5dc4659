package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ContentRecord is the single database row carrying the persisted
// ContentDocument blob under a fixed key.
type ContentRecord struct {
	gorm.Model
	Key  string         `gorm:"uniqueIndex;not null" json:"key"`
	Data datatypes.JSON `gorm:"type:json" json:"data"`
}
