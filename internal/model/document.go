package model

import (
	"time"

	"gorm.io/datatypes"
)

// StoredDocument is one whole JSON document in the MySQL-backed document
// store. Documents are always read and written as a unit.
type StoredDocument struct {
	Key       string         `gorm:"primaryKey;size:191"`
	Value     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

func (StoredDocument) TableName() string {
	return "stored_documents"
}
