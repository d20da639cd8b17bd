package repository

import (
	"context"

	"clat_prep_backend/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDocumentStore keeps documents in a single MySQL table, one row per
// key, the value as a JSON column.
type GormDocumentStore struct {
	DB *gorm.DB
}

func NewGormDocumentStore(db *gorm.DB) *GormDocumentStore {
	return &GormDocumentStore{DB: db}
}

func (s *GormDocumentStore) Get(ctx context.Context, key string) ([]byte, bool) {
	var doc model.StoredDocument
	err := s.DB.WithContext(ctx).First(&doc, "`key` = ?", key).Error
	if err != nil {
		// An unreachable backend degrades to "not found" so readers fall
		// back to their defaults instead of failing.
		return nil, false
	}
	return doc.Value, true
}

func (s *GormDocumentStore) Set(ctx context.Context, key string, value []byte) error {
	doc := model.StoredDocument{
		Key:   key,
		Value: datatypes.JSON(value),
	}
	return s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&doc).Error
}

func (s *GormDocumentStore) Remove(ctx context.Context, key string) error {
	return s.DB.WithContext(ctx).Delete(&model.StoredDocument{}, "`key` = ?", key).Error
}

func (s *GormDocumentStore) Clear(ctx context.Context) error {
	return s.DB.WithContext(ctx).Where("1 = 1").Delete(&model.StoredDocument{}).Error
}
