package store

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	"ukdtimers/internal/model"
)

const insertBatchSize = 100

// documentRecord is one collection element in SQL.
type documentRecord struct {
	Collection string `gorm:"primaryKey;size:32"`
	Position   int    `gorm:"primaryKey;autoIncrement:false"`
	Body       string `gorm:"type:longtext;not null"`
}

// TableName implements gorm's tabler.
func (documentRecord) TableName() string {
	return "document_records"
}

// GormStore keeps the document in a SQL table through GORM.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore migrates the schema and returns the store.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&documentRecord{}); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}
	return &GormStore{db: db}, nil
}

// Load implements Store.
func (s *GormStore) Load(ctx context.Context) *model.Document {
	var rows []documentRecord
	if err := s.db.WithContext(ctx).Scopes(inDocumentOrder).Find(&rows).Error; err != nil {
		log.Printf("store: read sql: %v", err)
		return model.NewDocument()
	}
	doc, err := fromRows(rows)
	if err != nil {
		log.Printf("store: decode sql: %v", err)
		return model.NewDocument()
	}
	Migrate(doc)
	return doc
}

// Save rewrites the table inside one transaction.
func (s *GormStore) Save(ctx context.Context, doc *model.Document) error {
	rows, err := toRows(doc)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Scopes(allRecords).Delete(&documentRecord{}).Error; err != nil {
			return fmt.Errorf("clear records: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(rows, insertBatchSize).Error; err != nil {
			return fmt.Errorf("insert records: %w", err)
		}
		return nil
	})
}

// inDocumentOrder returns each collection's rows in position order.
func inDocumentOrder(tx *gorm.DB) *gorm.DB {
	return tx.Order("collection, position")
}

// allRecords matches every row. GORM refuses a delete without a condition.
func allRecords(tx *gorm.DB) *gorm.DB {
	return tx.Where("1 = 1")
}

func toRows(doc *model.Document) ([]documentRecord, error) {
	records, err := flatten(doc)
	if err != nil {
		return nil, err
	}
	rows := make([]documentRecord, 0, len(records))
	for _, r := range records {
		rows = append(rows, documentRecord{Collection: r.Collection, Position: r.Position, Body: string(r.Body)})
	}
	return rows, nil
}

func fromRows(rows []documentRecord) (*model.Document, error) {
	records := make([]record, 0, len(rows))
	for _, row := range rows {
		records = append(records, record{Collection: row.Collection, Position: row.Position, Body: []byte(row.Body)})
	}
	return assemble(records)
}

// Close closes the underlying connection pool.
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
