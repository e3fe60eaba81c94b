package repository

import (
	"fmt"

	"github.com/callunaspace/obctelemetry/telemetry"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Repository stores downlinked packets on the local file system (sqlite)
// before they are uploaded to the data platform.
type Repository struct {
	db *gorm.DB
}

func New(path string) (*Repository, error) {

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	err = db.AutoMigrate(&StoredDownlinkRecord{})
	if err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return &Repository{
		db: db,
	}, nil
}

func (r *Repository) AddDownlinkRecord(record telemetry.DownlinkRecord) error {
	result := r.db.Create(newStoredDownlinkRecord(record))
	return result.Error
}

// GetDownlinkRecords returns up to limit records. When fresh is true only
// records that have never failed an upload are returned, otherwise only
// records with at least one failed upload attempt.
func (r *Repository) GetDownlinkRecords(limit int, fresh bool) ([]StoredDownlinkRecord, error) {
	var records []StoredDownlinkRecord

	query := r.db.Limit(limit).Order("upload_attempt_count asc, time desc")
	if fresh {
		query = query.Where("upload_attempt_count = ?", 0)
	} else {
		query = query.Where("upload_attempt_count > ?", 0)
	}
	result := query.Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}
	return records, nil
}

func (r *Repository) DeleteRecords(records []StoredDownlinkRecord) error {
	result := r.db.Delete(&records)
	return result.Error
}

func (r *Repository) IncrementUploadAttemptCount(records []StoredDownlinkRecord) error {
	result := r.db.Model(records).UpdateColumn("upload_attempt_count", gorm.Expr("upload_attempt_count + ?", 1))
	return result.Error
}
