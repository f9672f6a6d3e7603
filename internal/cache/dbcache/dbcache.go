// Package dbcache is the SQLite-backed implementation of cache.Snapshots.
package dbcache

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/atrilhq/atril/internal/cache"
)

// snapshotModel is the persisted form of one collection snapshot.
type snapshotModel struct {
	Entity     string    `gorm:"primaryKey;size:64"`
	Items      []byte    `gorm:"type:blob;not null"`
	Page       int       `gorm:"not null;default:1"`
	PageSize   int       `gorm:"not null;default:8"`
	TotalPages int       `gorm:"not null;default:0"`
	TotalCount int       `gorm:"not null;default:0"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

// TableName returns the table name for snapshotModel.
func (snapshotModel) TableName() string {
	return "snapshots"
}

// Store is a SQLite-backed cache.Snapshots.
type Store struct {
	db     *gorm.DB
	dbPath string
}

// Ensure Store implements cache.Snapshots at compile time.
var _ cache.Snapshots = (*Store)(nil)

// Open creates or opens the snapshot database at the given path and
// migrates its schema.
func Open(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create snapshot dir: %w", err)
		}
	}
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open snapshot db: %w", err)
	}
	if err := db.AutoMigrate(&snapshotModel{}); err != nil {
		return nil, fmt.Errorf("migrate snapshot schema: %w", err)
	}
	return &Store{db: db, dbPath: dbPath}, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.dbPath }

// Load retrieves an entity's snapshot, or nil when none is stored.
func (s *Store) Load(entity string) (*cache.Entry, error) {
	var m snapshotModel
	err := s.db.Where("entity = ?", entity).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot %q: %w", entity, err)
	}
	return &cache.Entry{
		Items:      m.Items,
		Page:       m.Page,
		PageSize:   m.PageSize,
		TotalPages: m.TotalPages,
		TotalCount: m.TotalCount,
		UpdatedAt:  m.UpdatedAt,
	}, nil
}

// Save stores or replaces an entity's snapshot.
func (s *Store) Save(entity string, e cache.Entry) error {
	m := snapshotModel{
		Entity:     entity,
		Items:      e.Items,
		Page:       e.Page,
		PageSize:   e.PageSize,
		TotalPages: e.TotalPages,
		TotalCount: e.TotalCount,
	}
	err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&m).Error
	if err != nil {
		return fmt.Errorf("save snapshot %q: %w", entity, err)
	}
	return nil
}

// Entries lists the stored snapshots ordered by entity name.
func (s *Store) Entries() ([]cache.Info, error) {
	var models []snapshotModel
	if err := s.db.Order("entity").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	infos := make([]cache.Info, 0, len(models))
	for _, m := range models {
		infos = append(infos, cache.Info{
			Entity:    m.Entity,
			Bytes:     len(m.Items),
			UpdatedAt: m.UpdatedAt,
		})
	}
	return infos, nil
}

// Clear removes every snapshot.
func (s *Store) Clear() error {
	if err := s.db.Exec("DELETE FROM snapshots").Error; err != nil {
		return fmt.Errorf("clear snapshots: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
