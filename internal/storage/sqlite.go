package storage

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// namespaceRow is the single table behind SQLiteStore: one row per
// namespace holding the serialized collection.
type namespaceRow struct {
	Name      string `gorm:"primaryKey"`
	Payload   []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (namespaceRow) TableName() string { return "namespaces" }

type SQLiteStore struct {
	database *gorm.DB
}

func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_busy_timeout=5000", dbPath)
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormlogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := database.AutoMigrate(&namespaceRow{}); err != nil {
		return nil, fmt.Errorf("migrate namespaces: %w", err)
	}

	return &SQLiteStore{database: database}, nil
}

func (store *SQLiteStore) Load(namespace string) ([]byte, bool, error) {
	row := namespaceRow{}
	err := store.database.First(&row, "name = ?", namespace).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %w", namespace, err)
	}
	return row.Payload, true, nil
}

func (store *SQLiteStore) Save(namespace string, payload []byte) error {
	row := namespaceRow{Name: namespace, Payload: payload}
	err := store.database.Save(&row).Error
	if err != nil {
		return fmt.Errorf("save %s: %w", namespace, err)
	}
	return nil
}
