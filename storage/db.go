// storage/db.go
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open selects the record store backend by name. Deployments run postgres,
// local/dev runs use the pure-Go sqlite driver, and "memory" needs no
// database at all.
func Open(backend, dsn string) (Store, error) {
	switch backend {
	case "memory":
		return NewMemoryStore(), nil

	case "sqlite":
		if dsn == "" {
			dsn = filepath.Join("data", "records.db")
		}
		if dir := filepath.Dir(dsn); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create data dir: %w", err)
			}
		}
		db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return NewSQLStore(db)

	case "postgres":
		if dsn == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for the postgres backend")
		}
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		return NewSQLStore(db)

	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
