package sqlite

import (
	"fmt"

	"gorm.io/gorm"

	"memos-graph-sync/internal/graph"
	pkgLog "memos-graph-sync/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  pkgLog.Logger
}

// New creates a sqlite-backed graph store and migrates its schema.
func New(db *gorm.DB, l pkgLog.Logger) (graph.Store, error) {
	if err := db.AutoMigrate(&blockRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate blocks: %w", err)
	}
	return &implRepository{db: db, l: l}, nil
}
