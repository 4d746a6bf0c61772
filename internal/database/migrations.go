package database

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AddIndexes adds the indexes used by default listing and filtering queries
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Every default read filters on is_deleted
		{"tasks", "idx_tasks_is_deleted", "is_deleted"},
		{"tasks", "idx_tasks_status", "status"},
		{"tasks", "idx_tasks_name", "name"},
		{"tasks", "idx_tasks_assign_to_id", "assign_to_id"},
		{"tasks", "idx_tasks_created_at", "created_at"},

		{"users", "idx_users_is_deleted", "is_deleted"},
		{"users", "idx_users_name", "name"},
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(idx.table, idx.name) {
			log.Debug().Str("index", idx.name).Msg("Index already exists, skipping")
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.Info().Str("index", idx.name).Str("table", idx.table).Msg("Created index")
	}

	return nil
}
