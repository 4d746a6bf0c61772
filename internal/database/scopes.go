package database

import (
	"strings"

	"gorm.io/gorm"

	"github.com/yukikurage/task-tracker-api/internal/utils"
)

// Paginate applies pagination to a GORM query
func Paginate(params utils.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(params.Offset).Limit(params.Limit)
	}
}

// LiveOnly excludes soft-deleted rows of table unless includeDeleted is set.
// Every read path applies it explicitly.
func LiveOnly(table string, includeDeleted bool) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if includeDeleted {
			return db
		}
		return db.Where(table+".is_deleted = ?", false)
	}
}

// OrderBy sorts by column and then by id so that pages are stable
func OrderBy(table, column string, desc bool) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		direction := "ASC"
		if desc {
			direction = "DESC"
		}
		return db.Order(table + "." + column + " " + direction).Order(table + ".id " + direction)
	}
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// NameContains matches rows whose column contains term, ignoring case.
// Wildcard characters in term match literally.
func NameContains(table, column, term string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if term == "" {
			return db
		}
		pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
		return db.Where("LOWER("+table+"."+column+") LIKE ? ESCAPE '!'", pattern)
	}
}
