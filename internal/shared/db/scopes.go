package db

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tracklet-io/tracklet/internal/shared/query"
)

// ForUpdate adds SELECT ... FOR UPDATE. Dialects without row locks (SQLite)
// drop the clause; their database-level write lock serializes writers instead.
func ForUpdate() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
}

// Paginate applies LIMIT/OFFSET for a 1-based page.
func Paginate(p query.PageFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.Offset()).Limit(p.Limit())
	}
}

// WhereIn filters column by a set of values; an empty set leaves the query unchanged.
func WhereIn[T any](column string, values []T) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(values) == 0 {
			return db
		}
		return db.Where(column+" IN ?", values)
	}
}
