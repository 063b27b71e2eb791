package scope

import (
	"gorm.io/gorm"
)

// OwnedBy restricts a query to rows whose owner column matches the acting
// user. Every repository read/write goes through this predicate before any
// other filter, so rows of other users are indistinguishable from missing
// rows.
func OwnedBy(table, userID string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(table+".user_id = ?", userID)
	}
}

// AssignedTo keeps only rows referenced by at least one recipe through the
// given many-to-many link table. Used by the tag and ingredient
// repositories; callers must deduplicate (the join multiplies rows).
func AssignedTo(linkTable, linkColumn, table string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Joins(
			"JOIN " + linkTable + " ON " + linkTable + "." + linkColumn + " = " + table + ".id",
		)
	}
}
