package entities

import (
	"github.com/google/uuid"
)

// Recipe, Tag and Ingredient carry integer primary keys because the list
// endpoints filter on comma-separated id lists. Ownership is a hard
// invariant: every row references exactly one user.
type Recipe struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	TimeMinutes int       `json:"time_minutes"`
	Price       float64   `gorm:"type:decimal(5,2)" json:"price"`
	Link        string    `json:"link"`
	ImageURL    string    `json:"image_url,omitempty"`

	User        *User         `gorm:"foreignKey:UserID"`
	Tags        []*Tag        `gorm:"many2many:recipe_tags;" json:"tags"`
	Ingredients []*Ingredient `gorm:"many2many:recipe_ingredients;" json:"ingredients"`
	Timestamp
}

type Tag struct {
	ID     uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name   string    `gorm:"not null" json:"name"`

	User    *User     `gorm:"foreignKey:UserID"`
	Recipes []*Recipe `gorm:"many2many:recipe_tags;" json:"-"`
	Timestamp
}

type Ingredient struct {
	ID     uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name   string    `gorm:"not null" json:"name"`

	User    *User     `gorm:"foreignKey:UserID"`
	Recipes []*Recipe `gorm:"many2many:recipe_ingredients;" json:"-"`
	Timestamp
}
