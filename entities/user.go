package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Name     string    `json:"name"`
	Password string    `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	IsActive bool      `gorm:"default:true" json:"is_active"`
	IsStaff  bool      `gorm:"default:false" json:"is_staff"`

	Recipes     []*Recipe     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Tags        []*Tag        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Ingredients []*Ingredient `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Timestamp
}
