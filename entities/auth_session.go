package entities

import (
	"time"

	"github.com/google/uuid"
)

// AuthSession is the revocation record behind an access/refresh token pair.
// Both tokens embed the session id; the auth middleware rejects any token
// whose session is revoked or missing.
type AuthSession struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	ExpiresAt time.Time  `json:"expires_at"`
	Revoked   bool       `gorm:"default:false" json:"revoked"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
