package models

import (
	"time"
)

// User is an anonymous device-scoped identity. The UUID is generated client
// side at onboarding and never linked to any real account.
type User struct {
	UUID  string `gorm:"primaryKey;type:uuid" json:"uuid"`
	Alias string `gorm:"not null" json:"alias"` // e.g., "Chubby Pickle"

	// URL-safe form of the alias, used in share links ("chubby-pickle")
	Handle string `gorm:"index" json:"handle"`

	// Append-only badge set. A badge string is added at most once.
	Badges []string `gorm:"serializer:json;type:jsonb" json:"badges"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
