// models/post.go
package models

import (
	"time"
)

// HeatLevel is the derived intensity tier of a post.
type HeatLevel string

const (
	HeatMild    HeatLevel = "mild"
	HeatHot     HeatLevel = "hot"
	HeatSpicy   HeatLevel = "spicy"
	HeatChaotic HeatLevel = "chaotic"
	HeatInferno HeatLevel = "inferno"
)

// Post categories (closed set, validated at the compose endpoint)
const (
	CategoryDining     = "dining"
	CategoryDorms      = "dorms"
	CategoryMajors     = "majors"
	CategoryProfessors = "professors"
	CategoryGreek      = "greek"
	CategoryDating     = "dating"
	CategoryOverheard  = "overheard"
	CategoryRoommates  = "roommates"
	CategoryChaos      = "chaos"
)

var PostCategories = []string{
	CategoryDining,
	CategoryDorms,
	CategoryMajors,
	CategoryProfessors,
	CategoryGreek,
	CategoryDating,
	CategoryOverheard,
	CategoryRoommates,
	CategoryChaos,
}

// MaxPostLength is measured in code points, not bytes.
const MaxPostLength = 300

func IsValidCategory(category string) bool {
	for _, c := range PostCategories {
		if c == category {
			return true
		}
	}
	return false
}

type Post struct {
	ID       string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserUUID string `json:"user_uuid" gorm:"index;not null"`
	Text     string `json:"text" gorm:"not null"`
	Category string `json:"category" gorm:"index;not null"`

	// 🔥 Reaction counters: monotonically increasing, never decremented
	Flames      int `json:"flames" gorm:"default:0"`
	SuperFlames int `json:"super_flames" gorm:"default:0"`

	// Always equals the classification of the two counters above.
	// Recomputed in the same transaction as any counter change.
	HeatLevel HeatLevel `json:"heat_level" gorm:"type:varchar(16);index;default:'mild'"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index"`
}
