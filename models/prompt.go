package models

import (
	"time"
)

// Prompt categories, an independent set from post categories.
const (
	PromptDownBad   = "down-bad"
	PromptRoommate  = "roommate"
	PromptOverheard = "overheard"
	PromptDining    = "dining"
	PromptDorms     = "dorms"
	PromptDating    = "dating"
	PromptMajors    = "majors"
	PromptPain      = "pain"
)

// Prompt is static reference data, seeded once at startup.
type Prompt struct {
	ID       string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Text     string `json:"text" gorm:"not null"` // may contain {tag} placeholders
	Category string `json:"category" gorm:"index;not null"`

	// 1 (tame) … 5 (unhinged)
	ChaosLevel int `json:"chaos_level" gorm:"index;not null"`

	// placeholder name → substitution value, e.g. {"campus": "UMass"}
	DynamicTags map[string]string `json:"dynamic_tags" gorm:"serializer:json;type:jsonb"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// DailyPrompt pins one prompt per calendar date. The date is the primary key,
// so a second insert for the same day is a no-op rather than a second row.
type DailyPrompt struct {
	Date     string `json:"date" gorm:"primaryKey;type:date"` // YYYY-MM-DD (UTC)
	PromptID string `json:"prompt_id" gorm:"not null"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
