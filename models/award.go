package models

import (
	"time"
)

// Weekly award categories
const (
	AwardInfernoKing    = "inferno-king"
	AwardMouthOfMadness = "mouth-of-madness"
	AwardComedyCrime    = "comedy-crime"
	AwardTooReal        = "too-real"
	AwardCampusMenace   = "campus-menace"
)

// BadgeInfernoKing is the only permanent badge granted by the weekly job.
const BadgeInfernoKing = "Inferno King 👑🔥"

// WeeklyAward holds one winner per (week, category). Recomputing a week
// overwrites the existing row instead of appending a duplicate.
type WeeklyAward struct {
	ID         string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	WeekNumber int    `json:"week_number" gorm:"uniqueIndex:idx_week_category;not null"`
	Category   string `json:"category" gorm:"uniqueIndex:idx_week_category;not null"`
	WinnerUUID string `json:"winner_uuid" gorm:"index;not null"`
	PostID     string `json:"post_id" gorm:"not null"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// AwardInfo: static display metadata per award category
type AwardInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
	Permanent   bool   `json:"permanent"`
}

var Awards = map[string]AwardInfo{
	AwardInfernoKing: {
		Name:        "Inferno King",
		Description: "Most inferno posts this week",
		Emoji:       "👑🔥",
		Permanent:   true,
	},
	AwardMouthOfMadness: {
		Name:        "Mouth of Madness",
		Description: "Highest total flames this week",
		Emoji:       "🎭",
		Permanent:   false,
	},
	AwardComedyCrime: {
		Name:        "Comedy Crime",
		Description: "Funniest post (most super flames)",
		Emoji:       "😂",
		Permanent:   false,
	},
	AwardTooReal: {
		Name:        "Too Real Trophy",
		Description: "Most relatable post",
		Emoji:       "💯",
		Permanent:   false,
	},
	AwardCampusMenace: {
		Name:        "Campus Menace",
		Description: "Most chaotic poster",
		Emoji:       "😈",
		Permanent:   false,
	},
}
