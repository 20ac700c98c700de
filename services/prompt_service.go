// services/prompt_service.go
package services

import (
	"errors"
	"math/rand"
	"strings"

	"hot-takes-system/models"

	"github.com/jonboulle/clockwork"
)

// ErrNoPromptAvailable means neither the sampled (category, chaos) combination
// nor the high-chaos fallback matched any seeded prompt.
var ErrNoPromptAvailable = errors.New("no prompt available")

// PromptStore is the slice of the data store the selector needs.
type PromptStore interface {
	PromptsByCategoryAndChaos(category string, chaosLevel int) ([]models.Prompt, error)
	PromptsWithMinChaos(minChaosLevel int) ([]models.Prompt, error)
	PromptByID(id string) (*models.Prompt, error)
	// DailyPromptByDate returns (nil, nil) when no row exists for the date.
	DailyPromptByDate(date string) (*models.DailyPrompt, error)
	// InsertDailyPrompt must tolerate a duplicate date (insert-or-ignore).
	InsertDailyPrompt(date, promptID string) error
}

type promptWeight struct {
	Category string
	Weight   float64
}

// Weighted category table. Walked in declaration order; weights sum to 1.0,
// down-bad deliberately over-represented.
var promptCategoryWeights = []promptWeight{
	{models.PromptDownBad, 0.30},
	{models.PromptRoommate, 0.15},
	{models.PromptOverheard, 0.15},
	{models.PromptDining, 0.10},
	{models.PromptDorms, 0.10},
	{models.PromptDating, 0.10},
	{models.PromptMajors, 0.05},
	{models.PromptPain, 0.05},
}

type PromptService struct {
	store PromptStore
	clock clockwork.Clock
	rng   *rand.Rand
}

func NewPromptService(store PromptStore, clock clockwork.Clock) *PromptService {
	return &PromptService{
		store: store,
		clock: clock,
		rng:   rand.New(rand.NewSource(clock.Now().UnixNano())),
	}
}

// SelectWeightedCategory draws one prompt category according to the weight
// table. If floating-point accumulation somehow leaves the draw unmatched,
// the first table entry wins.
func (s *PromptService) SelectWeightedCategory() string {
	draw := s.rng.Float64()

	cumulative := 0.0
	for _, entry := range promptCategoryWeights {
		cumulative += entry.Weight
		if draw <= cumulative {
			return entry.Category
		}
	}
	return promptCategoryWeights[0].Category
}

// rollChaosLevel: 70% chance of {4,5}, 30% chance of {1,2,3}.
func (s *PromptService) rollChaosLevel() int {
	if s.rng.Float64() < 0.7 {
		return 4 + s.rng.Intn(2)
	}
	return 1 + s.rng.Intn(3)
}

// GenerateDailyPrompt samples a (category, chaos level) pair and resolves it
// against the prompt corpus, falling back to any high-chaos prompt when the
// exact combination has no entries.
func (s *PromptService) GenerateDailyPrompt() (string, error) {
	category := s.SelectWeightedCategory()
	chaosLevel := s.rollChaosLevel()

	prompts, err := s.store.PromptsByCategoryAndChaos(category, chaosLevel)
	if err != nil {
		return "", err
	}

	if len(prompts) == 0 {
		prompts, err = s.store.PromptsWithMinChaos(4)
		if err != nil {
			return "", err
		}
		if len(prompts) == 0 {
			return "", ErrNoPromptAvailable
		}
	}

	return prompts[s.rng.Intn(len(prompts))].ID, nil
}

// TodayPrompt returns the prompt pinned to today's UTC date, materializing it
// on first request. Concurrent first requests may race on the insert; the
// date primary key keeps the table at one row per day, and we re-read after
// inserting so every caller converges on whichever row won.
func (s *PromptService) TodayPrompt() (*models.Prompt, error) {
	date := s.clock.Now().UTC().Format("2006-01-02")

	daily, err := s.store.DailyPromptByDate(date)
	if err != nil {
		return nil, err
	}
	if daily != nil {
		return s.store.PromptByID(daily.PromptID)
	}

	promptID, err := s.GenerateDailyPrompt()
	if err != nil {
		return nil, err
	}

	if err := s.store.InsertDailyPrompt(date, promptID); err != nil {
		return nil, err
	}

	daily, err = s.store.DailyPromptByDate(date)
	if err != nil {
		return nil, err
	}
	if daily != nil {
		promptID = daily.PromptID
	}

	return s.store.PromptByID(promptID)
}

// ApplyDynamicTags replaces every literal {key} occurrence in the prompt text
// with its mapped value. Substituted values are never re-scanned.
func ApplyDynamicTags(text string, tags map[string]string) string {
	for key, value := range tags {
		text = strings.ReplaceAll(text, "{"+key+"}", value)
	}
	return text
}
