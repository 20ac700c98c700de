package services

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"hot-takes-system/models"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

var errStoreDown = errors.New("store unavailable")

type fakePromptStore struct {
	prompts     []models.Prompt
	daily       map[string]string // date → prompt id
	insertCalls int
	failQueries bool

	// simulates a concurrent writer winning the daily insert race
	raceWinnerID string
}

func newFakePromptStore(prompts ...models.Prompt) *fakePromptStore {
	return &fakePromptStore{prompts: prompts, daily: map[string]string{}}
}

func (f *fakePromptStore) PromptsByCategoryAndChaos(category string, chaosLevel int) ([]models.Prompt, error) {
	if f.failQueries {
		return nil, errStoreDown
	}
	var out []models.Prompt
	for _, p := range f.prompts {
		if p.Category == category && p.ChaosLevel == chaosLevel {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePromptStore) PromptsWithMinChaos(minChaosLevel int) ([]models.Prompt, error) {
	if f.failQueries {
		return nil, errStoreDown
	}
	var out []models.Prompt
	for _, p := range f.prompts {
		if p.ChaosLevel >= minChaosLevel {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePromptStore) PromptByID(id string) (*models.Prompt, error) {
	for _, p := range f.prompts {
		if p.ID == id {
			prompt := p
			return &prompt, nil
		}
	}
	return nil, fmt.Errorf("prompt %s not found", id)
}

func (f *fakePromptStore) DailyPromptByDate(date string) (*models.DailyPrompt, error) {
	if id, ok := f.daily[date]; ok {
		return &models.DailyPrompt{Date: date, PromptID: id}, nil
	}
	return nil, nil
}

func (f *fakePromptStore) InsertDailyPrompt(date, promptID string) error {
	f.insertCalls++
	if f.raceWinnerID != "" {
		// another caller's row landed first; ours is ignored
		f.daily[date] = f.raceWinnerID
		return nil
	}
	if _, exists := f.daily[date]; !exists {
		f.daily[date] = promptID
	}
	return nil
}

func newPromptFixture(t *testing.T, store PromptStore) *PromptService {
	t.Helper()
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	svc := NewPromptService(store, clock)
	svc.rng = rand.New(rand.NewSource(42))
	return svc
}

func fullCorpus() []models.Prompt {
	var prompts []models.Prompt
	categories := []string{
		models.PromptDownBad, models.PromptRoommate, models.PromptOverheard,
		models.PromptDining, models.PromptDorms, models.PromptDating,
		models.PromptMajors, models.PromptPain,
	}
	for _, category := range categories {
		for chaos := 1; chaos <= 5; chaos++ {
			prompts = append(prompts, models.Prompt{
				ID:         fmt.Sprintf("%s-%d", category, chaos),
				Text:       fmt.Sprintf("prompt for %s at %d", category, chaos),
				Category:   category,
				ChaosLevel: chaos,
			})
		}
	}
	return prompts
}

func TestSelectWeightedCategoryDistribution(t *testing.T) {
	svc := newPromptFixture(t, newFakePromptStore())

	const draws = 10000
	counts := map[string]int{}
	for i := 0; i < draws; i++ {
		counts[svc.SelectWeightedCategory()]++
	}

	expected := map[string]float64{
		models.PromptDownBad:   0.30,
		models.PromptRoommate:  0.15,
		models.PromptOverheard: 0.15,
		models.PromptDining:    0.10,
		models.PromptDorms:     0.10,
		models.PromptDating:    0.10,
		models.PromptMajors:    0.05,
		models.PromptPain:      0.05,
	}

	for category := range counts {
		_, known := expected[category]
		require.True(t, known, "sampled unknown category %q", category)
	}
	for category, weight := range expected {
		freq := float64(counts[category]) / draws
		require.InDelta(t, weight, freq, 0.02, "category %s off target", category)
	}
}

func TestRollChaosLevelDistribution(t *testing.T) {
	svc := newPromptFixture(t, newFakePromptStore())

	const draws = 10000
	high := 0
	for i := 0; i < draws; i++ {
		level := svc.rollChaosLevel()
		require.GreaterOrEqual(t, level, 1)
		require.LessOrEqual(t, level, 5)
		if level >= 4 {
			high++
		}
	}
	require.InDelta(t, 0.7, float64(high)/draws, 0.02)
}

func TestApplyDynamicTags(t *testing.T) {
	require.Equal(t, "Tell me about UMass",
		ApplyDynamicTags("Tell me about {thing}", map[string]string{"thing": "UMass"}))

	require.Equal(t, "UMass vs UMass",
		ApplyDynamicTags("{campus} vs {campus}", map[string]string{"campus": "UMass"}))

	require.Equal(t, "no {match} here",
		ApplyDynamicTags("no {match} here", map[string]string{"other": "x"}))

	require.Equal(t, "plain text",
		ApplyDynamicTags("plain text", nil))
}

func TestTodayPromptStableForDate(t *testing.T) {
	store := newFakePromptStore(fullCorpus()...)
	svc := newPromptFixture(t, store)

	first, err := svc.TodayPrompt()
	require.NoError(t, err)

	second, err := svc.TodayPrompt()
	require.NoError(t, err)

	require.Equal(t, first.ID, second.ID)
	require.Equal(t, 1, store.insertCalls, "second call must be a cache read")
}

func TestTodayPromptRollsOverAtMidnight(t *testing.T) {
	store := newFakePromptStore(fullCorpus()...)
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC))
	svc := NewPromptService(store, clock)
	svc.rng = rand.New(rand.NewSource(42))

	_, err := svc.TodayPrompt()
	require.NoError(t, err)

	clock.Advance(2 * time.Hour) // crosses into March 11

	_, err = svc.TodayPrompt()
	require.NoError(t, err)

	require.Len(t, store.daily, 2, "rollover must create a new row, not mutate the old one")
	require.Contains(t, store.daily, "2026-03-10")
	require.Contains(t, store.daily, "2026-03-11")
}

func TestTodayPromptConcurrentInsertConverges(t *testing.T) {
	store := newFakePromptStore(fullCorpus()...)
	store.raceWinnerID = "dorms-4"
	svc := newPromptFixture(t, store)

	prompt, err := svc.TodayPrompt()
	require.NoError(t, err)
	require.Equal(t, "dorms-4", prompt.ID, "caller must converge on the row that won the insert")
}

func TestGenerateDailyPromptFallback(t *testing.T) {
	// Corpus with a single prompt whose category is never sampled: the exact
	// (category, chaos) query always misses and the chaos>=4 fallback kicks in.
	only := models.Prompt{ID: "fallback-1", Text: "fallback", Category: "retired-category", ChaosLevel: 4}
	svc := newPromptFixture(t, newFakePromptStore(only))

	id, err := svc.GenerateDailyPrompt()
	require.NoError(t, err)
	require.Equal(t, "fallback-1", id)
}

func TestGenerateDailyPromptEmptyCorpus(t *testing.T) {
	svc := newPromptFixture(t, newFakePromptStore())

	_, err := svc.GenerateDailyPrompt()
	require.ErrorIs(t, err, ErrNoPromptAvailable)
}

func TestTodayPromptStoreFailure(t *testing.T) {
	store := newFakePromptStore(fullCorpus()...)
	store.failQueries = true
	svc := newPromptFixture(t, store)

	_, err := svc.TodayPrompt()
	require.ErrorIs(t, err, errStoreDown)
}
