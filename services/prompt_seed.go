// services/prompt_seed.go
package services

import (
	"log"

	"hot-takes-system/models"

	"gorm.io/gorm"
)

// Built-in prompt corpus. Seeded once when the prompts table is empty;
// {campus} and {dining_hall} placeholders resolve through each prompt's
// dynamic tags at read time.
var promptCorpus = []models.Prompt{
	// down-bad
	{Category: models.PromptDownBad, ChaosLevel: 3, Text: "Describe your situationship using only dining hall menu items"},
	{Category: models.PromptDownBad, ChaosLevel: 4, Text: "What's the most down-bad text you've sent after 2am?"},
	{Category: models.PromptDownBad, ChaosLevel: 4, Text: "Confess the pettiest reason you've ghosted someone at {campus}", DynamicTags: map[string]string{"campus": "UMass"}},
	{Category: models.PromptDownBad, ChaosLevel: 5, Text: "What's the most unhinged thing you've done to get someone's attention?"},
	{Category: models.PromptDownBad, ChaosLevel: 5, Text: "Rate how down bad you are right now and defend the number"},

	// roommate
	{Category: models.PromptRoommate, ChaosLevel: 2, Text: "Describe your roommate's smell in 3 words"},
	{Category: models.PromptRoommate, ChaosLevel: 4, Text: "What's your worst roommate horror story?"},
	{Category: models.PromptRoommate, ChaosLevel: 4, Text: "What's the weirdest thing your roommate does when they think you're asleep?"},
	{Category: models.PromptRoommate, ChaosLevel: 5, Text: "What would your roommate NOT want you to post here?"},

	// overheard
	{Category: models.PromptOverheard, ChaosLevel: 2, Text: "Most wholesome thing you've overheard on campus this week?"},
	{Category: models.PromptOverheard, ChaosLevel: 4, Text: "Craziest sentence you've overheard at {campus} with zero context", DynamicTags: map[string]string{"campus": "UMass"}},
	{Category: models.PromptOverheard, ChaosLevel: 5, Text: "What did you overhear in a bathroom that still haunts you?"},

	// dining
	{Category: models.PromptDining, ChaosLevel: 1, Text: "What's the most creative thing you've made from dining hall ingredients?"},
	{Category: models.PromptDining, ChaosLevel: 3, Text: "Write a horror story in 3 words about {dining_hall}", DynamicTags: map[string]string{"dining_hall": "Worcester"}},
	{Category: models.PromptDining, ChaosLevel: 4, Text: "What dining hall food combo would you feed to your worst enemy?"},
	{Category: models.PromptDining, ChaosLevel: 5, Text: "Most unhinged 2am craving you've actually eaten from the dining halls?"},

	// dorms
	{Category: models.PromptDorms, ChaosLevel: 1, Text: "Describe your dorm's vibe in 3 words"},
	{Category: models.PromptDorms, ChaosLevel: 3, Text: "Which dorm is most likely to be haunted and why?"},
	{Category: models.PromptDorms, ChaosLevel: 4, Text: "What's the weirdest thing you've seen in a dorm hallway at 3am?"},
	{Category: models.PromptDorms, ChaosLevel: 5, Text: "What's the most cursed thing that happened on your floor this semester?"},

	// dating
	{Category: models.PromptDating, ChaosLevel: 1, Text: "Best place on campus for a first date?"},
	{Category: models.PromptDating, ChaosLevel: 3, Text: "Most awkward run-in with someone you ghosted?"},
	{Category: models.PromptDating, ChaosLevel: 4, Text: "Worst date you've been on at {campus}?", DynamicTags: map[string]string{"campus": "UMass"}},
	{Category: models.PromptDating, ChaosLevel: 5, Text: "What's your most embarrassing dating app story?"},

	// majors
	{Category: models.PromptMajors, ChaosLevel: 2, Text: "What's the easiest A you've ever gotten?"},
	{Category: models.PromptMajors, ChaosLevel: 4, Text: "Roast your own major in one sentence"},
	{Category: models.PromptMajors, ChaosLevel: 5, Text: "Which major would lose a survival show first and why?"},

	// pain
	{Category: models.PromptPain, ChaosLevel: 3, Text: "What class do you sleep through every time?"},
	{Category: models.PromptPain, ChaosLevel: 4, Text: "Worst group project experience ever?"},
	{Category: models.PromptPain, ChaosLevel: 5, Text: "What's the academic decision you regret most?"},
}

// SeedPrompts loads the corpus on first boot. No-op when prompts already exist.
func SeedPrompts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Prompt{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := db.Create(&promptCorpus).Error; err != nil {
		return err
	}
	log.Printf("✅ Seeded %d prompts", len(promptCorpus))
	return nil
}
