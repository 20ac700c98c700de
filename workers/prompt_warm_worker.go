// workers/prompt_warm_worker.go
package workers

import (
	"context"
	"log"
	"time"

	"hot-takes-system/services"
)

// PromptWarmWorker keeps the daily prompt materialized ahead of traffic.
// TodayPrompt is a cache read once the row exists, so running this hourly
// only ever does real work right after the UTC date rolls over.
type PromptWarmWorker struct {
	prompts  *services.PromptService
	interval time.Duration
}

func NewPromptWarmWorker(prompts *services.PromptService) *PromptWarmWorker {
	return &PromptWarmWorker{
		prompts:  prompts,
		interval: 1 * time.Hour,
	}
}

func (w *PromptWarmWorker) Start(ctx context.Context) {
	log.Println("🔁 Starting Prompt Warm Worker…")
	go w.run(ctx)
}

func (w *PromptWarmWorker) run(ctx context.Context) {
	// Warm immediately on boot so the first client of the day never pays
	// the selection cost.
	w.warm()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.warm()
		case <-ctx.Done():
			log.Println("⏹️ Prompt Warm Worker stopped")
			return
		}
	}
}

func (w *PromptWarmWorker) warm() {
	prompt, err := w.prompts.TodayPrompt()
	if err != nil {
		log.Printf("⚠️ [PROMPT_WARM] Failed to materialize today's prompt: %v", err)
		return
	}
	log.Printf("[PROMPT_WARM] Today's prompt ready: %s (chaos %d)", prompt.ID, prompt.ChaosLevel)
}
