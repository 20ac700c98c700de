// services/awards_service.go
package services

import (
	"fmt"
	"log"
	"time"

	"hot-takes-system/models"

	"github.com/jonboulle/clockwork"
	"github.com/samber/lo"
)

// AwardStore is the slice of the data store the weekly job needs.
type AwardStore interface {
	// PostsSince returns posts created at or after t, oldest first.
	PostsSince(t time.Time) ([]models.Post, error)
	UserBadges(uuid string) ([]string, error)
	UpdateUserBadges(uuid string, badges []string) error
	// UpsertWeeklyAward overwrites any existing (weekNumber, category) row.
	UpsertWeeklyAward(weekNumber int, category, winnerUUID, postID string) error
}

// WeeklyStats is the per-user aggregate over one week window.
type WeeklyStats struct {
	UserUUID         string
	TotalFlames      int
	TotalSuperFlames int
	InfernoCount     int
	ChaoticCount     int
	PostCount        int
}

type AwardsService struct {
	store AwardStore
	clock clockwork.Clock
}

func NewAwardsService(store AwardStore, clock clockwork.Clock) *AwardsService {
	return &AwardsService{store: store, clock: clock}
}

// All week math runs in UTC so the aggregation window and the week-number tag
// are derived from the same instant and can never disagree.

// weekNumber = ceil((weekday + 1 + daysSinceJan1) / 7)
func weekNumber(now time.Time) int {
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	daysSinceJan1 := int(now.Sub(yearStart).Hours() / 24)
	return (int(now.Weekday()) + 1 + daysSinceJan1 + 6) / 7
}

// weekStart is the most recent Sunday 00:00:00 UTC (inclusive window edge).
func weekStart(now time.Time) time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return midnight.AddDate(0, 0, -int(now.Weekday()))
}

// CurrentWeekNumber exposes the partition key used by the job, so the read
// API can query the same bucket the writer fills.
func (s *AwardsService) CurrentWeekNumber() int {
	return weekNumber(s.clock.Now().UTC())
}

// aggregateWeeklyStats folds posts into per-user stats. The returned slice is
// ordered by each user's first post of the week, which makes the
// first-encountered tie-break in the winner reductions deterministic.
func aggregateWeeklyStats(posts []models.Post) []*WeeklyStats {
	byUser := make(map[string]*WeeklyStats)
	var ordered []*WeeklyStats

	for _, post := range posts {
		stats, ok := byUser[post.UserUUID]
		if !ok {
			stats = &WeeklyStats{UserUUID: post.UserUUID}
			byUser[post.UserUUID] = stats
			ordered = append(ordered, stats)
		}

		stats.TotalFlames += post.Flames
		stats.TotalSuperFlames += post.SuperFlames
		stats.PostCount++

		switch post.HeatLevel {
		case models.HeatInferno:
			stats.InfernoCount++
		case models.HeatChaotic:
			stats.ChaoticCount++
		}
	}

	return ordered
}

// engagementRatio is bounded in [0, 3]; a post with zero reactions scores 0.
func engagementRatio(p models.Post) float64 {
	return float64(HeatScore(p.Flames, p.SuperFlames)) /
		float64(max(1, p.Flames+p.SuperFlames))
}

// topStats reduces the ordered stats with a strict comparison, so the first
// user to reach the winning value keeps the title on a tie.
func topStats(stats []*WeeklyStats, metric func(*WeeklyStats) int) *WeeklyStats {
	return lo.MaxBy(stats, func(a, b *WeeklyStats) bool {
		return metric(a) > metric(b)
	})
}

// bestPostOf picks the winner's representative post: the highest-scoring post
// among those matching the award's filter.
func bestPostOf(posts []models.Post, userUUID string, match func(models.Post) bool, score func(models.Post) int) models.Post {
	candidates := lo.Filter(posts, func(p models.Post, _ int) bool {
		return p.UserUUID == userUUID && match(p)
	})
	return lo.MaxBy(candidates, func(a, b models.Post) bool {
		return score(a) > score(b)
	})
}

func anyPost(models.Post) bool { return true }

// ComputeWeeklyAwards runs the single-pass weekly job: read the week's posts,
// aggregate per user, pick one winner per award category, upsert the results,
// and grant the inferno-king badge. A read failure aborts the run before any
// write; a failed save for one category does not stop the others. Safe to
// re-run for the same week.
func (s *AwardsService) ComputeWeeklyAwards() error {
	now := s.clock.Now().UTC()
	week := weekNumber(now)

	posts, err := s.store.PostsSince(weekStart(now))
	if err != nil {
		return fmt.Errorf("fetch posts for week %d: %w", week, err)
	}
	if len(posts) == 0 {
		log.Printf("[AWARDS] No posts in week %d window — nothing to award", week)
		return nil
	}

	stats := aggregateWeeklyStats(posts)

	// 👑🔥 Inferno King: most inferno posts
	if winner := topStats(stats, func(st *WeeklyStats) int { return st.InfernoCount }); winner.InfernoCount > 0 {
		top := bestPostOf(posts, winner.UserUUID,
			func(p models.Post) bool { return p.HeatLevel == models.HeatInferno },
			func(p models.Post) int { return HeatScore(p.Flames, p.SuperFlames) },
		)
		s.saveAward(week, models.AwardInfernoKing, winner.UserUUID, top.ID)

		if err := s.grantBadge(winner.UserUUID, models.BadgeInfernoKing); err != nil {
			log.Printf("[AWARDS] ❌ Failed to grant badge to %s: %v", winner.UserUUID, err)
		}
	}

	// 🎭 Mouth of Madness: highest total flames
	if winner := topStats(stats, func(st *WeeklyStats) int { return st.TotalFlames }); winner.TotalFlames > 0 {
		top := bestPostOf(posts, winner.UserUUID, anyPost,
			func(p models.Post) int { return p.Flames },
		)
		s.saveAward(week, models.AwardMouthOfMadness, winner.UserUUID, top.ID)
	}

	// 😂 Comedy Crime: most super flames
	if winner := topStats(stats, func(st *WeeklyStats) int { return st.TotalSuperFlames }); winner.TotalSuperFlames > 0 {
		top := bestPostOf(posts, winner.UserUUID, anyPost,
			func(p models.Post) int { return p.SuperFlames },
		)
		s.saveAward(week, models.AwardComedyCrime, winner.UserUUID, top.ID)
	}

	// 💯 Too Real Trophy: a post-level maximum, not a per-user reduction:
	// the single highest-ratio post wins outright.
	tooReal := lo.MaxBy(posts, func(a, b models.Post) bool {
		return engagementRatio(a) > engagementRatio(b)
	})
	s.saveAward(week, models.AwardTooReal, tooReal.UserUUID, tooReal.ID)

	// 😈 Campus Menace: most chaotic + inferno posts
	if winner := topStats(stats, func(st *WeeklyStats) int { return st.ChaoticCount + st.InfernoCount }); winner.ChaoticCount+winner.InfernoCount > 0 {
		top := bestPostOf(posts, winner.UserUUID,
			func(p models.Post) bool {
				return p.HeatLevel == models.HeatChaotic || p.HeatLevel == models.HeatInferno
			},
			func(p models.Post) int { return HeatScore(p.Flames, p.SuperFlames) },
		)
		s.saveAward(week, models.AwardCampusMenace, winner.UserUUID, top.ID)
	}

	log.Printf("✅ Weekly awards calculated for week %d (%d posts, %d users)", week, len(posts), len(stats))
	return nil
}

// saveAward logs and continues on failure so one broken category doesn't
// starve the rest of the board.
func (s *AwardsService) saveAward(week int, category, winnerUUID, postID string) {
	if err := s.store.UpsertWeeklyAward(week, category, winnerUUID, postID); err != nil {
		log.Printf("[AWARDS] ❌ Failed to save %s for week %d: %v", category, week, err)
		return
	}
	log.Printf("[AWARDS] 🏆 %s → %s (post %s)", category, winnerUUID, postID)
}

// grantBadge appends the badge iff the user doesn't already hold it.
func (s *AwardsService) grantBadge(userUUID, badge string) error {
	badges, err := s.store.UserBadges(userUUID)
	if err != nil {
		return err
	}
	if lo.Contains(badges, badge) {
		return nil
	}
	return s.store.UpdateUserBadges(userUUID, append(badges, badge))
}
