// storage/gorm_store.go
package storage

import (
	"errors"
	"time"

	"hot-takes-system/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the GORM/Postgres implementation of the narrow store interfaces
// the prompt selector and awards engine depend on.
type Store struct {
	DB *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}

// --- Prompt store ---

func (s *Store) PromptsByCategoryAndChaos(category string, chaosLevel int) ([]models.Prompt, error) {
	var prompts []models.Prompt
	err := s.DB.Where("category = ? AND chaos_level = ?", category, chaosLevel).
		Limit(100).
		Find(&prompts).Error
	return prompts, err
}

func (s *Store) PromptsWithMinChaos(minChaosLevel int) ([]models.Prompt, error) {
	var prompts []models.Prompt
	err := s.DB.Where("chaos_level >= ?", minChaosLevel).
		Limit(100).
		Find(&prompts).Error
	return prompts, err
}

func (s *Store) PromptByID(id string) (*models.Prompt, error) {
	var prompt models.Prompt
	if err := s.DB.Where("id = ?", id).First(&prompt).Error; err != nil {
		return nil, err
	}
	return &prompt, nil
}

func (s *Store) DailyPromptByDate(date string) (*models.DailyPrompt, error) {
	var daily models.DailyPrompt
	err := s.DB.Where("date = ?", date).First(&daily).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &daily, nil
}

// InsertDailyPrompt is insert-or-ignore on the date primary key, so two
// first-of-the-day requests racing here both succeed and the earlier row wins.
func (s *Store) InsertDailyPrompt(date, promptID string) error {
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoNothing: true,
	}).Create(&models.DailyPrompt{
		Date:     date,
		PromptID: promptID,
	}).Error
}

// --- Awards store ---

// PostsSince returns the week window oldest first; the awards engine relies
// on chronological order for its first-wins tie-break.
func (s *Store) PostsSince(t time.Time) ([]models.Post, error) {
	var posts []models.Post
	err := s.DB.Where("created_at >= ?", t).
		Order("created_at ASC").
		Find(&posts).Error
	return posts, err
}

func (s *Store) UserBadges(uuid string) ([]string, error) {
	var user models.User
	if err := s.DB.Where("uuid = ?", uuid).First(&user).Error; err != nil {
		return nil, err
	}
	return user.Badges, nil
}

func (s *Store) UpdateUserBadges(uuid string, badges []string) error {
	var user models.User
	if err := s.DB.Where("uuid = ?", uuid).First(&user).Error; err != nil {
		return err
	}
	user.Badges = badges
	return s.DB.Save(&user).Error
}

// UpsertWeeklyAward overwrites on the (week_number, category) unique index,
// so re-running a week's computation never duplicates a row.
func (s *Store) UpsertWeeklyAward(weekNumber int, category, winnerUUID, postID string) error {
	return s.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "week_number"}, {Name: "category"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"winner_uuid",
			"post_id",
			"updated_at",
		}),
	}).Create(&models.WeeklyAward{
		WeekNumber: weekNumber,
		Category:   category,
		WinnerUUID: winnerUUID,
		PostID:     postID,
	}).Error
}

// WeeklyAwardRow is the awards board read model: award row joined with the
// winner's alias and the representative post.
type WeeklyAwardRow struct {
	WeekNumber  int              `json:"week_number"`
	Category    string           `json:"category"`
	WinnerUUID  string           `json:"winner_uuid"`
	WinnerAlias string           `json:"winner_alias"`
	PostID      string           `json:"post_id"`
	PostText    string           `json:"post_text"`
	Flames      int              `json:"flames"`
	SuperFlames int              `json:"super_flames"`
	HeatLevel   models.HeatLevel `json:"heat_level"`
}

func (s *Store) WeeklyAwardsForWeek(weekNumber int) ([]WeeklyAwardRow, error) {
	var rows []WeeklyAwardRow
	err := s.DB.Raw(`
		SELECT wa.week_number, wa.category, wa.winner_uuid, u.alias AS winner_alias,
		       wa.post_id, p.text AS post_text, p.flames, p.super_flames, p.heat_level
		FROM weekly_awards wa
		INNER JOIN users u ON u.uuid = wa.winner_uuid
		INNER JOIN posts p ON p.id = wa.post_id
		WHERE wa.week_number = ?
		ORDER BY wa.category ASC
	`, weekNumber).Scan(&rows).Error
	return rows, err
}
