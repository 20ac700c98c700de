// services/post_service.go
package services

import (
	"fmt"
	"time"

	"hot-takes-system/models"

	"gorm.io/gorm"
)

// Feed tabs
const (
	FeedHotNow       = "hot-now"
	FeedMostUnhinged = "most-unhinged"
	FeedTopWeek      = "top-week"
	FeedRisingStars  = "rising-stars"
)

const feedPageSize = 50

type PostService struct {
	DB *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{DB: db}
}

// CreatePost inserts a new take. Counters start at zero, so the heat level is
// whatever the classifier says for (0, 0). Text and category are validated at
// the handler before this is called.
func (s *PostService) CreatePost(userUUID, text, category string) (*models.Post, error) {
	post := &models.Post{
		UserUUID:  userUUID,
		Text:      text,
		Category:  category,
		HeatLevel: ClassifyHeat(0, 0),
	}
	if err := s.DB.Create(post).Error; err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

// AddFlame increments the flame counter and recomputes the heat level in the
// same transaction, keeping the stored tag consistent with the counters.
func (s *PostService) AddFlame(postID string) (*models.Post, error) {
	return s.react(postID, func(p *models.Post) {
		p.Flames++
	})
}

// AddSuperFlame increments the super-flame counter (worth 3× heat).
func (s *PostService) AddSuperFlame(postID string) (*models.Post, error) {
	return s.react(postID, func(p *models.Post) {
		p.SuperFlames++
	})
}

func (s *PostService) react(postID string, bump func(*models.Post)) (*models.Post, error) {
	var post models.Post
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", postID).First(&post).Error; err != nil {
			return err
		}
		bump(&post)
		post.HeatLevel = ClassifyHeat(post.Flames, post.SuperFlames)
		return tx.Model(&models.Post{}).Where("id = ?", postID).
			Updates(map[string]interface{}{
				"flames":       post.Flames,
				"super_flames": post.SuperFlames,
				"heat_level":   post.HeatLevel,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Feed returns up to 50 posts for the requested tab. Unknown tabs fall back
// to the latest-posts view.
func (s *PostService) Feed(tab string) ([]models.Post, error) {
	var posts []models.Post
	now := time.Now()

	query := s.DB.Model(&models.Post{}).Limit(feedPageSize)

	switch tab {
	case FeedHotNow:
		thirtyMinutesAgo := now.Add(-30 * time.Minute)
		query = query.Where("created_at >= ?", thirtyMinutesAgo).
			Order("flames DESC")
	case FeedMostUnhinged:
		query = query.Where("heat_level IN ?", []models.HeatLevel{models.HeatChaotic, models.HeatInferno}).
			Order("flames DESC")
	case FeedTopWeek:
		weekAgo := now.AddDate(0, 0, -7)
		query = query.Where("created_at >= ?", weekAgo).
			Order("flames DESC")
	case FeedRisingStars:
		hourAgo := now.Add(-time.Hour)
		query = query.Where("created_at >= ?", hourAgo).
			Order("flames DESC")
	default:
		query = query.Order("created_at DESC")
	}

	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// UserPosts returns one user's takes, newest first.
func (s *PostService) UserPosts(userUUID string) ([]models.Post, error) {
	var posts []models.Post
	err := s.DB.Where("user_uuid = ?", userUUID).
		Order("created_at DESC").
		Limit(feedPageSize).
		Find(&posts).Error
	return posts, err
}
