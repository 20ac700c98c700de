// services/user_service.go
package services

import (
	"errors"
	"fmt"
	"math/rand"

	"hot-takes-system/models"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

var aliasAdjectives = []string{
	"Chubby", "Sleepy", "Grumpy", "Silly", "Stinky", "Goofy", "Wacky", "Spicy",
	"Crispy", "Fluffy", "Squishy", "Bouncy", "Sneaky", "Lazy", "Dizzy", "Clumsy",
	"Quirky", "Zesty", "Funky", "Wonky", "Rowdy", "Frisky", "Jolly", "Perky",
	"Sassy", "Feisty", "Salty", "Crusty", "Rusty", "Dusty", "Musty", "Frosty",
	"Toasty", "Roasty", "Boujee", "Fancy", "Basic", "Chaotic", "Cringe", "Based",
	"Toxic", "Legendary", "Epic", "Certified", "Professional", "Discount", "Bootleg",
}

var aliasNouns = []string{
	"Bunny", "Pickle", "Nugget", "Muffin", "Burrito", "Taco", "Waffle", "Pancake",
	"Biscuit", "Dumpling", "Potato", "Noodle", "Pretzel", "Bagel", "Donut", "Cookie",
	"Goblin", "Gremlin", "Cryptid", "Menace", "Chaos", "Disaster", "Rat",
	"Possum", "Raccoon", "Hamster", "Shrimp", "Walrus", "Penguin", "Llama", "Capybara",
	"Frog", "Moth", "Goose", "Duck", "Pigeon", "Seagull", "Crow", "Raven",
	"Blob", "Bean", "Soup", "Meme", "King", "Queen", "Lord", "Wizard",
	"Deity", "Entity", "Demon", "Angel", "Ghost", "Spirit", "Soul",
}

// GenerateRandomAlias produces a two-word anonymous display name.
func GenerateRandomAlias() string {
	adj := aliasAdjectives[rand.Intn(len(aliasAdjectives))]
	noun := aliasNouns[rand.Intn(len(aliasNouns))]
	return fmt.Sprintf("%s %s", adj, noun)
}

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// CreateUser finalizes onboarding: the device UUID is minted client side, the
// alias is whichever roll the user confirmed. Idempotent: a repeat call for
// an existing UUID returns the stored user unchanged.
func (s *UserService) CreateUser(uuid, alias string) (*models.User, error) {
	var existing models.User
	err := s.DB.Where("uuid = ?", uuid).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := &models.User{
		UUID:   uuid,
		Alias:  alias,
		Handle: slug.Make(alias),
		Badges: []string{},
	}
	if err := s.DB.Create(user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// GetUser returns (nil, nil) when the UUID is unknown.
func (s *UserService) GetUser(uuid string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("uuid = ?", uuid).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
