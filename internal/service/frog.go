package service

import (
	"math/rand"
	"time"

	"github.com/phrogbot/phrogbot/internal/domain/entities"
	"github.com/phrogbot/phrogbot/internal/storage"
)

// pickAttempts bounds how hard Pick tries to avoid a recently posted image
// before giving up and repeating one.
const pickAttempts = 16

// FrogService serves random frog images with a per-chat cooldown and a
// bounded "don't repeat the last few images" history.
type FrogService struct {
	catalog  Catalog
	history  *storage.RecentHistory
	cooldown *storage.CooldownTracker
	interval time.Duration
}

// NewFrogService creates a new FrogService.
func NewFrogService(
	catalog Catalog,
	history *storage.RecentHistory,
	cooldown *storage.CooldownTracker,
	interval time.Duration,
) *FrogService {
	return &FrogService{
		catalog:  catalog,
		history:  history,
		cooldown: cooldown,
		interval: interval,
	}
}

// Pick returns a random species and one of its images for the chat. It fails
// with entities.ErrOnCooldown when the chat asked too recently.
func (s *FrogService) Pick(chatID int64) (*entities.Species, entities.Image, error) {
	if !s.cooldown.Allow(chatID, s.interval) {
		return nil, entities.Image{}, entities.ErrOnCooldown
	}

	var (
		species *entities.Species
		image   entities.Image
		err     error
	)

	for i := 0; i < pickAttempts; i++ {
		species, err = s.catalog.GetRandom()
		if err != nil {
			return nil, entities.Image{}, err
		}

		image = species.Images[rand.Intn(len(species.Images))]
		if !s.history.Contains(image.Path) {
			break
		}
	}

	s.history.Add(image.Path)

	return species, image, nil
}
