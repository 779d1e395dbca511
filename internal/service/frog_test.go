package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrogbot/phrogbot/internal/domain/entities"
	"github.com/phrogbot/phrogbot/internal/storage"
)

func TestFrogPickHonorsCooldown(t *testing.T) {
	svc := NewFrogService(
		&fakeCatalog{species: makeSpecies("tomato_frog")},
		storage.NewRecentHistory(5),
		storage.NewCooldownTracker(),
		time.Minute,
	)

	_, _, err := svc.Pick(1)
	require.NoError(t, err)

	_, _, err = svc.Pick(1)
	assert.ErrorIs(t, err, entities.ErrOnCooldown)

	// A different chat is not affected.
	_, _, err = svc.Pick(2)
	assert.NoError(t, err)
}

func TestFrogPickAvoidsRecentImages(t *testing.T) {
	history := storage.NewRecentHistory(1)
	svc := NewFrogService(
		&fakeCatalog{species: makeSpecies("tomato_frog")},
		history,
		storage.NewCooldownTracker(),
		0,
	)

	_, first, err := svc.Pick(1)
	require.NoError(t, err)

	// The species has two images and the history holds one, so the next
	// pick must be the other image.
	_, second, err := svc.Pick(1)
	require.NoError(t, err)
	assert.NotEqual(t, first.Path, second.Path)
}
