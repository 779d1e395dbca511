package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/phrogbot/phrogbot/internal/domain/entities"
)

type fakeFactClient struct {
	fact string
	err  error
}

func (c *fakeFactClient) Random(_ context.Context) (string, error) {
	return c.fact, c.err
}

func TestFactPrefersCorpusMetadata(t *testing.T) {
	species := makeSpecies("tomato_frog", "glass_frog")
	species[0].ScientificName = "Dyscophus antongilii"
	species[0].Facts = []string{"They inflate when threatened."}

	svc := NewFactService(
		&fakeCatalog{species: species},
		&fakeFactClient{fact: "remote fact"},
		zap.NewNop(),
	)

	fact, err := svc.Random(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Tomato Frog (Dyscophus antongilii): They inflate when threatened.", fact)
}

func TestFactFallsBackToRemoteAPI(t *testing.T) {
	svc := NewFactService(
		&fakeCatalog{species: makeSpecies("tomato_frog")},
		&fakeFactClient{fact: "Frogs absorb water through their skin."},
		zap.NewNop(),
	)

	fact, err := svc.Random(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Frogs absorb water through their skin.", fact)
}

func TestFactWithNoSources(t *testing.T) {
	svc := NewFactService(
		&fakeCatalog{species: makeSpecies("tomato_frog")},
		nil,
		zap.NewNop(),
	)

	_, err := svc.Random(context.Background())
	assert.ErrorIs(t, err, entities.ErrNoFacts)
}

func TestFactRemoteFailure(t *testing.T) {
	svc := NewFactService(
		&fakeCatalog{species: makeSpecies("tomato_frog")},
		&fakeFactClient{err: assert.AnError},
		zap.NewNop(),
	)

	_, err := svc.Random(context.Background())
	assert.ErrorIs(t, err, entities.ErrNoFacts)
}
