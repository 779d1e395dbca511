package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrogbot/phrogbot/internal/domain/entities"
)

func makeSpecies(keys ...string) []*entities.Species {
	species := make([]*entities.Species, 0, len(keys))
	for _, key := range keys {
		species = append(species, &entities.Species{
			Key:         key,
			DisplayName: entities.DisplayNameForKey(key),
			Images: []entities.Image{
				{Name: "img01.jpg", Path: fmt.Sprintf("/corpus/%s/img01.jpg", key)},
				{Name: "img02.jpg", Path: fmt.Sprintf("/corpus/%s/img02.jpg", key)},
			},
		})
	}
	return species
}

func TestGenerateProducesFourDistinctChoices(t *testing.T) {
	gen := NewQuestionGenerator()
	species := makeSpecies("tomato_frog", "american_bullfrog", "glass_frog", "blue_dart_frog", "tree_frog", "pacman_frog")

	for i := 0; i < 50; i++ {
		q, err := gen.Generate(species, 5*time.Second)
		require.NoError(t, err)

		require.Len(t, q.Choices, 4)

		seen := make(map[string]struct{}, 4)
		correctIncluded := false
		for _, c := range q.Choices {
			seen[c.Key] = struct{}{}
			if c.Key == q.CorrectKey {
				correctIncluded = true
				assert.Equal(t, q.CorrectName, c.Label)
			}
		}
		assert.Len(t, seen, 4, "choices must be distinct")
		assert.True(t, correctIncluded, "choices must include the correct key")
	}
}

func TestGenerateUsesImageFromCorrectSpecies(t *testing.T) {
	gen := NewQuestionGenerator()
	species := makeSpecies("tomato_frog", "american_bullfrog", "glass_frog", "blue_dart_frog")

	for i := 0; i < 20; i++ {
		q, err := gen.Generate(species, 5*time.Second)
		require.NoError(t, err)

		assert.Contains(t, q.Image.Path, "/corpus/"+q.CorrectKey+"/")
	}
}

func TestGenerateSetsDeadline(t *testing.T) {
	gen := NewQuestionGenerator()
	species := makeSpecies("a", "b", "c", "d")

	before := time.Now()
	q, err := gen.Generate(species, 5*time.Second)
	require.NoError(t, err)

	assert.False(t, q.ExpiresAt.Before(before.Add(5*time.Second)))
}

func TestGenerateRejectsSmallCatalog(t *testing.T) {
	gen := NewQuestionGenerator()

	for n := 0; n < 4; n++ {
		keys := []string{"a", "b", "c"}[:n]
		_, err := gen.Generate(makeSpecies(keys...), 5*time.Second)
		assert.ErrorIs(t, err, entities.ErrNotEnoughSpecies, "catalog of %d species", n)
	}
}
