package service

import (
	"math/rand"
	"time"

	"github.com/phrogbot/phrogbot/internal/domain/entities"
)

// questionChoices is how many answer buttons a question carries: the correct
// species plus three distractors.
const questionChoices = 4

// QuestionGenerator builds multiple choice questions from the species catalog.
type QuestionGenerator struct{}

// NewQuestionGenerator creates a new question generator.
func NewQuestionGenerator() *QuestionGenerator {
	return &QuestionGenerator{}
}

// Generate picks one species as the correct answer, one of its images, and
// three distractor species without replacement, then shuffles the choices.
// It fails with entities.ErrNotEnoughSpecies when the catalog has fewer than
// four species.
func (g *QuestionGenerator) Generate(species []*entities.Species, deadline time.Duration) (*entities.Question, error) {
	if len(species) < questionChoices {
		return nil, entities.ErrNotEnoughSpecies
	}

	correct := species[rand.Intn(len(species))]
	image := correct.Images[rand.Intn(len(correct.Images))]

	distractors := g.pickDistractors(species, correct.Key, questionChoices-1)

	choices := make([]entities.Choice, 0, questionChoices)
	choices = append(choices, entities.Choice{Key: correct.Key, Label: correct.DisplayName})
	for _, d := range distractors {
		choices = append(choices, entities.Choice{Key: d.Key, Label: d.DisplayName})
	}

	rand.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})

	return &entities.Question{
		CorrectKey:  correct.Key,
		CorrectName: correct.DisplayName,
		Image:       image,
		Choices:     choices,
		ExpiresAt:   time.Now().Add(deadline),
	}, nil
}

// pickDistractors selects count random species other than the correct one.
func (g *QuestionGenerator) pickDistractors(all []*entities.Species, correctKey string, count int) []*entities.Species {
	candidates := make([]*entities.Species, 0, len(all))
	for _, s := range all {
		if s.Key != correctKey {
			candidates = append(candidates, s)
		}
	}

	rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	if len(candidates) > count {
		candidates = candidates[:count]
	}

	return candidates
}
