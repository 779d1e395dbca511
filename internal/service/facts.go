package service

import (
	"context"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/phrogbot/phrogbot/internal/domain/entities"
)

// FactService serves frog facts, preferring the curated facts shipped with
// the corpus metadata and falling back to the remote fact API.
type FactService struct {
	catalog Catalog
	client  FactClient
	logger  *zap.Logger
}

// NewFactService creates a new FactService. client may be nil, in which case
// only corpus facts are served.
func NewFactService(catalog Catalog, client FactClient, logger *zap.Logger) *FactService {
	return &FactService{
		catalog: catalog,
		client:  client,
		logger:  logger,
	}
}

// Random returns one frog fact, prefixed with the species name when it comes
// from the corpus metadata.
func (s *FactService) Random(ctx context.Context) (string, error) {
	if fact, ok := s.corpusFact(); ok {
		return fact, nil
	}

	if s.client == nil {
		return "", entities.ErrNoFacts
	}

	fact, err := s.client.Random(ctx)
	if err != nil {
		s.logger.Warn("remote fact API failed", zap.Error(err))
		return "", entities.ErrNoFacts
	}

	return fact, nil
}

// corpusFact picks a random fact from a random species that has any.
func (s *FactService) corpusFact() (string, bool) {
	var withFacts []*entities.Species
	for _, sp := range s.catalog.GetAll() {
		if len(sp.Facts) > 0 {
			withFacts = append(withFacts, sp)
		}
	}

	if len(withFacts) == 0 {
		return "", false
	}

	species := withFacts[rand.Intn(len(withFacts))]
	fact := species.Facts[rand.Intn(len(species.Facts))]

	name := species.DisplayName
	if species.ScientificName != "" {
		name = fmt.Sprintf("%s (%s)", species.DisplayName, species.ScientificName)
	}

	return fmt.Sprintf("%s: %s", name, fact), true
}
