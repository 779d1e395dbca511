package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/phrogbot/phrogbot/internal/domain/entities"
)

var (
	ErrSpeciesNotFound = errors.New("species not found")
	ErrEmptyCatalog    = errors.New("catalog has no species")
)

// imagePattern matches the normalized corpus image names (img01.jpg, ...).
var imagePattern = regexp.MustCompile(`(?i)^img\d+\.jpg$`)

// CatalogRepository provides access to the labeled frog image catalog. The
// catalog is loaded once at startup from the corpus directory and is
// immutable afterwards.
type CatalogRepository struct {
	species []*entities.Species
	byKey   map[string]*entities.Species
}

// speciesMeta mirrors one entry of the corpus metadata JSON file.
type speciesMeta struct {
	ScientificName string   `json:"scientific_name"`
	Facts          []string `json:"facts"`
}

// NewCatalogRepository scans corpusDir for species subdirectories and loads
// optional enrichment metadata from metadataPath. Subdirectories without any
// matching image are skipped. metadataPath may be empty.
func NewCatalogRepository(corpusDir, metadataPath string) (*CatalogRepository, error) {
	meta, err := loadMetadata(metadataPath)
	if err != nil {
		return nil, err
	}

	dirEntries, err := os.ReadDir(corpusDir)
	if err != nil {
		return nil, fmt.Errorf("read corpus dir: %w", err)
	}

	repo := &CatalogRepository{
		byKey: make(map[string]*entities.Species),
	}

	for _, entry := range dirEntries {
		if !entry.IsDir() {
			continue
		}

		key := entry.Name()
		images, err := loadImages(filepath.Join(corpusDir, key))
		if err != nil {
			return nil, fmt.Errorf("load images for %s: %w", key, err)
		}
		if len(images) == 0 {
			continue
		}

		species := &entities.Species{
			Key:         key,
			DisplayName: entities.DisplayNameForKey(key),
			Images:      images,
		}
		if m, ok := meta[key]; ok {
			species.ScientificName = m.ScientificName
			species.Facts = m.Facts
		}

		repo.species = append(repo.species, species)
		repo.byKey[key] = species
	}

	sort.Slice(repo.species, func(i, j int) bool {
		return repo.species[i].Key < repo.species[j].Key
	})

	return repo, nil
}

// GetAll returns every species in the catalog, ordered by key.
func (r *CatalogRepository) GetAll() []*entities.Species {
	return r.species
}

// GetByKey retrieves a species by its key.
func (r *CatalogRepository) GetByKey(key string) (*entities.Species, error) {
	species, ok := r.byKey[key]
	if !ok {
		return nil, ErrSpeciesNotFound
	}
	return species, nil
}

// GetRandom retrieves a random species.
func (r *CatalogRepository) GetRandom() (*entities.Species, error) {
	if len(r.species) == 0 {
		return nil, ErrEmptyCatalog
	}
	return r.species[rand.Intn(len(r.species))], nil
}

// Len reports the number of species in the catalog.
func (r *CatalogRepository) Len() int {
	return len(r.species)
}

func loadImages(dir string) ([]entities.Image, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var images []entities.Image
	for _, f := range files {
		if f.IsDir() || !imagePattern.MatchString(f.Name()) {
			continue
		}
		images = append(images, entities.Image{
			Name: f.Name(),
			Path: filepath.Join(dir, f.Name()),
		})
	}

	return images, nil
}

func loadMetadata(path string) (map[string]speciesMeta, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// The metadata file is an enrichment, not a requirement.
			return nil, nil
		}
		return nil, fmt.Errorf("read metadata file: %w", err)
	}

	var meta map[string]speciesMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("failed to unmarshal metadata JSON: %w", err)
	}

	return meta, nil
}
