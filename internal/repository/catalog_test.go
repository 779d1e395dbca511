package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCorpus(t *testing.T, species map[string][]string) string {
	t.Helper()

	dir := t.TempDir()
	for key, images := range species {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, key), 0o755))
		for _, img := range images {
			require.NoError(t, os.WriteFile(filepath.Join(dir, key, img), []byte("jpg"), 0o644))
		}
	}
	return dir
}

func TestCatalogLoadsSpeciesFromCorpus(t *testing.T) {
	dir := writeCorpus(t, map[string][]string{
		"tomato_frog":        {"img01.jpg", "img02.jpg"},
		"american_bullfrog":  {"IMG03.JPG"},
		"red_eyed_tree_frog": {"img01.jpg"},
	})

	repo, err := NewCatalogRepository(dir, "")
	require.NoError(t, err)

	assert.Equal(t, 3, repo.Len())

	species, err := repo.GetByKey("red_eyed_tree_frog")
	require.NoError(t, err)
	assert.Equal(t, "Red Eyed Tree Frog", species.DisplayName)
	require.Len(t, species.Images, 1)
	assert.Equal(t, filepath.Join(dir, "red_eyed_tree_frog", "img01.jpg"), species.Images[0].Path)

	// Matching is case insensitive, like the corpus normalizer's output.
	species, err = repo.GetByKey("american_bullfrog")
	require.NoError(t, err)
	assert.Len(t, species.Images, 1)
}

func TestCatalogSkipsEmptyAndForeignFiles(t *testing.T) {
	dir := writeCorpus(t, map[string][]string{
		"tomato_frog": {"img01.jpg", "notes.txt", "thumbnail.png"},
		"empty_dir":   {},
	})
	// A stray file at the corpus root is not a species.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README"), []byte("x"), 0o644))

	repo, err := NewCatalogRepository(dir, "")
	require.NoError(t, err)

	assert.Equal(t, 1, repo.Len())

	species, err := repo.GetByKey("tomato_frog")
	require.NoError(t, err)
	assert.Len(t, species.Images, 1, "only imgNN.jpg files count")

	_, err = repo.GetByKey("empty_dir")
	assert.ErrorIs(t, err, ErrSpeciesNotFound)
}

func TestCatalogMergesMetadata(t *testing.T) {
	dir := writeCorpus(t, map[string][]string{
		"tomato_frog": {"img01.jpg"},
		"glass_frog":  {"img01.jpg"},
	})

	meta := map[string]speciesMeta{
		"tomato_frog": {
			ScientificName: "Dyscophus antongilii",
			Facts:          []string{"They inflate when threatened."},
		},
	}
	data, err := json.Marshal(meta)
	require.NoError(t, err)

	metaPath := filepath.Join(t.TempDir(), "meta.json")
	require.NoError(t, os.WriteFile(metaPath, data, 0o644))

	repo, err := NewCatalogRepository(dir, metaPath)
	require.NoError(t, err)

	species, err := repo.GetByKey("tomato_frog")
	require.NoError(t, err)
	assert.Equal(t, "Dyscophus antongilii", species.ScientificName)
	assert.Len(t, species.Facts, 1)

	// A species without metadata still loads.
	species, err = repo.GetByKey("glass_frog")
	require.NoError(t, err)
	assert.Empty(t, species.ScientificName)
}

func TestCatalogToleratesMissingMetadataFile(t *testing.T) {
	dir := writeCorpus(t, map[string][]string{"tomato_frog": {"img01.jpg"}})

	repo, err := NewCatalogRepository(dir, filepath.Join(dir, "no_such.json"))
	require.NoError(t, err)
	assert.Equal(t, 1, repo.Len())
}

func TestCatalogRandomFromEmpty(t *testing.T) {
	repo, err := NewCatalogRepository(t.TempDir(), "")
	require.NoError(t, err)

	_, err = repo.GetRandom()
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}
