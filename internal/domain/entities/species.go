// Package entities contains domain entities used across the application.
package entities

import "strings"

// Image is a single corpus image belonging to a species.
type Image struct {
	Name string // file name, e.g. "img03.jpg"
	Path string // absolute or corpus-relative path on disk
}

// Species represents one labeled group of interchangeable frog images.
// A species is the unit a quiz answer refers to: the quiz shows one of its
// images and asks which species it is.
type Species struct {
	Key            string   // stable identifier, the corpus directory name
	DisplayName    string   // human-readable label derived from Key
	Images         []Image  // non-empty list of images for this species
	ScientificName string   // optional, from the corpus metadata file
	Facts          []string // optional fun facts, from the corpus metadata file
}

// DisplayNameForKey converts a species key like "red_eyed_tree_frog"
// into "Red Eyed Tree Frog".
func DisplayNameForKey(key string) string {
	words := strings.Split(strings.ReplaceAll(key, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
