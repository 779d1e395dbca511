package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayNameForKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"tomato_frog", "Tomato Frog"},
		{"red_eyed_tree_frog", "Red Eyed Tree Frog"},
		{"bullfrog", "Bullfrog"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DisplayNameForKey(tt.key), "key %q", tt.key)
	}
}
