package artist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ragnarob/yiffer.xyz-contributions/internal/core/artist"
)

func TestDiffLinks(t *testing.T) {
	tests := []struct {
		name       string
		stored     []string
		desired    []string
		wantAdd    []string
		wantRemove []string
	}{
		{
			name:    "no_change",
			stored:  []string{"https://a.example", "https://b.example"},
			desired: []string{"https://a.example", "https://b.example"},
		},
		{
			name:    "add_one",
			stored:  []string{"https://a.example"},
			desired: []string{"https://a.example", "https://b.example"},
			wantAdd: []string{"https://b.example"},
		},
		{
			name:       "remove_one",
			stored:     []string{"https://a.example", "https://b.example"},
			desired:    []string{"https://a.example"},
			wantRemove: []string{"https://b.example"},
		},
		{
			name:       "replace_all",
			stored:     []string{"https://a.example"},
			desired:    []string{"https://b.example"},
			wantAdd:    []string{"https://b.example"},
			wantRemove: []string{"https://a.example"},
		},
		{
			name:    "duplicates_and_empties_collapsed",
			stored:  nil,
			desired: []string{"https://a.example", "", "https://a.example"},
			wantAdd: []string{"https://a.example"},
		},
		{
			name:       "clear_all",
			stored:     []string{"https://a.example"},
			desired:    nil,
			wantRemove: []string{"https://a.example"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toAdd, toRemove := artist.DiffLinks(tt.stored, tt.desired)
			assert.Equal(t, tt.wantAdd, toAdd)
			assert.Equal(t, tt.wantRemove, toRemove)
		})
	}
}
