package queue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ragnarob/yiffer.xyz-contributions/internal/core/queue"
)

func pos(v int) *int { return &v }

func TestRenumber(t *testing.T) {
	tests := []struct {
		name    string
		entries []queue.Entry
		want    []queue.Change
	}{
		{
			name: "dense_queue_unchanged",
			entries: []queue.Entry{
				{ComicID: 1, Position: pos(1)},
				{ComicID: 2, Position: pos(2)},
				{ComicID: 3, Position: pos(3)},
			},
			want: nil,
		},
		{
			name: "gap_closed",
			entries: []queue.Entry{
				{ComicID: 1, Position: pos(1)},
				{ComicID: 2, Position: pos(4)},
				{ComicID: 3, Position: pos(7)},
			},
			want: []queue.Change{
				{ComicID: 2, Position: 2},
				{ComicID: 3, Position: 3},
			},
		},
		{
			name: "unpositioned_appended_by_comic_id",
			entries: []queue.Entry{
				{ComicID: 9, Position: nil},
				{ComicID: 4, Position: pos(1)},
				{ComicID: 2, Position: nil},
			},
			want: []queue.Change{
				{ComicID: 2, Position: 2},
				{ComicID: 9, Position: 3},
			},
		},
		{
			name: "relative_order_preserved",
			entries: []queue.Entry{
				{ComicID: 5, Position: pos(10)},
				{ComicID: 3, Position: pos(2)},
				{ComicID: 8, Position: pos(5)},
			},
			want: []queue.Change{
				{ComicID: 3, Position: 1},
				{ComicID: 8, Position: 2},
				{ComicID: 5, Position: 3},
			},
		},
		{
			name:    "empty_queue",
			entries: nil,
			want:    nil,
		},
		{
			name: "all_unpositioned",
			entries: []queue.Entry{
				{ComicID: 30, Position: nil},
				{ComicID: 10, Position: nil},
				{ComicID: 20, Position: nil},
			},
			want: []queue.Change{
				{ComicID: 10, Position: 1},
				{ComicID: 20, Position: 2},
				{ComicID: 30, Position: 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, queue.Renumber(tt.entries))
		})
	}
}

func TestRenumber_Idempotent(t *testing.T) {
	entries := []queue.Entry{
		{ComicID: 1, Position: pos(3)},
		{ComicID: 2, Position: nil},
		{ComicID: 3, Position: pos(8)},
	}

	changes := queue.Renumber(entries)
	assert.NotEmpty(t, changes)

	// Apply the changes, then renumber again: nothing should move.
	applied := map[int]int{}
	for _, entry := range entries {
		if entry.Position != nil {
			applied[entry.ComicID] = *entry.Position
		}
	}
	for _, change := range changes {
		applied[change.ComicID] = change.Position
	}

	second := make([]queue.Entry, 0, len(entries))
	for _, entry := range entries {
		p := applied[entry.ComicID]
		second = append(second, queue.Entry{ComicID: entry.ComicID, Position: &p})
	}

	assert.Empty(t, queue.Renumber(second))
}
