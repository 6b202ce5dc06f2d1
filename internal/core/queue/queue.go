// Package queue manages the publishing queue: the ordered line of scheduled
// comics waiting for a publish slot. Comics scheduled for a concrete date
// live outside the numbered queue.
package queue

import (
	"sort"

	"github.com/ragnarob/yiffer.xyz-contributions/pkg/slice"
)

// Direction moves a comic one step through the queue.
type Direction string

const (
	// DirectionUp moves a comic closer to the front (lower position).
	DirectionUp Direction = "up"
	// DirectionDown moves a comic further back (higher position).
	DirectionDown Direction = "down"
)

// Entry is one queued comic. Position is nil for comics that were scheduled
// without ever getting a slot, or whose slot was cleared.
type Entry struct {
	ComicID  int  `json:"comic_id"`
	Position *int `json:"position"`
}

// Change assigns a comic its new queue position.
type Change struct {
	ComicID  int `json:"comic_id"`
	Position int `json:"position"`
}

// Renumber computes the dense 1..N numbering for the queue and returns only
// the entries whose position actually changes. Positioned entries keep their
// relative order; unpositioned entries are appended after them, ordered by
// comic id ascending. Running it on an already-dense queue returns nothing.
func Renumber(entries []Entry) []Change {
	positioned := slice.Filter(entries, func(e Entry) bool { return e.Position != nil })
	unpositioned := slice.Filter(entries, func(e Entry) bool { return e.Position == nil })

	sort.SliceStable(positioned, func(i, j int) bool {
		if *positioned[i].Position != *positioned[j].Position {
			return *positioned[i].Position < *positioned[j].Position
		}
		return positioned[i].ComicID < positioned[j].ComicID
	})
	sort.Slice(unpositioned, func(i, j int) bool {
		return unpositioned[i].ComicID < unpositioned[j].ComicID
	})

	var changes []Change
	next := 1
	for _, entry := range positioned {
		if *entry.Position != next {
			changes = append(changes, Change{ComicID: entry.ComicID, Position: next})
		}
		next++
	}
	for _, entry := range unpositioned {
		changes = append(changes, Change{ComicID: entry.ComicID, Position: next})
		next++
	}
	return changes
}
