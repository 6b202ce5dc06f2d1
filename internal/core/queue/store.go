package queue

import (
	"context"
	"time"

	"github.com/ragnarob/yiffer.xyz-contributions/internal/core/comic"
)

// Repository persists queue positions and schedule state.
type Repository interface {
	GetComicStatus(context context.Context, comicID int) (comic.PublishStatus, error)
	// GetPosition returns the queue position of a scheduled comic, nil when
	// the comic has no slot. A comic without a metadata row is an error.
	GetPosition(context context.Context, comicID int) (*int, error)
	// Swap moves the comic at toPos back to fromPos, then puts this comic at
	// toPos, atomically.
	Swap(context context.Context, comicID, fromPos, toPos int) error
	// ListQueue returns every scheduled comic without a publish date.
	ListQueue(context context.Context) ([]Entry, error)
	ApplyPositions(context context.Context, changes []Change) error
	SetScheduled(context context.Context, comicID, modID int, publishDate *time.Time) error
	ClearScheduled(context context.Context, comicID int) error
}
