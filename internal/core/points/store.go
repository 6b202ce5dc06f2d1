package points

import "context"

// Repository is the persistence boundary for the contribution points ledger.
type Repository interface {
	// ExistingBuckets returns which of the given yearMonth bucket keys
	// already have a row for the user.
	ExistingBuckets(context context.Context, userID int, buckets []string) (map[string]bool, error)

	// InsertBucket creates a fresh row for (userID, bucket) with the
	// category column initialized to count.
	InsertBucket(context context.Context, userID int, bucket string, category Category, count int) error

	// AddToBucket increments the category column on an existing row.
	AddToBucket(context context.Context, userID int, bucket string, category Category, count int) error

	// Scoreboard returns per-user totals for one bucket, highest first.
	Scoreboard(context context.Context, yearMonth string, limit int) ([]*UserPoints, error)
}
