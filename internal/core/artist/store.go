package artist

import "context"

type Repository interface {
	GetArtist(context context.Context, id int) (*Artist, error)
	ListArtists(context context.Context, query string, limit, offset int) ([]*Artist, int, error)

	// UpdateArtist writes the artist's scalar fields and applies the given
	// link mutations in one transaction.
	UpdateArtist(context context.Context, a *Artist, linksToAdd, linksToRemove []string) error

	// SetPending flips the moderation-pending flag.
	SetPending(context context.Context, artistID int, isPending bool) error
}
