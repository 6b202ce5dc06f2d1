package artist

import (
	"context"
	"log/slog"

	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) GetArtist(context context.Context, id int) (*Artist, error) {
	return service.repo.GetArtist(context, id)
}

func (service *Service) ListArtists(context context.Context, query string, limit, offset int) ([]*Artist, int, error) {
	return service.repo.ListArtists(context, query, limit, offset)
}

// UpdateArtist replaces the artist's data. The stored link set is diffed
// against the submitted one so only net changes hit the database.
func (service *Service) UpdateArtist(context context.Context, id int, artist *Artist) error {
	artist.ID = id

	validator := &validate.Validator{}
	validator.Required(FieldName, artist.Name).MaxLen(FieldName, artist.Name, 100)
	for _, link := range artist.Links {
		if link != "" {
			validator.URL(FieldLinks, link)
		}
	}
	if err := validator.Err(); err != nil {
		return err
	}

	existing, err := service.repo.GetArtist(context, id)
	if err != nil {
		return err
	}

	toAdd, toRemove := DiffLinks(existing.Links, artist.Links)
	if err := service.repo.UpdateArtist(context, artist, toAdd, toRemove); err != nil {
		return err
	}

	service.logger.Info("artist_updated",
		slog.Int("artist_id", artist.ID),
		slog.Int("links_added", len(toAdd)),
		slog.Int("links_removed", len(toRemove)),
	)
	return nil
}

// ApproveArtist clears the pending flag set by an anonymous/user submission.
func (service *Service) ApproveArtist(context context.Context, artistID int) error {
	if err := service.repo.SetPending(context, artistID, false); err != nil {
		return err
	}

	service.logger.Info("artist_approved", slog.Int("artist_id", artistID))
	return nil
}
