package comic

import (
	"context"
	"log/slog"

	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/apperr"
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

func (service *Service) GetComic(context context.Context, id int) (*Comic, error) {
	return service.repo.GetComic(context, id)
}

// ListForModPanel returns comics awaiting moderator attention. Without an
// explicit status filter it shows fresh uploads and pending comics.
func (service *Service) ListForModPanel(context context.Context, statuses []PublishStatus, limit, offset int) ([]*Comic, int, error) {
	if len(statuses) == 0 {
		statuses = []PublishStatus{StatusUploaded, StatusPending}
	}
	for _, status := range statuses {
		switch status {
		case StatusUploaded, StatusPending, StatusScheduled, StatusPublished,
			StatusUnlisted, StatusRejected, StatusRejectedList:
		default:
			return nil, 0, apperr.ValidationError("Unknown publish status: " + string(status))
		}
	}
	return service.repo.ListByPublishStatus(context, statuses, limit, offset)
}

func (service *Service) UpdateComic(context context.Context, id int, comic *Comic) error {
	comic.ID = id

	validator := &validate.Validator{}
	validator.Required(FieldName, comic.Name).MinLen(FieldName, comic.Name, 2).MaxLen(FieldName, comic.Name, 200)
	validator.OneOf(FieldClassification, string(comic.Classification),
		string(ClassificationFurry), string(ClassificationPokemon), string(ClassificationMLP), string(ClassificationOther))
	validator.OneOf(FieldCategory, string(comic.Category),
		string(CategoryM), string(CategoryF), string(CategoryMF), string(CategoryMM),
		string(CategoryFF), string(CategoryMFp), string(CategoryI))
	validator.OneOf(FieldState, string(comic.State),
		string(StateWIP), string(StateFinished), string(StateCancelled))
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.UpdateComic(context, comic); err != nil {
		return err
	}

	service.logger.Info("comic_updated", slog.Int("comic_id", comic.ID))
	return nil
}

// SetPublishStatus moves a comic to a new publish status, enforcing the
// legal transition set. Scheduling goes through the publishing queue instead.
func (service *Service) SetPublishStatus(context context.Context, comicID int, status PublishStatus) error {
	current, err := service.repo.GetComic(context, comicID)
	if err != nil {
		return err
	}

	if !CanTransition(current.PublishStatus, status) {
		return apperr.Conflict("Cannot move comic from " + string(current.PublishStatus) + " to " + string(status))
	}

	if err := service.repo.SetPublishStatus(context, comicID, status); err != nil {
		return err
	}

	service.logger.Info("comic_publish_status_changed",
		slog.Int("comic_id", comicID),
		slog.String("from", string(current.PublishStatus)),
		slog.String("to", string(status)),
	)
	return nil
}

// SetErrorText attaches (or clears, when nil) a moderation error flag on a comic.
func (service *Service) SetErrorText(context context.Context, comicID int, errorText *string) error {
	if err := service.repo.SetErrorText(context, comicID, errorText); err != nil {
		return err
	}

	service.logger.Info("comic_error_text_set", slog.Int("comic_id", comicID))
	return nil
}
