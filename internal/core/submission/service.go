package submission

import (
	"context"
	"log/slog"

	"github.com/ragnarob/yiffer.xyz-contributions/internal/core/comic"
	"github.com/ragnarob/yiffer.xyz-contributions/internal/core/points"
	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/apperr"
	"github.com/ragnarob/yiffer.xyz-contributions/pkg/names"
	"github.com/ragnarob/yiffer.xyz-contributions/pkg/pointer"
)

// PointsAwarder credits contribution points without failing the caller.
type PointsAwarder interface {
	AwardBestEffort(context context.Context, userID *int, category points.Category, count int)
}

type Service struct {
	repo   Repository
	points PointsAwarder
	logger *slog.Logger
}

func NewService(repo Repository, points PointsAwarder, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		points: points,
		logger: logger,
	}
}

// Submit runs the upload pipeline. Validation and the ban-list check happen
// first; all inserts run in a single transaction. A moderator submitting with
// skip-approval gets the comic straight into pending with an excellent
// verdict, and the verdict's points are credited after commit. Points failures
// never fail the submission.
func (service *Service) Submit(context context.Context, input *Input) (*Result, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	banned, err := service.repo.IsNameBanned(context, names.Normalize(input.Name))
	if err != nil {
		return nil, err
	}
	if banned {
		return nil, apperr.ValidationError("This comic name is not allowed")
	}

	status := comic.StatusUploaded
	var verdict *comic.Verdict
	if input.SkipApproval {
		status = comic.StatusPending
		verdict = pointer.To(comic.VerdictExcellent)
	}

	result, err := service.repo.CreateSubmission(context, input, status, verdict)
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "comic submitted",
		"comic_id", result.ComicID,
		"name", input.Name,
		"approved", input.SkipApproval,
	)

	if verdict != nil {
		category, ok := points.CategoryForUploadVerdict(string(*verdict))
		if ok {
			service.points.AwardBestEffort(context, input.UploaderUserID, category, 1)
		}
	}

	return result, nil
}
