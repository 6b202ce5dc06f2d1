package points

import (
	"context"
	"log/slog"

	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/apperr"
	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/constants"
)

type Service struct {
	repo   Repository
	logger *slog.Logger

	// now is injectable for tests; defaults to CurrentYearMonth.
	now func() string
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    CurrentYearMonth,
	}
}

// Award credits count points in the given category to a user.
//
// Anonymous contributors (nil userID) earn nothing; the call is a no-op.
// Both the current month's bucket and the all-time bucket are incremented,
// creating each row on first use. The two bucket writes are independent
// single attempts with no retry.
func (service *Service) Award(context context.Context, userID *int, category Category, count int) error {
	if userID == nil {
		return nil
	}
	if !category.Valid() {
		return apperr.Unprocessable("Unknown contribution category")
	}
	if count <= 0 {
		return nil
	}

	buckets := []string{constants.AllTimeBucket, service.now()}

	existing, err := service.repo.ExistingBuckets(context, *userID, buckets)
	if err != nil {
		return err
	}

	for _, bucket := range buckets {
		if existing[bucket] {
			err = service.repo.AddToBucket(context, *userID, bucket, category, count)
		} else {
			err = service.repo.InsertBucket(context, *userID, bucket, category, count)
		}
		if err != nil {
			return err
		}
	}

	service.logger.Info("contribution_points_awarded",
		slog.Int("user_id", *userID),
		slog.String("category", string(category)),
		slog.Int("count", count),
	)
	return nil
}

// AwardBestEffort awards points but never fails the caller: ledger errors are
// logged and swallowed. Pipelines whose primary write already committed use
// this so a points hiccup cannot mask an otherwise successful operation.
func (service *Service) AwardBestEffort(context context.Context, userID *int, category Category, count int) {
	if err := service.Award(context, userID, category, count); err != nil {
		userIDValue := 0
		if userID != nil {
			userIDValue = *userID
		}
		service.logger.Error("contribution_points_award_failed",
			slog.Int("user_id", userIDValue),
			slog.String("category", string(category)),
			slog.Any("error", err),
		)
	}
}

// Scoreboard returns the top contributors for a bucket. An empty yearMonth
// selects the all-time standings.
func (service *Service) Scoreboard(context context.Context, yearMonth string, limit int) ([]*UserPoints, error) {
	if yearMonth == "" {
		yearMonth = constants.AllTimeBucket
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return service.repo.Scoreboard(context, yearMonth, limit)
}
