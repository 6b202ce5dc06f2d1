package queue

import (
	"context"
	"log/slog"
	"time"

	"github.com/ragnarob/yiffer.xyz-contributions/internal/core/comic"
	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/apperr"
	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/constants"
)

type Service struct {
	repo   Repository
	logger *slog.Logger

	// recalcJobs feeds the background worker started by Run. Sends never
	// block: a full channel means a recalculation is already pending, and
	// one run covers any number of requests.
	recalcJobs chan struct{}
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		logger:     logger,
		recalcJobs: make(chan struct{}, constants.RecalcQueueDepth),
	}
}

// List returns the current publishing queue.
func (service *Service) List(context context.Context) ([]Entry, error) {
	return service.repo.ListQueue(context)
}

// Move shifts a comic one step up or down by swapping positions with its
// neighbor. The displaced comic moves first. Positions at the edges are left
// to the caller: moving the front comic up swaps with nothing and renumbering
// restores density.
func (service *Service) Move(context context.Context, comicID int, direction Direction) error {
	if direction != DirectionUp && direction != DirectionDown {
		return apperr.ValidationError("Direction must be up or down")
	}

	position, err := service.repo.GetPosition(context, comicID)
	if err != nil {
		return err
	}
	if position == nil {
		return apperr.NotFound("Queue position")
	}

	target := *position + 1
	if direction == DirectionUp {
		target = *position - 1
	}

	if err := service.repo.Swap(context, comicID, *position, target); err != nil {
		return err
	}

	service.logger.InfoContext(context, "queue move",
		"comic_id", comicID,
		"from", *position,
		"to", target,
	)
	return nil
}

// Recalculate renumbers the queue densely and writes back only the changed
// rows. Safe to run at any time, any number of times.
func (service *Service) Recalculate(context context.Context) error {
	entries, err := service.repo.ListQueue(context)
	if err != nil {
		return err
	}

	changes := Renumber(entries)
	if len(changes) == 0 {
		return nil
	}

	if err := service.repo.ApplyPositions(context, changes); err != nil {
		return err
	}

	service.logger.InfoContext(context, "queue recalculated",
		"entries", len(entries),
		"changed", len(changes),
	)
	return nil
}

// Schedule moves a pending comic into the publishing queue, or straight to a
// concrete publish date. Dated comics hold no queue slot. A recalculation is
// dispatched to assign the new comic its position.
func (service *Service) Schedule(context context.Context, comicID, modID int, publishDate *time.Time) error {
	current, err := service.repo.GetComicStatus(context, comicID)
	if err != nil {
		return err
	}
	if !comic.CanTransition(current, comic.StatusScheduled) {
		return apperr.Conflict("Comic cannot be scheduled from its current status")
	}

	if err := service.repo.SetScheduled(context, comicID, modID, publishDate); err != nil {
		return err
	}
	service.DispatchRecalc()
	return nil
}

// Unschedule pulls a comic back to pending and clears its schedule state.
func (service *Service) Unschedule(context context.Context, comicID int) error {
	current, err := service.repo.GetComicStatus(context, comicID)
	if err != nil {
		return err
	}
	if !comic.CanTransition(current, comic.StatusPending) {
		return apperr.Conflict("Comic is not scheduled")
	}

	if err := service.repo.ClearScheduled(context, comicID); err != nil {
		return err
	}
	service.DispatchRecalc()
	return nil
}

// DispatchRecalc requests a background recalculation. It never blocks; when
// the channel is full a run is already queued and will pick up this change.
func (service *Service) DispatchRecalc() {
	select {
	case service.recalcJobs <- struct{}{}:
	default:
	}
}

// Run drains recalculation requests until ctx is cancelled. Each run gets its
// own timeout so a stuck database cannot wedge the worker. Failures are
// logged, never fatal: the next dispatch retries from scratch.
func (service *Service) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-service.recalcJobs:
			runCtx, cancel := context.WithTimeout(ctx, constants.RecalcTimeout)
			if err := service.Recalculate(runCtx); err != nil {
				service.logger.Error("background queue recalculation failed", "error", err)
			}
			cancel()
		}
	}
}
