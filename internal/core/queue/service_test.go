package queue_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragnarob/yiffer.xyz-contributions/internal/core/comic"
	"github.com/ragnarob/yiffer.xyz-contributions/internal/core/queue"
	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/apperr"
)

type fakeRepo struct {
	mu sync.Mutex

	status   comic.PublishStatus
	position *int
	entries  []queue.Entry

	swapFrom, swapTo int
	swapCalls        int
	applied          []queue.Change
	applyCalls       int
	scheduled        bool
	scheduledDate    *time.Time
	cleared          bool
}

func (f *fakeRepo) GetComicStatus(_ context.Context, _ int) (comic.PublishStatus, error) {
	return f.status, nil
}

func (f *fakeRepo) GetPosition(_ context.Context, _ int) (*int, error) {
	return f.position, nil
}

func (f *fakeRepo) Swap(_ context.Context, _, fromPos, toPos int) error {
	f.swapCalls++
	f.swapFrom = fromPos
	f.swapTo = toPos
	return nil
}

func (f *fakeRepo) ListQueue(_ context.Context) ([]queue.Entry, error) {
	return f.entries, nil
}

func (f *fakeRepo) ApplyPositions(_ context.Context, changes []queue.Change) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.applyCalls++
	f.applied = changes
	return nil
}

func (f *fakeRepo) applyCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.applyCalls
}

func (f *fakeRepo) SetScheduled(_ context.Context, _, _ int, publishDate *time.Time) error {
	f.scheduled = true
	f.scheduledDate = publishDate
	return nil
}

func (f *fakeRepo) ClearScheduled(_ context.Context, _ int) error {
	f.cleared = true
	return nil
}

func newService(repo *fakeRepo) *queue.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return queue.NewService(repo, logger)
}

func TestMove(t *testing.T) {
	t.Run("up_swaps_with_previous_slot", func(t *testing.T) {
		repo := &fakeRepo{position: pos(3)}
		err := newService(repo).Move(context.Background(), 7, queue.DirectionUp)
		require.NoError(t, err)
		assert.Equal(t, 3, repo.swapFrom)
		assert.Equal(t, 2, repo.swapTo)
	})

	t.Run("down_swaps_with_next_slot", func(t *testing.T) {
		repo := &fakeRepo{position: pos(3)}
		err := newService(repo).Move(context.Background(), 7, queue.DirectionDown)
		require.NoError(t, err)
		assert.Equal(t, 3, repo.swapFrom)
		assert.Equal(t, 4, repo.swapTo)
	})

	t.Run("unpositioned_comic_is_not_found", func(t *testing.T) {
		repo := &fakeRepo{position: nil}
		err := newService(repo).Move(context.Background(), 7, queue.DirectionUp)
		require.Error(t, err)
		assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
		assert.Zero(t, repo.swapCalls)
	})

	t.Run("invalid_direction", func(t *testing.T) {
		repo := &fakeRepo{position: pos(3)}
		err := newService(repo).Move(context.Background(), 7, "sideways")
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})
}

func TestRecalculate(t *testing.T) {
	t.Run("writes_only_changed_rows", func(t *testing.T) {
		repo := &fakeRepo{entries: []queue.Entry{
			{ComicID: 1, Position: pos(1)},
			{ComicID: 2, Position: pos(5)},
		}}
		err := newService(repo).Recalculate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []queue.Change{{ComicID: 2, Position: 2}}, repo.applied)
	})

	t.Run("dense_queue_writes_nothing", func(t *testing.T) {
		repo := &fakeRepo{entries: []queue.Entry{
			{ComicID: 1, Position: pos(1)},
			{ComicID: 2, Position: pos(2)},
		}}
		err := newService(repo).Recalculate(context.Background())
		require.NoError(t, err)
		assert.Zero(t, repo.applyCalls)
	})
}

func TestSchedule(t *testing.T) {
	t.Run("pending_comic_is_scheduled", func(t *testing.T) {
		repo := &fakeRepo{status: comic.StatusPending}
		err := newService(repo).Schedule(context.Background(), 7, 99, nil)
		require.NoError(t, err)
		assert.True(t, repo.scheduled)
		assert.Nil(t, repo.scheduledDate)
	})

	t.Run("with_publish_date", func(t *testing.T) {
		repo := &fakeRepo{status: comic.StatusPending}
		date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
		err := newService(repo).Schedule(context.Background(), 7, 99, &date)
		require.NoError(t, err)
		require.NotNil(t, repo.scheduledDate)
		assert.Equal(t, date, *repo.scheduledDate)
	})

	t.Run("uploaded_comic_cannot_be_scheduled", func(t *testing.T) {
		repo := &fakeRepo{status: comic.StatusUploaded}
		err := newService(repo).Schedule(context.Background(), 7, 99, nil)
		require.Error(t, err)
		assert.Equal(t, "CONFLICT", apperr.As(err).Code)
		assert.False(t, repo.scheduled)
	})
}

func TestUnschedule(t *testing.T) {
	t.Run("scheduled_comic_returns_to_pending", func(t *testing.T) {
		repo := &fakeRepo{status: comic.StatusScheduled}
		err := newService(repo).Unschedule(context.Background(), 7)
		require.NoError(t, err)
		assert.True(t, repo.cleared)
	})

	t.Run("pending_comic_is_a_conflict", func(t *testing.T) {
		repo := &fakeRepo{status: comic.StatusPending}
		err := newService(repo).Unschedule(context.Background(), 7)
		require.Error(t, err)
		assert.Equal(t, "CONFLICT", apperr.As(err).Code)
	})
}

func TestRun_DrainsDispatchedJobs(t *testing.T) {
	repo := &fakeRepo{entries: []queue.Entry{
		{ComicID: 4, Position: nil},
	}}
	service := newService(repo)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		service.Run(ctx)
		close(done)
	}()

	service.DispatchRecalc()

	assert.Eventually(t, func() bool {
		return repo.applyCount() > 0
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done
}
