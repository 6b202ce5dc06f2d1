package points_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragnarob/yiffer.xyz-contributions/internal/core/points"
	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/constants"
)

type bucketWrite struct {
	userID   int
	bucket   string
	category points.Category
	count    int
}

type fakeRepo struct {
	existing map[string]bool
	fail     error

	inserts []bucketWrite
	adds    []bucketWrite
}

func (f *fakeRepo) ExistingBuckets(_ context.Context, userID int, buckets []string) (map[string]bool, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	return f.existing, nil
}

func (f *fakeRepo) InsertBucket(_ context.Context, userID int, bucket string, category points.Category, count int) error {
	f.inserts = append(f.inserts, bucketWrite{userID, bucket, category, count})
	return nil
}

func (f *fakeRepo) AddToBucket(_ context.Context, userID int, bucket string, category points.Category, count int) error {
	f.adds = append(f.adds, bucketWrite{userID, bucket, category, count})
	return nil
}

func (f *fakeRepo) Scoreboard(_ context.Context, yearMonth string, limit int) ([]*points.UserPoints, error) {
	return nil, nil
}

func newService(repo *fakeRepo) *points.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return points.NewService(repo, logger)
}

func intPtr(v int) *int { return &v }

func TestAward_CreatesBothBucketsOnFirstContribution(t *testing.T) {
	repo := &fakeRepo{existing: map[string]bool{}}

	err := newService(repo).Award(context.Background(), intPtr(7), points.CategoryTagSuggestion, 2)
	require.NoError(t, err)

	require.Len(t, repo.inserts, 2)
	assert.Empty(t, repo.adds)
	assert.Equal(t, constants.AllTimeBucket, repo.inserts[0].bucket)
	assert.Equal(t, points.CurrentYearMonth(), repo.inserts[1].bucket)
	for _, write := range repo.inserts {
		assert.Equal(t, 7, write.userID)
		assert.Equal(t, points.CategoryTagSuggestion, write.category)
		assert.Equal(t, 2, write.count)
	}
}

func TestAward_IncrementsExistingBuckets(t *testing.T) {
	repo := &fakeRepo{existing: map[string]bool{
		constants.AllTimeBucket:   true,
		points.CurrentYearMonth(): true,
	}}

	err := newService(repo).Award(context.Background(), intPtr(7), points.CategoryComicProblem, 1)
	require.NoError(t, err)

	assert.Empty(t, repo.inserts)
	assert.Len(t, repo.adds, 2)
}

func TestAward_MixedBuckets(t *testing.T) {
	// All-time row exists from an earlier month; this month's row does not.
	repo := &fakeRepo{existing: map[string]bool{constants.AllTimeBucket: true}}

	err := newService(repo).Award(context.Background(), intPtr(7), points.CategoryComicProblem, 1)
	require.NoError(t, err)

	require.Len(t, repo.adds, 1)
	assert.Equal(t, constants.AllTimeBucket, repo.adds[0].bucket)
	require.Len(t, repo.inserts, 1)
	assert.Equal(t, points.CurrentYearMonth(), repo.inserts[0].bucket)
}

func TestAward_AnonymousIsNoOp(t *testing.T) {
	repo := &fakeRepo{}

	err := newService(repo).Award(context.Background(), nil, points.CategoryTagSuggestion, 1)
	require.NoError(t, err)
	assert.Empty(t, repo.inserts)
	assert.Empty(t, repo.adds)
}

func TestAward_UnknownCategory(t *testing.T) {
	repo := &fakeRepo{}

	err := newService(repo).Award(context.Background(), intPtr(7), "videoUpload", 1)
	require.Error(t, err)
}

func TestAwardBestEffort_SwallowsErrors(t *testing.T) {
	repo := &fakeRepo{fail: errors.New("connection refused")}

	// Must not panic or propagate.
	newService(repo).AwardBestEffort(context.Background(), intPtr(7), points.CategoryTagSuggestion, 1)
	assert.Empty(t, repo.inserts)
}

func TestCategoryForUploadVerdict(t *testing.T) {
	tests := []struct {
		verdict string
		want    points.Category
		ok      bool
	}{
		{"excellent", points.CategoryComicUploadExcellent, true},
		{"minor-issues", points.CategoryComicUploadMinorIssues, true},
		{"major-issues", points.CategoryComicUploadMajorIssues, true},
		{"page-issues", points.CategoryComicUploadPageIssues, true},
		{"terrible", points.CategoryComicUploadTerrible, true},
		{"great", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.verdict, func(t *testing.T) {
			got, ok := points.CategoryForUploadVerdict(tt.verdict)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
