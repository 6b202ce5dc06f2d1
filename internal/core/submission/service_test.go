package submission_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragnarob/yiffer.xyz-contributions/internal/core/comic"
	"github.com/ragnarob/yiffer.xyz-contributions/internal/core/points"
	"github.com/ragnarob/yiffer.xyz-contributions/internal/core/submission"
	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/apperr"
)

type fakeRepo struct {
	bannedNames map[string]bool

	createdStatus  comic.PublishStatus
	createdVerdict *comic.Verdict
	createCalls    int
}

func (f *fakeRepo) IsNameBanned(_ context.Context, normalizedName string) (bool, error) {
	return f.bannedNames[normalizedName], nil
}

func (f *fakeRepo) CreateSubmission(_ context.Context, input *submission.Input, status comic.PublishStatus, verdict *comic.Verdict) (*submission.Result, error) {
	f.createCalls++
	f.createdStatus = status
	f.createdVerdict = verdict
	artistID := 7
	if input.ArtistID != nil {
		artistID = *input.ArtistID
	}
	return &submission.Result{ComicID: 42, ArtistID: artistID, Approved: status == comic.StatusPending}, nil
}

type fakeAwarder struct {
	userID   *int
	category points.Category
	count    int
	calls    int
}

func (f *fakeAwarder) AwardBestEffort(_ context.Context, userID *int, category points.Category, count int) {
	f.calls++
	f.userID = userID
	f.category = category
	f.count = count
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validInput() *submission.Input {
	artistID := 3
	return &submission.Input{
		Name:           "Wild Nights",
		Classification: comic.ClassificationFurry,
		Category:       comic.CategoryMF,
		State:          comic.StateFinished,
		NumberOfPages:  12,
		ArtistID:       &artistID,
	}
}

func TestSubmit_AnonymousGoesToUploaded(t *testing.T) {
	repo := &fakeRepo{}
	awarder := &fakeAwarder{}
	service := submission.NewService(repo, awarder, testLogger())

	input := validInput()
	ip := "10.0.0.1"
	input.UploaderIP = &ip

	result, err := service.Submit(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, 42, result.ComicID)
	assert.False(t, result.Approved)
	assert.Equal(t, comic.StatusUploaded, repo.createdStatus)
	assert.Nil(t, repo.createdVerdict)
	assert.Zero(t, awarder.calls, "no points before a verdict exists")
}

func TestSubmit_SkipApprovalGoesToPendingWithPoints(t *testing.T) {
	repo := &fakeRepo{}
	awarder := &fakeAwarder{}
	service := submission.NewService(repo, awarder, testLogger())

	input := validInput()
	userID := 9
	input.UploaderUserID = &userID
	input.SkipApproval = true

	result, err := service.Submit(context.Background(), input)
	require.NoError(t, err)

	assert.True(t, result.Approved)
	assert.Equal(t, comic.StatusPending, repo.createdStatus)
	require.NotNil(t, repo.createdVerdict)
	assert.Equal(t, comic.VerdictExcellent, *repo.createdVerdict)

	assert.Equal(t, 1, awarder.calls)
	assert.Equal(t, points.CategoryComicUploadExcellent, awarder.category)
	require.NotNil(t, awarder.userID)
	assert.Equal(t, 9, *awarder.userID)
}

func TestSubmit_BannedNameRejected(t *testing.T) {
	repo := &fakeRepo{bannedNames: map[string]bool{"wildnights": true}}
	service := submission.NewService(repo, &fakeAwarder{}, testLogger())

	input := validInput()
	input.Name = "Wild Nights"

	_, err := service.Submit(context.Background(), input)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	assert.Zero(t, repo.createCalls)
}

func TestSubmit_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*submission.Input)
	}{
		{"short_name", func(in *submission.Input) { in.Name = "x" }},
		{"illegal_char_slash", func(in *submission.Input) { in.Name = "one/two" }},
		{"illegal_char_hash", func(in *submission.Input) { in.Name = "tag #5" }},
		{"illegal_char_question", func(in *submission.Input) { in.Name = "why?" }},
		{"illegal_char_backslash", func(in *submission.Input) { in.Name = `a\b` }},
		{"bad_category", func(in *submission.Input) { in.Category = "XY" }},
		{"bad_state", func(in *submission.Input) { in.State = "paused" }},
		{"no_artist", func(in *submission.Input) { in.ArtistID = nil }},
		{"both_artists", func(in *submission.Input) {
			in.NewArtist = &submission.NewArtist{Name: "someone"}
		}},
		{"zero_pages", func(in *submission.Input) { in.NumberOfPages = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			service := submission.NewService(repo, &fakeAwarder{}, testLogger())

			input := validInput()
			tt.mutate(input)

			_, err := service.Submit(context.Background(), input)
			require.Error(t, err)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			assert.Zero(t, repo.createCalls)
		})
	}
}
