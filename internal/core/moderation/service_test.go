// Copyright (c) 2026 Yiffer.xyz. All rights reserved.
// Author: contact@yiffer.xyz

package moderation_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragnarob/yiffer.xyz-contributions/internal/core/moderation"
	"github.com/ragnarob/yiffer.xyz-contributions/internal/core/points"
	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/apperr"
)

type fakeRepo struct {
	tagSuggestion *moderation.TagSuggestion
	group         *moderation.TagSuggestionGroup
	comicTagIDs   []int
	problem       *moderation.ComicProblem
	suggestion    *moderation.ComicSuggestion
	upload        *moderation.UploadComic

	claimed bool

	processedStatus   moderation.Status
	appliedDecisions  []moderation.GroupDecision
	processedVerdict  *string
	processedComment  *string
	uploadedNewStatus string
	uploadedVerdict   *string
	bannedName        *string
	claimCalls        []moderation.ActionType
	releaseCalls      []moderation.ActionType
}

func (f *fakeRepo) GetTagSuggestion(_ context.Context, _ int) (*moderation.TagSuggestion, error) {
	return f.tagSuggestion, nil
}

func (f *fakeRepo) ProcessTagSuggestion(_ context.Context, _ *moderation.TagSuggestion, _ int, approved bool) error {
	f.processedStatus = moderation.StatusApproved
	if !approved {
		f.processedStatus = moderation.StatusRejected
	}
	return nil
}

func (f *fakeRepo) GetTagSuggestionGroup(_ context.Context, _ int) (*moderation.TagSuggestionGroup, error) {
	return f.group, nil
}

func (f *fakeRepo) GetComicTagIDs(_ context.Context, _ int) ([]int, error) {
	return f.comicTagIDs, nil
}

func (f *fakeRepo) ApplyTagSuggestionGroup(_ context.Context, _ *moderation.TagSuggestionGroup, _ int, decisions []moderation.GroupDecision) error {
	f.appliedDecisions = decisions
	return nil
}

func (f *fakeRepo) GetComicProblem(_ context.Context, _ int) (*moderation.ComicProblem, error) {
	return f.problem, nil
}

func (f *fakeRepo) ProcessComicProblem(_ context.Context, _, _ int, status moderation.Status) error {
	f.processedStatus = status
	return nil
}

func (f *fakeRepo) GetComicSuggestion(_ context.Context, _ int) (*moderation.ComicSuggestion, error) {
	return f.suggestion, nil
}

func (f *fakeRepo) ProcessComicSuggestion(_ context.Context, _, _ int, status moderation.Status, verdict, modComment *string) error {
	f.processedStatus = status
	f.processedVerdict = verdict
	f.processedComment = modComment
	return nil
}

func (f *fakeRepo) GetUploadComic(_ context.Context, _ int) (*moderation.UploadComic, error) {
	return f.upload, nil
}

func (f *fakeRepo) ProcessUpload(_ context.Context, _, _ int, verdict *string, newStatus string, banName *string) error {
	f.uploadedVerdict = verdict
	f.uploadedNewStatus = newStatus
	f.bannedName = banName
	return nil
}

func (f *fakeRepo) Claim(_ context.Context, actionType moderation.ActionType, _, _ int) (bool, error) {
	f.claimCalls = append(f.claimCalls, actionType)
	return f.claimed, nil
}

func (f *fakeRepo) Release(_ context.Context, actionType moderation.ActionType, _ int) error {
	f.releaseCalls = append(f.releaseCalls, actionType)
	return nil
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

func newService(repo *fakeRepo, awarder *fakeAwarder) *moderation.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return moderation.NewService(repo, awarder, logger)
}

func intPtr(v int) *int { return &v }

func TestProcessTagSuggestion(t *testing.T) {
	tests := []struct {
		name         string
		approved     bool
		wantCategory points.Category
	}{
		{"approved", true, points.CategoryTagSuggestion},
		{"rejected", false, points.CategoryTagSuggestionRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{tagSuggestion: &moderation.TagSuggestion{
				ID: 1, ComicID: 5, KeywordID: 8, IsAdding: true,
				Status: moderation.StatusPending, UserID: intPtr(3),
			}}
			awarder := &fakeAwarder{}

			err := newService(repo, awarder).ProcessTagSuggestion(context.Background(), 1, 99, tt.approved)
			require.NoError(t, err)

			assert.Equal(t, 1, awarder.calls)
			assert.Equal(t, tt.wantCategory, awarder.category)
			assert.Equal(t, 3, *awarder.userID)
		})
	}
}

func TestProcessTagSuggestion_AlreadyProcessed(t *testing.T) {
	repo := &fakeRepo{tagSuggestion: &moderation.TagSuggestion{
		ID: 1, Status: moderation.StatusApproved,
	}}
	awarder := &fakeAwarder{}

	err := newService(repo, awarder).ProcessTagSuggestion(context.Background(), 1, 99, true)
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)
	assert.Zero(t, awarder.calls)
}

func TestProcessTagSuggestionGroup_FlipsAlreadySatisfiedItems(t *testing.T) {
	// Tag 10 is already on the comic; tag 20 is not. The add-of-10 and
	// remove-of-20 items are no-ops and must be recorded as not approved
	// even though the moderator approved everything.
	repo := &fakeRepo{
		group: &moderation.TagSuggestionGroup{
			ID: 1, ComicID: 5, UserID: intPtr(3),
			Items: []moderation.TagSuggestionItem{
				{ID: 1, KeywordID: 10, IsAdding: true},
				{ID: 2, KeywordID: 20, IsAdding: false},
				{ID: 3, KeywordID: 30, IsAdding: true},
				{ID: 4, KeywordID: 10, IsAdding: false},
			},
		},
		comicTagIDs: []int{10},
	}
	awarder := &fakeAwarder{}

	approvals := map[int]bool{1: true, 2: true, 3: true, 4: true}
	err := newService(repo, awarder).ProcessTagSuggestionGroup(context.Background(), 1, 99, approvals)
	require.NoError(t, err)

	require.Len(t, repo.appliedDecisions, 4)
	assert.False(t, repo.appliedDecisions[0].IsApproved, "adding a present tag")
	assert.False(t, repo.appliedDecisions[1].IsApproved, "removing an absent tag")
	assert.True(t, repo.appliedDecisions[2].IsApproved, "adding a new tag")
	assert.True(t, repo.appliedDecisions[3].IsApproved, "removing a present tag")

	assert.Equal(t, points.CategoryTagSuggestion, awarder.category)
	assert.Equal(t, 2, awarder.count)
}

func TestProcessTagSuggestionGroup_AllRejected(t *testing.T) {
	repo := &fakeRepo{
		group: &moderation.TagSuggestionGroup{
			ID: 1, ComicID: 5, UserID: intPtr(3),
			Items: []moderation.TagSuggestionItem{
				{ID: 1, KeywordID: 10, IsAdding: true},
			},
		},
	}
	awarder := &fakeAwarder{}

	err := newService(repo, awarder).ProcessTagSuggestionGroup(context.Background(), 1, 99, map[int]bool{1: false})
	require.NoError(t, err)

	assert.Equal(t, points.CategoryTagSuggestionRejected, awarder.category)
	assert.Equal(t, 1, awarder.count)
}

func TestProcessTagSuggestionGroup_AlreadyProcessed(t *testing.T) {
	repo := &fakeRepo{group: &moderation.TagSuggestionGroup{ID: 1, IsProcessed: true}}
	awarder := &fakeAwarder{}

	err := newService(repo, awarder).ProcessTagSuggestionGroup(context.Background(), 1, 99, nil)
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)
	assert.Nil(t, repo.appliedDecisions)
}

func TestProcessComicSuggestion(t *testing.T) {
	good := moderation.SuggestionVerdictGood
	bad := moderation.SuggestionVerdictBad

	tests := []struct {
		name         string
		approved     bool
		verdict      *string
		wantErr      bool
		wantCategory points.Category
		wantStatus   moderation.Status
	}{
		{"approved_good", true, &good, false, points.CategoryComicSuggestionGood, moderation.StatusApproved},
		{"approved_bad", true, &bad, false, points.CategoryComicSuggestionBad, moderation.StatusApproved},
		{"approved_without_verdict", true, nil, true, "", ""},
		{"rejected", false, nil, false, points.CategoryComicSuggestionRejected, moderation.StatusRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{suggestion: &moderation.ComicSuggestion{
				ID: 1, Status: moderation.StatusPending, UserID: intPtr(3),
			}}
			awarder := &fakeAwarder{}

			err := newService(repo, awarder).ProcessComicSuggestion(
				context.Background(), 1, 99, tt.approved, tt.verdict, nil)

			if tt.wantErr {
				require.Error(t, err)
				assert.Zero(t, awarder.calls)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, repo.processedStatus)
			assert.Equal(t, tt.wantCategory, awarder.category)
		})
	}
}

func TestProcessUpload(t *testing.T) {
	tests := []struct {
		name         string
		verdict      string
		wantStatus   string
		wantBan      bool
		wantVerdict  bool
		wantCategory points.Category
	}{
		{"excellent", "excellent", "pending", false, true, points.CategoryComicUploadExcellent},
		{"minor_issues", "minor-issues", "pending", false, true, points.CategoryComicUploadMinorIssues},
		{"terrible", "terrible", "pending", false, true, points.CategoryComicUploadTerrible},
		{"rejected", "rejected", "rejected", false, false, points.CategoryComicUploadRejected},
		{"rejected_list", "rejected-list", "rejected-list", true, false, points.CategoryComicUploadRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{upload: &moderation.UploadComic{
				ComicID: 7, Name: "Forbidden Tale", Status: "uploaded", UploadUserID: intPtr(3),
			}}
			awarder := &fakeAwarder{}

			err := newService(repo, awarder).ProcessUpload(context.Background(), 7, 99, tt.verdict)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, repo.uploadedNewStatus)
			if tt.wantBan {
				require.NotNil(t, repo.bannedName)
				assert.Equal(t, "Forbidden Tale", *repo.bannedName)
			} else {
				assert.Nil(t, repo.bannedName)
			}
			if tt.wantVerdict {
				require.NotNil(t, repo.uploadedVerdict)
				assert.Equal(t, tt.verdict, *repo.uploadedVerdict)
			} else {
				assert.Nil(t, repo.uploadedVerdict)
			}
			assert.Equal(t, tt.wantCategory, awarder.category)
		})
	}
}

func TestProcessUpload_InvalidVerdict(t *testing.T) {
	repo := &fakeRepo{upload: &moderation.UploadComic{ComicID: 7, Status: "uploaded"}}

	err := newService(repo, &fakeAwarder{}).ProcessUpload(context.Background(), 7, 99, "amazing")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

func TestProcessUpload_AlreadyProcessed(t *testing.T) {
	repo := &fakeRepo{upload: &moderation.UploadComic{ComicID: 7, Status: "pending"}}

	err := newService(repo, &fakeAwarder{}).ProcessUpload(context.Background(), 7, 99, "excellent")
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)
}

func TestAssign(t *testing.T) {
	t.Run("wins_claim", func(t *testing.T) {
		repo := &fakeRepo{claimed: true}
		err := newService(repo, &fakeAwarder{}).Assign(context.Background(), moderation.ActionComicUpload, 7, 99)
		require.NoError(t, err)
		assert.Equal(t, []moderation.ActionType{moderation.ActionComicUpload}, repo.claimCalls)
	})

	t.Run("loses_claim", func(t *testing.T) {
		repo := &fakeRepo{claimed: false}
		err := newService(repo, &fakeAwarder{}).Assign(context.Background(), moderation.ActionComicProblem, 7, 99)
		require.Error(t, err)
		assert.Equal(t, "CONFLICT", apperr.As(err).Code)
	})

	t.Run("invalid_action_type", func(t *testing.T) {
		repo := &fakeRepo{}
		err := newService(repo, &fakeAwarder{}).Assign(context.Background(), "videoUpload", 7, 99)
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
		assert.Empty(t, repo.claimCalls)
	})
}

func TestUnassign(t *testing.T) {
	repo := &fakeRepo{}
	err := newService(repo, &fakeAwarder{}).Unassign(context.Background(), moderation.ActionTagSuggestion, 7)
	require.NoError(t, err)
	assert.Equal(t, []moderation.ActionType{moderation.ActionTagSuggestion}, repo.releaseCalls)
}
