// Copyright (c) 2026 Yiffer.xyz. All rights reserved.
// Author: contact@yiffer.xyz

package moderation

import (
	"context"
	"log/slog"

	"github.com/ragnarob/yiffer.xyz-contributions/internal/core/comic"
	"github.com/ragnarob/yiffer.xyz-contributions/internal/core/points"
	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/apperr"
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

// ProcessTagSuggestion decides a single tag suggestion. Approval applies the
// tag mutation and the status write together; the suggester's points are
// credited afterwards, best-effort.
func (service *Service) ProcessTagSuggestion(context context.Context, suggestionID, modID int, approved bool) error {
	suggestion, err := service.repo.GetTagSuggestion(context, suggestionID)
	if err != nil {
		return err
	}
	if suggestion.Status != StatusPending {
		return apperr.Conflict("Tag suggestion is already processed")
	}

	if err := service.repo.ProcessTagSuggestion(context, suggestion, modID, approved); err != nil {
		return err
	}

	category := points.CategoryTagSuggestion
	if !approved {
		category = points.CategoryTagSuggestionRejected
	}
	service.points.AwardBestEffort(context, suggestion.UserID, category, 1)

	return nil
}

// ProcessTagSuggestionGroup decides every item of a grouped suggestion in one
// pass. Items whose outcome is already true on the comic (adding a present
// tag, removing an absent one) are recorded as not approved regardless of the
// moderator's decision, so replays and racing groups stay consistent.
// The group itself can only be processed once.
func (service *Service) ProcessTagSuggestionGroup(context context.Context, groupID, modID int, approvals map[int]bool) error {
	group, err := service.repo.GetTagSuggestionGroup(context, groupID)
	if err != nil {
		return err
	}
	if group.IsProcessed {
		return apperr.Conflict("Tag suggestion group is already processed")
	}

	currentTagIDs, err := service.repo.GetComicTagIDs(context, group.ComicID)
	if err != nil {
		return err
	}
	currentTags := make(map[int]bool, len(currentTagIDs))
	for _, id := range currentTagIDs {
		currentTags[id] = true
	}

	decisions := make([]GroupDecision, 0, len(group.Items))
	approvedCount := 0
	for _, item := range group.Items {
		approved := approvals[item.ID]
		if approved && item.IsAdding == currentTags[item.KeywordID] {
			approved = false
		}
		if approved {
			approvedCount++
		}
		decisions = append(decisions, GroupDecision{
			ItemID:     item.ID,
			KeywordID:  item.KeywordID,
			IsAdding:   item.IsAdding,
			IsApproved: approved,
		})
	}

	if err := service.repo.ApplyTagSuggestionGroup(context, group, modID, decisions); err != nil {
		return err
	}

	service.logger.InfoContext(context, "tag suggestion group processed",
		"group_id", groupID,
		"approved", approvedCount,
		"total", len(group.Items),
	)

	if approvedCount > 0 {
		service.points.AwardBestEffort(context, group.UserID, points.CategoryTagSuggestion, approvedCount)
	} else {
		service.points.AwardBestEffort(context, group.UserID, points.CategoryTagSuggestionRejected, 1)
	}

	return nil
}

// ProcessComicProblem decides a reported comic problem.
func (service *Service) ProcessComicProblem(context context.Context, problemID, modID int, approved bool) error {
	problem, err := service.repo.GetComicProblem(context, problemID)
	if err != nil {
		return err
	}
	if problem.Status != StatusPending {
		return apperr.Conflict("Comic problem is already processed")
	}

	status := StatusApproved
	category := points.CategoryComicProblem
	if !approved {
		status = StatusRejected
		category = points.CategoryComicProblemRejected
	}

	if err := service.repo.ProcessComicProblem(context, problemID, modID, status); err != nil {
		return err
	}
	service.points.AwardBestEffort(context, problem.UserID, category, 1)

	return nil
}

// ProcessComicSuggestion decides a comic suggestion. An approved suggestion
// carries a good/bad verdict which picks the points category; a rejection may
// carry a mod comment shown to the suggester.
func (service *Service) ProcessComicSuggestion(context context.Context, suggestionID, modID int, approved bool, verdict, modComment *string) error {
	suggestion, err := service.repo.GetComicSuggestion(context, suggestionID)
	if err != nil {
		return err
	}
	if suggestion.Status != StatusPending {
		return apperr.Conflict("Comic suggestion is already processed")
	}

	status := StatusRejected
	var category points.Category

	if approved {
		if verdict == nil {
			return apperr.ValidationError("An approved suggestion needs a verdict")
		}
		switch *verdict {
		case SuggestionVerdictGood:
			category = points.CategoryComicSuggestionGood
		case SuggestionVerdictBad:
			category = points.CategoryComicSuggestionBad
		default:
			return apperr.ValidationError("Verdict must be good or bad")
		}
		status = StatusApproved
	} else {
		category = points.CategoryComicSuggestionRejected
		verdict = nil
	}

	if err := service.repo.ProcessComicSuggestion(context, suggestionID, modID, status, verdict, modComment); err != nil {
		return err
	}
	service.points.AwardBestEffort(context, suggestion.UserID, category, 1)

	return nil
}

// ProcessUpload gives a verdict on a community-uploaded comic. A quality
// verdict moves it to pending; rejected turns it down; rejected-list also
// records the comic's name in the ban list consulted by future submissions.
func (service *Service) ProcessUpload(context context.Context, comicID, modID int, verdict string) error {
	upload, err := service.repo.GetUploadComic(context, comicID)
	if err != nil {
		return err
	}
	if upload.Status != string(comic.StatusUploaded) {
		return apperr.Conflict("Comic upload is already processed")
	}

	var newStatus string
	var banName *string
	var storedVerdict *string
	var category points.Category

	switch verdict {
	case string(comic.StatusRejected):
		newStatus = string(comic.StatusRejected)
		category = points.CategoryComicUploadRejected
	case string(comic.StatusRejectedList):
		newStatus = string(comic.StatusRejectedList)
		banName = &upload.Name
		category = points.CategoryComicUploadRejected
	default:
		uploadCategory, ok := points.CategoryForUploadVerdict(verdict)
		if !ok {
			return apperr.ValidationError("Invalid upload verdict")
		}
		newStatus = string(comic.StatusPending)
		storedVerdict = pointer.To(verdict)
		category = uploadCategory
	}

	if err := service.repo.ProcessUpload(context, comicID, modID, storedVerdict, newStatus, banName); err != nil {
		return err
	}

	service.logger.InfoContext(context, "upload processed",
		"comic_id", comicID,
		"verdict", verdict,
		"new_status", newStatus,
	)
	service.points.AwardBestEffort(context, upload.UploadUserID, category, 1)

	return nil
}

// Assign claims an item for a moderator. The claim is conditional: it only
// succeeds while no other moderator holds the item, and losing the race is a
// conflict rather than a silent overwrite.
func (service *Service) Assign(context context.Context, actionType ActionType, targetID, modID int) error {
	if !actionType.Valid() {
		return apperr.ValidationError("Invalid action type")
	}

	claimed, err := service.repo.Claim(context, actionType, targetID, modID)
	if err != nil {
		return err
	}
	if !claimed {
		return apperr.Conflict("Item is already assigned to a moderator")
	}
	return nil
}

// Unassign releases an item so any moderator can claim it again.
func (service *Service) Unassign(context context.Context, actionType ActionType, targetID int) error {
	if !actionType.Valid() {
		return apperr.ValidationError("Invalid action type")
	}
	return service.repo.Release(context, actionType, targetID)
}
