// Copyright (c) 2026 Yiffer.xyz. All rights reserved.
// Author: contact@yiffer.xyz

package moderation

import "context"

// GroupDecision is the stored outcome for one item of a suggestion group
// after the service has reconciled it against the comic's current tags.
type GroupDecision struct {
	ItemID     int
	KeywordID  int
	IsAdding   bool
	IsApproved bool
}

// Repository persists moderation decisions. Multi-row operations are atomic.
type Repository interface {
	GetTagSuggestion(context context.Context, id int) (*TagSuggestion, error)
	ProcessTagSuggestion(context context.Context, suggestion *TagSuggestion, modID int, approved bool) error

	GetTagSuggestionGroup(context context.Context, groupID int) (*TagSuggestionGroup, error)
	GetComicTagIDs(context context.Context, comicID int) ([]int, error)
	ApplyTagSuggestionGroup(context context.Context, group *TagSuggestionGroup, modID int, decisions []GroupDecision) error

	GetComicProblem(context context.Context, id int) (*ComicProblem, error)
	ProcessComicProblem(context context.Context, id, modID int, status Status) error

	GetComicSuggestion(context context.Context, id int) (*ComicSuggestion, error)
	ProcessComicSuggestion(context context.Context, id, modID int, status Status, verdict, modComment *string) error

	GetUploadComic(context context.Context, comicID int) (*UploadComic, error)
	ProcessUpload(context context.Context, comicID, modID int, verdict *string, newStatus string, banName *string) error

	Claim(context context.Context, actionType ActionType, targetID, modID int) (bool, error)
	Release(context context.Context, actionType ActionType, targetID int) error
}
