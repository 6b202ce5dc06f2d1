// Copyright (c) 2026 Yiffer.xyz. All rights reserved.
// Author: contact@yiffer.xyz

// Package moderation processes community contributions: tag suggestions
// (single and grouped), comic problems, comic suggestions, and upload
// verdicts. It also implements the mod assignment protocol that lets a
// moderator claim an item before working on it.
package moderation

import "github.com/ragnarob/yiffer.xyz-contributions/internal/platform/database/schema"

// Status is the lifecycle state of a processable contribution.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// ActionType identifies which kind of item a mod assignment targets.
type ActionType string

const (
	ActionComicUpload         ActionType = "comicUpload"
	ActionComicSuggestion     ActionType = "comicSuggestion"
	ActionComicProblem        ActionType = "comicProblem"
	ActionPendingComicProblem ActionType = "pendingComicProblem"
	ActionTagSuggestion       ActionType = "tagSuggestion"
)

// actionTarget names the table and columns an assignment writes to.
// Identifiers come exclusively from the schema package; the action type is
// only ever a key into this closed map.
type actionTarget struct {
	table       string
	idColumn    string
	modIDColumn string
}

var assignTargets = map[ActionType]actionTarget{
	ActionComicUpload: {
		table:       schema.ComicMetadata.Table,
		idColumn:    schema.ComicMetadata.ComicID,
		modIDColumn: schema.ComicMetadata.ModID,
	},
	ActionComicSuggestion: {
		table:       schema.ComicSuggestion.Table,
		idColumn:    schema.ComicSuggestion.ID,
		modIDColumn: schema.ComicSuggestion.ModID,
	},
	ActionComicProblem: {
		table:       schema.ComicProblem.Table,
		idColumn:    schema.ComicProblem.ID,
		modIDColumn: schema.ComicProblem.ModID,
	},
	ActionPendingComicProblem: {
		table:       schema.ComicMetadata.Table,
		idColumn:    schema.ComicMetadata.ComicID,
		modIDColumn: schema.ComicMetadata.PendingProblemModID,
	},
	ActionTagSuggestion: {
		table:       schema.KeywordSuggestion.Table,
		idColumn:    schema.KeywordSuggestion.ID,
		modIDColumn: schema.KeywordSuggestion.ModID,
	},
}

// Valid reports whether the action type maps to an assignment target.
func (a ActionType) Valid() bool {
	_, ok := assignTargets[a]
	return ok
}

// TagSuggestion is a single add/remove-tag proposal on a comic.
type TagSuggestion struct {
	ID        int     `json:"id"`
	ComicID   int     `json:"comic_id"`
	KeywordID int     `json:"keyword_id"`
	IsAdding  bool    `json:"is_adding"`
	Status    Status  `json:"status"`
	UserID    *int    `json:"user_id"`
	UserIP    *string `json:"user_ip"`
	ModID     *int    `json:"mod_id"`
}

// TagSuggestionGroup is a batch of tag proposals submitted together. Items
// are decided individually but the group is processed exactly once.
type TagSuggestionGroup struct {
	ID          int                 `json:"id"`
	ComicID     int                 `json:"comic_id"`
	UserID      *int                `json:"user_id"`
	UserIP      *string             `json:"user_ip"`
	IsProcessed bool                `json:"is_processed"`
	ModID       *int                `json:"mod_id"`
	Items       []TagSuggestionItem `json:"items"`
}

// TagSuggestionItem is one proposal inside a group. IsApproved stays nil
// until the group is processed.
type TagSuggestionItem struct {
	ID         int   `json:"id"`
	KeywordID  int   `json:"keyword_id"`
	IsAdding   bool  `json:"is_adding"`
	IsApproved *bool `json:"is_approved"`
}

// ComicProblem is a user-reported issue with a live comic.
type ComicProblem struct {
	ID          int     `json:"id"`
	ComicID     int     `json:"comic_id"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Status      Status  `json:"status"`
	UserID      *int    `json:"user_id"`
	UserIP      *string `json:"user_ip"`
	ModID       *int    `json:"mod_id"`
}

// ComicSuggestion is a request that a comic be added to the site.
type ComicSuggestion struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Status      Status  `json:"status"`
	Verdict     *string `json:"verdict"`
	ModComment  *string `json:"mod_comment"`
	UserID      *int    `json:"user_id"`
	UserIP      *string `json:"user_ip"`
	ModID       *int    `json:"mod_id"`
}

// Suggestion verdicts for an approved comic suggestion.
const (
	SuggestionVerdictGood = "good"
	SuggestionVerdictBad  = "bad"
)

// UploadComic is the slice of a submitted comic the upload-verdict flow needs.
type UploadComic struct {
	ComicID      int
	Name         string
	Status       string
	UploadUserID *int
}
