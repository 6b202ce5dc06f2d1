// Package points implements the contribution points ledger.
//
// Every processed contribution credits its user in two buckets: the current
// "YYYY-MM" month and the cumulative "all-time" row. Each category maps to a
// dedicated counter column on the contributionpoints table; the category set
// is closed, so column names are never derived from user input.
package points

import (
	"time"

	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/constants"
	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/database/schema"
)

// Category identifies a contribution points counter.
type Category string

const (
	CategoryTagSuggestion           Category = "tagSuggestion"
	CategoryTagSuggestionRejected   Category = "tagSuggestionRejected"
	CategoryComicProblem            Category = "comicProblem"
	CategoryComicProblemRejected    Category = "comicProblemRejected"
	CategoryComicSuggestionGood     Category = "comicSuggestiongood"
	CategoryComicSuggestionBad      Category = "comicSuggestionbad"
	CategoryComicSuggestionRejected Category = "comicSuggestionRejected"
	CategoryComicUploadExcellent    Category = "comicUploadexcellent"
	CategoryComicUploadMinorIssues  Category = "comicUploadminor-issues"
	CategoryComicUploadMajorIssues  Category = "comicUploadmajor-issues"
	CategoryComicUploadPageIssues   Category = "comicUploadpage-issues"
	CategoryComicUploadTerrible     Category = "comicUploadterrible"
	CategoryComicUploadRejected     Category = "comicUploadRejected"
)

// categoryColumns is the closed mapping from category to its schema column.
var categoryColumns = map[Category]string{
	CategoryTagSuggestion:           schema.ContributionPoints.TagSuggestion,
	CategoryTagSuggestionRejected:   schema.ContributionPoints.TagSuggestionRejected,
	CategoryComicProblem:            schema.ContributionPoints.ComicProblem,
	CategoryComicProblemRejected:    schema.ContributionPoints.ComicProblemRejected,
	CategoryComicSuggestionGood:     schema.ContributionPoints.ComicSuggestionGood,
	CategoryComicSuggestionBad:      schema.ContributionPoints.ComicSuggestionBad,
	CategoryComicSuggestionRejected: schema.ContributionPoints.ComicSuggestionRejected,
	CategoryComicUploadExcellent:    schema.ContributionPoints.ComicUploadExcellent,
	CategoryComicUploadMinorIssues:  schema.ContributionPoints.ComicUploadMinorIssues,
	CategoryComicUploadMajorIssues:  schema.ContributionPoints.ComicUploadMajorIssues,
	CategoryComicUploadPageIssues:   schema.ContributionPoints.ComicUploadPageIssues,
	CategoryComicUploadTerrible:     schema.ContributionPoints.ComicUploadTerrible,
	CategoryComicUploadRejected:     schema.ContributionPoints.ComicUploadRejected,
}

// Valid reports whether the category is part of the closed set.
func (c Category) Valid() bool {
	_, ok := categoryColumns[c]
	return ok
}

// Column returns the contributionpoints counter column for the category.
// It returns an empty string for unknown categories.
func (c Category) Column() string {
	return categoryColumns[c]
}

// CategoryForUploadVerdict resolves the points category credited for a
// processed comic upload with the given quality verdict.
func CategoryForUploadVerdict(verdict string) (Category, bool) {
	category := Category("comicUpload" + verdict)
	if !category.Valid() {
		return "", false
	}
	return category, true
}

// CurrentYearMonth returns the "YYYY-MM" bucket key for the current month.
func CurrentYearMonth() string {
	return time.Now().UTC().Format(constants.YearMonthLayout)
}

// UserPoints is a scoreboard row: one user's totals within a single bucket.
type UserPoints struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Points   int    `json:"points"`
}
