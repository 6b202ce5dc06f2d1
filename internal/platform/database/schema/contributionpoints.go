package schema

// ContributionPointsTable represents the 'contributionpoints' table.
//
// One integer column exists per contribution category. The column set is
// closed: new categories require a migration adding the matching column.
type ContributionPointsTable struct {
	Table     string
	ID        string
	UserID    string
	YearMonth string

	TagSuggestion           string
	TagSuggestionRejected   string
	ComicProblem            string
	ComicProblemRejected    string
	ComicSuggestionGood     string
	ComicSuggestionBad      string
	ComicSuggestionRejected string
	ComicUploadExcellent    string
	ComicUploadMinorIssues  string
	ComicUploadMajorIssues  string
	ComicUploadPageIssues   string
	ComicUploadTerrible     string
	ComicUploadRejected     string
}

// ContributionPoints is the schema definition for contributionpoints
var ContributionPoints = ContributionPointsTable{
	Table:     "contributionpoints",
	ID:        "id",
	UserID:    "userid",
	YearMonth: "yearmonth",

	TagSuggestion:           "tagsuggestion",
	TagSuggestionRejected:   "tagsuggestionrejected",
	ComicProblem:            "comicproblem",
	ComicProblemRejected:    "comicproblemrejected",
	ComicSuggestionGood:     "comicsuggestiongood",
	ComicSuggestionBad:      "comicsuggestionbad",
	ComicSuggestionRejected: "comicsuggestionrejected",
	ComicUploadExcellent:    "comicuploadexcellent",
	ComicUploadMinorIssues:  "comicuploadminorissues",
	ComicUploadMajorIssues:  "comicuploadmajorissues",
	ComicUploadPageIssues:   "comicuploadpageissues",
	ComicUploadTerrible:     "comicuploadterrible",
	ComicUploadRejected:     "comicuploadrejected",
}

// CategoryColumns returns every per-category counter column, in a stable order.
func (t ContributionPointsTable) CategoryColumns() []string {
	return []string{
		t.TagSuggestion, t.TagSuggestionRejected,
		t.ComicProblem, t.ComicProblemRejected,
		t.ComicSuggestionGood, t.ComicSuggestionBad, t.ComicSuggestionRejected,
		t.ComicUploadExcellent, t.ComicUploadMinorIssues, t.ComicUploadMajorIssues,
		t.ComicUploadPageIssues, t.ComicUploadTerrible, t.ComicUploadRejected,
	}
}
