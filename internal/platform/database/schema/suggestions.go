package schema

// KeywordSuggestionTable represents the 'keywordsuggestion' table
type KeywordSuggestionTable struct {
	Table     string
	ID        string
	ComicID   string
	KeywordID string
	IsAdding  string
	Status    string
	UserID    string
	UserIP    string
	ModID     string
	Timestamp string
}

// KeywordSuggestion is the schema definition for keywordsuggestion
var KeywordSuggestion = KeywordSuggestionTable{
	Table:     "keywordsuggestion",
	ID:        "id",
	ComicID:   "comicid",
	KeywordID: "keywordid",
	IsAdding:  "isadding",
	Status:    "status",
	UserID:    "userid",
	UserIP:    "userip",
	ModID:     "modid",
	Timestamp: "timestamp",
}

// KeywordSuggestionGroupTable represents the 'keywordsuggestiongroup' table
type KeywordSuggestionGroupTable struct {
	Table       string
	ID          string
	ComicID     string
	UserID      string
	UserIP      string
	IsProcessed string
	ModID       string
	Timestamp   string
}

// KeywordSuggestionGroup is the schema definition for keywordsuggestiongroup
var KeywordSuggestionGroup = KeywordSuggestionGroupTable{
	Table:       "keywordsuggestiongroup",
	ID:          "id",
	ComicID:     "comicid",
	UserID:      "userid",
	UserIP:      "userip",
	IsProcessed: "isprocessed",
	ModID:       "modid",
	Timestamp:   "timestamp",
}

// KeywordSuggestionItemTable represents the 'keywordsuggestionitem' table
type KeywordSuggestionItemTable struct {
	Table      string
	ID         string
	GroupID    string
	KeywordID  string
	IsAdding   string
	IsApproved string
}

// KeywordSuggestionItem is the schema definition for keywordsuggestionitem
var KeywordSuggestionItem = KeywordSuggestionItemTable{
	Table:      "keywordsuggestionitem",
	ID:         "id",
	GroupID:    "groupid",
	KeywordID:  "keywordid",
	IsAdding:   "isadding",
	IsApproved: "isapproved",
}

// ComicSuggestionTable represents the 'comicsuggestion' table
type ComicSuggestionTable struct {
	Table       string
	ID          string
	Name        string
	Description string
	Status      string
	Verdict     string
	ModComment  string
	UserID      string
	UserIP      string
	ModID       string
	Timestamp   string
}

// ComicSuggestion is the schema definition for comicsuggestion
var ComicSuggestion = ComicSuggestionTable{
	Table:       "comicsuggestion",
	ID:          "id",
	Name:        "name",
	Description: "description",
	Status:      "status",
	Verdict:     "verdict",
	ModComment:  "modcomment",
	UserID:      "userid",
	UserIP:      "userip",
	ModID:       "modid",
	Timestamp:   "timestamp",
}

// ComicProblemTable represents the 'comicproblem' table
type ComicProblemTable struct {
	Table       string
	ID          string
	ComicID     string
	Category    string
	Description string
	Status      string
	UserID      string
	UserIP      string
	ModID       string
	Timestamp   string
}

// ComicProblem is the schema definition for comicproblem
var ComicProblem = ComicProblemTable{
	Table:       "comicproblem",
	ID:          "id",
	ComicID:     "comicid",
	Category:    "problemcategory",
	Description: "description",
	Status:      "status",
	UserID:      "userid",
	UserIP:      "userip",
	ModID:       "modid",
	Timestamp:   "timestamp",
}
