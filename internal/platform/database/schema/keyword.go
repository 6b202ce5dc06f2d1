package schema

// KeywordTable represents the 'keyword' table
type KeywordTable struct {
	Table string
	ID    string
	Name  string
}

// Keyword is the schema definition for keyword
var Keyword = KeywordTable{
	Table: "keyword",
	ID:    "id",
	Name:  "keywordname",
}

// ComicKeywordTable represents the 'comickeyword' join table
type ComicKeywordTable struct {
	Table     string
	ComicID   string
	KeywordID string
}

// ComicKeyword is the schema definition for comickeyword
var ComicKeyword = ComicKeywordTable{
	Table:     "comickeyword",
	ComicID:   "comicid",
	KeywordID: "keywordid",
}

// ComicLinkTable represents the 'comiclink' prev/next table
type ComicLinkTable struct {
	Table      string
	FirstComic string
	LastComic  string
}

// ComicLink is the schema definition for comiclink
var ComicLink = ComicLinkTable{
	Table:      "comiclink",
	FirstComic: "firstcomic",
	LastComic:  "lastcomic",
}
