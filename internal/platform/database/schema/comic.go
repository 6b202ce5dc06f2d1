// Package schema defines table and column name references for every table in
// the contributions database. Store implementations build their SQL from these
// structs so that identifiers never come from user input.
package schema

// ComicTable represents the 'comic' table
type ComicTable struct {
	Table          string
	ID             string
	Name           string
	Classification string
	Category       string
	State          string
	NumberOfPages  string
	ArtistID       string
	PublishStatus  string
	Created        string
	Updated        string
}

// Comic is the schema definition for comic
var Comic = ComicTable{
	Table:          "comic",
	ID:             "id",
	Name:           "name",
	Classification: "classification",
	Category:       "category",
	State:          "state",
	NumberOfPages:  "numberofpages",
	ArtistID:       "artistid",
	PublishStatus:  "publishstatus",
	Created:        "created",
	Updated:        "updated",
}
