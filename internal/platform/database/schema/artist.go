package schema

// ArtistTable represents the 'artist' table
type ArtistTable struct {
	Table       string
	ID          string
	Name        string
	E621Name    string
	PatreonName string
	IsPending   string
}

// Artist is the schema definition for artist
var Artist = ArtistTable{
	Table:       "artist",
	ID:          "id",
	Name:        "name",
	E621Name:    "e621name",
	PatreonName: "patreonname",
	IsPending:   "ispending",
}

// ArtistLinkTable represents the 'artistlink' table
type ArtistLinkTable struct {
	Table    string
	ID       string
	ArtistID string
	LinkURL  string
}

// ArtistLink is the schema definition for artistlink
var ArtistLink = ArtistLinkTable{
	Table:    "artistlink",
	ID:       "id",
	ArtistID: "artistid",
	LinkURL:  "linkurl",
}
