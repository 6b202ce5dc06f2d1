package schema

// BannedComicNameTable represents the 'bannedcomicname' table
type BannedComicNameTable struct {
	Table          string
	ID             string
	Name           string
	NormalizedName string
	Timestamp      string
}

// BannedComicName is the schema definition for bannedcomicname
var BannedComicName = BannedComicNameTable{
	Table:          "bannedcomicname",
	ID:             "id",
	Name:           "name",
	NormalizedName: "normalizedname",
	Timestamp:      "timestamp",
}
