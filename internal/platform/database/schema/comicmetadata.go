package schema

// ComicMetadataTable represents the 'comicmetadata' table
type ComicMetadataTable struct {
	Table               string
	ComicID             string
	UploadUserID        string
	UploadUserIP        string
	UploadID            string
	ErrorText           string
	PublishDate         string
	PublishingQueuePos  string
	ScheduleModID       string
	Verdict             string
	ModID               string
	PendingProblemModID string
	Timestamp           string
}

// ComicMetadata is the schema definition for comicmetadata
var ComicMetadata = ComicMetadataTable{
	Table:               "comicmetadata",
	ComicID:             "comicid",
	UploadUserID:        "uploaduserid",
	UploadUserIP:        "uploaduserip",
	UploadID:            "uploadid",
	ErrorText:           "errortext",
	PublishDate:         "publishdate",
	PublishingQueuePos:  "publishingqueuepos",
	ScheduleModID:       "schedulemodid",
	Verdict:             "verdict",
	ModID:               "modid",
	PendingProblemModID: "pendingproblemmodid",
	Timestamp:           "timestamp",
}
