// Package comic holds the comic catalogue: the comic entity, its moderation
// metadata, and the publish-status state machine every other component
// transitions through.
package comic

import "time"

// PublishStatus is the moderation/publishing state of a comic.
type PublishStatus string

const (
	// StatusUploaded is a user or anonymous submission awaiting mod review.
	StatusUploaded PublishStatus = "uploaded"
	// StatusPending has passed review and awaits scheduling.
	StatusPending PublishStatus = "pending"
	// StatusScheduled is queued (or dated) for publication.
	StatusScheduled PublishStatus = "scheduled"
	// StatusPublished is live on the site.
	StatusPublished PublishStatus = "published"
	// StatusUnlisted was pulled by an admin.
	StatusUnlisted PublishStatus = "unlisted"
	// StatusRejected was turned down for fixable submission quality reasons.
	StatusRejected PublishStatus = "rejected"
	// StatusRejectedList was turned down for content reasons; its name joins
	// the ban list consulted by future submissions.
	StatusRejectedList PublishStatus = "rejected-list"
)

// transitions is the closed set of legal publish-status moves.
var transitions = map[PublishStatus][]PublishStatus{
	StatusUploaded:  {StatusPending, StatusRejected, StatusRejectedList, StatusUnlisted},
	StatusPending:   {StatusScheduled, StatusUnlisted},
	StatusScheduled: {StatusPublished, StatusPending},
}

// CanTransition reports whether moving from one publish status to another is legal.
func CanTransition(from, to PublishStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Classification is the broad content classification of a comic.
type Classification string

const (
	ClassificationFurry   Classification = "Furry"
	ClassificationPokemon Classification = "Pokemon"
	ClassificationMLP     Classification = "MLP"
	ClassificationOther   Classification = "Other"
)

// Category is the pairing category of a comic.
type Category string

const (
	CategoryM   Category = "M"
	CategoryF   Category = "F"
	CategoryMF  Category = "MF"
	CategoryMM  Category = "MM"
	CategoryFF  Category = "FF"
	CategoryMFp Category = "MF+"
	CategoryI   Category = "I"
)

// State is the completion state of a comic.
type State string

const (
	StateWIP       State = "wip"
	StateFinished  State = "finished"
	StateCancelled State = "cancelled"
)

// Verdict is a moderator's quality rating for a processed upload. It drives
// which contribution points category is credited.
type Verdict string

const (
	VerdictExcellent   Verdict = "excellent"
	VerdictMinorIssues Verdict = "minor-issues"
	VerdictMajorIssues Verdict = "major-issues"
	VerdictPageIssues  Verdict = "page-issues"
	VerdictTerrible    Verdict = "terrible"
)

// Comic is a single comic record.
type Comic struct {
	ID             int            `json:"id"`
	Name           string         `json:"name"`
	Classification Classification `json:"classification"`
	Category       Category       `json:"category"`
	State          State          `json:"state"`
	NumberOfPages  int            `json:"number_of_pages"`
	ArtistID       *int           `json:"artist_id"`
	PublishStatus  PublishStatus  `json:"publish_status"`
	Created        time.Time      `json:"created"`

	// Metadata is hydrated on single-comic reads.
	Metadata *Metadata `json:"metadata,omitempty"`
	// TagIDs is hydrated on single-comic reads.
	TagIDs []int `json:"tag_ids,omitempty"`
}

// Metadata is the 1:1 moderation companion record of a comic.
//
// Exactly one of UploadUserID and UploadUserIP is populated, depending on
// whether the upload was authenticated or anonymous.
type Metadata struct {
	ComicID             int        `json:"comic_id"`
	UploadUserID        *int       `json:"upload_user_id"`
	UploadUserIP        *string    `json:"upload_user_ip"`
	UploadID            *string    `json:"upload_id"`
	ErrorText           *string    `json:"error_text"`
	PublishDate         *time.Time `json:"publish_date"`
	PublishingQueuePos  *int       `json:"publishing_queue_pos"`
	ScheduleModID       *int       `json:"schedule_mod_id"`
	Verdict             *Verdict   `json:"verdict"`
	ModID               *int       `json:"mod_id"`
	PendingProblemModID *int       `json:"pending_problem_mod_id"`
	Timestamp           time.Time  `json:"timestamp"`
}

const (
	FieldName           = "name"
	FieldClassification = "classification"
	FieldCategory       = "category"
	FieldState          = "state"
	FieldErrorText      = "error_text"
)
