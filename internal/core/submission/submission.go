// Package submission implements the community comic-upload pipeline: a
// validated submission becomes an artist (optionally), a comic, its moderation
// metadata, and its tag and prev/next links, created atomically.
package submission

import (
	"github.com/ragnarob/yiffer.xyz-contributions/internal/core/comic"
	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/validate"
)

// IllegalNameChars are characters a comic name can never contain. They break
// URL routing and file paths on the serving side.
const IllegalNameChars = `#/?\`

// NewArtist is an artist created inline with a submission. It starts out
// pending until a moderator approves it.
type NewArtist struct {
	Name        string   `json:"name"`
	E621Name    string   `json:"e621_name"`
	PatreonName string   `json:"patreon_name"`
	Links       []string `json:"links"`
}

// Input is a single comic submission. Exactly one of ArtistID and NewArtist
// must be set, and exactly one of UploaderUserID and UploaderIP.
type Input struct {
	Name           string               `json:"name"`
	Classification comic.Classification `json:"classification"`
	Category       comic.Category       `json:"category"`
	State          comic.State          `json:"state"`
	NumberOfPages  int                  `json:"number_of_pages"`
	ArtistID       *int                 `json:"artist_id"`
	NewArtist      *NewArtist           `json:"new_artist"`
	PreviousComic  *int                 `json:"previous_comic_id"`
	NextComic      *int                 `json:"next_comic_id"`
	TagIDs         []int                `json:"tag_ids"`
	UploadID       string               `json:"upload_id"`

	// Filled in by the handler, never from the request body.
	UploaderUserID *int    `json:"-"`
	UploaderIP     *string `json:"-"`
	SkipApproval   bool    `json:"-"`
}

// Validate checks the submission's own fields. Ban-list and referential checks
// happen in the service.
func (input *Input) Validate() error {
	validator := &validate.Validator{}
	validator.
		Required(comic.FieldName, input.Name).
		MinLen(comic.FieldName, input.Name, 2).
		MaxLen(comic.FieldName, input.Name, 120).
		ForbiddenChars(comic.FieldName, input.Name, IllegalNameChars).
		OneOf(comic.FieldClassification, string(input.Classification),
			string(comic.ClassificationFurry), string(comic.ClassificationPokemon),
			string(comic.ClassificationMLP), string(comic.ClassificationOther)).
		OneOf(comic.FieldCategory, string(input.Category),
			string(comic.CategoryM), string(comic.CategoryF), string(comic.CategoryMF),
			string(comic.CategoryMM), string(comic.CategoryFF), string(comic.CategoryMFp),
			string(comic.CategoryI)).
		OneOf(comic.FieldState, string(input.State),
			string(comic.StateWIP), string(comic.StateFinished), string(comic.StateCancelled)).
		Custom("artist", (input.ArtistID == nil) == (input.NewArtist == nil),
			"Exactly one of artist_id and new_artist must be set").
		Custom("number_of_pages", input.NumberOfPages < 1, "Must be at least 1")

	if input.NewArtist != nil {
		validator.Required("new_artist.name", input.NewArtist.Name)
		for _, link := range input.NewArtist.Links {
			validator.URL("new_artist.links", link)
		}
	}

	return validator.Err()
}

// Result reports what a successful submission created.
type Result struct {
	ComicID  int  `json:"comic_id"`
	ArtistID int  `json:"artist_id"`
	Approved bool `json:"approved"`
}
