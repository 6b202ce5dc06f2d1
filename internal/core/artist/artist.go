package artist

// Artist represents the creator of one or more comics.
type Artist struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	E621Name    *string `json:"e621_name"`
	PatreonName *string `json:"patreon_name"`

	// IsPending is true until a moderator approves an artist that arrived
	// through an anonymous or user submission.
	IsPending bool `json:"is_pending"`

	// Links is the artist's set of external URLs, hydrated on reads.
	Links []string `json:"links"`
}

const (
	FieldName        = "name"
	FieldE621Name    = "e621_name"
	FieldPatreonName = "patreon_name"
	FieldLinks       = "links"
)

// DiffLinks computes the link mutations needed to go from the stored set to
// the desired set. Order within each result is the order of the inputs;
// duplicates in the desired set are collapsed.
func DiffLinks(stored, desired []string) (toAdd, toRemove []string) {
	storedSet := make(map[string]bool, len(stored))
	for _, link := range stored {
		storedSet[link] = true
	}

	desiredSet := make(map[string]bool, len(desired))
	for _, link := range desired {
		if link == "" || desiredSet[link] {
			continue
		}
		desiredSet[link] = true
		if !storedSet[link] {
			toAdd = append(toAdd, link)
		}
	}

	for _, link := range stored {
		if !desiredSet[link] {
			toRemove = append(toRemove, link)
		}
	}

	return toAdd, toRemove
}
