// Package tag exposes the keyword vocabulary comics are tagged with.
package tag

// Tag is a single keyword.
type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
