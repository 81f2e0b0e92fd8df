package model

// Genre represents a film genre.  It corresponds to a row in the
// `genres` table.  Movies reference genres by id.
type Genre struct {
	ID   uint64 // genres.id
	Name string // genres.name
}
