package model

// Director represents a film director.  It corresponds to a row in
// the `directors` table.  Movies reference directors by id; the
// director itself carries no back-collection.
type Director struct {
	ID   uint64 // directors.id
	Name string // directors.name
}
