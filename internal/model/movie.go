package model

// Movie represents a catalog entry for a single film.  It corresponds
// to a row in the `movies` table.  GenreID and DirectorID are weak
// references: they may be null, and they may point at rows that no
// longer exist.  GenreName and DirectorName are denormalized display
// fields resolved by the repository at read time via LEFT JOIN; they
// are nil whenever the reference is null or dangling.
//
// Fields:
//  ID           – primary key identifier.
//  Title        – movie title.
//  Description  – short synopsis.
//  Trailer      – URL of the trailer.
//  Year         – release year.
//  Rating       – numeric rating.
//  GenreID      – optional reference to genres.id.
//  GenreName    – name of the referenced genre, read-time only.
//  DirectorID   – optional reference to directors.id.
//  DirectorName – name of the referenced director, read-time only.
type Movie struct {
	ID           uint64  // movies.id
	Title        string  // movies.title
	Description  string  // movies.description
	Trailer      string  // movies.trailer
	Year         int     // movies.year
	Rating       float64 // movies.rating
	GenreID      *uint64 // movies.genre_id (nullable)
	GenreName    *string // genres.name, joined at read time
	DirectorID   *uint64 // movies.director_id (nullable)
	DirectorName *string // directors.name, joined at read time
}
