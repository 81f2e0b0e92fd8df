// Package repository contains data access logic separated from HTTP handlers.
// This file defines repository methods for reading movies.  Movies are
// read-only in this service: they are seeded externally and exposed only
// through list and lookup operations.  The denormalized genre and director
// names are resolved here with LEFT JOINs so that a dangling or null
// reference produces a nil name rather than an error.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used to match sentinel values

	"github.com/iliyamo/movie-catalog/internal/model"
)

// movieColumns is the shared SELECT list for movie reads.  The joined
// name columns are nullable even when the id columns are set, because
// referential integrity is advisory in this schema.
const movieColumns = `SELECT m.id, m.title, m.description, m.trailer, m.year, m.rating,
       m.genre_id, g.name, m.director_id, d.name
FROM movies m
LEFT JOIN genres g ON g.id = m.genre_id
LEFT JOIN directors d ON d.id = m.director_id`

// MovieRepo encapsulates all database queries related to movies.  It
// depends on a sql.DB connection which should be configured elsewhere.
type MovieRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewMovieRepo constructs a MovieRepo with the provided DB handle.  This
// function allows dependency injection of the database in tests and at
// startup.
func NewMovieRepo(db *sql.DB) *MovieRepo {
	return &MovieRepo{db: db}
}

// List returns movies ordered by id.  Either filter may be nil, meaning
// "no filter"; when both are set they compose with AND.  An empty result
// is returned as an empty slice, not an error.
func (r *MovieRepo) List(ctx context.Context, directorID, genreID *uint64) ([]*model.Movie, error) {
	q := movieColumns
	args := []any{}
	switch {
	case directorID != nil && genreID != nil:
		q += "\nWHERE m.director_id = ? AND m.genre_id = ?"
		args = append(args, *directorID, *genreID)
	case directorID != nil:
		q += "\nWHERE m.director_id = ?"
		args = append(args, *directorID)
	case genreID != nil:
		q += "\nWHERE m.genre_id = ?"
		args = append(args, *genreID)
	}
	q += "\nORDER BY m.id"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Movie{}
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a movie by its primary key.  It returns
// ErrMovieNotFound if no row is found.
func (r *MovieRepo) GetByID(ctx context.Context, id uint64) (*model.Movie, error) {
	row := r.db.QueryRowContext(ctx, movieColumns+"\nWHERE m.id = ?", id)
	m, err := scanMovie(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return m, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanMovie reads one joined movie row, converting the nullable columns
// into pointer fields on the model.
func scanMovie(s scanner) (*model.Movie, error) {
	var (
		m            model.Movie
		genreID      sql.NullInt64
		genreName    sql.NullString
		directorID   sql.NullInt64
		directorName sql.NullString
	)
	if err := s.Scan(&m.ID, &m.Title, &m.Description, &m.Trailer, &m.Year, &m.Rating,
		&genreID, &genreName, &directorID, &directorName); err != nil {
		return nil, err
	}
	if genreID.Valid {
		v := uint64(genreID.Int64)
		m.GenreID = &v
	}
	if genreName.Valid {
		v := genreName.String
		m.GenreName = &v
	}
	if directorID.Valid {
		v := uint64(directorID.Int64)
		m.DirectorID = &v
	}
	if directorName.Valid {
		v := directorName.String
		m.DirectorName = &v
	}
	return &m, nil
}
