// Package repository contains data access logic separated from HTTP handlers.
// This file defines repository methods for director CRUD.  A Director has
// a single data field (name) and is addressed purely by its id; the id is
// assigned by the database on insert and is never rewritten by Replace.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used to match sentinel values

	"github.com/iliyamo/movie-catalog/internal/model"
)

// DirectorRepo encapsulates all database queries related to directors.  It
// depends on a sql.DB connection which should be configured elsewhere.
type DirectorRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewDirectorRepo constructs a DirectorRepo with the provided DB handle.  This
// function allows dependency injection of the database in tests and at
// startup.
func NewDirectorRepo(db *sql.DB) *DirectorRepo {
	return &DirectorRepo{db: db}
}

// List returns all directors ordered by id.
func (r *DirectorRepo) List(ctx context.Context) ([]*model.Director, error) {
	const q = `SELECT id, name FROM directors ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Director{}
	for rows.Next() {
		d := new(model.Director)
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a director by its ID.  It returns ErrDirectorNotFound
// if no row is found.
func (r *DirectorRepo) GetByID(ctx context.Context, id uint64) (*model.Director, error) {
	const q = `SELECT id, name FROM directors WHERE id = ?`
	var d model.Director
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&d.ID, &d.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDirectorNotFound
		}
		return nil, err
	}
	return &d, nil
}

// Create inserts a new director and returns the stored record with the
// auto-generated id populated.
func (r *DirectorRepo) Create(ctx context.Context, name string) (*model.Director, error) {
	const q = `INSERT INTO directors (name) VALUES (?)`
	res, err := r.db.ExecContext(ctx, q, name)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &model.Director{ID: uint64(id), Name: name}, nil
}

// Replace overwrites all data fields of the director matching id.  The id
// itself is never touched.  It returns ErrDirectorNotFound when no such
// row exists.  Existence is checked with a SELECT rather than
// RowsAffected because MySQL reports zero affected rows for a no-op
// update with unchanged values.
func (r *DirectorRepo) Replace(ctx context.Context, id uint64, name string) (*model.Director, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	const q = `UPDATE directors SET name = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, q, name, id); err != nil {
		return nil, err
	}
	return &model.Director{ID: id, Name: name}, nil
}

// Delete removes the director matching id.  It returns
// ErrDirectorNotFound when no row was deleted.  Deletion does not
// cascade: movies referencing the director keep their dangling
// director_id and resolve a null name on read.
func (r *DirectorRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM directors WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrDirectorNotFound
	}
	return nil
}
