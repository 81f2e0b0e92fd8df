// Package repository contains data access logic separated from HTTP handlers.
// This file defines repository methods for genre CRUD.  Genres mirror
// directors exactly: a single name field addressed by a database-assigned id.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/movie-catalog/internal/model"
)

// GenreRepo encapsulates all database queries related to genres.
type GenreRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewGenreRepo constructs a GenreRepo with the provided DB handle.
func NewGenreRepo(db *sql.DB) *GenreRepo {
	return &GenreRepo{db: db}
}

// List returns all genres ordered by id.
func (r *GenreRepo) List(ctx context.Context) ([]*model.Genre, error) {
	const q = `SELECT id, name FROM genres ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Genre{}
	for rows.Next() {
		g := new(model.Genre)
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a genre by its ID.  It returns ErrGenreNotFound if no
// row is found.
func (r *GenreRepo) GetByID(ctx context.Context, id uint64) (*model.Genre, error) {
	const q = `SELECT id, name FROM genres WHERE id = ?`
	var g model.Genre
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&g.ID, &g.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGenreNotFound
		}
		return nil, err
	}
	return &g, nil
}

// Create inserts a new genre and returns the stored record with the
// auto-generated id populated.
func (r *GenreRepo) Create(ctx context.Context, name string) (*model.Genre, error) {
	const q = `INSERT INTO genres (name) VALUES (?)`
	res, err := r.db.ExecContext(ctx, q, name)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &model.Genre{ID: uint64(id), Name: name}, nil
}

// Replace overwrites all data fields of the genre matching id, leaving
// the id untouched.  It returns ErrGenreNotFound when no such row exists.
func (r *GenreRepo) Replace(ctx context.Context, id uint64, name string) (*model.Genre, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	const q = `UPDATE genres SET name = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, q, name, id); err != nil {
		return nil, err
	}
	return &model.Genre{ID: id, Name: name}, nil
}

// Delete removes the genre matching id.  It returns ErrGenreNotFound
// when no row was deleted.  Movies referencing the genre are left with a
// dangling genre_id.
func (r *GenreRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM genres WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrGenreNotFound
	}
	return nil
}
