// Package handler exposes the HTTP handlers for the catalog API.  Each
// resource (movies, directors, genres) gets its own handler type holding
// a store interface; the concrete repositories satisfy these interfaces
// and are injected at startup, keeping the handlers free of ambient
// globals and easy to exercise with fakes in tests.
package handler

import (
	"context"       // context carries request deadlines into the store
	"encoding/json" // json decodes request bodies with strict field checking
	"errors"        // errors builds decode failure values
	"io"            // io sentinel errors distinguish empty bodies

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-catalog/internal/model"
)

// MovieStore is the read-only persistence surface movies need.
type MovieStore interface {
	List(ctx context.Context, directorID, genreID *uint64) ([]*model.Movie, error)
	GetByID(ctx context.Context, id uint64) (*model.Movie, error)
}

// DirectorStore is the persistence surface for director CRUD.
type DirectorStore interface {
	List(ctx context.Context) ([]*model.Director, error)
	Create(ctx context.Context, name string) (*model.Director, error)
	Replace(ctx context.Context, id uint64, name string) (*model.Director, error)
	Delete(ctx context.Context, id uint64) error
}

// GenreStore is the persistence surface for genre CRUD.
type GenreStore interface {
	List(ctx context.Context) ([]*model.Genre, error)
	Create(ctx context.Context, name string) (*model.Genre, error)
	Replace(ctx context.Context, id uint64, name string) (*model.Genre, error)
	Delete(ctx context.Context, id uint64) error
}

// nameInput is the accepted body shape for director and genre create and
// replace operations.  ID is accepted so that clients echoing a record
// back do not get rejected, but it is never used for addressing or
// stored: only the path parameter selects the target row.
type nameInput struct {
	ID   *uint64 `json:"id"`   // accepted and ignored
	Name string  `json:"name"` // the only data field
}

// bindJSON decodes the request body into dst, rejecting unknown fields
// and trailing garbage.  Any failure means the body is malformed and the
// caller should answer 400.
func bindJSON(c echo.Context, dst any) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	// A second value after the object means the body is not a single JSON document.
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must contain a single JSON object")
	}
	return nil
}
