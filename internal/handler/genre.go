package handler // handler package contains genre CRUD handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-catalog/internal/model"
	"github.com/iliyamo/movie-catalog/internal/repository"
)

// GenreHandler serves the genre CRUD endpoints.  Genres behave exactly
// like directors: a single name field addressed by a store-assigned id.
type GenreHandler struct {
	Genres GenreStore // Genres provides genre persistence
}

// NewGenreHandler constructs a GenreHandler and panics if the store is nil.
func NewGenreHandler(genres GenreStore) *GenreHandler {
	if genres == nil {
		panic("nil store passed to NewGenreHandler")
	}
	return &GenreHandler{Genres: genres}
}

// genreJSON is the wire representation of a genre.
type genreJSON struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

func toGenreJSON(g *model.Genre) genreJSON {
	return genreJSON{ID: g.ID, Name: g.Name}
}

// List handles GET /genres/ and returns all genres.
func (h *GenreHandler) List(c echo.Context) error {
	genres, err := h.Genres.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]genreJSON, 0, len(genres))
	for _, g := range genres {
		out = append(out, toGenreJSON(g))
	}
	return c.JSON(http.StatusOK, out)
}

// Create handles POST /genres/ and creates a new genre.  A client
// supplied id in the body is ignored.
func (h *GenreHandler) Create(c echo.Context) error {
	var body nameInput
	if err := bindJSON(c, &body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	g, err := h.Genres.Create(c.Request().Context(), name)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create genre"})
	}
	return c.JSON(http.StatusCreated, toGenreJSON(g))
}

// Replace handles PUT /genres/:id.  Only the path parameter addresses
// the record; a body id never mutates identity.
func (h *GenreHandler) Replace(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body nameInput
	if err := bindJSON(c, &body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	g, err := h.Genres.Replace(c.Request().Context(), id, name)
	if err != nil {
		if errors.Is(err, repository.ErrGenreNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "genre not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, toGenreJSON(g))
}

// Delete handles DELETE /genres/:id.  Movies referencing the genre are
// left with a dangling genre_id.
func (h *GenreHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Genres.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrGenreNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "genre not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
