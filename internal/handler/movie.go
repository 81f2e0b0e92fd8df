package handler // handler package contains movie read handlers

import (
	"errors"   // errors matches repository sentinel values
	"net/http" // http provides status code constants
	"strconv"  // strconv parses string identifiers to numeric types

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-catalog/internal/model"
	"github.com/iliyamo/movie-catalog/internal/repository"
)

// MovieHandler serves the read-only movie endpoints.
type MovieHandler struct {
	Movies MovieStore // Movies provides movie persistence
}

// NewMovieHandler constructs a MovieHandler and panics if the store is nil.
func NewMovieHandler(movies MovieStore) *MovieHandler {
	if movies == nil {
		panic("nil store passed to NewMovieHandler")
	}
	return &MovieHandler{Movies: movies}
}

// movieJSON is the wire representation of a movie.  The genre and
// director fields carry the related names resolved at read time; they
// serialize as null when the reference is absent or dangling.
type movieJSON struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Trailer     string  `json:"trailer"`
	Year        int     `json:"year"`
	Rating      float64 `json:"rating"`
	GenreID     *uint64 `json:"genre_id"`
	Genre       *string `json:"genre"`
	DirectorID  *uint64 `json:"director_id"`
	Director    *string `json:"director"`
}

func toMovieJSON(m *model.Movie) movieJSON {
	return movieJSON{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Trailer:     m.Trailer,
		Year:        m.Year,
		Rating:      m.Rating,
		GenreID:     m.GenreID,
		Genre:       m.GenreName,
		DirectorID:  m.DirectorID,
		Director:    m.DirectorName,
	}
}

// List handles GET /movies/ and returns all movies, optionally filtered
// by the director_id and genre_id query parameters.  The filters compose
// with AND; an empty result is a 200 with an empty array.
func (h *MovieHandler) List(c echo.Context) error {
	directorID, ok := optionalIDParam(c, "director_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid director_id"})
	}
	genreID, ok := optionalIDParam(c, "genre_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid genre_id"})
	}
	movies, err := h.Movies.List(c.Request().Context(), directorID, genreID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]movieJSON, 0, len(movies))
	for _, m := range movies {
		out = append(out, toMovieJSON(m))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /movies/:id and returns a single movie.  A missing
// movie answers 404 rather than a 200 with an empty body.
func (h *MovieHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	m, err := h.Movies.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, toMovieJSON(m))
}

// optionalIDParam reads an optional integer query parameter.  It returns
// (nil, true) when the parameter is absent and (nil, false) when the
// value is present but not a valid id.
func optionalIDParam(c echo.Context, name string) (*uint64, bool) {
	v := c.QueryParam(name)
	if v == "" {
		return nil, true
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return nil, false
	}
	return &n, true
}
