package handler // handler package contains director CRUD handlers

import (
	"errors"   // errors matches repository sentinel values
	"net/http" // http provides status code constants
	"strconv"  // strconv parses string identifiers to numeric types
	"strings"  // strings offers trimming utilities

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-catalog/internal/model"
	"github.com/iliyamo/movie-catalog/internal/repository"
)

// DirectorHandler serves the director CRUD endpoints.
type DirectorHandler struct {
	Directors DirectorStore // Directors provides director persistence
}

// NewDirectorHandler constructs a DirectorHandler and panics if the store is nil.
func NewDirectorHandler(directors DirectorStore) *DirectorHandler {
	if directors == nil {
		panic("nil store passed to NewDirectorHandler")
	}
	return &DirectorHandler{Directors: directors}
}

// directorJSON is the wire representation of a director.
type directorJSON struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

func toDirectorJSON(d *model.Director) directorJSON {
	return directorJSON{ID: d.ID, Name: d.Name}
}

// List handles GET /directors/ and returns all directors.
func (h *DirectorHandler) List(c echo.Context) error {
	directors, err := h.Directors.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]directorJSON, 0, len(directors))
	for _, d := range directors {
		out = append(out, toDirectorJSON(d))
	}
	return c.JSON(http.StatusOK, out)
}

// Create handles POST /directors/ and creates a new director.  A
// client-supplied id in the body is ignored: the store assigns identity.
func (h *DirectorHandler) Create(c echo.Context) error {
	var body nameInput
	if err := bindJSON(c, &body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	d, err := h.Directors.Create(c.Request().Context(), name)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create director"})
	}
	return c.JSON(http.StatusCreated, toDirectorJSON(d))
}

// Replace handles PUT /directors/:id and overwrites all data fields of
// the addressed director.  Only the path parameter selects the target;
// an id in the body never changes the stored identity.
func (h *DirectorHandler) Replace(c echo.Context) error {
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
	d, err := h.Directors.Replace(c.Request().Context(), id, name)
	if err != nil {
		if errors.Is(err, repository.ErrDirectorNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "director not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, toDirectorJSON(d))
}

// Delete handles DELETE /directors/:id.  Deletion does not cascade:
// movies referencing the director keep a dangling reference.  A repeat
// delete of the same id answers 404.
func (h *DirectorHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Directors.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrDirectorNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "director not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
