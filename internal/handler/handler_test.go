package handler

// Shared fakes and request plumbing for the handler tests.  The fakes
// implement the store interfaces with in-memory maps so the tests can
// exercise the HTTP contract without a database.

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-catalog/internal/model"
	"github.com/iliyamo/movie-catalog/internal/repository"
)

var errStoreDown = errors.New("store down")

type fakeMovieStore struct {
	movies []*model.Movie
	err    error
}

func (f *fakeMovieStore) List(_ context.Context, directorID, genreID *uint64) ([]*model.Movie, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []*model.Movie{}
	for _, m := range f.movies {
		if directorID != nil && (m.DirectorID == nil || *m.DirectorID != *directorID) {
			continue
		}
		if genreID != nil && (m.GenreID == nil || *m.GenreID != *genreID) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMovieStore) GetByID(_ context.Context, id uint64) (*model.Movie, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, m := range f.movies {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, repository.ErrMovieNotFound
}

type fakeDirectorStore struct {
	byID   map[uint64]*model.Director
	nextID uint64
	err    error
}

func newFakeDirectorStore(directors ...*model.Director) *fakeDirectorStore {
	f := &fakeDirectorStore{byID: map[uint64]*model.Director{}}
	for _, d := range directors {
		f.byID[d.ID] = d
		if d.ID > f.nextID {
			f.nextID = d.ID
		}
	}
	return f
}

func (f *fakeDirectorStore) List(context.Context) ([]*model.Director, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []*model.Director{}
	for _, d := range f.byID {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeDirectorStore) Create(_ context.Context, name string) (*model.Director, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	d := &model.Director{ID: f.nextID, Name: name}
	f.byID[d.ID] = d
	return d, nil
}

func (f *fakeDirectorStore) Replace(_ context.Context, id uint64, name string) (*model.Director, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.byID[id]; !ok {
		return nil, repository.ErrDirectorNotFound
	}
	d := &model.Director{ID: id, Name: name}
	f.byID[id] = d
	return d, nil
}

func (f *fakeDirectorStore) Delete(_ context.Context, id uint64) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[id]; !ok {
		return repository.ErrDirectorNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeGenreStore struct {
	byID   map[uint64]*model.Genre
	nextID uint64
	err    error
}

func newFakeGenreStore(genres ...*model.Genre) *fakeGenreStore {
	f := &fakeGenreStore{byID: map[uint64]*model.Genre{}}
	for _, g := range genres {
		f.byID[g.ID] = g
		if g.ID > f.nextID {
			f.nextID = g.ID
		}
	}
	return f
}

func (f *fakeGenreStore) List(context.Context) ([]*model.Genre, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []*model.Genre{}
	for _, g := range f.byID {
		out = append(out, g)
	}
	return out, nil
}

func (f *fakeGenreStore) Create(_ context.Context, name string) (*model.Genre, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	g := &model.Genre{ID: f.nextID, Name: name}
	f.byID[g.ID] = g
	return g, nil
}

func (f *fakeGenreStore) Replace(_ context.Context, id uint64, name string) (*model.Genre, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.byID[id]; !ok {
		return nil, repository.ErrGenreNotFound
	}
	g := &model.Genre{ID: id, Name: name}
	f.byID[id] = g
	return g, nil
}

func (f *fakeGenreStore) Delete(_ context.Context, id uint64) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[id]; !ok {
		return repository.ErrGenreNotFound
	}
	delete(f.byID, id)
	return nil
}

// newRequest builds an echo context plus recorder for a handler call.
// pathParam, when non-empty, is bound to the :id route parameter.
func newRequest(t *testing.T, method, target, body, pathParam string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	if pathParam != "" {
		c.SetParamNames("id")
		c.SetParamValues(pathParam)
	}
	return c, rec
}

// decodeBody unmarshals a recorded JSON response into dst.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func uint64Ptr(v uint64) *uint64 { return &v }
func stringPtr(v string) *string { return &v }
