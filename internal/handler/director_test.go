package handler

import (
	"net/http"
	"testing"

	"github.com/iliyamo/movie-catalog/internal/model"
)

func TestDirectorCreateRoundTrip(t *testing.T) {
	store := newFakeDirectorStore()
	h := NewDirectorHandler(store)

	c, rec := newRequest(t, http.MethodPost, "/directors/", `{"name":"Nolan"}`, "")
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	var created directorJSON
	decodeBody(t, rec, &created)
	if created.ID == 0 || created.Name != "Nolan" {
		t.Fatalf("created = %+v, want server-assigned id and name Nolan", created)
	}

	c, rec = newRequest(t, http.MethodGet, "/directors/", "", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	var listed []directorJSON
	decodeBody(t, rec, &listed)
	if len(listed) != 1 || listed[0].ID != created.ID || listed[0].Name != "Nolan" {
		t.Fatalf("listed = %+v, want exactly the created director", listed)
	}
}

func TestDirectorCreateIgnoresClientID(t *testing.T) {
	store := newFakeDirectorStore()
	h := NewDirectorHandler(store)

	c, rec := newRequest(t, http.MethodPost, "/directors/", `{"id":99,"name":"Scott"}`, "")
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	var created directorJSON
	decodeBody(t, rec, &created)
	if created.ID == 99 {
		t.Fatalf("client-supplied id was honored: %+v", created)
	}
	if _, ok := store.byID[99]; ok {
		t.Fatal("store holds a row under the client-supplied id")
	}
}

func TestDirectorCreateMissingName(t *testing.T) {
	h := NewDirectorHandler(newFakeDirectorStore())
	c, rec := newRequest(t, http.MethodPost, "/directors/", `{}`, "")

	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestDirectorCreateMalformedBody(t *testing.T) {
	h := NewDirectorHandler(newFakeDirectorStore())
	c, rec := newRequest(t, http.MethodPost, "/directors/", `{"name":`, "")

	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestDirectorCreateRejectsUnknownField(t *testing.T) {
	h := NewDirectorHandler(newFakeDirectorStore())
	c, rec := newRequest(t, http.MethodPost, "/directors/", `{"name":"Nolan","oscar_count":2}`, "")

	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestDirectorReplaceKeepsIdentity(t *testing.T) {
	store := newFakeDirectorStore(&model.Director{ID: 1, Name: "Nolan"})
	h := NewDirectorHandler(store)

	// The body claims id 99; only the path id may address the record.
	c, rec := newRequest(t, http.MethodPut, "/directors/1", `{"id":99,"name":"Villeneuve"}`, "1")
	if err := h.Replace(c); err != nil {
		t.Fatalf("Replace returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var got directorJSON
	decodeBody(t, rec, &got)
	if got.ID != 1 || got.Name != "Villeneuve" {
		t.Fatalf("got %+v, want id 1 with new name", got)
	}
	if d := store.byID[1]; d == nil || d.Name != "Villeneuve" {
		t.Fatalf("stored row = %+v, want replaced name under id 1", d)
	}
	if _, ok := store.byID[99]; ok {
		t.Fatal("replace created a row under the body id")
	}
}

func TestDirectorReplaceNotFound(t *testing.T) {
	h := NewDirectorHandler(newFakeDirectorStore())
	c, rec := newRequest(t, http.MethodPut, "/directors/5", `{"name":"Nobody"}`, "5")

	if err := h.Replace(c); err != nil {
		t.Fatalf("Replace returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestDirectorReplaceMissingName(t *testing.T) {
	h := NewDirectorHandler(newFakeDirectorStore(&model.Director{ID: 1, Name: "Nolan"}))
	c, rec := newRequest(t, http.MethodPut, "/directors/1", `{"name":"  "}`, "1")

	if err := h.Replace(c); err != nil {
		t.Fatalf("Replace returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestDirectorDeleteTwice(t *testing.T) {
	store := newFakeDirectorStore(&model.Director{ID: 1, Name: "Nolan"})
	h := NewDirectorHandler(store)

	c, rec := newRequest(t, http.MethodDelete, "/directors/1", "", "1")
	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("first delete status = %d, want %d", rec.Code, http.StatusNoContent)
	}

	c, rec = newRequest(t, http.MethodDelete, "/directors/1", "", "1")
	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestDirectorDeleteRejectsNonIntegerID(t *testing.T) {
	h := NewDirectorHandler(newFakeDirectorStore())
	c, rec := newRequest(t, http.MethodDelete, "/directors/one", "", "one")

	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
