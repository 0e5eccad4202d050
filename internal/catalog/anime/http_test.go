// Copyright (c) 2026 Animepedia. All rights reserved.

package anime_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/animepedia/animepedia/internal/catalog/anime"
)

// newTestHandler wires a handler over the in-memory repository. The roster
// route is stubbed since it belongs to the character domain.
func newTestHandler(repo anime.Repository) http.Handler {
	roster := func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = writer.Write([]byte(`{"rosterAnimeId":"` + chi.URLParam(request, "id") + `"}`))
	}
	return anime.NewHandler(newTestService(repo), roster).Routes()
}

func doRequest(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	request := httptest.NewRequest(method, path, reader)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func decodeAnime(t *testing.T, recorder *httptest.ResponseRecorder) anime.Anime {
	t.Helper()

	var decoded anime.Anime
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded))
	return decoded
}

/*
TestHTTP_CreateAnime exercises the create endpoint, including the legacy
comma-delimited genres form.
*/
func TestHTTP_CreateAnime(t *testing.T) {
	handler := newTestHandler(newFakeRepository())

	body := `{
		"title": "Naruto",
		"image": "https://img.example/naruto.jpg",
		"description": "A ninja story.",
		"genres": "Action, Adventure"
	}`

	recorder := doRequest(t, handler, http.MethodPost, "/", body)
	require.Equal(t, http.StatusCreated, recorder.Code)

	created := decodeAnime(t, recorder)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Naruto", created.Title)
	assert.Equal(t, anime.StatusCompleted, created.Status)
	assert.Equal(t, []string{"Action", "Adventure"}, []string(created.Genres))
	assert.False(t, created.CreatedAt.IsZero())
}

/*
TestHTTP_CreateAnime_BadPayloads checks the 400 surface of the create
endpoint: malformed JSON and failed validation.
*/
func TestHTTP_CreateAnime_BadPayloads(t *testing.T) {
	handler := newTestHandler(newFakeRepository())

	t.Run("malformed_json", func(t *testing.T) {
		recorder := doRequest(t, handler, http.MethodPost, "/", `{"title": `)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"message"`)
	})

	t.Run("missing_required_fields", func(t *testing.T) {
		recorder := doRequest(t, handler, http.MethodPost, "/", `{"title": "Solo"}`)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"details"`)
	})
}

/*
TestHTTP_GetAnime verifies the lookup endpoint and its 404 contract for
both missing and malformed identifiers.
*/
func TestHTTP_GetAnime(t *testing.T) {
	repo := newFakeRepository()
	handler := newTestHandler(repo)

	created := decodeAnime(t, doRequest(t, handler, http.MethodPost, "/", `{
		"title": "Monster", "image": "https://img.example/monster.jpg", "description": "Johan."
	}`))

	t.Run("found", func(t *testing.T) {
		recorder := doRequest(t, handler, http.MethodGet, "/"+created.ID, "")
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "Monster", decodeAnime(t, recorder).Title)
	})

	t.Run("malformed_id", func(t *testing.T) {
		recorder := doRequest(t, handler, http.MethodGet, "/not-a-uuid", "")
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.JSONEq(t, `{"message": "Anime not found"}`, recorder.Body.String())
	})
}

/*
TestHTTP_ListAnime verifies the index returns a JSON array even when empty.
*/
func TestHTTP_ListAnime(t *testing.T) {
	handler := newTestHandler(newFakeRepository())

	recorder := doRequest(t, handler, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `[]`, recorder.Body.String())
}

/*
TestHTTP_UpdateAnime verifies the merge update response carries the full
record, not just the changed fields.
*/
func TestHTTP_UpdateAnime(t *testing.T) {
	handler := newTestHandler(newFakeRepository())

	created := decodeAnime(t, doRequest(t, handler, http.MethodPost, "/", `{
		"title": "Trigun", "image": "https://img.example/trigun.jpg", "description": "Vash."
	}`))

	recorder := doRequest(t, handler, http.MethodPut, "/"+created.ID, `{"studio": "Madhouse"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	updated := decodeAnime(t, recorder)
	assert.Equal(t, "Madhouse", updated.Studio)
	assert.Equal(t, "Trigun", updated.Title)
	assert.Equal(t, created.Image, updated.Image)
}

/*
TestHTTP_DeleteAnime verifies the confirmation envelope and that repeating
the delete is a 404.
*/
func TestHTTP_DeleteAnime(t *testing.T) {
	handler := newTestHandler(newFakeRepository())

	created := decodeAnime(t, doRequest(t, handler, http.MethodPost, "/", `{
		"title": "FLCL", "image": "https://img.example/flcl.jpg", "description": "Haruko."
	}`))

	first := doRequest(t, handler, http.MethodDelete, "/"+created.ID, "")
	require.Equal(t, http.StatusOK, first.Code)
	assert.JSONEq(t, `{"message": "Anime removed"}`, first.Body.String())

	second := doRequest(t, handler, http.MethodDelete, "/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, second.Code)
	assert.JSONEq(t, `{"message": "Anime not found"}`, second.Body.String())
}

/*
TestHTTP_RosterRoute verifies that /{id}/characters dispatches to the
injected character-domain handler with the id parameter intact.
*/
func TestHTTP_RosterRoute(t *testing.T) {
	handler := newTestHandler(newFakeRepository())

	recorder := doRequest(t, handler, http.MethodGet, "/some-anime-id/characters", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"rosterAnimeId": "some-anime-id"}`, recorder.Body.String())
}
